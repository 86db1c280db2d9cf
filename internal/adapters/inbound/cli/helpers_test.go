package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autoheal/autoheal/internal/adapters/inbound/cli"
)

var deploymentFixture = map[string]string{
	"index.jx":         "console.log('This should be .js');",
	"readme.txt":       "Project description",
	"Bad File Name.js": "console.log('spaces in filename');",
	"my@file#123.html": "special chars in name",
	"netlify.toml":     "[build]\npublish = 'dist'",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

// run executes the root command with colors off and returns stdout, stderr
// and the error. Flags in args come later and override the defaults.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
