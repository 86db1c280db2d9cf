package domain

// RuleSet is the immutable rule table shared by the normalizer, scanner and
// healer. Its fields are unexported; callers only get lookups and copies.
type RuleSet struct {
	corrections    map[string]string
	extensionFixes map[string]string
	requiredFiles  map[Target][]string
	skipFiles      map[string]bool
	ignoreDirs     map[string]bool
	target         Target
	splitCamelCase bool
}

// conventionalNames survive normalization untouched. Tool dotfiles have an
// empty stem and would otherwise become "file.<name>".
var conventionalNames = []string{
	"README.md", "CHANGELOG.md", "LICENSE", "Makefile", "Dockerfile",
	"package-lock.json", ".autoheal.yaml",
	".env", ".gitignore", ".gitattributes", ".gitmodules", ".gitkeep",
	".dockerignore", ".editorconfig", ".nvmrc", ".npmrc", ".npmignore",
	".prettierrc", ".prettierignore", ".eslintrc", ".eslintignore",
	".babelrc", ".stylelintrc", ".browserslistrc", ".htaccess", ".nojekyll",
}

// DefaultRuleSet returns the canonical rule table.
func DefaultRuleSet() RuleSet {
	rules := RuleSet{
		corrections: map[string]string{
			"index.jx":   "index.js",
			"index.htm":  "index.html",
			"readme.txt": "README.md",
		},
		extensionFixes: map[string]string{
			".jx":  ".js",
			".htm": ".html",
			".txt": ".md",
			".jsx": ".js",
		},
		requiredFiles: map[Target][]string{
			TargetNetlify: {"netlify.toml"},
			TargetWeb:     {"index.html", "package.json"},
		},
		skipFiles: map[string]bool{
			"package-lock.json": true,
			"yarn.lock":         true,
		},
		ignoreDirs: map[string]bool{
			".git":         true,
			".hg":          true,
			".svn":         true,
			"node_modules": true,
		},
		target: TargetNetlify,
	}
	for _, name := range conventionalNames {
		rules.corrections[name] = name
	}
	return rules
}

// Correction returns the exact-match replacement for name, if any.
func (r RuleSet) Correction(name string) (string, bool) {
	v, ok := r.corrections[name]
	return v, ok
}

// ExtensionFix returns the replacement for a lower-case extension, if any.
func (r RuleSet) ExtensionFix(ext string) (string, bool) {
	v, ok := r.extensionFixes[ext]
	return v, ok
}

func (r RuleSet) IsSkippedFile(name string) bool { return r.skipFiles[name] }

func (r RuleSet) IsIgnoredDir(name string) bool { return r.ignoreDirs[name] }

func (r RuleSet) Target() Target { return r.target }

func (r RuleSet) SplitCamelCase() bool { return r.splitCamelCase }

// RequiredFiles returns a copy of the files the active target needs at the
// project root.
func (r RuleSet) RequiredFiles() []string {
	files := r.requiredFiles[r.target]
	out := make([]string, len(files))
	copy(out, files)
	return out
}
