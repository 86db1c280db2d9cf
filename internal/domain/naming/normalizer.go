// Package naming maps file names to their kebab-case conventional form.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/autoheal/autoheal/internal/domain"
)

// FallbackStem replaces a stem that normalizes to nothing.
const FallbackStem = "file"

var (
	separatorRun  = regexp.MustCompile(`[\s_]+`)
	disallowedRun = regexp.MustCompile(`[^a-zA-Z0-9.-]+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Normalizer suggests conventional file names from a rule set.
type Normalizer struct {
	rules domain.RuleSet
}

func New(rules domain.RuleSet) *Normalizer {
	return &Normalizer{rules: rules}
}

// Suggest returns the conventional name for original. It is pure and
// total; an already-conventional name is returned unchanged.
//
// Disallowed characters are replaced by hyphens rather than dropped, so
// "my@file#123.html" becomes "my-file-123.html".
func (n *Normalizer) Suggest(original string) string {
	if fixed, ok := n.rules.Correction(original); ok {
		return fixed
	}

	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(original, ext)

	ext = strings.ToLower(ext)
	if fixed, ok := n.rules.ExtensionFix(ext); ok {
		ext = fixed
	}

	stem = n.kebab(stem)
	if stem == "" {
		stem = FallbackStem
	}

	return stem + ext
}

func (n *Normalizer) kebab(stem string) string {
	if n.rules.SplitCamelCase() {
		stem = splitWords(stem)
	}

	s := separatorRun.ReplaceAllString(stem, "-")
	s = disallowedRun.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// splitWords inserts a hyphen at every case or digit boundary between two
// alphanumeric words, leaving punctuation runs where they are.
func splitWords(stem string) string {
	parts := camelcase.Split(stem)
	var b strings.Builder
	for i, p := range parts {
		if i > 0 && isWord(parts[i-1]) && isWord(p) {
			b.WriteByte('-')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isWord(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// Reason is the human-readable explanation attached to a rename issue.
func Reason(suggestion string) string {
	return "should be " + suggestion
}
