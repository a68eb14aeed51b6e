package textx

import (
	"strings"

	"github.com/tidwall/match"
)

// Matches reports whether the whole text matches the glob pattern,
// where * matches any sequence and ? any single code point.
func (t *Text) Matches(pattern string) bool {
	return match.Match(t.s, pattern)
}

func (t *Text) Contains(needle string) bool {
	return strings.Contains(t.s, needle)
}

func (t *Text) StartsWith(prefix string) bool {
	return strings.HasPrefix(t.s, prefix)
}

func (t *Text) EndsWith(suffix string) bool {
	return strings.HasSuffix(t.s, suffix)
}

// SplitWords splits on whitespace, punctuation stays with its word.
func (t *Text) SplitWords() []string {
	return strings.Fields(t.s)
}
