package textx

import (
	"regexp"
	"strings"
	"unicode"
)

// StartWith prefixes the text with prefix unless it already starts with it.
func (t *Text) StartWith(prefix string) *Text {
	prefix = valid(prefix)
	if strings.HasPrefix(t.s, prefix) {
		return t
	}
	return t.set(prefix + t.s)
}

// FinishWith terminates the text with suffix unless it already ends with it.
func (t *Text) FinishWith(suffix string) *Text {
	suffix = valid(suffix)
	if strings.HasSuffix(t.s, suffix) {
		return t
	}
	return t.set(t.s + suffix)
}

func (t *Text) Append(parts ...string) *Text {
	var b strings.Builder
	b.WriteString(t.s)
	for _, p := range parts {
		b.WriteString(valid(p))
	}
	return t.set(b.String())
}

func (t *Text) Prepend(parts ...string) *Text {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(valid(p))
	}
	b.WriteString(t.s)
	return t.set(b.String())
}

// Replace replaces every literal search with replacement.
func (t *Text) Replace(search string, replacement string) *Text {
	if search == "" {
		return t
	}
	return t.set(strings.ReplaceAll(t.s, search, valid(replacement)))
}

// ReplaceFirst replaces the leftmost literal search with replacement.
func (t *Text) ReplaceFirst(search string, replacement string) *Text {
	if search == "" {
		return t
	}
	return t.set(strings.Replace(t.s, search, valid(replacement), 1))
}

// ReplaceLast replaces the rightmost literal search with replacement.
func (t *Text) ReplaceLast(search string, replacement string) *Text {
	i := strings.LastIndex(t.s, search)
	if search == "" || i < 0 {
		return t
	}
	return t.set(t.s[:i] + valid(replacement) + t.s[i+len(search):])
}

func (t *Text) Remove(search string) *Text {
	return t.Replace(search, "")
}

func (t *Text) RemoveFirst(search string) *Text {
	return t.ReplaceFirst(search, "")
}

func (t *Text) RemoveLast(search string) *Text {
	return t.ReplaceLast(search, "")
}

// ReplaceRegexp replaces every match of re, expanding $n in replacement.
func (t *Text) ReplaceRegexp(re *regexp.Regexp, replacement string) *Text {
	return t.set(valid(re.ReplaceAllString(t.s, replacement)))
}

func (t *Text) Trim() *Text {
	return t.set(strings.TrimSpace(t.s))
}

func (t *Text) TrimLeft() *Text {
	return t.set(strings.TrimLeftFunc(t.s, unicode.IsSpace))
}

func (t *Text) TrimRight() *Text {
	return t.set(strings.TrimRightFunc(t.s, unicode.IsSpace))
}
