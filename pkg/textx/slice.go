package textx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// span resolves start and length against n code points into [from, to).
// A negative start counts from the end, a negative length leaves that many
// code points off the end. ok is false for a start past the end or an
// inverted range.
func span(n int, start int, length int) (from int, to int, ok bool) {
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return n, n, false
	}

	switch {
	case length < 0:
		to = n + length
	case length > n-start:
		to = n
	default:
		to = start + length
	}

	if to < start {
		return start, start, false
	}

	return start, to, true
}

// Slice keeps length code points starting at start.
// Slice(0, Length()) leaves the text unchanged.
func (t *Text) Slice(start int, length int) *Text {
	runes := []rune(t.s)

	from, to, ok := span(len(runes), start, length)
	if !ok {
		return t.set("")
	}

	return t.set(string(runes[from:to]))
}

// ReplaceSub replaces length code points starting at start with replacement.
// An inverted range inserts at start, a start past the end appends.
func (t *Text) ReplaceSub(replacement string, start int, length int) *Text {
	runes := []rune(t.s)

	from, to, _ := span(len(runes), start, length)

	return t.set(string(runes[:from]) + valid(replacement) + string(runes[to:]))
}

// Chunk splits the text into pieces of size code points, the last piece
// may be shorter.
func (t *Text) Chunk(size int) []string {
	if size <= 0 || t.s == "" {
		return nil
	}

	chunks := make([]string, 0, t.Length()/size+1)

	s := t.s
	for s != "" {
		end := 0
		for n := 0; n < size && end < len(s); n++ {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}

	return chunks
}

// IndexOf returns the code point index of the first needle, or -1.
func (t *Text) IndexOf(needle string) int {
	i := strings.Index(t.s, needle)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(t.s[:i])
}

// Before keeps everything before the first needle.
// Without a match the text is left unchanged.
func (t *Text) Before(needle string) *Text {
	if i := strings.Index(t.s, needle); needle != "" && i >= 0 {
		return t.set(t.s[:i])
	}
	return t
}

// BeforeLast keeps everything before the last needle.
func (t *Text) BeforeLast(needle string) *Text {
	if i := strings.LastIndex(t.s, needle); needle != "" && i >= 0 {
		return t.set(t.s[:i])
	}
	return t
}

// After keeps everything after the first needle.
// Without a match the text is left unchanged.
func (t *Text) After(needle string) *Text {
	if i := strings.Index(t.s, needle); needle != "" && i >= 0 {
		return t.set(t.s[i+len(needle):])
	}
	return t
}

// AfterLast keeps everything after the last needle.
func (t *Text) AfterLast(needle string) *Text {
	if i := strings.LastIndex(t.s, needle); needle != "" && i >= 0 {
		return t.set(t.s[i+len(needle):])
	}
	return t
}

// LimitCharacters truncates the text to n code points.
// Ellipsis is appended only when something was cut off.
func (t *Text) LimitCharacters(n int) *Text {
	runes := []rune(t.s)
	if len(runes) <= n {
		return t
	}

	kept := string(runes[:max(n, 0)])

	return t.set(strings.TrimRightFunc(kept, unicode.IsSpace) + Ellipsis)
}

// LimitWords truncates the text to n whitespace separated words.
// Ellipsis is appended only when something was cut off.
func (t *Text) LimitWords(n int) *Text {
	end, words := 0, 0
	inWord := false

	for i, r := range t.s {
		if unicode.IsSpace(r) {
			if inWord {
				inWord = false
				end = i
			}
			continue
		}
		if !inWord {
			if words == max(n, 0) {
				return t.set(strings.TrimRightFunc(t.s[:end], unicode.IsSpace) + Ellipsis)
			}
			inWord = true
			words++
		}
	}

	return t
}
