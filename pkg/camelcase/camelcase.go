package camelcase

import (
	"unicode"
	"unicode/utf8"
)

type RuneClass int

const (
	RuneOther RuneClass = iota
	RuneLower
	RuneUpper
	RuneDigit
)

func ClassOf(r rune) RuneClass {
	switch {
	case unicode.IsLower(r):
		return RuneLower
	case unicode.IsUpper(r), unicode.IsTitle(r):
		return RuneUpper
	case unicode.IsDigit(r):
		return RuneDigit
	default:
		return RuneOther
	}
}

// Split splits src into fragments of the same rune class, so both
// camel-cased identifiers and separated phrases break into words.
// Separator runs are kept as their own fragments; use Words to drop them.
//
//  1. Invalid UTF-8 is returned unsplit as a single fragment.
//  2. Digits stick to the letters before them, lower case letters stick
//     to the digits before them ("GL11Version" -> "GL11", "Version").
//  3. An upper case run followed by a lower case run hands its last rune
//     over ("PDFLoader" -> "PDF", "Loader").
func Split(src string) []string {
	if !utf8.ValidString(src) {
		return []string{src}
	}

	fragments := make([][]rune, 0, len(src))
	last := RuneOther

	for i, r := range src {
		class := ClassOf(r)

		if i > 0 && joins(last, class) {
			fragments[len(fragments)-1] = append(fragments[len(fragments)-1], r)
		} else {
			fragments = append(fragments, []rune{r})
		}

		last = class
	}

	for i := 0; i < len(fragments)-1; i++ {
		cur, next := fragments[i], fragments[i+1]
		if len(cur) > 0 && unicode.IsUpper(cur[0]) && unicode.IsLower(next[0]) {
			fragments[i+1] = append([]rune{cur[len(cur)-1]}, next...)
			fragments[i] = cur[:len(cur)-1]
		}
	}

	entries := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if len(f) > 0 {
			entries = append(entries, string(f))
		}
	}

	return entries
}

func joins(prev RuneClass, class RuneClass) bool {
	if class == prev {
		return true
	}
	switch class {
	case RuneDigit:
		return prev == RuneUpper || prev == RuneLower
	case RuneLower:
		return prev == RuneDigit
	}
	return false
}

// Words returns the fragments of Split holding at least one letter or digit.
func Words(src string) []string {
	fragments := Split(src)
	words := fragments[:0]

	for _, f := range fragments {
		if isWord(f) {
			words = append(words, f)
		}
	}

	return words
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
