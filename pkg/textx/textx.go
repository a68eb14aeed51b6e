// Package textx provides a chainable text editor.
//
// Every position and length is counted in code points, never in bytes, so
// a multi-byte character is never split. Editing operations mutate the Text
// in place and return it; out of range positions clamp or produce empty text
// instead of failing.
//
//	t := textx.MustOf("hellö world")
//	t.Slice(1, 9).String()      // "ellö worl"
//	t.LimitCharacters(4)        // "ellö…"
package textx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// InvalidEncodingError reports input which is not valid UTF-8.
type InvalidEncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("textx: invalid UTF-8 at byte offset %d", e.Offset)
}

// Of creates a Text owning s.
func Of(s string) (*Text, error) {
	if offset := invalidOffset(s); offset >= 0 {
		return nil, errors.WithStack(&InvalidEncodingError{Offset: offset})
	}
	return &Text{s: s}, nil
}

func MustOf(s string) *Text {
	t, err := Of(s)
	if err != nil {
		panic(err)
	}
	return t
}

func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// Text is a mutable, single owner text value.
// It is not safe for concurrent use.
type Text struct {
	s string
}

func (t *Text) String() string {
	return t.s
}

// Length returns the number of code points.
func (t *Text) Length() int {
	return utf8.RuneCountInString(t.s)
}

// GraphemeLength returns the number of user-perceived characters.
func (t *Text) GraphemeLength() int {
	return uniseg.GraphemeClusterCount(t.s)
}

func (t *Text) IsEmpty() bool {
	return t.s == ""
}

func (t *Text) Clone() *Text {
	return &Text{s: t.s}
}

func (t *Text) set(s string) *Text {
	t.s = s
	return t
}

// valid coerces caller input to UTF-8 so edits keep t valid.
func valid(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
