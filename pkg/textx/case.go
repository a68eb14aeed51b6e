package textx

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/octohelm/textx/pkg/camelcase"
	"github.com/octohelm/textx/pkg/titlecase"
)

func (t *Text) Upper() *Text {
	return t.set(cases.Upper(language.Und).String(t.s))
}

func (t *Text) Lower() *Text {
	return t.set(cases.Lower(language.Und).String(t.s))
}

// UpperFirst title-cases the first code point only.
func (t *Text) UpperFirst() *Text {
	r, size := utf8.DecodeRuneInString(t.s)
	if size == 0 {
		return t
	}
	return t.set(string(unicode.ToTitle(r)) + t.s[size:])
}

// Title applies English title case, see titlecase.Title.
func (t *Text) Title(ignore ...string) *Text {
	return t.set(titlecase.Title(t.s, ignore...))
}

// Camel converts "hello world" to "helloWorld".
func (t *Text) Camel() *Text {
	return t.set(camelcase.LowerCamelCase(t.s))
}

// Studly converts "hello world" to "HelloWorld".
func (t *Text) Studly() *Text {
	return t.set(camelcase.UpperCamelCase(t.s))
}

// Snake converts "hello world" to "hello_world".
func (t *Text) Snake() *Text {
	return t.set(camelcase.LowerSnakeCase(t.s))
}

// Kebab converts "hello world" to "hello-world".
func (t *Text) Kebab() *Text {
	return t.set(camelcase.LowerKebabCase(t.s))
}

func (t *Text) Reverse() *Text {
	rs := []rune(t.s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return t.set(string(rs))
}

// transliterations covers code points NFD cannot reduce to ASCII.
var transliterations = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
	"‘", "'", "’", "'", "‚", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"\u2013", "-", "\u2014", "-", "\u2010", "-", "\u2011", "-",
	"…", "...",
	"\u00a0", " ",
)

// asciiPool hands out NFD -> strip marks -> strip non ASCII pipelines.
var asciiPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.Predicate(func(r rune) bool {
				return r > unicode.MaxASCII
			})),
		)
	},
}

// ASCII transliterates accented letters to their base letters and drops
// whatever has no ASCII form.
func (t *Text) ASCII() *Text {
	s := transliterations.Replace(t.s)

	tr := asciiPool.Get().(transform.Transformer)
	defer func() {
		tr.Reset()
		asciiPool.Put(tr)
	}()

	out, _, err := transform.String(tr, s)
	if err != nil {
		return t
	}

	return t.set(out)
}

var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts the text to a lower case, dash separated ASCII slug.
func (t *Text) Slug() *Text {
	return t.SlugWith("-")
}

func (t *Text) SlugWith(separator string) *Text {
	s := strings.ToLower(t.ASCII().s)
	s = reNonSlug.ReplaceAllString(s, separator)
	if separator != "" {
		s = strings.Trim(s, separator)
	}
	return t.set(s)
}
