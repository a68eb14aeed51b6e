// Package titlecase capitalizes all words in a phrase to Title Caps, attempting
// to be smart about small words like a/an/the.
//
// Small words are lowercased unless they open or close the phrase, a
// sub-sentence (after : . ; ? !) or a quoted or bracketed sub-phrase.
// Words with capitals past their first letter (iPhone, AT&T's, DVDs), URLs,
// e-mail addresses, domains and paths are left alone. In a phrase without any
// lower case letter every word but initials (U.S.) and acronyms (AT&T) is
// lowercased first, so upper case input works too.
//
// The list of small words starts from the New York Times Manual of Style,
// plus 'vs' and 'v', as in John Gruber's original Perl version:
// http://daringfireball.net/2008/05/title_case.
package titlecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var SmallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in", "into", "near", "nor",
	"of", "off", "on", "once", "onto", "or", "over", "past", "save", "than", "the", "till", "to",
	"up", "upon", "v", "v.", "via", "vs", "vs.",
}

const (
	opening   = `'"“‘([{`
	closing   = `'"’”)]}`
	subphrase = ":.;?!"
)

var (
	reDomain     = regexp.MustCompile(`^[-_\pL\pN]+[@.:][-_\pL\pN@.:/]+(?:['’]\pL*)?$`)
	reApostrophe = regexp.MustCompile(`['’]\pL*$`)

	reUpperInitials    = regexp.MustCompile(`^(?:\p{Lu}(?:\.\p{Lu})+\.?|\p{Lu}+(?:&\p{Lu}+)+)$`)
	reApostropheSecond = regexp.MustCompile(`^(?i:[dlo])['‘’]\pL+$`)
	reMc               = regexp.MustCompile(`^(?i:mc)\pL+$`)

	defaultSmall = toSet(SmallWords)
)

// Title converts s to title case, leaving words in ignore untouched.
func Title(s string, ignore ...string) string {
	return New(WithIgnore(ignore...)).Title(s)
}

type Option func(c *Caser)

// WithIgnore registers words passed through verbatim wherever they appear.
func WithIgnore(words ...string) Option {
	return func(c *Caser) {
		if len(words) == 0 {
			return
		}
		if c.ignore == nil {
			c.ignore = map[string]bool{}
		}
		for _, w := range words {
			c.ignore[fold(w)] = true
		}
	}
}

// WithSmallWords replaces the small word list.
func WithSmallWords(words ...string) Option {
	return func(c *Caser) {
		c.small = toSet(words)
	}
}

func New(opts ...Option) *Caser {
	c := &Caser{small: defaultSmall}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Caser holds a small word list and an ignore list.
// It is immutable after New and safe for concurrent use.
type Caser struct {
	small  map[string]bool
	ignore map[string]bool
}

func (c *Caser) Title(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	tokens, spaces := fields(s)

	if !hasLower(s) && len(tokens) > 1 {
		for i, tok := range tokens {
			if _, core, _ := splitPunct(tok); reUpperInitials.MatchString(core) {
				continue
			}
			tokens[i] = cases.Lower(language.Und).String(tok)
		}
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := range tokens {
		if i > 0 {
			b.WriteString(spaces[i-1])
		}
		b.WriteString(c.token(tokens, i))
	}

	return b.String()
}

func (c *Caser) token(tokens []string, i int) string {
	tok := tokens[i]

	lead, core, trail := splitPunct(tok)
	if core == "" {
		return tok
	}

	if c.ignore[fold(core)] {
		return tok
	}

	if isLocator(tok, core) {
		return tok
	}

	if r, _ := utf8.DecodeRuneInString(core); !unicode.IsLetter(r) {
		return tok
	}

	return lead + c.compound(core, opensPhrase(tokens, i, lead), closesPhrase(tokens, i, trail)) + trail
}

// compound cases each hyphen or slash separated part of core.
// Small parts stay lower case unless they open or close the phrase:
// "step-by-step" -> "Step-by-Step", mid phrase "in-flight" -> "in-Flight".
func (c *Caser) compound(core string, first bool, last bool) string {
	parts, seps := splitCompound(core)

	var b strings.Builder
	b.Grow(len(core))

	for j, p := range parts {
		if j > 0 {
			b.WriteString(seps[j-1])
		}

		if p == "" || hasInnerUpper(p) {
			b.WriteString(p)
			continue
		}

		if r, _ := utf8.DecodeRuneInString(p); !unicode.IsLetter(r) {
			b.WriteString(p)
			continue
		}

		if !c.isSmall(p) {
			b.WriteString(capitalize(p))
			continue
		}

		if (j == 0 && first) || (j == len(parts)-1 && last) {
			b.WriteString(upperFirst(cases.Lower(language.Und).String(p)))
		} else {
			b.WriteString(cases.Lower(language.Und).String(p))
		}
	}

	return b.String()
}

func (c *Caser) isSmall(w string) bool {
	return c.small[fold(reApostrophe.ReplaceAllString(w, ""))]
}

// capitalize upper cases the first letter of w, and the one following
// Mc or a single letter elision: "mcdonald" -> "McDonald", "o'neil" -> "O'Neil".
func capitalize(w string) string {
	switch {
	case reMc.MatchString(w):
		return upperFirst(w[:2]) + upperFirst(w[2:])
	case reApostropheSecond.MatchString(w):
		_, size := utf8.DecodeRuneInString(w[1:])
		return upperFirst(w[:1+size]) + upperFirst(w[1+size:])
	}
	return upperFirst(w)
}

// opensPhrase reports whether tokens[i] starts the phrase or one of its
// sub-phrases.
func opensPhrase(tokens []string, i int, lead string) bool {
	if i == 0 {
		return true
	}

	if r, _ := utf8.DecodeLastRuneInString(lead); lead != "" && strings.ContainsRune(opening, r) {
		return true
	}

	prev := tokens[i-1]

	if r, _ := utf8.DecodeLastRuneInString(prev); strings.ContainsRune(subphrase, r) {
		return true
	}

	return strings.Trim(prev, opening) == ""
}

// closesPhrase reports whether tokens[i] ends the phrase or a quoted or
// bracketed sub-phrase.
func closesPhrase(tokens []string, i int, trail string) bool {
	if i == len(tokens)-1 {
		return true
	}

	return utf8.RuneCountInString(trail) == 1 && strings.ContainsAny(trail, closing)
}

// isLocator matches URLs, paths, e-mail addresses and domains.
func isLocator(tok string, core string) bool {
	if strings.Contains(tok, "://") {
		return true
	}
	if strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, `\`) {
		return true
	}
	return reDomain.MatchString(core)
}

func splitPunct(tok string) (lead string, core string, trail string) {
	start := strings.IndexFunc(tok, isAlnum)
	if start < 0 {
		return tok, "", ""
	}
	end := strings.LastIndexFunc(tok, isAlnum)
	_, size := utf8.DecodeRuneInString(tok[end:])
	return tok[:start], tok[start : end+size], tok[end+size:]
}

func splitCompound(core string) (parts []string, seps []string) {
	start := 0
	for i, r := range core {
		if r == '/' || isHyphen(string(r)) {
			parts = append(parts, core[start:i])
			seps = append(seps, string(r))
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, core[start:]), seps
}

func fields(s string) (tokens []string, spaces []string) {
	inSpace := false
	start := 0

	for i, r := range s {
		if unicode.IsSpace(r) == inSpace {
			continue
		}
		if inSpace {
			spaces = append(spaces, s[start:i])
		} else {
			tokens = append(tokens, s[start:i])
		}
		start = i
		inSpace = !inSpace
	}

	return append(tokens, s[start:]), spaces
}

func isHyphen(sep string) bool {
	return sep == "-" || sep == "\u2010" || sep == "\u2011"
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func hasInnerUpper(w string) bool {
	_, size := utf8.DecodeRuneInString(w)
	return strings.IndexFunc(w[size:], unicode.IsUpper) >= 0
}

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToTitle(r)) + w[size:]
}

func fold(w string) string {
	return cases.Fold().String(w)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[fold(w)] = true
	}
	return set
}
