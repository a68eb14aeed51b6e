package camelcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	LowerSnakeCase = makeCase("_", each(lower))
	UpperSnakeCase = makeCase("_", each(upper))
	LowerKebabCase = makeCase("-", each(lower))
	UpperKebabCase = makeCase("-", each(upper))
	LowerCamelCase = makeCase("", func(w string, i int) string {
		if i == 0 {
			return lower(w)
		}
		return title(w)
	})
	UpperCamelCase = makeCase("", each(title))
)

func lower(w string) string {
	return cases.Lower(language.Und).String(w)
}

func upper(w string) string {
	return cases.Upper(language.Und).String(w)
}

func title(w string) string {
	return cases.Title(language.Und).String(w)
}

func each(transWord func(w string) string) func(w string, i int) string {
	return func(w string, i int) string {
		return transWord(w)
	}
}

func makeCase(linker string, transWord func(w string, i int) string) func(s string) string {
	return func(s string) string {
		var b strings.Builder

		for idx, word := range Words(s) {
			if idx > 0 {
				b.WriteString(linker)
			}
			b.WriteString(transWord(word, idx))
		}

		return b.String()
	}
}
