package textx_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"

	testingx "github.com/octohelm/x/testing"
	"github.com/octohelm/x/testing/bdd"

	"github.com/octohelm/textx/pkg/textx"
)

func Example() {
	t := textx.MustOf("  hellö world  ")

	fmt.Println(t.Trim().Slice(1, 9).String())
	fmt.Println(textx.MustOf("hellö world").LimitCharacters(6))
	fmt.Println(textx.MustOf("what is AT&T's problem?").Title())
	fmt.Println(textx.MustOf("Crème Brûlée, s'il vous plaît").Slug())

	// Output:
	// ellö worl
	// hellö…
	// What Is AT&T's Problem?
	// creme-brulee-s-il-vous-plait
}

func TestOf(t *testing.T) {
	b := bdd.FromT(t)

	b.When("input is valid UTF-8", func(b bdd.T) {
		txt, err := textx.Of("hellö")

		b.Then("owns the text",
			bdd.NoError(err),
			bdd.Equal("hellö", txt.String()),
			bdd.Equal(5, txt.Length()),
		)
	})

	b.When("input is broken UTF-8", func(b bdd.T) {
		_, err := textx.Of("ab\xffcd")

		invalid := &textx.InvalidEncodingError{}
		ok := errors.As(err, &invalid)

		b.Then("fails with the offending offset",
			bdd.Equal(true, ok),
			bdd.Equal(2, invalid.Offset),
		)
	})

	t.Run("MustOf panics on broken input", func(t *testing.T) {
		defer func() {
			testingx.Expect(t, recover() != nil, testingx.Be(true))
		}()
		textx.MustOf("\xc3")
	})
}

func TestSlice(t *testing.T) {
	for _, c := range []struct {
		start, length int
		expect        string
	}{
		{1, 9, "ellö worl"},
		{0, 11, "hellö world"},
		{0, 100, "hellö world"},
		{4, 1, "ö"},
		{-5, 3, "wor"},
		{-50, 5, "hellö"},
		{3, -2, "lö wor"},
		{11, 2, ""},
		{20, 2, ""},
		{5, -8, ""},
	} {
		t.Run(fmt.Sprintf("%d,%d", c.start, c.length), func(t *testing.T) {
			testingx.Expect(t, textx.MustOf("hellö world").Slice(c.start, c.length).String(), testingx.Be(c.expect))
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"a", "hellö world", "日本語テキスト", "é👍🏽"} {
			txt := textx.MustOf(s)
			testingx.Expect(t, txt.Slice(0, txt.Length()).String(), testingx.Be(s))
		}
	})
}

func TestChunk(t *testing.T) {
	testingx.Expect(t, textx.MustOf("hellö world").Chunk(2), testingx.Equal([]string{"he", "ll", "ö ", "wo", "rl", "d"}))
	testingx.Expect(t, textx.MustOf("hellö").Chunk(0), testingx.HaveLen[[]string](0))
	testingx.Expect(t, textx.MustOf("").Chunk(3), testingx.HaveLen[[]string](0))

	t.Run("never splits a code point", func(t *testing.T) {
		for _, s := range []string{"hellö world", "日本語テキスト", "ab👍🏽cd€"} {
			for size := 1; size <= 5; size++ {
				chunks := textx.MustOf(s).Chunk(size)

				testingx.Expect(t, strings.Join(chunks, ""), testingx.Be(s))

				for i, c := range chunks {
					testingx.Expect(t, utf8.ValidString(c), testingx.Be(true))
					if i < len(chunks)-1 {
						testingx.Expect(t, utf8.RuneCountInString(c), testingx.Be(size))
					}
				}
			}
		}
	})
}

func TestBeforeAfter(t *testing.T) {
	s := "hellö world"

	testingx.Expect(t, textx.MustOf(s).Before("ö").String(), testingx.Be("hell"))
	testingx.Expect(t, textx.MustOf(s).After("ö").String(), testingx.Be(" world"))
	testingx.Expect(t, textx.MustOf(s).Before("z").String(), testingx.Be(s))
	testingx.Expect(t, textx.MustOf(s).After("z").String(), testingx.Be(s))
	testingx.Expect(t, textx.MustOf(s).After("").String(), testingx.Be(s))
	testingx.Expect(t, textx.MustOf(s).BeforeLast("o").String(), testingx.Be("hellö w"))
	testingx.Expect(t, textx.MustOf(s).AfterLast("o").String(), testingx.Be("rld"))
	testingx.Expect(t, textx.MustOf(s).IndexOf("w"), testingx.Be(6))
	testingx.Expect(t, textx.MustOf(s).IndexOf("z"), testingx.Be(-1))
}

func TestStartWithFinishWith(t *testing.T) {
	for _, s := range []string{"", "path", "/path/", "//"} {
		for _, p := range []string{"/", "ö", "ab"} {
			once := textx.MustOf(s).StartWith(p).String()
			twice := textx.MustOf(s).StartWith(p).StartWith(p).String()

			testingx.Expect(t, twice, testingx.Be(once))
			testingx.Expect(t, strings.HasPrefix(once, p), testingx.Be(true))

			once = textx.MustOf(s).FinishWith(p).String()
			twice = textx.MustOf(s).FinishWith(p).FinishWith(p).String()

			testingx.Expect(t, twice, testingx.Be(once))
			testingx.Expect(t, strings.HasSuffix(once, p), testingx.Be(true))
		}
	}

	testingx.Expect(t, textx.MustOf("path").StartWith("/").FinishWith("/").String(), testingx.Be("/path/"))
	testingx.Expect(t, textx.MustOf("/path/").StartWith("/").FinishWith("/").String(), testingx.Be("/path/"))
}

func TestReplace(t *testing.T) {
	s := "a-b-a-b"

	testingx.Expect(t, textx.MustOf(s).Replace("a", "ö").String(), testingx.Be("ö-b-ö-b"))
	testingx.Expect(t, textx.MustOf(s).ReplaceFirst("a", "x").String(), testingx.Be("x-b-a-b"))
	testingx.Expect(t, textx.MustOf(s).ReplaceLast("a", "x").String(), testingx.Be("a-b-x-b"))
	testingx.Expect(t, textx.MustOf(s).ReplaceLast("z", "x").String(), testingx.Be(s))
	testingx.Expect(t, textx.MustOf(s).Replace("", "x").String(), testingx.Be(s))
	testingx.Expect(t, textx.MustOf(s).Remove("-").String(), testingx.Be("abab"))
	testingx.Expect(t, textx.MustOf(s).RemoveFirst("b").String(), testingx.Be("a--a-b"))
	testingx.Expect(t, textx.MustOf(s).RemoveLast("b").String(), testingx.Be("a-b-a-"))
	testingx.Expect(t, textx.MustOf(s).Append("-", "c").Prepend("<").String(), testingx.Be("<a-b-a-b-c"))
}

func TestReplaceSub(t *testing.T) {
	testingx.Expect(t, textx.MustOf("hellö world").ReplaceSub("€", 1, 4).String(), testingx.Be("h€ world"))
	testingx.Expect(t, textx.MustOf("hellö world").ReplaceSub("X", -5, 5).String(), testingx.Be("hellö X"))
	testingx.Expect(t, textx.MustOf("hellö world").ReplaceSub("!", 20, 0).String(), testingx.Be("hellö world!"))
	testingx.Expect(t, textx.MustOf("hellö").ReplaceSub("-", 2, -10).String(), testingx.Be("he-llö"))
	testingx.Expect(t, textx.MustOf("hellö").ReplaceSub("\xff", 0, 1).String(), testingx.Be("\uFFFDellö"))
}

func TestTrimAndLimits(t *testing.T) {
	testingx.Expect(t, textx.MustOf(" \thellö\n ").Trim().String(), testingx.Be("hellö"))
	testingx.Expect(t, textx.MustOf("  hellö  ").TrimLeft().String(), testingx.Be("hellö  "))
	testingx.Expect(t, textx.MustOf("  hellö  ").TrimRight().String(), testingx.Be("  hellö"))

	testingx.Expect(t, textx.MustOf("hellö world").LimitCharacters(6).String(), testingx.Be("hellö…"))
	testingx.Expect(t, textx.MustOf("hellö world").LimitCharacters(7).String(), testingx.Be("hellö w…"))
	testingx.Expect(t, textx.MustOf("hellö world").LimitCharacters(11).String(), testingx.Be("hellö world"))
	testingx.Expect(t, textx.MustOf("hellö").LimitCharacters(100).String(), testingx.Be("hellö"))

	testingx.Expect(t, textx.MustOf("the quick brown fox").LimitWords(2).String(), testingx.Be("the quick…"))
	testingx.Expect(t, textx.MustOf("the quick brown fox").LimitWords(4).String(), testingx.Be("the quick brown fox"))
	testingx.Expect(t, textx.MustOf("  the quick  ").LimitWords(2).String(), testingx.Be("  the quick  "))
	testingx.Expect(t, textx.MustOf("the quick").LimitWords(0).String(), testingx.Be("…"))
}

func TestMatches(t *testing.T) {
	for _, c := range []struct {
		s, pattern string
		expect     bool
	}{
		{"foo/bar/baz", "foo*baz", true},
		{"foo/bar/baz", "*bar*", true},
		{"foo/bar/baz", "*", true},
		{"", "*", true},
		{"foobar", "foo*bar", true},
		{"hellö", "hell?", true},
		{"hellö", "hell", false},
		{"hellö", "*world", false},
	} {
		t.Run(c.s+" "+c.pattern, func(t *testing.T) {
			testingx.Expect(t, textx.MustOf(c.s).Matches(c.pattern), testingx.Be(c.expect))
		})
	}
}

func TestCase(t *testing.T) {
	testingx.Expect(t, textx.MustOf("hellö wörld").Upper().String(), testingx.Be("HELLÖ WÖRLD"))
	testingx.Expect(t, textx.MustOf("HELLÖ").Lower().String(), testingx.Be("hellö"))
	testingx.Expect(t, textx.MustOf("ölfass").UpperFirst().String(), testingx.Be("Ölfass"))
	testingx.Expect(t, textx.MustOf("hellö").Reverse().String(), testingx.Be("ölleh"))

	testingx.Expect(t, textx.MustOf("hello world").Camel().String(), testingx.Be("helloWorld"))
	testingx.Expect(t, textx.MustOf("Hellö wörld").Camel().String(), testingx.Be("hellöWörld"))
	testingx.Expect(t, textx.MustOf("hello_world").Studly().String(), testingx.Be("HelloWorld"))
	testingx.Expect(t, textx.MustOf("HelloWorld").Snake().String(), testingx.Be("hello_world"))
	testingx.Expect(t, textx.MustOf("hello World").Kebab().String(), testingx.Be("hello-world"))
	testingx.Expect(t, textx.MustOf("XMLHttpRequest").Kebab().String(), testingx.Be("xml-http-request"))

	testingx.Expect(t,
		textx.MustOf("i like to watch DVDs at home").Title("watch").String(),
		testingx.Be("I Like to watch DVDs at Home"),
	)
}

func TestASCIIAndSlug(t *testing.T) {
	testingx.Expect(t, textx.MustOf("Crème Brûlée").ASCII().String(), testingx.Be("Creme Brulee"))
	testingx.Expect(t, textx.MustOf("Straße Æther Łódź").ASCII().String(), testingx.Be("Strasse AEther Lodz"))
	testingx.Expect(t, textx.MustOf("日本ok").ASCII().String(), testingx.Be("ok"))

	testingx.Expect(t, textx.MustOf("Hellö Wörld! Ça va?").Slug().String(), testingx.Be("hello-world-ca-va"))
	testingx.Expect(t, textx.MustOf("  --Straße & Æther--  ").Slug().String(), testingx.Be("strasse-aether"))
	testingx.Expect(t, textx.MustOf("Hellö Wörld").SlugWith("_").String(), testingx.Be("hello_world"))
	testingx.Expect(t, textx.MustOf("日本").Slug().String(), testingx.Be(""))
}

func TestQueries(t *testing.T) {
	txt := textx.MustOf("hellö, big  world")

	testingx.Expect(t, txt.SplitWords(), testingx.Equal([]string{"hellö,", "big", "world"}))
	testingx.Expect(t, txt.Contains("big"), testingx.Be(true))
	testingx.Expect(t, txt.StartsWith("hellö"), testingx.Be(true))
	testingx.Expect(t, txt.EndsWith("world"), testingx.Be(true))
	testingx.Expect(t, txt.IsEmpty(), testingx.Be(false))

	combined := textx.MustOf("e\u0301te\u0301")
	testingx.Expect(t, combined.Length(), testingx.Be(5))
	testingx.Expect(t, combined.GraphemeLength(), testingx.Be(3))
}

func TestChaining(t *testing.T) {
	txt := textx.MustOf("  hellö world  ")
	clone := txt.Clone()

	got := txt.Trim().After("hellö").Trim().StartWith("/").FinishWith("/")

	testingx.Expect(t, got == txt, testingx.Be(true))
	testingx.Expect(t, got.String(), testingx.Be("/world/"))
	testingx.Expect(t, clone.String(), testingx.Be("  hellö world  "))
}
