package inflector

import (
	"regexp"

	"github.com/pkg/errors"
)

type RuleType int

const (
	Plural RuleType = iota
	Singular
)

func (t RuleType) String() string {
	if t == Singular {
		return "singular"
	}
	return "plural"
}

// Rule rewrites words matching Pattern into Replacement.
// Replacement may refer to capture groups as ${1}, ${2}.
type Rule struct {
	Pattern     string `yaml:"pattern" toml:"pattern"`
	Replacement string `yaml:"replacement" toml:"replacement"`
}

type Irregular struct {
	Singular string `yaml:"singular" toml:"singular"`
	Plural   string `yaml:"plural" toml:"plural"`
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

func (r *compiledRule) inflect(word string) (string, bool) {
	if !r.re.MatchString(word) {
		return "", false
	}
	return r.re.ReplaceAllString(word, r.Replacement), true
}

func compileRules(tpe RuleType, rules []Rule) ([]*compiledRule, error) {
	compiled := make([]*compiledRule, 0, len(rules))

	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s rule %q", tpe, r.Pattern)
		}
		compiled = append(compiled, &compiledRule{Rule: r, re: re})
	}

	return compiled, nil
}

// compileUncountable anchors every pattern to the whole word.
func compileUncountable(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid uncountable pattern %q", p)
		}
		compiled = append(compiled, re)
	}

	return compiled, nil
}
