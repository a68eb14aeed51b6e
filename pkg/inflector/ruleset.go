package inflector

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RuleSet is the serializable form of the tables an Inflector holds.
type RuleSet struct {
	Plural      []Rule      `yaml:"plural" toml:"plural"`
	Singular    []Rule      `yaml:"singular" toml:"singular"`
	Irregular   []Irregular `yaml:"irregular" toml:"irregular"`
	Uncountable []string    `yaml:"uncountable" toml:"uncountable"`

	// UncountablePatterns hold regular expressions matching whole uncountable
	// words, like `.*fish`.
	UncountablePatterns []string `yaml:"uncountable_patterns" toml:"uncountable_patterns"`
}

// Validate compiles every rule and pattern of rs.
func (rs RuleSet) Validate() error {
	if _, err := compileRules(Plural, rs.Plural); err != nil {
		return err
	}
	if _, err := compileRules(Singular, rs.Singular); err != nil {
		return err
	}
	_, err := compileUncountable(rs.UncountablePatterns)
	return err
}

func (rs RuleSet) clone() RuleSet {
	return RuleSet{
		Plural:      append([]Rule(nil), rs.Plural...),
		Singular:    append([]Rule(nil), rs.Singular...),
		Irregular:   append([]Irregular(nil), rs.Irregular...),
		Uncountable: append([]string(nil), rs.Uncountable...),

		UncountablePatterns: append([]string(nil), rs.UncountablePatterns...),
	}
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the Format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Errorf("unsupported rule file %q", path)
}

// ParseRuleSet decodes and validates a rule set.
func ParseRuleSet(data []byte, format Format) (RuleSet, error) {
	rs := RuleSet{}

	switch format {
	case FormatYAML:
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		if err := d.Decode(&rs); err != nil {
			return rs, errors.Wrap(err, "decode yaml rules")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &rs)
		if err != nil {
			return rs, errors.Wrap(err, "decode toml rules")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return rs, errors.Errorf("unknown toml keys %v", undecoded)
		}
	default:
		return rs, errors.Errorf("unsupported format %q", format)
	}

	if err := rs.Validate(); err != nil {
		return rs, err
	}

	return rs, nil
}

func LoadRuleSet(path string) (RuleSet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return RuleSet{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, errors.Wrapf(err, "read %s", path)
	}

	rs, err := ParseRuleSet(data, format)
	if err != nil {
		return rs, errors.WithMessage(err, path)
	}
	return rs, nil
}

//go:embed english.yaml
var englishRules []byte

var english = sync.OnceValues(func() (RuleSet, error) {
	return ParseRuleSet(englishRules, FormatYAML)
})

// English returns a copy of the built-in English rule set.
func English() RuleSet {
	rs, err := english()
	if err != nil {
		panic(err)
	}
	return rs.clone()
}
