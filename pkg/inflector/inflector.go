package inflector

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/go-courier/logr"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/octohelm/textx/internal/logging"
)

type Option func(i *Inflector)

func WithLogger(l logr.Logger) Option {
	return func(i *Inflector) {
		i.logger = l
	}
}

// WithRuleSet registers rs on creation, it panics when a rule does not compile.
func WithRuleSet(rs RuleSet) Option {
	return func(i *Inflector) {
		i.MustAddRuleSet(rs)
	}
}

// New creates an Inflector without any rule.
func New(opts ...Option) *Inflector {
	i := &Inflector{
		irregular:     map[string]string{},
		inverse:       map[string]string{},
		uncountable:   map[string]bool{},
		pluralCache:   cmap.New[string](),
		singularCache: cmap.New[string](),
		logger:        logging.Discard(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// NewEnglish creates an Inflector loaded with the English rule set.
func NewEnglish(opts ...Option) *Inflector {
	i := New(opts...)
	i.MustAddRuleSet(English())
	return i
}

// Inflector owns ordered plural and singular rules, irregular pairs,
// uncountable words and the caches of rule based results.
//
// Rules registered later have lower priority. Cached results are never
// invalidated, so register rules before inflecting.
// An Inflector is safe for concurrent use.
type Inflector struct {
	rw sync.RWMutex

	plural      []*compiledRule
	singular    []*compiledRule
	irregular   map[string]string
	inverse     map[string]string
	uncountable map[string]bool

	// whole word patterns, checked after uncountable
	uncountablePatterns []*regexp.Regexp

	pluralCache   cmap.ConcurrentMap[string, string]
	singularCache cmap.ConcurrentMap[string, string]

	logger logr.Logger
}

func (i *Inflector) AddPluralRules(rules ...Rule) error {
	return i.addRules(Plural, rules)
}

func (i *Inflector) AddSingularRules(rules ...Rule) error {
	return i.addRules(Singular, rules)
}

func (i *Inflector) addRules(tpe RuleType, rules []Rule) error {
	compiled, err := compileRules(tpe, rules)
	if err != nil {
		i.logger.Warn(err)
		return err
	}

	i.rw.Lock()
	defer i.rw.Unlock()

	i.appendRules(tpe, compiled)

	return nil
}

func (i *Inflector) appendRules(tpe RuleType, compiled []*compiledRule) {
	if tpe == Plural {
		i.plural = append(i.plural, compiled...)
	} else {
		i.singular = append(i.singular, compiled...)
	}

	i.logger.WithValues("type", tpe.String()).Debug("registered %d rules", len(compiled))
}

func (i *Inflector) AddIrregular(items ...Irregular) {
	i.rw.Lock()
	defer i.rw.Unlock()

	i.addIrregular(items)
}

func (i *Inflector) addIrregular(items []Irregular) {
	for _, item := range items {
		singular, plural := lower(item.Singular), lower(item.Plural)
		i.irregular[singular] = plural
		i.inverse[plural] = singular
	}
}

func (i *Inflector) AddUncountable(words ...string) {
	i.rw.Lock()
	defer i.rw.Unlock()

	i.addUncountable(words)
}

func (i *Inflector) addUncountable(words []string) {
	for _, w := range words {
		i.uncountable[lower(w)] = true
	}
}

// AddUncountablePatterns registers regular expressions matching whole
// uncountable words, like `.*fish`.
func (i *Inflector) AddUncountablePatterns(patterns ...string) error {
	compiled, err := compileUncountable(patterns)
	if err != nil {
		i.logger.Warn(err)
		return err
	}

	i.rw.Lock()
	defer i.rw.Unlock()

	i.uncountablePatterns = append(i.uncountablePatterns, compiled...)

	return nil
}

func (i *Inflector) isUncountable(word string) bool {
	if i.uncountable[word] {
		return true
	}
	for _, re := range i.uncountablePatterns {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// AddRuleSet registers every table of rs.
// Nothing is registered when one of its rules does not compile.
func (i *Inflector) AddRuleSet(rs RuleSet) error {
	plural, err := compileRules(Plural, rs.Plural)
	if err != nil {
		i.logger.Warn(err)
		return err
	}

	singular, err := compileRules(Singular, rs.Singular)
	if err != nil {
		i.logger.Warn(err)
		return err
	}

	patterns, err := compileUncountable(rs.UncountablePatterns)
	if err != nil {
		i.logger.Warn(err)
		return err
	}

	i.rw.Lock()
	defer i.rw.Unlock()

	i.appendRules(Plural, plural)
	i.appendRules(Singular, singular)
	i.addIrregular(rs.Irregular)
	i.addUncountable(rs.Uncountable)
	i.uncountablePatterns = append(i.uncountablePatterns, patterns...)

	return nil
}

func (i *Inflector) MustAddRuleSet(rs RuleSet) {
	if err := i.AddRuleSet(rs); err != nil {
		panic(err)
	}
}

// AddDefaultRules registers the English rule set after the rules already
// present, so rules added before take precedence.
func (i *Inflector) AddDefaultRules() error {
	return i.AddRuleSet(English())
}

// AddRuleFile registers the rule set stored at path.
func (i *Inflector) AddRuleFile(ctx context.Context, path string) error {
	_, l := i.logger.Start(ctx, "AddRuleFile", slog.String("path", path))
	defer l.End()

	rs, err := LoadRuleSet(path)
	if err != nil {
		l.Error(err)
		return err
	}

	if err := i.AddRuleSet(rs); err != nil {
		return err
	}

	l.Info("loaded %d plural and %d singular rules", len(rs.Plural), len(rs.Singular))

	return nil
}

// Word binds s, lowercased, to i.
func (i *Inflector) Word(s string) Word {
	return Word{word: lower(s), inflector: i}
}

func (i *Inflector) Pluralize(s string) string {
	return i.Word(s).Pluralize()
}

func (i *Inflector) Singularize(s string) string {
	return i.Word(s).Singularize()
}

func (i *Inflector) IsUncountable(s string) bool {
	return i.Word(s).IsUncountable()
}

func (i *Inflector) inflect(tpe RuleType, word string) string {
	cache := i.pluralCache
	if tpe == Singular {
		cache = i.singularCache
	}

	if inflected, ok := cache.Get(word); ok {
		return inflected
	}

	i.rw.RLock()
	defer i.rw.RUnlock()

	if i.isUncountable(word) {
		return word
	}

	rules, forms, targets := i.plural, i.irregular, i.inverse
	if tpe == Singular {
		rules, forms, targets = i.singular, i.inverse, i.irregular
	}

	if inflected, ok := forms[word]; ok {
		return inflected
	}

	if _, ok := targets[word]; ok {
		return word
	}

	for _, r := range rules {
		if inflected, ok := r.inflect(word); ok {
			cache.Set(word, inflected)
			return inflected
		}
	}

	return word
}

// Word is a lowercased word bound to the Inflector holding its rules.
type Word struct {
	word      string
	inflector *Inflector
}

func (w Word) String() string {
	return w.word
}

func (w Word) IsUncountable() bool {
	w.inflector.rw.RLock()
	defer w.inflector.rw.RUnlock()

	return w.inflector.isUncountable(w.word)
}

// Pluralize returns the plural form: cached result, uncountable word,
// irregular pair, first matching plural rule or the word itself.
func (w Word) Pluralize() string {
	return w.inflector.inflect(Plural, w.word)
}

// Singularize is the inverse of Pluralize.
func (w Word) Singularize() string {
	return w.inflector.inflect(Singular, w.word)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
