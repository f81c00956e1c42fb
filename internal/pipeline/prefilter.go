package pipeline

import (
	"fmt"
	"regexp"

	"github.com/tiagobortoncello/assistente-rt/internal/model"
)

// Rule is one pre-filter entry: when its pattern matches the document
// text, the suggestion oracle is skipped and the rule's fixed terms are
// used as the candidate set.
type Rule struct {
	Name    string
	Terms   []string
	pattern *regexp.Regexp
}

// Prefilter holds the compiled pre-filter rules. It is a business-rule
// layer on top of the term pipeline: a matched rule replaces the oracle
// call and its fixed terms skip vocabulary validation, but specificity
// filtering still applies.
type Prefilter struct {
	rules []Rule
}

// defaultRules cover phrasings so formulaic that calling the oracle is
// a waste: the indexing term is fully determined by the text.
var defaultRules = []model.PrefilterRule{
	{
		Name:    "utilidade-publica",
		Pattern: `(?i)declara\s+de\s+utilidade\s+p[uú]blica`,
		Terms:   []string{"Utilidade Pública"},
	},
}

// NewPrefilter compiles the configured rules. With no rules configured
// the built-in set is used; a disabled prefilter matches nothing.
func NewPrefilter(cfg model.PrefilterConfig) (*Prefilter, error) {
	if !cfg.Enabled {
		return &Prefilter{}, nil
	}

	src := cfg.Rules
	if len(src) == 0 {
		src = defaultRules
	}

	p := &Prefilter{rules: make([]Rule, 0, len(src))}
	for _, r := range src {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("regra de pré-filtro %q inválida: %w", r.Name, err)
		}
		p.rules = append(p.rules, Rule{Name: r.Name, Terms: r.Terms, pattern: re})
	}
	return p, nil
}

// Match returns the first rule whose pattern matches the text.
func (p *Prefilter) Match(text string) (Rule, bool) {
	for _, r := range p.rules {
		if r.pattern.MatchString(text) {
			return r, true
		}
	}
	return Rule{}, false
}
