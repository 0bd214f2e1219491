// Package normalize rewrites narration text through an ordered list of
// pattern rules before similarity comparison.
//
// Bank narrations carry high-entropy substrings (dates, confirmation codes,
// reference numbers) that defeat text matching. Rules collapse those to
// fixed placeholders, e.g. `2016-03-27` -> `XXXX-XX-XX`, so that otherwise
// identical narrations compare as identical.
package normalize

import (
	"fmt"
	"regexp"
)

// Rule is one pattern/replacement pair. Pattern is a Go regular expression
// (a plain literal is the degenerate case); Replacement may reference
// capture groups with $1, $2, ...
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Pipeline is a compiled, ordered rule set. Safe for concurrent use.
type Pipeline struct {
	rules []compiledRule
}

// Compile compiles every rule eagerly, in declaration order. An invalid
// pattern fails the whole compile with an error naming the offending rule;
// nothing is compiled lazily per transaction.
func Compile(rules []Rule) (*Pipeline, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid pattern %q: %w", i, r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, replacement: r.Replacement})
	}
	return &Pipeline{rules: compiled}, nil
}

// Apply runs every rule in declaration order, each performing a replace-all
// over the previous rule's output. A rule whose pattern never matches is a
// no-op. The input is never mutated and the result is a pure function of
// (text, rules).
func (p *Pipeline) Apply(text string) string {
	for _, r := range p.rules {
		text = r.re.ReplaceAllString(text, r.replacement)
	}
	return text
}

// Len returns the number of rules in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.rules)
}
