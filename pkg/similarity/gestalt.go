package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// gestaltScorer is the default algorithm: a sequence-alignment ratio that
// accumulates the longest matching blocks of the two strings (gestalt
// pattern matching). Whitespace is treated as junk so differing padding
// does not dominate the score.
type gestaltScorer struct{}

func (s *gestaltScorer) Name() string { return AlgorithmGestalt }

func (s *gestaltScorer) Score(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	switch {
	case a == b:
		return 1.0
	case a == "" || b == "":
		return 0.0
	}
	// The matcher treats junk in its second sequence specially; fix the
	// operand order so Score(a,b) == Score(b,a) by construction.
	if a > b {
		a, b = b, a
	}
	m := difflib.NewMatcherWithJunk(runes(a), runes(b), true, isSpace)
	return clamp(m.Ratio())
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// runes splits a string into per-rune elements for the sequence matcher.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
