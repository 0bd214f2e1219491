// Package similarity computes bounded similarity scores between narration
// strings.
//
// Every Scorer obeys the same contract: scores live in [0,1], scoring is
// symmetric and case-insensitive, identical strings score 1.0, two empty
// strings score 1.0 by convention, and a non-empty string against an empty
// one scores 0.0. Algorithms are a small closed set selected by name, so the
// completion engine never branches on algorithm internals.
package similarity

import "fmt"

// Scorer computes the similarity of two strings.
//
// Implementations must be safe for concurrent use; the completion engine
// scores candidate pools in parallel.
type Scorer interface {
	// Score returns a similarity in [0,1]; 1.0 means the strings are
	// identical up to case.
	Score(a, b string) float64

	// Name returns the algorithm name used in configuration.
	Name() string
}

// Algorithm names accepted by New.
const (
	AlgorithmGestalt     = "gestalt"
	AlgorithmLevenshtein = "levenshtein"
)

// New returns the scorer registered under name. The set of algorithms is
// closed; an unknown name is an error.
func New(name string) (Scorer, error) {
	switch name {
	case AlgorithmGestalt:
		return &gestaltScorer{}, nil
	case AlgorithmLevenshtein:
		return &levenshteinScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown similarity algorithm %q", name)
	}
}
