package similarity

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// levenshteinScorer is the edit-distance alternate. It uses the package's
// own ratio, which with the default costs is bounded to [0,1] and symmetric.
type levenshteinScorer struct{}

func (s *levenshteinScorer) Name() string { return AlgorithmLevenshtein }

func (s *levenshteinScorer) Score(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	switch {
	case a == b:
		return 1.0
	case a == "" || b == "":
		return 0.0
	}
	return clamp(levenshtein.RatioForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions))
}
