package completion

import (
	"sort"

	"github.com/eshaffer321/ledger-complete/pkg/ledger"
)

// MatchCandidate is one scored historical transaction. Adjusted is the raw
// similarity multiplied by the alternate discount when the match came from
// an alternate account; primary matches keep their raw score.
type MatchCandidate struct {
	Transaction *ledger.Transaction
	Role        Role
	Score       float64 // raw similarity in [0,1]
	Adjusted    float64 // score after the role multiplier

	origin string
	seq    int
}

// rank drops candidates whose adjusted score falls below min and sorts the
// rest into a total order: adjusted score descending, then transaction date
// descending, then entry order ascending. The entry order is unique, so two
// runs over the same inputs always agree.
func rank(cands []MatchCandidate, min float64) []MatchCandidate {
	kept := make([]MatchCandidate, 0, len(cands))
	for _, c := range cands {
		if c.Adjusted >= min {
			kept = append(kept, c)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Adjusted != b.Adjusted {
			return a.Adjusted > b.Adjusted
		}
		if !a.Transaction.Date.Equal(b.Transaction.Date) {
			return a.Transaction.Date.After(b.Transaction.Date)
		}
		return a.seq < b.seq
	})
	return kept
}
