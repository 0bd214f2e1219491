package completion

import (
	"maps"

	"github.com/shopspring/decimal"

	"github.com/eshaffer321/ledger-complete/pkg/ledger"
)

// proposePostings derives the completed posting set from the winning match:
// the target's own known leg, followed by copies of the match's
// counter-postings with amounts substituted for the target.
//
// A single counter-posting simply receives the negation of the known
// amount. A split (multiple counter-postings) is scaled by the ratio of the
// target's known amount to the match's known amount, preserving the
// relative proportions. Scaled amounts are rounded to the known amount's
// decimal places and any residual from rounding is pushed onto the largest
// counter-posting so the legs still balance exactly.
func proposePostings(known *ledger.Posting, best MatchCandidate) ([]ledger.Posting, error) {
	matched := best.Transaction

	var matchedKnown *ledger.Posting
	var counters []ledger.Posting
	for i := range matched.Postings {
		p := &matched.Postings[i]
		if p.Account == best.origin {
			if matchedKnown == nil {
				matchedKnown = p
			}
			continue
		}
		counters = append(counters, *p)
	}
	if matchedKnown == nil || len(counters) == 0 {
		return nil, inputErrorf("matched transaction has no counter-postings for account %s", best.origin)
	}

	out := make([]ledger.Posting, 0, len(counters)+1)
	knownAmount := *known.Amount
	out = append(out, ledger.Posting{
		Account:  known.Account,
		Amount:   &knownAmount,
		Metadata: maps.Clone(known.Metadata),
	})

	if len(counters) == 1 {
		amount := known.Amount.Neg()
		out = append(out, ledger.Posting{
			Account:  counters[0].Account,
			Amount:   &amount,
			Metadata: maps.Clone(counters[0].Metadata),
		})
		return out, nil
	}

	// Split: scale every counter-posting by targetKnown / matchedKnown.
	if matchedKnown.Amount.IsZero() {
		return nil, inputErrorf("matched transaction known leg on %s has zero amount, cannot scale split", best.origin)
	}
	ratio := known.Amount.Value.Div(matchedKnown.Amount.Value)
	places := int32(0)
	if exp := known.Amount.Value.Exponent(); exp < 0 {
		places = -exp
	}

	scaled := make([]ledger.Amount, len(counters))
	sum := decimal.Zero
	for i, c := range counters {
		value := c.Amount.Value.Mul(ratio).Round(places)
		scaled[i] = ledger.Amount{Value: value, Currency: known.Amount.Currency}
		sum = sum.Add(value)
	}

	// Largest-remainder fixup: the counter legs must total the negation of
	// the known leg.
	if residual := known.Amount.Value.Neg().Sub(sum); !residual.IsZero() {
		largest := 0
		for i := 1; i < len(scaled); i++ {
			if scaled[i].Value.Abs().GreaterThan(scaled[largest].Value.Abs()) {
				largest = i
			}
		}
		scaled[largest].Value = scaled[largest].Value.Add(residual)
	}

	for i, c := range counters {
		amount := scaled[i]
		out = append(out, ledger.Posting{
			Account:  c.Account,
			Amount:   &amount,
			Metadata: maps.Clone(c.Metadata),
		})
	}
	return out, nil
}
