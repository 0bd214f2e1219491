package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/ledger-complete/pkg/ledger"
)

func matchCandidate(txn *ledger.Transaction, role Role, raw, adjusted float64, seq int) MatchCandidate {
	return MatchCandidate{Transaction: txn, Role: role, Score: raw, Adjusted: adjusted, seq: seq}
}

func TestRank_DropsBelowThreshold(t *testing.T) {
	a := txn(day(2025, 1, 10), "A")
	b := txn(day(2025, 1, 11), "B")

	ranked := rank([]MatchCandidate{
		matchCandidate(&a, RolePrimary, 0.9, 0.9, 0),
		matchCandidate(&b, RolePrimary, 0.3, 0.3, 1),
	}, 0.4)

	require.Len(t, ranked, 1)
	assert.Equal(t, "A", ranked[0].Transaction.Narration)
}

func TestRank_AdjustedScoreDescending(t *testing.T) {
	a := txn(day(2025, 1, 10), "PRIMARY LOW")
	b := txn(day(2025, 1, 10), "ALTERNATE HIGH")

	ranked := rank([]MatchCandidate{
		matchCandidate(&a, RolePrimary, 0.5, 0.5, 0),
		matchCandidate(&b, RoleAlternate, 0.9, 0.72, 1),
	}, 0.4)

	require.Len(t, ranked, 2)
	assert.Equal(t, "ALTERNATE HIGH", ranked[0].Transaction.Narration)
	assert.Equal(t, "PRIMARY LOW", ranked[1].Transaction.Narration)
}

func TestRank_PrimaryBeatsAlternateAtEqualRawScore(t *testing.T) {
	a := txn(day(2025, 1, 10), "PRIMARY")
	b := txn(day(2025, 1, 10), "ALTERNATE")

	ranked := rank([]MatchCandidate{
		matchCandidate(&b, RoleAlternate, 0.9, 0.72, 0),
		matchCandidate(&a, RolePrimary, 0.9, 0.9, 1),
	}, 0.4)

	require.Len(t, ranked, 2)
	assert.Equal(t, "PRIMARY", ranked[0].Transaction.Narration)
	assert.Greater(t, ranked[0].Adjusted, ranked[1].Adjusted)
}

func TestRank_TieBreakNewerDateFirst(t *testing.T) {
	older := txn(day(2025, 1, 10), "OLDER")
	newer := txn(day(2025, 3, 1), "NEWER")

	ranked := rank([]MatchCandidate{
		matchCandidate(&older, RolePrimary, 1.0, 1.0, 0),
		matchCandidate(&newer, RolePrimary, 1.0, 1.0, 1),
	}, 0.4)

	require.Len(t, ranked, 2)
	assert.Equal(t, "NEWER", ranked[0].Transaction.Narration)
}

func TestRank_TieBreakEntryOrderAscending(t *testing.T) {
	first := txn(day(2025, 1, 10), "FIRST")
	second := txn(day(2025, 1, 10), "SECOND")

	ranked := rank([]MatchCandidate{
		matchCandidate(&second, RolePrimary, 1.0, 1.0, 7),
		matchCandidate(&first, RolePrimary, 1.0, 1.0, 2),
	}, 0.4)

	require.Len(t, ranked, 2)
	assert.Equal(t, "FIRST", ranked[0].Transaction.Narration)
	assert.Equal(t, "SECOND", ranked[1].Transaction.Narration)
}

func TestRank_Deterministic(t *testing.T) {
	a := txn(day(2025, 1, 10), "A")
	b := txn(day(2025, 1, 10), "B")
	c := txn(day(2025, 2, 1), "C")
	cands := []MatchCandidate{
		matchCandidate(&a, RolePrimary, 0.8, 0.8, 0),
		matchCandidate(&b, RoleAlternate, 1.0, 0.8, 1),
		matchCandidate(&c, RolePrimary, 0.8, 0.8, 2),
	}

	first := rank(append([]MatchCandidate(nil), cands...), 0.4)
	for i := 0; i < 10; i++ {
		again := rank(append([]MatchCandidate(nil), cands...), 0.4)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Transaction.Narration, again[j].Transaction.Narration)
		}
	}
}
