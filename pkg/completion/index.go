package completion

import (
	"github.com/eshaffer321/ledger-complete/pkg/ledger"
)

// Role tags where a candidate's history bucket came from.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleAlternate Role = "alternate"
)

// index buckets complete historical transactions by every account their
// postings touch. It is rebuilt per completion run from the caller's
// snapshot; given pools of hundreds to low thousands of transactions,
// recomputation is cheaper than keeping a persistent index correct.
type index struct {
	buckets map[string][]indexEntry
}

type indexEntry struct {
	txn *ledger.Transaction
	seq int // position in the caller's history slice, the entry order
}

// candidate is one historical transaction pulled for a target, tagged with
// the bucket account that produced it and its role.
type candidate struct {
	txn    *ledger.Transaction
	seq    int
	origin string
	role   Role
}

// buildIndex filters the history down to complete transactions and buckets
// them by account. Incomplete entries are simply not training data and are
// skipped. An entry that passes the completeness predicate but carries a
// malformed posting is an input error.
func buildIndex(history []ledger.Transaction) (*index, error) {
	ix := &index{buckets: make(map[string][]indexEntry)}
	for i := range history {
		txn := &history[i]
		if !txn.Complete() {
			continue
		}
		seen := make(map[string]bool, len(txn.Postings))
		for _, p := range txn.Postings {
			if p.Account == "" {
				return nil, inputErrorf("history entry %d: posting with empty account", i)
			}
			if p.Amount.Currency == "" {
				return nil, inputErrorf("history entry %d: posting on %s has amount without currency", i, p.Account)
			}
			if seen[p.Account] {
				continue
			}
			seen[p.Account] = true
			ix.buckets[p.Account] = append(ix.buckets[p.Account], indexEntry{txn: txn, seq: i})
		}
	}
	return ix, nil
}

// candidatesFor returns the primary account's bucket followed by each
// alternate's, in the caller's alternate order. A transaction already
// produced under an earlier role or bucket is not produced again.
func (ix *index) candidatesFor(account string, alternates []string) []candidate {
	var out []candidate
	seen := make(map[int]bool)
	add := func(bucket string, role Role) {
		for _, e := range ix.buckets[bucket] {
			if seen[e.seq] {
				continue
			}
			seen[e.seq] = true
			out = append(out, candidate{txn: e.txn, seq: e.seq, origin: bucket, role: role})
		}
	}
	add(account, RolePrimary)
	for _, alt := range alternates {
		add(alt, RoleAlternate)
	}
	return out
}
