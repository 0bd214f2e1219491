package similarity

import "sync"

// memoScorer caches scores for string pairs. Scoring is pure, so batch
// callers running many targets against one historical pool can layer this
// over any Scorer without changing results.
type memoScorer struct {
	inner Scorer

	mu    sync.RWMutex
	cache map[pairKey]float64
}

type pairKey struct {
	a, b string
}

// Memoized wraps a scorer with a concurrency-safe score cache. Keys are
// order-normalized so the cache preserves symmetry.
func Memoized(s Scorer) Scorer {
	return &memoScorer{
		inner: s,
		cache: make(map[pairKey]float64),
	}
}

func (m *memoScorer) Name() string { return m.inner.Name() }

func (m *memoScorer) Score(a, b string) float64 {
	key := pairKey{a, b}
	if b < a {
		key = pairKey{b, a}
	}

	m.mu.RLock()
	score, found := m.cache[key]
	m.mu.RUnlock()
	if found {
		return score
	}

	score = m.inner.Score(a, b)

	m.mu.Lock()
	m.cache[key] = score
	m.mu.Unlock()

	return score
}
