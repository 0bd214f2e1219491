// Package completion proposes balancing postings for freshly imported,
// incomplete transactions by analogy with the most similar previously
// recorded transactions.
//
// The engine is a pure function of its inputs: it performs no I/O, keeps no
// state between calls, and never mutates caller data. One call either
// returns a Proposal, returns nil when no candidate clears the similarity
// threshold, or errors before producing any output.
package completion

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/eshaffer321/ledger-complete/pkg/ledger"
	"github.com/eshaffer321/ledger-complete/pkg/normalize"
	"github.com/eshaffer321/ledger-complete/pkg/similarity"
)

// Proposal is the result of one successful completion call. It carries the
// full ranked candidate list, not just the winner, so a caller can present
// alternatives to a human reviewer. Proposals are ephemeral and never
// persisted by the engine.
type Proposal struct {
	Target     *ledger.Transaction
	Candidates []MatchCandidate // ranked, best first
	Postings   []ledger.Posting // proposed completed posting set
	Tags       []string         // tags copied from the winning match
	Confidence float64          // the winner's adjusted score
}

// Engine runs the completion pipeline. Safe for concurrent use; each
// Complete call works on its own snapshot of the inputs.
type Engine struct {
	cfg      Config
	pipeline *normalize.Pipeline
	scorer   similarity.Scorer
	logger   *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. The engine only emits
// debug-level records; by default everything is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithScorer injects a scorer implementation directly, bypassing the
// algorithm registry. Config.Algorithm is ignored when set.
func WithScorer(s similarity.Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// NewEngine validates the configuration eagerly and builds the engine.
// Every configuration problem surfaces here as ErrConfig, before any
// transaction is processed.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pipeline, err := normalize.Compile(cfg.Rules)
	if err != nil {
		return nil, configErrorf("%v", err)
	}

	e := &Engine{
		cfg:      cfg,
		pipeline: pipeline,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scorer == nil {
		scorer, err := similarity.New(cfg.Algorithm)
		if err != nil {
			return nil, configErrorf("%v", err)
		}
		e.scorer = scorer
	}
	return e, nil
}

// Complete proposes postings for target by analogy with history.
//
// The pipeline is a strict linear sequence: normalize the target narration,
// collect candidates for the known leg's account and its configured
// alternates, score every candidate, rank, then either derive postings from
// the winner or return (nil, nil) when nothing clears MinSimilarity.
// Scoring runs in parallel but lands by index, and the final ranking
// re-imposes a deterministic order, so results never depend on scheduling.
func (e *Engine) Complete(ctx context.Context, target ledger.Transaction, history []ledger.Transaction) (*Proposal, error) {
	if target.Complete() {
		return nil, inputErrorf("target transaction is already complete (%d postings with amounts)", len(target.Postings))
	}
	known := target.KnownPosting()
	if known == nil {
		return nil, inputErrorf("target transaction has no posting with an amount")
	}

	ix, err := buildIndex(history)
	if err != nil {
		return nil, err
	}
	cands := ix.candidatesFor(known.Account, e.cfg.AlternateAccounts[known.Account])
	if len(cands) == 0 {
		e.logger.Debug("no historical candidates", "account", known.Account)
		return nil, nil
	}

	targetNorm := e.pipeline.Apply(target.Narration)

	scored := make([]MatchCandidate, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range cands {
		i, c := i, c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			raw := e.scorer.Score(targetNorm, e.pipeline.Apply(c.txn.Narration))
			adjusted := raw
			if c.role == RoleAlternate {
				adjusted = raw * e.cfg.AlternateMultiplier
			}
			scored[i] = MatchCandidate{
				Transaction: c.txn,
				Role:        c.role,
				Score:       raw,
				Adjusted:    adjusted,
				origin:      c.origin,
				seq:         c.seq,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := rank(scored, e.cfg.MinSimilarity)
	e.logger.Debug("ranked completion candidates",
		"account", known.Account, "pool", len(cands), "ranked", len(ranked))
	if len(ranked) == 0 {
		return nil, nil
	}

	best := ranked[0]
	postings, err := proposePostings(known, best)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("selected best match",
		"score", best.Score, "adjusted", best.Adjusted, "role", best.Role)

	return &Proposal{
		Target:     &target,
		Candidates: ranked,
		Postings:   postings,
		Tags:       append([]string(nil), best.Transaction.Tags...),
		Confidence: best.Adjusted,
	}, nil
}
