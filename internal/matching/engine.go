package matching

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/jpp0ca/linkport/internal/domain"
)

var errNoSupplier = errors.New("no candidate supplier configured")

// CandidateSupplier returns the search candidates for one track on a target
// platform, in the platform's ranking order.
type CandidateSupplier interface {
	Candidates(ctx context.Context, track domain.Track) ([]domain.Track, error)
}

// SupplierFunc adapts a function to CandidateSupplier.
type SupplierFunc func(ctx context.Context, track domain.Track) ([]domain.Track, error)

func (f SupplierFunc) Candidates(ctx context.Context, track domain.Track) ([]domain.Track, error) {
	return f(ctx, track)
}

// Engine matches whole playlists using a pool of workers. Each track is
// matched independently; a failing lookup only affects its own entry.
type Engine struct {
	workers int
	limiter *rate.Limiter
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets how many candidate lookups may run at once.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// WithRateLimit caps candidate lookups at perSecond across all workers. Zero
// or a negative rate disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(e *Engine) {
		if perSecond > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			e.limiter = nil
		}
	}
}

// WithLogger sets the logger used for per-track outcomes.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an Engine. Without options it matches sequentially and
// logs nothing.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers: 1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MatchAll returns one Match per track, in input order. It never fails: a
// lookup error, panic or cancellation turns that entry into a not_found
// verdict and the remaining tracks are still processed.
func (e *Engine) MatchAll(ctx context.Context, tracks []domain.Track, supplier CandidateSupplier) domain.MatchBatch {
	batch := make(domain.MatchBatch, len(tracks))
	if len(tracks) == 0 {
		return batch
	}

	type job struct {
		index int
		track domain.Track
	}
	type indexedMatch struct {
		index int
		match domain.Match
	}

	workers := e.workers
	if workers > len(tracks) {
		workers = len(tracks)
	}

	jobs := make(chan job, len(tracks))
	results := make(chan indexedMatch, len(tracks))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				results <- indexedMatch{
					index: j.index,
					match: e.matchOne(ctx, workerID, j.track, supplier),
				}
			}
		}(i)
	}

	for i, track := range tracks {
		jobs <- job{index: i, track: track}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Completion order varies with concurrency; place by index.
	for r := range results {
		batch[r.index] = r.match
	}

	return batch
}

func (e *Engine) matchOne(ctx context.Context, workerID int, track domain.Track, supplier CandidateSupplier) domain.Match {
	logger := e.logger.With("worker", workerID, "title", track.Title, "artist", track.Artist)

	candidates, err := e.lookup(ctx, track, supplier)
	if err != nil {
		logger.Warn("candidate lookup failed", "err", err)
		return domain.Failed(track, err)
	}

	m := SelectBest(track, candidates)
	if st, ok := m.Matched(); ok {
		logger.Debug("match",
			"status", m.Status(),
			"candidate", st.Track.Title,
			"confidence", fmt.Sprintf("%.2f", st.Confidence),
			"variant", m.Variant(),
		)
	} else {
		logger.Debug("no match", "candidates", len(candidates))
	}
	return m
}

func (e *Engine) lookup(ctx context.Context, track domain.Track, supplier CandidateSupplier) (candidates []domain.Track, err error) {
	if supplier == nil {
		return nil, errNoSupplier
	}
	defer func() {
		if r := recover(); r != nil {
			candidates, err = nil, fmt.Errorf("candidate supplier panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}
	return supplier.Candidates(ctx, track)
}
