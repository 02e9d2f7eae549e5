package workflow

import (
	"context"
	"errors"

	"github.com/rare-disease-dx/internal/domain"
)

var (
	// ErrScoringFailed is returned by Computation.Wait when the scorer panicked.
	ErrScoringFailed = errors.New("scoring failed")
	// ErrBusy is returned by operations that cannot run while scoring is in progress.
	ErrBusy = errors.New("computation in progress")
)

// Computation is the single outstanding scoring task started by Advance from
// the last step. It cannot be cancelled; it always finishes with one result set.
type Computation struct {
	done    chan struct{}
	results []domain.MatchResult
	err     error
}

func newComputation() *Computation {
	return &Computation{done: make(chan struct{})}
}

// Done is closed once the results have been committed to the workflow state
// and every listener has been notified.
func (c *Computation) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the computation finishes or ctx ends. Ending ctx only
// stops the wait; the computation keeps running.
func (c *Computation) Wait(ctx context.Context) ([]domain.MatchResult, error) {
	select {
	case <-c.done:
		return c.Results(), c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Results returns a copy of the results, or nil while the computation runs.
func (c *Computation) Results() []domain.MatchResult {
	select {
	case <-c.done:
	default:
		return nil
	}
	out := make([]domain.MatchResult, len(c.results))
	for i, r := range c.results {
		out[i] = r.Clone()
	}
	return out
}

func (c *Computation) finish(results []domain.MatchResult, err error) {
	c.results = results
	c.err = err
	close(c.done)
}
