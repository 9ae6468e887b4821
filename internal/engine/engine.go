// Package engine enumerates every group of five candidate masks that are
// pairwise letter-disjoint. The candidate set is indexed by letter rather
// than scanned as a flat list: branching on the rarest uncovered letter keeps
// the fan-out small at every depth, and a 25-of-26 coverage argument allows
// at most one letter to be skipped along any path. Each group in the space is
// reached exactly once, so no result deduplication is needed.
package engine

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"quintet/internal/dict"
	"quintet/internal/model"
)

// ProgressFunc observes search progress as top-level branches complete.
type ProgressFunc func(done, total int)

// Engine runs the clique search over an immutable candidate set.
type Engine struct {
	space    *SearchSpace
	workers  int
	progress ProgressFunc
	limiter  *rate.Limiter
}

// New builds an engine over the given candidate set. workers is the number of
// goroutines splitting the top-level branches; values below 1 run sequentially.
func New(set *dict.CandidateSet, workers int) *Engine {
	if workers <= 0 {
		workers = 1
	}
	return &Engine{
		space:   NewSearchSpace(set),
		workers: workers,
	}
}

// OnProgress installs a progress observer. Calls are throttled so a verbose
// run logs a handful of lines per second, not one per branch.
func (e *Engine) OnProgress(fn ProgressFunc) {
	e.progress = fn
	e.limiter = rate.NewLimiter(rate.Every(200*time.Millisecond), 1)
}

// Search enumerates all cliques. Results are returned in deterministic
// discovery order regardless of worker count, because branch results are
// merged in branch order after the fact. On context cancellation the cliques
// already found are returned alongside the context error.
func (e *Engine) Search(ctx context.Context) ([]model.Clique, error) {
	branches := e.space.branches()
	total := len(branches)
	perBranch := make([][]model.Clique, total)

	var done atomic.Int64
	run := func(i int) {
		perBranch[i] = e.space.runBranch(branches[i])
		e.note(int(done.Add(1)), total)
	}

	var searchErr error
	if e.workers == 1 {
		for i := range branches {
			if err := ctx.Err(); err != nil {
				searchErr = err
				break
			}
			run(i)
		}
	} else {
		var g errgroup.Group
		var next atomic.Int64
		for w := 0; w < e.workers; w++ {
			g.Go(func() error {
				for {
					i := int(next.Add(1)) - 1
					if i >= total {
						return nil
					}
					if err := ctx.Err(); err != nil {
						return err
					}
					run(i)
				}
			})
		}
		searchErr = g.Wait()
	}

	var found []model.Clique
	for _, cliques := range perBranch {
		found = append(found, cliques...)
	}
	return found, searchErr
}

func (e *Engine) note(done, total int) {
	if e.progress == nil {
		return
	}
	if done == total || e.limiter.Allow() {
		e.progress(done, total)
	}
}
