// Package pipeline wires the solve stages together: read and canonicalize
// lines, collapse them into the deduplicated mask set, run the clique search,
// and materialize word groups unless suppressed.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"quintet/internal/dict"
	"quintet/internal/engine"
	"quintet/internal/model"
	"quintet/internal/solution"
)

// Pipeline orchestrates one complete solve run.
type Pipeline struct {
	cfg    *model.Config
	logger *log.Logger
}

// New creates a pipeline with the given configuration. logger may be nil,
// which disables progress diagnostics.
func New(cfg *model.Config, logger *log.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Solve reads a word list and finds every five-word 25-letter group. With
// Output.NoPrint set, the search still runs in full but word groups are not
// materialized; Stats.Cliques and Stats.Tuples are reported either way.
func (p *Pipeline) Solve(ctx context.Context, r io.Reader) (*model.Result, error) {
	readStart := time.Now()
	words, err := dict.ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	set := dict.Build(words)
	readTime := time.Since(readStart)

	if p.logger != nil {
		p.logger.Debug("candidate set built",
			"words", set.WordCount(), "distinct", set.Len(), "elapsed", readTime)
	}

	eng := engine.New(set, p.cfg.Search.Workers)
	if p.logger != nil && p.cfg.Output.Verbose {
		eng.OnProgress(func(done, total int) {
			p.logger.Info("searching", "branches", fmt.Sprintf("%d/%d", done, total))
		})
	}

	searchStart := time.Now()
	cliques, searchErr := eng.Search(ctx)
	searchTime := time.Since(searchStart)

	sol := solution.Materialize(cliques, set, p.cfg.Output.NoPrint)

	result := &model.Result{
		Cliques: sol.Cliques,
		Groups:  sol.Groups,
		Stats: model.Stats{
			Words:      len(words),
			Distinct:   set.Len(),
			Cliques:    len(sol.Cliques),
			Tuples:     sol.TupleCount,
			ReadTime:   readTime,
			SearchTime: searchTime,
		},
	}

	if searchErr != nil {
		// A cancelled search is cut short, not invalidated: every clique
		// found before the cancellation is complete and is still reported.
		return result, fmt.Errorf("search: %w", searchErr)
	}
	return result, nil
}

// SolvePath opens a word list by path ("-" for stdin) and solves it.
func (p *Pipeline) SolvePath(ctx context.Context, path string) (*model.Result, error) {
	r, err := dict.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return p.Solve(ctx, r)
}
