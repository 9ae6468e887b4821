package worker

import (
	"context"

	"quintet/internal/model"
)

// Solver finds the word groups in a single word-list file.
type Solver interface {
	SolvePath(ctx context.Context, path string) (*model.Result, error)
}

// SolveJob is one word-list file to solve.
type SolveJob struct {
	Path   string
	Solver Solver
}

// Execute runs the solve and wraps its outcome.
func (j *SolveJob) Execute(ctx context.Context) Result {
	result, err := j.Solver.SolvePath(ctx, j.Path)
	return &SolveResult{
		Path:   j.Path,
		Result: result,
		Error:  err,
	}
}

// SolveResult is the outcome of solving one file.
type SolveResult struct {
	Path   string
	Result *model.Result
	Error  error
}

// GetError returns the solve error, if any.
func (r *SolveResult) GetError() error {
	return r.Error
}

// BatchProcessor solves several word-list files concurrently.
type BatchProcessor struct {
	solver      Solver
	concurrency int
}

// NewBatchProcessor creates a batch processor backed by the given solver.
func NewBatchProcessor(solver Solver, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		solver:      solver,
		concurrency: concurrency,
	}
}

// ProcessFiles solves all files through the pool and returns one result per
// completed file. Result order follows completion, not submission; on
// cancellation, files whose jobs never ran are absent from the results.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*SolveResult {
	if len(paths) == 0 {
		return []*SolveResult{}
	}

	// Every file is submitted before Wait starts draining, so the pool must
	// be able to hold the whole batch.
	pool := NewSizedPool(b.concurrency, len(paths))
	pool.Start()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			pool.cancel()
		case <-stop:
		}
	}()

	for _, path := range paths {
		pool.Submit(&SolveJob{Path: path, Solver: b.solver})
	}

	results := pool.Wait()

	solveResults := make([]*SolveResult, len(results))
	for i, result := range results {
		solveResults[i] = result.(*SolveResult)
	}

	return solveResults
}
