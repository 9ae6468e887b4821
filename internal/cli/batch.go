package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"quintet/internal/model"
	"quintet/internal/pipeline"
	"quintet/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file...>",
	Short: "Solve multiple word lists in parallel",
	Long: `Batch solves several word-list files concurrently and prints a per-file
summary. Each file runs through the same pipeline as quintet find.

Example:
  quintet batch english.txt german.txt
  quintet batch lists/*.txt --concurrency 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of files solved concurrently")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "total timeout for the batch (0 = none)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, batchTimeout)
		defer cancel()
	}

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	// Per-file searches stay sequential; parallelism comes from the pool.
	cfg.Search.Workers = 1

	logger.Debug("starting batch", "files", len(args), "concurrency", concurrency)

	processor := worker.NewBatchProcessor(pipeline.New(cfg, logger), concurrency)
	results := processor.ProcessFiles(ctx, args)

	failures := 0
	for _, res := range results {
		if err := res.GetError(); err != nil {
			failures++
			logger.Error("solve failed", "file", res.Path, "err", err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %d words, %d distinct sets, %d groups (%d combinations)\n",
			res.Path, res.Result.Stats.Words, res.Result.Stats.Distinct,
			res.Result.Stats.Cliques, res.Result.Stats.Tuples)
	}

	if failures > 0 {
		return fmt.Errorf("batch: %d of %d files failed", failures, len(results))
	}
	return nil
}
