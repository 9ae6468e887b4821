package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quintet/internal/model"
	"quintet/internal/pipeline"
)

var (
	noPrint  bool
	jsonPath string
	workers  int
	timeout  time.Duration
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <file|->",
	Short: "Find all five-word groups using 25 distinct letters",
	Long: `Find reads a word list (one word per line, "-" for stdin) and prints every
group of five words whose 25 letters are all different. Lines that are not
five ASCII letters, and words with a repeated letter, are silently skipped.

Example:
  quintet find words_alpha.txt
  curl -s https://example.com/words.txt | quintet find -
  quintet find words_alpha.txt --no-print --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().BoolVar(&noPrint, "no-print", false, "run the full search but skip printing the groups (benchmarking)")
	findCmd.Flags().StringVar(&jsonPath, "json", "", "write a JSON report to this path")
	findCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of parallel search workers")
	findCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this duration (0 = none)")

	_ = viper.BindPFlag("search.workers", findCmd.Flags().Lookup("workers"))
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cfg := buildConfig()

	p := pipeline.New(cfg, logger)
	result, solveErr := p.SolvePath(ctx, args[0])
	if solveErr != nil && result == nil {
		return fmt.Errorf("find: %w", solveErr)
	}
	if solveErr != nil {
		// Interrupted search: whatever was found so far still gets reported.
		logger.Warn("search interrupted, reporting groups found so far", "err", solveErr)
	}

	renderer := pipeline.NewRenderer(os.Stdout)
	if cfg.Output.NoPrint {
		// Suppressed mode keeps stdout silent; the counts still land on stderr.
		logger.Info("search complete",
			"cliques", result.Stats.Cliques,
			"tuples", result.Stats.Tuples,
			"elapsed", result.Stats.SearchTime)
	} else {
		if err := renderer.RenderText(result); err != nil {
			return err
		}
		if err := renderer.RenderSummary(result); err != nil {
			return err
		}
	}

	if jsonPath != "" {
		if err := renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("find: %w", err)
		}
		logger.Debug("wrote JSON report", "path", jsonPath)
	}

	if solveErr != nil {
		return fmt.Errorf("find: %w", solveErr)
	}
	return nil
}

// buildConfig layers CLI flags over viper-resolved settings and defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if w := viper.GetInt("search.workers"); w > 0 {
		cfg.Search.Workers = w
	}
	cfg.Output.Verbose = verbose
	cfg.Output.NoPrint = noPrint
	cfg.Output.JSONPath = jsonPath
	return cfg
}
