package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quintet/internal/dict"
)

// masksCmd represents the masks command
var masksCmd = &cobra.Command{
	Use:   "masks <file|->",
	Short: "List the distinct letter-set masks in a word list",
	Long: `Masks shows what the search actually operates on: every distinct set of
five letters found in the word list, with its bit value and the words that
collapse onto it. Useful for seeing how far deduplication shrinks an input.

Example:
  quintet masks words_alpha.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runMasks,
}

func init() {
	rootCmd.AddCommand(masksCmd)
}

func runMasks(cmd *cobra.Command, args []string) error {
	r, err := dict.Open(args[0])
	if err != nil {
		return fmt.Errorf("masks: %w", err)
	}
	defer r.Close()

	words, err := dict.ReadWords(r)
	if err != nil {
		return fmt.Errorf("masks: %w", err)
	}
	set := dict.Build(words)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LETTERS\tMASK\tWORDS")
	for _, m := range set.Masks() {
		fmt.Fprintf(w, "%s\t%07x\t%s\n", m.Letters(), uint32(m), strings.Join(set.Words(m), " "))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("masks: %w", err)
	}

	logger.Debug("deduplicated word list", "words", set.WordCount(), "masks", set.Len())
	return nil
}
