package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quintet/internal/model"
)

// Renderer formats solve results for display.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to the given stream.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderText prints every word group in discovery order, one numbered line
// per group with anagram alternatives joined by "or".
func (r *Renderer) RenderText(res *model.Result) error {
	for i, group := range res.Groups {
		var b strings.Builder
		fmt.Fprintf(&b, "Solution %5d:", i+1)
		for j, alternatives := range group.Words {
			fmt.Fprintf(&b, "   (%d) %s", j+1, strings.Join(alternatives, " or "))
		}
		fmt.Fprintf(&b, "   [unused: %s]", group.Unused)

		if _, err := fmt.Fprintln(r.out, b.String()); err != nil {
			return fmt.Errorf("write solution: %w", err)
		}
	}
	return nil
}

// RenderSummary prints the run totals.
func (r *Renderer) RenderSummary(res *model.Result) error {
	_, err := fmt.Fprintf(r.out, "Read %d words, %d distinct letter sets. Found %d groups (%d word combinations) in %v.\n",
		res.Stats.Words, res.Stats.Distinct, res.Stats.Cliques, res.Stats.Tuples,
		res.Stats.SearchTime.Round(time.Microsecond))
	return err
}

// RenderJSON writes the result as an indented JSON report.
func (r *Renderer) RenderJSON(res *model.Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
