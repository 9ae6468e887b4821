package engine

import (
	"context"
	"testing"

	"quintet/internal/dict"
	"quintet/internal/mask"
	"quintet/internal/model"
)

// fiveDisjoint covers 25 letters, leaving only 'z' unused.
var fiveDisjoint = []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"}

// parkerGroup is a real solution from the classic puzzle, missing only 'q'.
var parkerGroup = []string{"fjord", "gucks", "nymph", "vibex", "waltz"}

func search(t *testing.T, words []string, workers int) []model.Clique {
	t.Helper()
	eng := New(dict.Build(words), workers)
	found, err := eng.Search(context.Background())
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	return found
}

func TestSearch_SingleClique(t *testing.T) {
	found := search(t, fiveDisjoint, 1)
	if len(found) != 1 {
		t.Fatalf("expected 1 clique, got %d", len(found))
	}
	if got := found[0].UnusedLetter(); got != "z" {
		t.Errorf("expected unused letter z, got %q", got)
	}
}

func TestSearch_RealWords(t *testing.T) {
	words := append([]string{"crane", "slate", "toads", "bling"}, parkerGroup...)
	found := search(t, words, 1)
	if len(found) != 1 {
		t.Fatalf("expected 1 clique, got %d", len(found))
	}
	if got := found[0].UnusedLetter(); got != "q" {
		t.Errorf("expected unused letter q, got %q", got)
	}
}

func TestSearch_TwoOverlappingSolutions(t *testing.T) {
	// uvwxy and vwxyz overlap, so they can never appear together, but each
	// completes the other four words into a clique.
	words := append([]string{"vwxyz"}, fiveDisjoint...)
	found := search(t, words, 1)
	if len(found) != 2 {
		t.Fatalf("expected 2 cliques, got %d", len(found))
	}

	unused := map[string]bool{}
	for _, c := range found {
		unused[c.UnusedLetter()] = true
	}
	if !unused["z"] || !unused["u"] {
		t.Errorf("expected cliques missing z and u, got %v", unused)
	}
}

func TestSearch_SharedLetterYieldsNothing(t *testing.T) {
	words := []string{"crane", "slate", "bride", "dozen", "femur", "whelk"}
	if found := search(t, words, 1); len(found) != 0 {
		t.Errorf("expected no cliques when every word shares a letter, got %d", len(found))
	}
}

func TestSearch_EmptySet(t *testing.T) {
	if found := search(t, nil, 1); len(found) != 0 {
		t.Errorf("expected no cliques from empty input, got %d", len(found))
	}
}

func TestSearch_Invariants(t *testing.T) {
	words := append(append([]string{"vwxyz", "crane", "slate"}, fiveDisjoint...), parkerGroup...)
	found := search(t, words, 2)
	if len(found) == 0 {
		t.Fatal("expected at least one clique")
	}

	seen := map[string]bool{}
	for _, c := range found {
		for i := 0; i < len(c); i++ {
			if c[i].Popcount() != mask.WordLength {
				t.Errorf("member %d of %s has popcount %d", i, c.Key(), c[i].Popcount())
			}
			for j := i + 1; j < len(c); j++ {
				if !c[i].Disjoint(c[j]) {
					t.Errorf("members %d and %d of %s overlap", i, j, c.Key())
				}
			}
		}
		if got := c.Union().Popcount(); got != 25 {
			t.Errorf("clique %s covers %d letters, want 25", c.Key(), got)
		}
		if seen[c.Key()] {
			t.Errorf("clique %s reported twice", c.Key())
		}
		seen[c.Key()] = true
	}
}

func TestSearch_DeterministicAcrossWorkers(t *testing.T) {
	words := append(append([]string{"vwxyz", "vibes", "toads"}, fiveDisjoint...), parkerGroup...)

	base := search(t, words, 1)
	for _, workers := range []int{2, 4, 8} {
		got := search(t, words, workers)
		if len(got) != len(base) {
			t.Fatalf("workers=%d found %d cliques, workers=1 found %d", workers, len(got), len(base))
		}
		for i := range got {
			if got[i] != base[i] {
				t.Errorf("workers=%d clique %d = %s, want %s", workers, i, got[i].Key(), base[i].Key())
			}
		}
	}
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(dict.Build(fiveDisjoint), 2)
	found, err := eng.Search(ctx)
	if err == nil {
		t.Fatal("expected context error from cancelled search")
	}
	// Anything already found must still satisfy the clique invariant.
	for _, c := range found {
		if c.Union().Popcount() != 25 {
			t.Errorf("partial result %s is not a valid clique", c.Key())
		}
	}
}

func TestSearch_CancelMidSearchKeepsFound(t *testing.T) {
	// Two top-level branches: the first finds both cliques, then the
	// progress callback cancels before the second branch runs.
	words := append([]string{"vwxyz"}, fiveDisjoint...)
	eng := New(dict.Build(words), 1)

	ctx, cancel := context.WithCancel(context.Background())
	eng.OnProgress(func(done, total int) {
		cancel()
	})

	found, err := eng.Search(ctx)
	if err == nil {
		t.Fatal("expected context error from mid-search cancellation")
	}
	if len(found) != 2 {
		t.Fatalf("expected the 2 cliques found before cancellation to be kept, got %d", len(found))
	}
	for _, c := range found {
		if c.Union().Popcount() != 25 {
			t.Errorf("kept clique %s is not valid", c.Key())
		}
	}
}

func TestOnProgress_ReportsCompletion(t *testing.T) {
	eng := New(dict.Build(fiveDisjoint), 1)

	var lastDone, lastTotal int
	eng.OnProgress(func(done, total int) {
		lastDone, lastTotal = done, total
	})

	if _, err := eng.Search(context.Background()); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if lastDone != lastTotal || lastTotal == 0 {
		t.Errorf("expected final progress done==total>0, got %d/%d", lastDone, lastTotal)
	}
}
