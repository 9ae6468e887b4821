package dict

import (
	"strings"
	"testing"

	"quintet/internal/mask"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"crane", "crane", true},
		{"CRANE", "crane", true},
		{"SnAkE", "snake", true},
		{"hello", "", false}, // repeated letter
		{"abcd", "", false},  // too short
		{"abcdef", "", false},
		{"ab cd", "", false},
		{"ab1de", "", false},
		{"", "", false},
		{"émail", "", false},
	}

	for _, tt := range tests {
		got, ok := Canonical(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Canonical(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReadWords_SkipsInvalidLines(t *testing.T) {
	input := strings.Join([]string{
		"crane",
		"not-a-word",
		"",
		"HELLO", // repeated letter, dropped
		"vomit",
		"supercalifragilistic",
	}, "\n")

	words, err := ReadWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadWords returned error: %v", err)
	}

	want := []string{"crane", "vomit"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %d: %v", len(want), len(words), words)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestBuild_DeduplicatesByMask(t *testing.T) {
	set := Build([]string{"snake", "sneak", "snake", "crane"})

	if set.Len() != 2 {
		t.Fatalf("expected 2 distinct masks, got %d", set.Len())
	}
	if set.WordCount() != 3 {
		t.Errorf("expected 3 distinct words, got %d", set.WordCount())
	}

	m := mask.Encode("snake")
	group := set.Words(m)
	if len(group) != 2 {
		t.Fatalf("expected 2 anagrams for %q, got %v", m.Letters(), group)
	}
	if group[0] != "snake" || group[1] != "sneak" {
		t.Errorf("expected input-order anagram group, got %v", group)
	}
}

func TestBuild_MaskOrderIsSorted(t *testing.T) {
	set := Build([]string{"vozhd", "waqfs", "bling", "jumpy", "treck"})

	masks := set.Masks()
	for i := 1; i < len(masks); i++ {
		if masks[i-1] >= masks[i] {
			t.Fatalf("masks not strictly ascending at %d: %v", i, masks)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	set := Build(nil)
	if set.Len() != 0 || set.WordCount() != 0 {
		t.Errorf("expected empty set, got %d masks, %d words", set.Len(), set.WordCount())
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/word/list"); err == nil {
		t.Error("expected error for missing file")
	}
}
