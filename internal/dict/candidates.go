package dict

import (
	"sort"

	"quintet/internal/mask"
)

// CandidateSet is the deduplicated search input: every distinct five-bit mask
// seen in the word list, mapped to the words that share it (anagrams collapse
// to one entry). It is built once and read-only afterwards, so the engine can
// share it across parallel branches without locking.
type CandidateSet struct {
	masks   []mask.Mask
	words   map[mask.Mask][]string
	wordCnt int
}

// Build collapses canonical words into a CandidateSet. Words are assumed to
// have passed Canonical; duplicates of the same word are kept as distinct
// labels only if they differ as strings.
func Build(words []string) *CandidateSet {
	set := &CandidateSet{
		words: make(map[mask.Mask][]string),
	}

	for _, word := range words {
		m := mask.Encode(word)
		group, seen := set.words[m]
		if !seen {
			set.masks = append(set.masks, m)
		}
		if containsWord(group, word) {
			continue
		}
		set.words[m] = append(group, word)
		set.wordCnt++
	}

	// A fixed mask order keeps the search deterministic run to run.
	sort.Slice(set.masks, func(i, j int) bool { return set.masks[i] < set.masks[j] })

	return set
}

func containsWord(group []string, word string) bool {
	for _, w := range group {
		if w == word {
			return true
		}
	}
	return false
}

// Masks returns the distinct masks in ascending numeric order. Callers must
// not mutate the returned slice.
func (s *CandidateSet) Masks() []mask.Mask {
	return s.masks
}

// Words returns the words sharing the given mask, in input order.
func (s *CandidateSet) Words(m mask.Mask) []string {
	return s.words[m]
}

// Len returns the number of distinct masks.
func (s *CandidateSet) Len() int {
	return len(s.masks)
}

// WordCount returns the number of distinct words behind all masks.
func (s *CandidateSet) WordCount() int {
	return s.wordCnt
}
