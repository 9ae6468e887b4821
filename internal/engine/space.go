package engine

import (
	"sort"

	"quintet/internal/dict"
	"quintet/internal/mask"
)

// letterGroup holds one letter's bit and every candidate mask containing that
// letter. Groups are ordered rarest-first, which is what makes the search
// fast: the first branching point has the fewest alternatives, and every word
// chosen there eliminates a whole letter from the remaining space.
type letterGroup struct {
	letter mask.Mask
	masks  []mask.Mask
}

// SearchSpace is the letter-indexed view of a CandidateSet. Read-only after
// construction, so parallel branches share it freely.
type SearchSpace struct {
	groups [mask.AlphabetSize]letterGroup
}

// NewSearchSpace indexes the candidate masks by letter, rarest letter first.
func NewSearchSpace(set *dict.CandidateSet) *SearchSpace {
	s := &SearchSpace{}

	for i := 0; i < mask.AlphabetSize; i++ {
		s.groups[i].letter = 1 << i
	}
	for _, m := range set.Masks() {
		for i := 0; i < mask.AlphabetSize; i++ {
			if m&(1<<i) != 0 {
				s.groups[i].masks = append(s.groups[i].masks, m)
			}
		}
	}

	sort.SliceStable(s.groups[:], func(i, j int) bool {
		return len(s.groups[i].masks) < len(s.groups[j].masks)
	})

	return s
}
