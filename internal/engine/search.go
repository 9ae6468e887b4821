package engine

import (
	"quintet/internal/mask"
	"quintet/internal/model"
)

// branch is one independent top-level unit of work: either fix a specific
// mask from the first letter group, or spend the single skippable letter on
// that group. Branches partition the solution space, so they can run
// concurrently without coordination.
type branch struct {
	pick mask.Mask
	skip bool
}

func (s *SearchSpace) branches() []branch {
	out := make([]branch, 0, len(s.groups[0].masks)+1)
	for _, m := range s.groups[0].masks {
		out = append(out, branch{pick: m})
	}
	out = append(out, branch{skip: true})
	return out
}

func (s *SearchSpace) runBranch(b branch) []model.Clique {
	var found []model.Clique
	var picked model.Clique

	if b.skip {
		s.search(1, s.groups[0].letter, false, &picked, 0, &found)
	} else {
		picked[0] = b.pick
		s.search(1, b.pick, true, &picked, 1, &found)
	}
	return found
}

// search walks the letter groups in rarity order. At each step it branches on
// the first group whose letter the running union does not yet cover: every
// complete group must contain a word with that letter, or spend the one
// allowed skip on it (five five-letter words leave exactly one of 26 letters
// unused). The disjointness test against the running union is a single AND.
func (s *SearchSpace) search(groupIdx int, used mask.Mask, canSkip bool, picked *model.Clique, depth int, found *[]model.Clique) {
	if depth == mask.GroupSize {
		*found = append(*found, *picked)
		return
	}

	for groupIdx < mask.AlphabetSize && !used.Disjoint(s.groups[groupIdx].letter) {
		groupIdx++
	}
	if groupIdx == mask.AlphabetSize {
		return
	}

	g := &s.groups[groupIdx]
	for _, m := range g.masks {
		if used.Disjoint(m) {
			picked[depth] = m
			s.search(groupIdx+1, used.Union(m), canSkip, picked, depth+1, found)
		}
	}

	if canSkip {
		s.search(groupIdx+1, used.Union(g.letter), false, picked, depth, found)
	}
}
