// Package solution expands cliques of letter masks back into concrete word
// groups. A mask that several anagram-equivalent words share contributes each
// of those words as an alternative labeling, so one clique can imply many
// word-tuples.
package solution

import (
	"quintet/internal/dict"
	"quintet/internal/model"
)

// Solution is the materialized outcome of a search.
type Solution struct {
	Cliques    []model.Clique
	Groups     []model.WordGroup // empty when suppressed
	TupleCount int
}

// Materialize expands every clique against the candidate set's mask-to-words
// mapping, in discovery order. With suppress set, groups are not built but
// tuples are still counted, so benchmark runs report the same totals.
func Materialize(cliques []model.Clique, set *dict.CandidateSet, suppress bool) *Solution {
	sol := &Solution{Cliques: cliques}
	if !suppress {
		sol.Groups = make([]model.WordGroup, 0, len(cliques))
	}

	for _, c := range cliques {
		sol.TupleCount += TupleCount(c, set)
		if suppress {
			continue
		}
		words := make([][]string, len(c))
		for i, m := range c {
			words[i] = set.Words(m)
		}
		sol.Groups = append(sol.Groups, model.WordGroup{
			Words:  words,
			Unused: c.UnusedLetter(),
		})
	}

	return sol
}

// TupleCount returns how many distinct word-tuples a clique implies: the
// product of its members' anagram group sizes.
func TupleCount(c model.Clique, set *dict.CandidateSet) int {
	count := 1
	for _, m := range c {
		count *= len(set.Words(m))
	}
	return count
}

// Expand returns every word-tuple of a single clique, the Cartesian product
// over the five positions' anagram groups.
func Expand(c model.Clique, set *dict.CandidateSet) [][]string {
	tuples := [][]string{{}}
	for _, m := range c {
		group := set.Words(m)
		next := make([][]string, 0, len(tuples)*len(group))
		for _, prefix := range tuples {
			for _, word := range group {
				tuple := make([]string, len(prefix), len(prefix)+1)
				copy(tuple, prefix)
				next = append(next, append(tuple, word))
			}
		}
		tuples = next
	}
	return tuples
}
