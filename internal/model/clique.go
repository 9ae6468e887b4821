package model

import (
	"sort"
	"strings"

	"quintet/internal/mask"
)

// Clique is a found group: five pairwise letter-disjoint masks covering 25 of
// the 26 letters. It is immutable once produced by the search.
type Clique [mask.GroupSize]mask.Mask

// Union returns the combined letter set of the group.
func (c Clique) Union() mask.Mask {
	var u mask.Mask
	for _, m := range c {
		u |= m
	}
	return u
}

// UnusedLetter returns the single letter the group leaves uncovered.
func (c Clique) UnusedLetter() string {
	missing := ^c.Union() & (1<<mask.AlphabetSize - 1)
	return missing.Letters()
}

// Key returns a canonical string identity for the clique, independent of
// member order.
func (c Clique) Key() string {
	parts := make([]string, 0, len(c))
	for _, m := range c {
		parts = append(parts, m.Letters())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
