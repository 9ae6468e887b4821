// Package mask encodes words as 26-bit letter sets. A mask carries no
// information about letter order or multiplicity, which is exactly what the
// disjointness search needs: two words can appear together iff their masks
// share no bits.
package mask

import (
	"math/bits"
	"strings"
)

const (
	// WordLength is the only word length the solver accepts.
	WordLength = 5

	// GroupSize is the number of words in a solution group.
	GroupSize = 5

	// AlphabetSize is the number of letters in the ASCII alphabet.
	AlphabetSize = 26
)

// Mask is a 26-bit letter set: bit i is set iff letter 'a'+i occurs in the
// word. A mask eligible for the search has exactly WordLength bits set.
type Mask uint32

// Bit returns the mask bit for a single ASCII letter, upper or lower case.
func Bit(ch byte) Mask {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	return 1 << (ch - 'a')
}

// Encode folds a word into its letter mask. The word must already be
// validated as ASCII alphabetic; case is normalized here so callers don't
// have to lowercase first.
func Encode(word string) Mask {
	var m Mask
	for i := 0; i < len(word); i++ {
		m |= Bit(word[i])
	}
	return m
}

// Popcount returns the number of distinct letters in the mask.
func (m Mask) Popcount() int {
	return bits.OnesCount32(uint32(m))
}

// Disjoint reports whether the two masks share no letters.
func (m Mask) Disjoint(other Mask) bool {
	return m&other == 0
}

// Union returns the combined letter set of both masks.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// Contains reports whether every letter of sub is also in m.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

// Letters renders the mask as its sorted letters, e.g. "aekns" for
// snake/sneak. Intended for diagnostics and the masks listing.
func (m Mask) Letters() string {
	var b strings.Builder
	b.Grow(m.Popcount())
	for i := 0; i < AlphabetSize; i++ {
		if m&(1<<i) != 0 {
			b.WriteByte('a' + byte(i))
		}
	}
	return b.String()
}
