// SPDX-License-Identifier: MIT
// Package trace: IndexSet, a fixed-width bitset over input indices.
//
// Dependency sets are unioned on almost every traced primitive, so the
// representation is one bit per input dimension in a flat []uint64 —
// union costs O(width/64) words instead of a hash-set walk. IndexSet is a
// value object: operations return new sets, inputs are never mutated, and
// tracers can therefore be copied freely.

package trace

import "math/bits"

const wordBits = 64

// IndexSet is an immutable set of input indices in [0, Width()).
type IndexSet struct {
	width int
	words []uint64
}

// NewIndexSet returns the empty set over indices [0, width).
// Panics if width is negative (programmer error).
// Complexity: O(width/64).
func NewIndexSet(width int) IndexSet {
	if width < 0 {
		panic(panicNegativeWidth)
	}

	return IndexSet{width: width, words: make([]uint64, (width+wordBits-1)/wordBits)}
}

// Singleton returns the set {i} over indices [0, width).
// Panics if i is outside [0, width) (programmer error).
// Complexity: O(width/64).
func Singleton(width, i int) IndexSet {
	if i < 0 || i >= width {
		panic(panicIndexRange)
	}
	s := NewIndexSet(width)
	s.words[i/wordBits] |= 1 << uint(i%wordBits)

	return s
}

// Width returns the number of addressable indices.
func (s IndexSet) Width() int { return s.width }

// Has reports whether index i is a member. Out-of-range indices are not.
// Complexity: O(1).
func (s IndexSet) Has(i int) bool {
	if i < 0 || i >= s.width {
		return false
	}

	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// IsEmpty reports whether no index is set.
// Complexity: O(width/64).
func (s IndexSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Count returns the number of members.
// Complexity: O(width/64).
func (s IndexSet) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Indices returns the members in ascending order.
// Complexity: O(width).
func (s IndexSet) Indices() []int {
	out := make([]int, 0, s.Count())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &^= 1 << uint(b)
		}
	}

	return out
}

// Union returns s ∪ t. Both sets must share a width; mixing widths is a
// programmer error and panics.
// Complexity: O(width/64).
func (s IndexSet) Union(t IndexSet) IndexSet {
	if s.width != t.width {
		panic(panicWidthMismatch)
	}
	u := IndexSet{width: s.width, words: make([]uint64, len(s.words))}
	for i := range s.words {
		u.words[i] = s.words[i] | t.words[i]
	}

	return u
}

// Equal reports whether s and t have the same width and members.
// Complexity: O(width/64).
func (s IndexSet) Equal(t IndexSet) bool {
	if s.width != t.width {
		return false
	}
	for i := range s.words {
		if s.words[i] != t.words[i] {
			return false
		}
	}

	return true
}
