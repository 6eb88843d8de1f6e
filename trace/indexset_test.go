package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sparsik/trace"
)

// TestIndexSet_EmptyAndSingleton covers the two constructors.
func TestIndexSet_EmptyAndSingleton(t *testing.T) {
	empty := trace.NewIndexSet(70)
	assert.Equal(t, 70, empty.Width())
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Count())

	s := trace.Singleton(70, 65) // second word of the bitset
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Has(65))
	assert.False(t, s.Has(64))
	assert.Equal(t, []int{65}, s.Indices())
}

// TestIndexSet_Union verifies unions accumulate without mutating operands.
func TestIndexSet_Union(t *testing.T) {
	a := trace.Singleton(10, 1)
	b := trace.Singleton(10, 7)

	u := a.Union(b)
	assert.Equal(t, []int{1, 7}, u.Indices())

	// Operands stay untouched (value semantics).
	assert.Equal(t, []int{1}, a.Indices())
	assert.Equal(t, []int{7}, b.Indices())

	// Union is idempotent.
	assert.True(t, u.Union(u).Equal(u))
}

// TestIndexSet_HasOutOfRange confirms out-of-range membership is false,
// never a panic.
func TestIndexSet_HasOutOfRange(t *testing.T) {
	s := trace.Singleton(4, 0)
	assert.False(t, s.Has(-1))
	assert.False(t, s.Has(4))
}

// TestIndexSet_PanicsOnProgrammerError locks in the stable panic contract
// for nonsensical widths and seeds.
func TestIndexSet_PanicsOnProgrammerError(t *testing.T) {
	assert.Panics(t, func() { trace.NewIndexSet(-1) })
	assert.Panics(t, func() { trace.Singleton(3, 3) })
	assert.Panics(t, func() { trace.Singleton(3, -1) })
	assert.Panics(t, func() {
		trace.Singleton(3, 0).Union(trace.Singleton(4, 0))
	})
}
