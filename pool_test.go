package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEjectionPoolOrdersByRemovalCount(t *testing.T) {
	p := NewEjectionPool(10)
	p.Push(3)
	p.Push(5)
	p.Push(7)

	top, ok := p.Top()
	require.True(t, ok)
	require.Equal(t, 7, top) // all tied at count 0; last pushed sits at the tail

	p.Inc(3) // 3's count rises to 1, now the highest: it floats to the tail
	top, ok = p.Top()
	require.True(t, ok)
	require.Equal(t, 3, top)
	require.True(t, p.Contains(5))

	n, ok := p.Pop()
	require.True(t, ok)
	require.Equal(t, 3, n)
	require.Equal(t, 2, p.Len())
}

func TestEjectionPoolPopEmpty(t *testing.T) {
	p := NewEjectionPool(4)
	_, ok := p.Pop()
	require.False(t, ok)
	_, ok = p.Top()
	require.False(t, ok)
}

func TestEjectionPoolSortIsStableUnderRepeatedInc(t *testing.T) {
	p := NewEjectionPool(10)
	for _, n := range []int{1, 2, 3, 4} {
		p.Push(n)
	}
	for i := 0; i < 3; i++ {
		top, _ := p.Top()
		p.Inc(top)
	}
	// After three increments, the pool should still be sorted ascending by
	// removal count.
	last := int64(-1)
	for _, id := range p.ids {
		require.GreaterOrEqual(t, p.removedTimes[id], last)
		last = p.removedTimes[id]
	}
}
