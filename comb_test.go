package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombGenVisitsOnlyQualifyingCombinations(t *testing.T) {
	scores := []int64{1, 2, 3, 4}
	gen := newCombGen(scores, 2, 6)

	var got [][]int
	gen.Each(func(idx []int) bool {
		cp := append([]int(nil), idx...)
		got = append(got, cp)
		return true
	})

	for _, idx := range got {
		require.Len(t, idx, 2)
		sum := scores[idx[0]] + scores[idx[1]]
		require.Less(t, sum, int64(6))
	}
	// indices 0..3 correspond to scores 1,2,3,4. Pairs summing to < 6:
	// (0,1):1+2=3 yes; (0,2):1+3=4 yes; (1,2):2+3=5 yes; (0,3):1+4=5 yes.
	// (1,3):2+4=6 no; (2,3):3+4=7 no.
	require.Len(t, got, 4)
}

func TestCombGenZeroWidthVisitsEmptyCombination(t *testing.T) {
	gen := newCombGen([]int64{1, 2}, 0, 0)
	calls := 0
	gen.Each(func(idx []int) bool {
		calls++
		require.Empty(t, idx)
		return true
	})
	require.Equal(t, 1, calls)
}

func TestCombGenStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	scores := []int64{1, 1, 1, 1, 1}
	gen := newCombGen(scores, 2, 100)
	calls := 0
	gen.Each(func(idx []int) bool {
		calls++
		return false
	})
	require.Equal(t, 1, calls)
}

func TestCombGenNoQualifyingCombination(t *testing.T) {
	scores := []int64{1, 1, 1}
	gen := newCombGen(scores, 2, 1)
	calls := 0
	gen.Each(func(idx []int) bool {
		calls++
		return true
	})
	require.Zero(t, calls)
}
