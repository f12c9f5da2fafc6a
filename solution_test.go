package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fourNodeInstance(t *testing.T) *Instance {
	t.Helper()
	nodes := []Node{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0, Demand: 1, Due: 1000, Pair: 2},
		{ID: 2, X: 2, Y: 0, Demand: -1, Due: 1000, Pair: 1, IsDelivery: true},
		{ID: 3, X: 3, Y: 0, Demand: 1, Due: 1000, Pair: 4},
		{ID: 4, X: 4, Y: 0, Demand: -1, Due: 1000, Pair: 3, IsDelivery: true},
	}
	inst, err := NewInstance(nodes, 2)
	require.NoError(t, err)
	return inst
}

func TestSolutionInitializeCreatesOneRoutePerPair(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))

	require.Equal(t, 2, sol.RouteCount())
	require.True(t, sol.IsServed(1))
	require.True(t, sol.IsServed(2))
	require.Equal(t, []int{1, 2}, sol.RouteNodes(sol.RouteFirst(1)))
	require.NoError(t, sol.CheckInvariants())
}

func TestSolutionRemoveRouteUnservesAllItsNodes(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))

	first := sol.RouteFirst(1)
	removed := sol.RemoveRoute(first)
	require.ElementsMatch(t, []int{1, 2}, removed)
	require.False(t, sol.IsServed(1))
	require.False(t, sol.IsServed(2))
	require.Equal(t, 1, sol.RouteCount())
}

func TestSolutionInsertPairMergesIntoExistingRoute(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))

	first34 := sol.RouteFirst(3)
	sol.RemoveRoute(sol.RouteFirst(1))

	sol.InsertPair(1, 2, Between{0, first34}, Between{1, first34})
	require.Equal(t, 1, sol.RouteCount())
	require.NoError(t, sol.CheckInvariants())
	require.Equal(t, []int{1, 2, 3, 4}, sol.RouteNodes(sol.RouteFirst(3)))
}

func TestSolutionRemoveNodeSplicesRouteTogether(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))
	first := sol.RouteFirst(1)

	sol.RemoveRoute(sol.RouteFirst(3))
	sol.InsertPair(3, 4, Between{2, 0}, Between{3, 0}) // route: 1 2 3 4
	sol.RemoveNode(3)                                  // back out, leaving 1 2
	sol.RemoveNode(4)
	require.Equal(t, []int{1, 2}, sol.RouteNodes(first))

	sol.RemoveNode(1)
	require.False(t, sol.IsServed(1))
	require.Equal(t, []int{2}, sol.RouteNodes(sol.RouteFirst(2)))
}

func TestSolutionEjectAndInsertWithNoRemovalsAppendsAtTail(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))

	first := sol.RouteFirst(1)
	sol.RemoveRoute(sol.RouteFirst(3))
	removed := sol.EjectAndInsert(first, nil, 3, 4, Between{2, 0}, Between{3, 0})
	require.Empty(t, removed)
	require.Equal(t, []int{1, 2, 3, 4}, sol.RouteNodes(sol.RouteFirst(1)))
	require.NoError(t, sol.CheckInvariants())
}

func TestSolutionEjectAndInsertRemovesThenReinsertsInterior(t *testing.T) {
	inst := fourNodeInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))
	sol.RemoveRoute(sol.RouteFirst(3))
	sol.InsertPair(3, 4, Between{2, 0}, Between{3, 0}) // route: 1 2 3 4

	// Eject 3,4 from the route, then reinsert them right back between 1 and
	// 2, exercising an interior (non-tail) splice after removal.
	removed := sol.EjectAndInsert(sol.RouteFirst(1), []int{3, 4}, 3, 4, Between{1, 2}, Between{3, 2})
	require.ElementsMatch(t, []int{3, 4}, removed)
	require.Equal(t, []int{1, 3, 4, 2}, sol.RouteNodes(sol.RouteFirst(1)))
	require.NoError(t, sol.CheckInvariants())
}
