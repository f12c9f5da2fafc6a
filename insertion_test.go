package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoRouteInstance builds two independent two-node routes (1,2) and (3,4)
// whose time windows are wide enough that either pair could sit in either
// route without violating anything, so checkSwap should find a reciprocal
// placement both ways.
func twoRouteInstance(t *testing.T) *Instance {
	t.Helper()
	nodes := []Node{
		{ID: 0, X: 0, Y: 0, Due: 100000},
		{ID: 1, X: 10, Y: 0, Demand: 1, Due: 100000, Pair: 2},
		{ID: 2, X: 11, Y: 0, Demand: -1, Due: 100000, Pair: 1, IsDelivery: true},
		{ID: 3, X: 20, Y: 0, Demand: 1, Due: 100000, Pair: 4},
		{ID: 4, X: 21, Y: 0, Demand: -1, Due: 100000, Pair: 3, IsDelivery: true},
	}
	inst, err := NewInstance(nodes, 2)
	require.NoError(t, err)
	return inst
}

func TestCheckSwapFindsReciprocalPlacement(t *testing.T) {
	inst := twoRouteInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))
	ins := NewInsertion(sol, NewEjectionPool(inst.N), 3)
	rng := rngFromSeed(1)

	swap, ok := ins.checkSwap(rng, 1, 3)
	require.True(t, ok)
	require.NotEqual(t, Move{}, swap.MoveA)
	require.NotEqual(t, Move{}, swap.MoveB)
}

func TestCheckSwapRejectsSameRoute(t *testing.T) {
	inst := twoRouteInstance(t)
	sol := NewSolution(inst)
	sol.Initialize(pairsFromInstance(inst))
	ins := NewInsertion(sol, NewEjectionPool(inst.N), 3)
	rng := rngFromSeed(1)

	_, ok := ins.checkSwap(rng, 1, 1)
	require.False(t, ok)
}

func TestDriverApplySwapKeepsSolutionFeasible(t *testing.T) {
	inst := twoRouteInstance(t)
	opts := DefaultOptions()
	opts.Seed = 9
	drv, err := NewDriver(inst, opts)
	require.NoError(t, err)

	swap, ok := drv.Ins.checkSwap(drv.rng, 1, 3)
	require.True(t, ok)

	drv.applySwap(1, 3, swap)
	require.NoError(t, drv.Sol.CheckInvariants())
	require.True(t, drv.Sol.IsServed(1))
	require.True(t, drv.Sol.IsServed(2))
	require.True(t, drv.Sol.IsServed(3))
	require.True(t, drv.Sol.IsServed(4))
}
