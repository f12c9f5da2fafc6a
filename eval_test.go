package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalAdvanceAccumulatesAndClampsToReady(t *testing.T) {
	inst := threeNodeInstance(t)
	// Give node 1 a late ready time so the vehicle must wait.
	inst.Ready[1] = 5 * Mult

	var e Eval
	e.Reset()
	e.Advance(1, inst)
	require.Equal(t, 1, e.Node)
	require.Equal(t, int64(5*Mult), e.Time)
	require.Equal(t, int32(1), e.Load)
}

func TestEvalFeasibleRespectsDueAndCapacity(t *testing.T) {
	inst := threeNodeInstance(t)
	var e Eval
	e.Reset()
	e.Advance(1, inst)
	require.True(t, e.Feasible(inst))

	inst.MaxCapacity = 0 // load 1 now exceeds capacity
	require.False(t, e.Feasible(inst))
	inst.MaxCapacity = 2

	inst.Due[1] = -1
	require.True(t, e.ArrivesTooLate(inst))
}

func TestEvalCanInsertBetweenRejectsLateInsertion(t *testing.T) {
	inst := threeNodeInstance(t)
	inst.Due[1] = 0 // impossible to arrive at node 1 by time 0 from elsewhere

	var e Eval
	e.Reset()
	ok := e.CanInsertBetween(1, 2, inst, inst.Due[2])
	require.False(t, ok)
}

func TestEvalCanInsertBetweenAcceptsFeasibleInsertion(t *testing.T) {
	inst := threeNodeInstance(t)
	var e Eval
	e.Reset()
	ok := e.CanInsertBetween(1, 2, inst, inst.Due[2])
	require.True(t, ok)
}
