package ges

// Eval is the running partial-route evaluator: distance, clock time, and
// load accumulated while walking a route from the depot up to and including
// Node. It is the single state a feasibility check needs — no route-wide
// rescan is ever required once an Eval has been advanced to a given node.
type Eval struct {
	Node     int
	Distance int64
	Time     int64
	Load     int32
}

// Reset returns e to the depot-start state (distance/time/load all zero,
// node 0).
func (e *Eval) Reset() {
	e.Node = 0
	e.Distance = 0
	e.Time = 0
	e.Load = 0
}

// ResetTo copies other's state into e.
func (e *Eval) ResetTo(other *Eval) {
	*e = *other
}

// Advance moves the evaluator from e.Node to nextNode: distance and time
// accumulate inst.Dist/inst.Time for the arc (the latter already including
// service time at the departing node), time is clamped up to nextNode's
// ready time when the vehicle arrives early, and load is updated by
// nextNode's signed demand.
//
// Complexity: O(1).
func (e *Eval) Advance(nextNode int, inst *Instance) {
	e.Distance += inst.Dist[e.Node][nextNode]
	arrival := e.Time + inst.Time[e.Node][nextNode]
	if arrival < inst.Ready[nextNode] {
		arrival = inst.Ready[nextNode]
	}
	e.Time = arrival
	e.Load += inst.Demand[nextNode]
	e.Node = nextNode
}

// Feasible reports whether e's current state honors e.Node's due time and
// the instance's capacity bound.
func (e *Eval) Feasible(inst *Instance) bool {
	return e.Time <= inst.Due[e.Node] && e.Load >= 0 && e.Load <= inst.MaxCapacity
}

// ArrivesTooLate reports whether e's current time already violates e.Node's
// due time, independent of capacity.
func (e *Eval) ArrivesTooLate(inst *Instance) bool {
	return e.Time > inst.Due[e.Node]
}

// CanInsertBetween reports whether insertedNode can be spliced between e
// (the evaluator standing at the predecessor) and nextNode, given that
// nextNode currently must depart no later than latestFeasibleDeparture to
// keep the remainder of the route feasible (see Solution's cached
// latest-feasible-departure table).
//
// This implements the due_p-pre-check-then-due_d-post-check ordering: the
// inserted node's own due time is checked before ever looking at nextNode,
// so a hopeless candidate is rejected in O(1) without touching the rest of
// the route.
func (e *Eval) CanInsertBetween(insertedNode, nextNode int, inst *Instance, latestFeasibleDeparture int64) bool {
	insertedArrival := e.Time + inst.Time[e.Node][insertedNode]
	if insertedArrival < inst.Ready[insertedNode] {
		insertedArrival = inst.Ready[insertedNode]
	}
	if insertedArrival > inst.Due[insertedNode] {
		return false
	}

	nextArrival := insertedArrival + inst.Time[insertedNode][nextNode]
	return nextArrival <= latestFeasibleDeparture
}
