package ges

import "math"

// Node is one row of a parsed PDPTW instance: the depot (index 0) or a
// pickup/delivery request. Coordinates are plain Euclidean; Ready/Due/Service
// are given in the instance's native time unit (NewInstance rescales them by
// Mult internally).
type Node struct {
	// ID is the node's external identifier, as it appears in the input file
	// and in the rendered solution output.
	ID int

	X, Y float64

	// Demand is positive for a pickup, negative for a delivery, zero for the
	// depot.
	Demand int32

	Ready, Due int64

	// Service is the time spent at this node before departure.
	Service int64

	// Pair is the index (into the Node slice NewInstance was given) of this
	// node's pickup/delivery counterpart. Zero (the depot index) for the
	// depot itself.
	Pair int

	// IsDelivery distinguishes a delivery node from a pickup node; the depot
	// has IsDelivery == false.
	IsDelivery bool
}

// Instance holds the node universe and pre-baked distance/time tables for one
// PDPTW problem. All node indices used elsewhere in the package (Solution,
// Eval, Move, ...) are indices into these flat arrays, node 0 always the
// depot.
//
// Dist and Time are fixed-point integers scaled by Mult: Time[a][b] is the
// "service-then-travel" cost of going from a to b, i.e.
// Dist[a][b] + Service[a]*Mult.
type Instance struct {
	N int

	Dist [][]int64
	Time [][]int64

	Demand     []int32
	Ready      []int64
	Due        []int64
	Service    []int64
	Pair       []int
	IsDelivery []bool

	// ExternalID carries each node's original id from the parsed input, used
	// only when rendering a solution back out (internal node indices are
	// otherwise the sole identifier the engine works with).
	ExternalID []int

	MaxCapacity int32
}

// NewInstance validates nodes and builds the distance/time tables. nodes[0]
// must be the depot. Returns ErrTooManyNodes, ErrNoNodes, ErrUnpairedNode,
// ErrBadTimeWindow, ErrBadCapacity, ErrNegativeCoordinate, or ErrDepotDemand
// on malformed input.
//
// Complexity: O(n^2) time and space (the dense distance/time tables).
func NewInstance(nodes []Node, maxCapacity int32) (*Instance, error) {
	if len(nodes) > MaxPoints {
		return nil, ErrTooManyNodes
	}
	if len(nodes) < 2 {
		return nil, ErrNoNodes
	}
	if maxCapacity <= 0 {
		return nil, ErrBadCapacity
	}
	if nodes[0].Demand != 0 {
		return nil, ErrDepotDemand
	}

	n := len(nodes)
	for i, nd := range nodes {
		if math.IsNaN(nd.X) || math.IsInf(nd.X, 0) || math.IsNaN(nd.Y) || math.IsInf(nd.Y, 0) {
			return nil, ErrNegativeCoordinate
		}
		if nd.Ready > nd.Due {
			return nil, ErrBadTimeWindow
		}
		if nd.Demand > 0 && nd.Demand > maxCapacity {
			return nil, ErrBadCapacity
		}
		if nd.Demand < 0 && -nd.Demand > maxCapacity {
			return nil, ErrBadCapacity
		}
		if i == 0 {
			continue
		}
		if nd.Pair <= 0 || nd.Pair >= n {
			return nil, ErrUnpairedNode
		}
		if nodes[nd.Pair].Pair != i {
			return nil, ErrUnpairedNode
		}
		if nd.IsDelivery == nodes[nd.Pair].IsDelivery {
			return nil, ErrUnpairedNode
		}
	}

	inst := &Instance{
		N:           n,
		Dist:        make([][]int64, n),
		Time:        make([][]int64, n),
		Demand:      make([]int32, n),
		Ready:       make([]int64, n),
		Due:         make([]int64, n),
		Service:     make([]int64, n),
		Pair:        make([]int, n),
		IsDelivery:  make([]bool, n),
		ExternalID:  make([]int, n),
		MaxCapacity: maxCapacity,
	}

	for i, nd := range nodes {
		inst.Demand[i] = nd.Demand
		inst.Ready[i] = nd.Ready * Mult
		inst.Due[i] = nd.Due * Mult
		inst.Service[i] = nd.Service * Mult
		inst.Pair[i] = nd.Pair
		inst.IsDelivery[i] = nd.IsDelivery
		inst.ExternalID[i] = nd.ID
	}

	for i := 0; i < n; i++ {
		inst.Dist[i] = make([]int64, n)
		inst.Time[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := euclideanScaled(nodes[i].X, nodes[i].Y, nodes[j].X, nodes[j].Y)
			inst.Dist[i][j] = d
			inst.Time[i][j] = d + inst.Service[i]
		}
	}

	return inst, nil
}

// euclideanScaled returns ceil(sqrt(dx^2+dy^2) * Mult) as a fixed-point
// distance, matching the scaling NewInstance applies to every other
// time-denominated quantity.
func euclideanScaled(ax, ay, bx, by float64) int64 {
	dx := ax - bx
	dy := ay - by
	d := math.Sqrt(dx*dx + dy*dy)
	return int64(math.Ceil(d * Mult))
}

// PairOf returns the index of node idx's pickup/delivery counterpart.
func (inst *Instance) PairOf(idx int) int {
	return inst.Pair[idx]
}
