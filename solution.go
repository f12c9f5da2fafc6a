package ges

// Solution is a GES partial solution: a set of vehicle routes over a shared
// node universe, represented by two flat successor/predecessor arrays rather
// than per-route slices. Node 0 (the depot) is never stored in Next/Prev;
// instead Next[node]==0 marks node as the last customer of its route and
// Prev[node]==0 marks it as the first — the same sentinel value doing double
// duty as "the depot" and "no link here", which is safe because customer
// node ids are always >= 1.
//
// Routes are identified by the id of their first customer node. First holds
// the currently active set of such ids; removing a route is a linear search
// and swap-delete in First plus an O(route length) walk to unlink its nodes.
//
// Evals and LatestFeasibleDeparture are caches: Evals[node] is the running
// distance/time/load state of a vehicle that has just served node (computed
// forward from the depot), and LatestFeasibleDeparture[node] is the latest
// clock time node can be departed without making some later node in the same
// route arrive after its due time (computed backward from the route's last
// node). Both are recomputed for an entire route whenever that route's
// structure changes; the PDPTW route lengths this engine targets make a
// whole-route O(route length) recompute cheap enough not to need incremental
// patching.
type Solution struct {
	Inst *Instance

	Next []int
	Prev []int

	First []int

	RouteIdx []int

	Evals                   []Eval
	LatestFeasibleDeparture []int64
}

// NewSolution allocates an empty Solution over inst's node universe. Every
// node starts unserved.
func NewSolution(inst *Instance) *Solution {
	n := inst.N
	s := &Solution{
		Inst:                    inst,
		Next:                    make([]int, n),
		Prev:                    make([]int, n),
		First:                   make([]int, 0, n/2+1),
		RouteIdx:                make([]int, n),
		Evals:                   make([]Eval, n),
		LatestFeasibleDeparture: make([]int64, n),
	}
	for i := range s.RouteIdx {
		s.RouteIdx[i] = int(unservedNode)
	}
	return s
}

// Initialize seeds one two-node route per pickup/delivery pair, the
// conventional GES starting solution: every request is trivially feasible on
// its own route, and the search spends the rest of its budget merging routes
// down.
func (s *Solution) Initialize(pairs [][2]int) {
	for _, pr := range pairs {
		s.addPairRoute(pr[0], pr[1])
	}
}

// addPairRoute creates a brand-new route containing exactly pickup then
// delivery.
func (s *Solution) addPairRoute(pickup, delivery int) {
	s.Next[pickup] = delivery
	s.Prev[pickup] = 0
	s.Next[delivery] = 0
	s.Prev[delivery] = pickup

	s.RouteIdx[pickup] = len(s.First)
	s.RouteIdx[delivery] = len(s.First)
	s.First = append(s.First, pickup)

	s.recomputeRoute(pickup)
}

// RouteCount returns the number of active routes.
func (s *Solution) RouteCount() int {
	return len(s.First)
}

// RouteIDs returns the first-node id of every active route. The returned
// slice is a copy; callers may mutate it freely.
func (s *Solution) RouteIDs() []int {
	out := make([]int, len(s.First))
	copy(out, s.First)
	return out
}

// IsServed reports whether node currently belongs to a route.
func (s *Solution) IsServed(node int) bool {
	return s.RouteIdx[node] != int(unservedNode)
}

// RouteNodes returns the full node sequence of the route starting at first,
// in visiting order.
func (s *Solution) RouteNodes(first int) []int {
	out := make([]int, 0, 8)
	for n := first; n != 0; n = s.Next[n] {
		out = append(out, n)
	}
	return out
}

// ForEachInRoute walks the route starting at first, calling fn on each node
// in visiting order until fn returns false or the route ends.
func (s *Solution) ForEachInRoute(first int, fn func(node int) bool) {
	for n := first; n != 0; n = s.Next[n] {
		if !fn(n) {
			return
		}
	}
}

// RouteFirst returns the first-node id of the route node belongs to, or
// unservedNode if node is not currently served.
func (s *Solution) RouteFirst(node int) int {
	if !s.IsServed(node) {
		return int(unservedNode)
	}
	n := node
	for s.Prev[n] != 0 {
		n = s.Prev[n]
	}
	return n
}

// RemoveRoute deletes the whole route starting at first, returning its nodes
// in visiting order. Every returned node is marked unserved; the caller is
// responsible for pushing them onto the ejection pool.
func (s *Solution) RemoveRoute(first int) []int {
	nodes := s.RouteNodes(first)
	for _, n := range nodes {
		s.RouteIdx[n] = int(unservedNode)
		s.Next[n] = 0
		s.Prev[n] = 0
	}

	idx := s.RouteIdx[first]
	_ = idx
	s.dropFirst(first)
	return nodes
}

// dropFirst removes id from First via swap-delete.
func (s *Solution) dropFirst(id int) {
	for i, f := range s.First {
		if f == id {
			last := len(s.First) - 1
			s.First[i] = s.First[last]
			s.First = s.First[:last]
			if i < len(s.First) {
				s.RouteIdx[s.First[i]] = i
			}
			return
		}
	}
}

// RemoveNode splices a single node out of its route, marks it unserved, and
// recomputes the route's caches. If node was the route's only content, the
// route itself is dropped from First.
func (s *Solution) RemoveNode(node int) {
	first := s.RouteFirst(node)
	p, nx := s.Prev[node], s.Next[node]

	if p == 0 && nx == 0 {
		s.RouteIdx[node] = int(unservedNode)
		s.dropFirst(first)
		return
	}

	if p != 0 {
		s.Next[p] = nx
	}
	if nx != 0 {
		s.Prev[nx] = p
	}
	s.RouteIdx[node] = int(unservedNode)
	s.Next[node] = 0
	s.Prev[node] = 0

	newFirst := first
	if first == node {
		newFirst = nx
		for i, f := range s.First {
			if f == first {
				s.First[i] = newFirst
				s.RouteIdx[newFirst] = i
				break
			}
		}
	}
	if newFirst != 0 {
		s.recomputeRoute(newFirst)
	}
}

// Between names an arc (A -> B) a node may be spliced into; A==0 means "the
// route's current start" and B==0 means "the route's current end". A zero
// Between{0,0} passed to InsertPair as the pickup's arc denotes "start a
// fresh route holding just this pair".
type Between struct {
	A, B int
}

// InsertPair splices pickup between pb.A/pb.B and delivery between db.A/db.B,
// then recomputes the affected route's caches. Both Betweens must describe
// arcs within what will become a single resulting route. A zero pb starts a
// fresh route of just pickup then delivery, whatever db names (a scan over an
// empty node list yields pb = {0,0}, db = {pickup,0}).
func (s *Solution) InsertPair(pickup, delivery int, pb, db Between) {
	if pb == (Between{}) {
		s.addPairRoute(pickup, delivery)
		return
	}

	// Identify the route being grown before any pointers move: if pb.A==0,
	// pickup is becoming the new first node, and the route's old first node
	// is whatever pb.B names; otherwise the route's identity is found by
	// walking back from pb.A, unaffected by the splice about to happen.
	var oldFirst int
	if pb.A == 0 {
		oldFirst = pb.B
	} else {
		oldFirst = s.RouteFirst(pb.A)
	}

	s.spliceBetween(pb, pickup)
	s.spliceBetween(db, delivery)

	newFirst := oldFirst
	if pb.A == 0 {
		newFirst = pickup
	}

	slot := -1
	for i, f := range s.First {
		if f == oldFirst {
			slot = i
			break
		}
	}
	if slot >= 0 {
		s.First[slot] = newFirst
	}
	s.RouteIdx[pickup] = slot
	s.RouteIdx[delivery] = slot
	s.recomputeRoute(newFirst)
}

// spliceBetween links node into the arc named by between, updating whichever
// of between.A/between.B are real nodes (non-depot) to point at node. The
// caller is responsible for calling recomputeRoute afterward.
func (s *Solution) spliceBetween(between Between, node int) {
	s.Prev[node] = between.A
	s.Next[node] = between.B
	if between.A != 0 {
		s.Next[between.A] = node
	}
	if between.B != 0 {
		s.Prev[between.B] = node
	}
}

// EjectAndInsert removes the given nodes from the route starting at first,
// relinks what remains into a single chain, then splices pickup between
// pb.A/pb.B and delivery between db.A/db.B within that surviving chain (both
// Betweens name nodes of the post-removal route, or 0 for its start/end,
// exactly like InsertPair's). It returns the ejected nodes in their original
// route order so the caller can push them onto the ejection pool. Used by
// the k-ejection insertion search, whose candidates are found by scanning
// every interior position of the route view with removals, not merely its
// tail.
func (s *Solution) EjectAndInsert(first int, removed []int, pickup, delivery int, pb, db Between) []int {
	slot := s.RouteIdx[first]

	removedSet := make(map[int]bool, len(removed))
	for _, r := range removed {
		removedSet[r] = true
	}

	kept := make([]int, 0, 8)
	for n := first; n != 0; n = s.Next[n] {
		if !removedSet[n] {
			kept = append(kept, n)
		}
	}
	for _, n := range removed {
		s.RouteIdx[n] = int(unservedNode)
		s.Next[n] = 0
		s.Prev[n] = 0
	}

	if len(kept) == 0 {
		s.dropFirst(first)
		s.addPairRoute(pickup, delivery)
		return removed
	}

	for i, n := range kept {
		if i == 0 {
			s.Prev[n] = 0
		} else {
			s.Prev[n] = kept[i-1]
			s.Next[kept[i-1]] = n
		}
	}
	s.Next[kept[len(kept)-1]] = 0

	s.spliceBetween(pb, pickup)
	s.spliceBetween(db, delivery)

	newFirst := kept[0]
	if pb.A == 0 {
		newFirst = pickup
	}

	if newFirst != first {
		for i, f := range s.First {
			if f == first {
				s.First[i] = newFirst
				break
			}
		}
	}
	for _, n := range kept {
		s.RouteIdx[n] = slot
	}
	s.RouteIdx[newFirst] = slot
	s.RouteIdx[pickup] = slot
	s.RouteIdx[delivery] = slot

	s.recomputeRoute(newFirst)
	return removed
}

// recomputeRoute rebuilds Evals forward from the depot and
// LatestFeasibleDeparture backward from the route's last node, for the whole
// route starting at first.
//
// Complexity: O(route length).
func (s *Solution) recomputeRoute(first int) {
	var e Eval
	e.Reset()
	for n := first; n != 0; n = s.Next[n] {
		e.Advance(n, s.Inst)
		s.Evals[n] = e
	}

	last := first
	for s.Next[last] != 0 {
		last = s.Next[last]
	}
	// The last node is bounded by its own due time and by still returning to
	// the depot by the depot's due time.
	lastBound := s.Inst.Due[0] - s.Inst.Time[last][0]
	if lastBound > s.Inst.Due[last] {
		lastBound = s.Inst.Due[last]
	}
	s.LatestFeasibleDeparture[last] = lastBound
	for n := last; s.Prev[n] != 0; {
		p := s.Prev[n]
		// The latest p can depart (after service) is bounded by both p's own
		// due time and by leaving enough time to still reach n's latest
		// feasible departure.
		bound := s.LatestFeasibleDeparture[n] - s.Inst.Time[p][n]
		if bound > s.Inst.Due[p] {
			bound = s.Inst.Due[p]
		}
		s.LatestFeasibleDeparture[p] = bound
		n = p
	}
}

// CheckInvariants walks every active route and verifies Next/Prev symmetry
// and feasibility of the cached Evals; used by tests and by debugAssert call
// sites guarding the driver's hot loop.
func (s *Solution) CheckInvariants() error {
	for _, first := range s.First {
		var prevSeen int
		for n := first; n != 0; n = s.Next[n] {
			if s.Prev[n] != prevSeen {
				return ErrUnpairedNode
			}
			if !s.Evals[n].Feasible(s.Inst) {
				return ErrNoFeasibleInsertion
			}
			prevSeen = n
		}
	}
	return nil
}
