package ges

import (
	"math/rand"
	"sort"
)

// Insertion finds feasible places to reinsert a stranded pickup/delivery
// pair into the current Solution. Beyond the Solution it searches, it reads
// Pool only for pool_times scores, never mutating it. Every scan walks its
// route forward from the depot with a running Eval; scans of a live route
// read the Solution's cached LatestFeasibleDeparture table, while the swap
// and k-ejection scans compute that bound for their own node lists.
type Insertion struct {
	Sol  *Solution
	Inst *Instance
	Pool *EjectionPool
	KMax int
}

// NewInsertion builds an Insertion search bound to sol, scoring k-ejection
// candidates from pool's pool_times and capping ejection width at kMax.
func NewInsertion(sol *Solution, pool *EjectionPool, kMax int) *Insertion {
	return &Insertion{Sol: sol, Inst: sol.Inst, Pool: pool, KMax: kMax}
}

// TryInsert searches for a feasible way to add pickup/delivery to the
// current solution, first with zero ejections, then escalating the number of
// nodes ejected together up to KMax. It returns the uniformly-sampled best
// candidate found (see Reservoir) and whether any candidate at all was
// found.
func (ins *Insertion) TryInsert(rng *rand.Rand, pickup, delivery int) (Move, bool) {
	var best Reservoir[Move]

	ins.scanDirect(rng, pickup, delivery, &best)
	if !best.Empty() {
		return best.Value, true
	}

	for k := 1; k <= ins.KMax; k++ {
		ins.scanWithEjection(rng, pickup, delivery, k, &best)
		if !best.Empty() {
			return best.Value, true
		}
	}
	return Move{}, false
}

// scanDirect looks for a zero-ejection slot for pickup and delivery within
// any single route, feeding every feasible (pickupArc, deliveryArc) pair into
// reservoir.
func (ins *Insertion) scanDirect(rng *rand.Rand, pickup, delivery int, reservoir *Reservoir[Move]) {
	for _, first := range ins.Sol.First {
		ins.scanRouteDirect(rng, first, pickup, delivery, reservoir)
	}
	// A brand-new route is always a valid (if expensive) fallback.
	reservoir.Consider(rng, Move{})
}

// scanRouteDirect walks one route, checking every arc as a pickup insertion
// point and, for each one that is feasible, every later arc in the same
// route as a delivery insertion point. The pickup's due time is checked
// before the delivery sub-scan ever begins (the due_p pre-check), and each
// delivery candidate is checked against the route's cached
// latest-feasible-departure table as the scan advances (the due_d
// post-check) — the ordering spec.md's Open Question resolves in favor of.
func (ins *Insertion) scanRouteDirect(rng *rand.Rand, first, pickup, delivery int, reservoir *Reservoir[Move]) {
	var before Eval
	before.Reset()

	prevNode := 0
	for {
		var next int
		if prevNode == 0 {
			next = first
		} else {
			next = ins.Sol.Next[prevNode]
		}

		lfd := ins.latestFeasibleDepartureAt(next)
		if !before.CanInsertBetween(pickup, next, ins.Inst, lfd) {
			if next == 0 {
				break
			}
			before.Advance(next, ins.Inst)
			prevNode = next
			continue
		}

		// pickup fits between prevNode and next; now scan forward for delivery.
		var afterPickup Eval
		afterPickup.ResetTo(&before)
		afterPickup.Advance(pickup, ins.Inst)
		if !afterPickup.Feasible(ins.Inst) {
			if next == 0 {
				break
			}
			before.Advance(next, ins.Inst)
			prevNode = next
			continue
		}

		ins.scanDeliveryFrom(rng, afterPickup, pickup, next, delivery, Between{prevNode, next}, reservoir)

		if next == 0 {
			break
		}
		before.Advance(next, ins.Inst)
		prevNode = next
	}
}

// scanDeliveryFrom continues a route scan from just after a hypothetical
// pickup insertion, looking for a feasible arc to drop delivery into later
// in the same route.
func (ins *Insertion) scanDeliveryFrom(rng *rand.Rand, afterPickup Eval, pickup, routeNext, delivery int, pb Between, reservoir *Reservoir[Move]) {
	e := afterPickup
	prevNode := pickup
	next := routeNext
	for {
		lfd := ins.latestFeasibleDepartureAt(next)
		if e.CanInsertBetween(delivery, next, ins.Inst, lfd) {
			reservoir.Consider(rng, Move{
				PickupBetween:   pb,
				DeliveryBetween: Between{prevNode, next},
			})
		}
		if next == 0 {
			return
		}
		e.Advance(next, ins.Inst)
		if !e.Feasible(ins.Inst) {
			return
		}
		prevNode = next
		next = ins.Sol.Next[next]
	}
}

// latestFeasibleDepartureAt returns the cached latest-feasible-departure
// bound for node, or the depot's due time (the latest return) when node is
// the sentinel end-of-route marker.
func (ins *Insertion) latestFeasibleDepartureAt(node int) int64 {
	if node == 0 {
		return ins.Inst.Due[0]
	}
	return ins.Sol.LatestFeasibleDeparture[node]
}

// scanWithEjection looks for a route where ejecting some k-subset of its
// pickups (and their delivery mates) makes room for pickup/delivery. The
// pickup catalog for a route is its pickups sorted ascending by pool_times;
// combGen enumerates k-subsets of that catalog in lexicographic index order
// (not sorted by total pool_times), pruning every branch whose score can no
// longer stay under pickup's own pool_times — ejecting pickups that have
// already failed at least as often as the one we're placing buys nothing, so
// it is never worth trying.
func (ins *Insertion) scanWithEjection(rng *rand.Rand, pickup, delivery int, k int, reservoir *Reservoir[Move]) {
	target := ins.Pool.RemovedTimes(pickup)

	for _, first := range ins.Sol.First {
		nodes := ins.Sol.RouteNodes(first)

		catalog := make([]int, 0, len(nodes))
		for _, n := range nodes {
			if !ins.Inst.IsDelivery[n] {
				catalog = append(catalog, n)
			}
		}
		if len(catalog) < k {
			continue
		}
		sort.SliceStable(catalog, func(i, j int) bool {
			return ins.Pool.RemovedTimes(catalog[i]) < ins.Pool.RemovedTimes(catalog[j])
		})
		scores := make([]int64, len(catalog))
		for i, n := range catalog {
			scores[i] = ins.Pool.RemovedTimes(n)
		}

		gen := newCombGen(scores, k, target)
		gen.Each(func(idx []int) bool {
			removedSet := make(map[int]bool, len(idx)*2)
			for _, p := range idx {
				n := catalog[p]
				removedSet[n] = true
				removedSet[ins.Inst.PairOf(n)] = true
			}
			// Pair partners always share a route with their counterpart (an
			// invariant the engine maintains throughout), so every expanded
			// member of removedSet is guaranteed to appear in nodes.
			removed := make([]int, 0, len(removedSet))
			filtered := make([]int, 0, len(nodes)-len(removedSet))
			for _, n := range nodes {
				if removedSet[n] {
					removed = append(removed, n)
				} else {
					filtered = append(filtered, n)
				}
			}

			var into Reservoir[Move]
			ins.scanNodeListDirect(rng, filtered, pickup, delivery, &into)
			if !into.Empty() {
				move := into.Value
				move.Removed = removed
				move.EjectFrom = first
				reservoir.Consider(rng, move)
			}
			return true
		})
	}
}

// checkSwap implements spec.md §4.6's reciprocal swap evaluation: it asks
// whether bPickup's pair could take aPickup's pair's place in a's route, and
// aPickup's pair could take bPickup's pair's place in b's route, neither
// disturbing any other route. aPickup and bPickup must be served and in
// distinct routes.
func (ins *Insertion) checkSwap(rng *rand.Rand, aPickup, bPickup int) (Swap, bool) {
	aFirst := ins.Sol.RouteFirst(aPickup)
	bFirst := ins.Sol.RouteFirst(bPickup)
	if aFirst == int(unservedNode) || bFirst == int(unservedNode) || aFirst == bFirst {
		return Swap{}, false
	}
	aDelivery := ins.Inst.PairOf(aPickup)
	bDelivery := ins.Inst.PairOf(bPickup)

	aNodes := withoutPair(ins.Sol.RouteNodes(aFirst), aPickup, aDelivery)
	bNodes := withoutPair(ins.Sol.RouteNodes(bFirst), bPickup, bDelivery)

	var intoA, intoB Reservoir[Move]
	ins.scanNodeListDirect(rng, aNodes, bPickup, bDelivery, &intoA)
	if intoA.Empty() {
		return Swap{}, false
	}
	ins.scanNodeListDirect(rng, bNodes, aPickup, aDelivery, &intoB)
	if intoB.Empty() {
		return Swap{}, false
	}
	return Swap{MoveA: intoA.Value, MoveB: intoB.Value}, true
}

// withoutPair returns nodes with pickup and delivery filtered out, preserving
// the remaining order.
func withoutPair(nodes []int, pickup, delivery int) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if n != pickup && n != delivery {
			out = append(out, n)
		}
	}
	return out
}

// routeLatestFeasibleDepartures computes the latest-feasible-departure bound
// for every position in an explicit, possibly-virtual node sequence (one not
// necessarily linked through Sol.Next), the same quantity
// Solution.recomputeRoute caches for a live route. lfd[len(nodes)] is the
// bound at the implicit trailing depot.
func routeLatestFeasibleDepartures(inst *Instance, nodes []int) []int64 {
	n := len(nodes)
	lfd := make([]int64, n+1)
	lfd[n] = inst.Due[0]
	for i := n - 1; i >= 0; i-- {
		node := nodes[i]
		var next int
		if i+1 < n {
			next = nodes[i+1]
		}
		bound := lfd[i+1] - inst.Time[node][next]
		if bound > inst.Due[node] {
			bound = inst.Due[node]
		}
		lfd[i] = bound
	}
	return lfd
}

// scanNodeListDirect is scanRouteDirect generalized over an explicit ordered
// node slice rather than a route linked through Sol.Next, so checkSwap can
// search a route with its own pair virtually excluded without mutating
// Solution. Adds no separate fresh-route candidate; for an empty nodes the
// only placement it finds is pickup then delivery on their own
// (PickupBetween {0,0}, DeliveryBetween {pickup,0}).
func (ins *Insertion) scanNodeListDirect(rng *rand.Rand, nodes []int, pickup, delivery int, reservoir *Reservoir[Move]) {
	n := len(nodes)
	lfd := routeLatestFeasibleDepartures(ins.Inst, nodes)

	var before Eval
	before.Reset()
	for i := 0; i <= n; i++ {
		prevNode := 0
		if i > 0 {
			prevNode = nodes[i-1]
		}
		var next int
		if i < n {
			next = nodes[i]
		}

		if before.CanInsertBetween(pickup, next, ins.Inst, lfd[i]) {
			var afterPickup Eval
			afterPickup.ResetTo(&before)
			afterPickup.Advance(pickup, ins.Inst)
			if afterPickup.Feasible(ins.Inst) {
				ins.scanDeliveryFromList(rng, afterPickup, pickup, nodes, lfd, i, delivery, Between{prevNode, next}, reservoir)
			}
		}

		if i == n {
			break
		}
		before.Advance(next, ins.Inst)
	}
}

// scanDeliveryFromList is scanDeliveryFrom generalized the same way
// scanNodeListDirect generalizes scanRouteDirect.
func (ins *Insertion) scanDeliveryFromList(rng *rand.Rand, afterPickup Eval, pickup int, nodes []int, lfd []int64, fromIdx, delivery int, pb Between, reservoir *Reservoir[Move]) {
	e := afterPickup
	n := len(nodes)
	prevNode := pickup
	for j := fromIdx; j <= n; j++ {
		var next int
		if j < n {
			next = nodes[j]
		}
		if e.CanInsertBetween(delivery, next, ins.Inst, lfd[j]) {
			reservoir.Consider(rng, Move{PickupBetween: pb, DeliveryBetween: Between{prevNode, next}})
		}
		if j == n {
			return
		}
		e.Advance(next, ins.Inst)
		if !e.Feasible(ins.Inst) {
			return
		}
		prevNode = next
	}
}

