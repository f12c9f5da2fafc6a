package ges

import (
	"context"
	"math/rand"
)

// Driver runs the Guided Ejection Search outer loop: repeatedly eject a
// whole route, then drive its nodes back into the solution one pickup at a
// time (escalating ejection width and perturbing the solution on repeated
// failure), until the route count can no longer be reduced, a target route
// count is reached, or the time budget runs out.
type Driver struct {
	Inst  *Instance
	Sol   *Solution
	Pool  *EjectionPool
	Ins   *Insertion
	Opts  Options
	Stats *Stats

	rng *rand.Rand
}

// NewDriver builds a Driver over inst with one route per pickup/delivery
// pair as the starting solution.
func NewDriver(inst *Instance, opts Options) (*Driver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	pairs := pairsFromInstance(inst)
	if err := validatePairs(inst, pairs); err != nil {
		return nil, err
	}

	sol := NewSolution(inst)
	sol.Initialize(pairs)
	pool := NewEjectionPool(inst.N)

	return &Driver{
		Inst:  inst,
		Sol:   sol,
		Pool:  pool,
		Ins:   NewInsertion(sol, pool, opts.KMax),
		Opts:  opts,
		Stats: NewStats(),
		rng:   rngFromSeed(opts.Seed),
	}, nil
}

// Solve runs the outer loop to completion or until ctx is canceled. It
// always returns the best solution reached, even when it returns a non-nil
// error: ErrTimeBudgetExceeded and ctx.Err() are reported alongside the
// partial progress made so far, not in place of it.
func (d *Driver) Solve(ctx context.Context) (*Solution, error) {
	d.Stats.Reset()

	for {
		if d.Opts.TargetRoutes > 0 && d.Sol.RouteCount() <= d.Opts.TargetRoutes {
			return d.Sol, nil
		}
		if d.Sol.RouteCount() == 0 {
			return d.Sol, nil
		}
		if d.Opts.MaxTime > 0 && d.Stats.Elapsed() >= d.Opts.MaxTime {
			return d.Sol, ErrTimeBudgetExceeded
		}
		select {
		case <-ctx.Done():
			return d.Sol, ctx.Err()
		default:
		}

		if err := d.removeAndRefill(ctx); err != nil {
			return d.Sol, err
		}
	}
}

// removeAndRefill ejects one randomly chosen route and drives its nodes back
// into the solution, escalating to perturbation when an insertion attempt
// fails outright.
func (d *Driver) removeAndRefill(ctx context.Context) error {
	first := d.Sol.First[intn(d.rng, d.Sol.RouteCount())]
	removed := d.Sol.RemoveRoute(first)
	for _, n := range removed {
		if !d.Inst.IsDelivery[n] {
			d.Pool.Push(n)
			d.Pool.Inc(n)
		}
	}
	d.Pool.Sort()
	d.logRouteRemoved(first, len(removed))
	if d.Opts.Log >= LogExtra {
		for _, f := range d.Sol.First {
			d.logExtra("ges: route %s", d.Sol.DebugString(f))
		}
	}

	stall := 0
	maxStall := (d.Opts.PerturbBatch + 1) * (d.Inst.N + 16)

	for d.Pool.Len() > 0 {
		d.Stats.AddIteration(d.Pool.Len())
		if d.Opts.LogEvery > 0 && d.Stats.Iterations()%int64(d.Opts.LogEvery) == 0 {
			d.logPeriodic()
			d.refreshMetrics()
		}
		if d.Opts.MaxTime > 0 && d.Stats.Elapsed() >= d.Opts.MaxTime {
			return ErrTimeBudgetExceeded
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pickup, _ := d.Pool.Top()
		delivery := d.Inst.PairOf(pickup)

		move, ok := d.Ins.TryInsert(d.rng, pickup, delivery)
		if ok {
			d.applyMove(pickup, delivery, move)
			d.Pool.Pop()
			debugAssert(d.Sol.CheckInvariants() == nil, "solution feasible after applied move")
			stall = 0
			continue
		}

		d.Pool.Inc(pickup)
		for i := 0; i < d.Opts.PerturbBatch; i++ {
			d.perturb()
		}
		stall++
		if stall > maxStall {
			return ErrNoFeasibleInsertion
		}
	}

	d.refreshMetrics()
	return nil
}

// applyMove commits a Move found by Insertion.TryInsert or checkSwap to
// d.Sol. Exactly one of three shapes is possible: a fresh route holding just
// the pair (PickupBetween the zero Between, Removed empty — from TryInsert's
// explicit fresh-route fallback candidate, or from a swap into a route that
// held only the swapped-out pair), a zero-ejection
// splice (Removed empty, Betweens naming real arcs), or a k-ejection splice
// (Removed non-empty, Betweens naming arcs of the route view left behind
// once Removed's nodes are taken out).
func (d *Driver) applyMove(pickup, delivery int, move Move) {
	if len(move.Removed) > 0 {
		ejected := d.Sol.EjectAndInsert(move.EjectFrom, move.Removed, pickup, delivery, move.PickupBetween, move.DeliveryBetween)
		for _, n := range ejected {
			if !d.Inst.IsDelivery[n] {
				d.Pool.Push(n)
				d.Pool.Inc(n)
			}
		}
		return
	}
	d.Sol.InsertPair(pickup, delivery, move.PickupBetween, move.DeliveryBetween)
}

// perturb shakes the solution out of a stall by choosing, with equal
// probability, a random relocation or a random swap.
func (d *Driver) perturb() {
	if intn(d.rng, 2) == 0 {
		d.perturbRelocate()
	} else {
		d.perturbSwap()
	}
}

// perturbRelocate picks a random served pickup that is not alone in its
// route, removes its pair, and reinserts it via the same search TryInsert
// uses. If no feasible slot is found (which can happen once KMax is small
// relative to how tightly packed the solution has become), the pair simply
// joins the ejection pool like any other stranded request, rather than being
// restored to its old position — matching the reference algorithm's
// willingness to temporarily worsen the solution in order to escape a stuck
// state.
func (d *Driver) perturbRelocate() {
	pickup := d.randomServedPickupNotAlone()
	if pickup == 0 {
		return
	}
	delivery := d.Inst.PairOf(pickup)

	d.Sol.RemoveNode(pickup)
	d.Sol.RemoveNode(delivery)

	move, ok := d.Ins.TryInsert(d.rng, pickup, delivery)
	if ok {
		d.applyMove(pickup, delivery, move)
		return
	}
	d.Pool.Push(pickup)
}

// perturbSwap picks two random served pickups in distinct routes and, if
// Insertion.checkSwap finds a reciprocal placement for both, applies it. A
// failed check is a no-op: unlike relocation, a swap's starting position is
// never disturbed unless both sides already proved feasible.
func (d *Driver) perturbSwap() {
	a := d.randomServedPickup()
	b := d.randomServedPickup()
	if a == 0 || b == 0 || a == b {
		return
	}
	if d.Sol.RouteFirst(a) == d.Sol.RouteFirst(b) {
		return
	}
	swap, ok := d.Ins.checkSwap(d.rng, a, b)
	if !ok {
		return
	}
	d.applySwap(a, b, swap)
}

// applySwap commits a Swap found by checkSwap: both pairs are ejected from
// their original routes, then each is spliced into the arc the other side's
// scan found in what remains of the other's route.
func (d *Driver) applySwap(aPickup, bPickup int, swap Swap) {
	aDelivery := d.Inst.PairOf(aPickup)
	bDelivery := d.Inst.PairOf(bPickup)

	d.Sol.RemoveNode(aPickup)
	d.Sol.RemoveNode(aDelivery)
	d.Sol.RemoveNode(bPickup)
	d.Sol.RemoveNode(bDelivery)

	d.applyMove(bPickup, bDelivery, swap.MoveA)
	d.applyMove(aPickup, aDelivery, swap.MoveB)
}

// randomServedPickup returns a uniformly random currently-served pickup
// node, or 0 if none are served.
func (d *Driver) randomServedPickup() int {
	candidates := make([]int, 0, d.Inst.N)
	for i := 1; i < d.Inst.N; i++ {
		if !d.Inst.IsDelivery[i] && d.Sol.IsServed(i) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[intn(d.rng, len(candidates))]
}

// randomServedPickupNotAlone is like randomServedPickup but restricted to
// pickups whose route also contains some other pair, matching spec.md
// §4.5's "not alone in its route" relocation precondition.
func (d *Driver) randomServedPickupNotAlone() int {
	candidates := make([]int, 0, d.Inst.N)
	for i := 1; i < d.Inst.N; i++ {
		if d.Inst.IsDelivery[i] || !d.Sol.IsServed(i) {
			continue
		}
		if len(d.Sol.RouteNodes(d.Sol.RouteFirst(i))) > 2 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[intn(d.rng, len(candidates))]
}
