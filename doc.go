// Package ges implements Guided Ejection Search for the Pickup-and-Delivery
// Problem with Time Windows (PDPTW): given a depot, a set of pickup/delivery
// node pairs with demand and time windows, and a vehicle capacity, find a
// feasible set of routes serving every pair, driving the route count down by
// repeatedly ejecting a whole route and forcing its nodes back in elsewhere.
//
// What & why:
//
//	The engine never holds an infeasible route. Instead of accepting a
//	worse-but-feasible solution and improving it (as local search does), GES
//	keeps one "ejection pool" of currently-unserved nodes and only ever
//	commits a move once it has been checked feasible end to end: capacity,
//	time windows, and pickup-before-delivery ordering. Progress is measured
//	by route count only: the search does not use distance to choose
//	between candidates, and distance is computed only for reporting.
//
// Determinism & stability:
//
//	All randomness (route selection, pool tie-breaking via reservoir
//	sampling, perturbation) is drawn from one seeded *rand.Rand owned by the
//	Driver (see rng.go). Same Options.Seed plus the same Instance always
//	retraces the same sequence of ejections and insertions.
//
// Input requirements:
//
//	An Instance is built from a slice of Node records (see instance.go) by
//	the instance package; NewInstance validates pairing, capacity, and time
//	window shape before any search begins.
//
// Options:
//
//	See types.go for the full Options struct and DefaultOptions. KMax bounds
//	the number of pickup/delivery pairs ejected together when reinserting a
//	stranded pair; PerturbBatch bounds how many perturbation moves are applied
//	after a failed insertion search before the pool is retried.
//
// Errors:
//
//	All fallible constructors return one of the sentinel errors declared in
//	types.go. Internal invariants (route linkage and feasibility of the
//	cached evaluations, via Solution.CheckInvariants) are checked with
//	debugAssert, a no-op in release builds (see validate.go).
//
// Results:
//
//	Driver.Solve returns a *Solution holding the final route set; use
//	WriteSolution (report.go) to render it in the conventional
//	"Route N : <id> <id> ..." text form.
package ges
