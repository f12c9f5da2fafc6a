package ges

// debug gates internal invariant checks that are too expensive to run on
// every iteration of a production solve. Flip to true when chasing a
// correctness bug; leave false otherwise, matching the Rust original's
// pervasive debug_assert! usage without paying for it in release runs.
const debug = false

// debugAssert panics with msg if cond is false and debug is enabled. It is a
// no-op otherwise; never reached on the default build.
func debugAssert(cond bool, msg string) {
	if debug && !cond {
		panic("ges: invariant violated: " + msg)
	}
}

// validateOptions stages validation of a fully-populated Options value
// before a Driver is built, mirroring the teacher package's
// validateAll/validateOptionsStandalone staging: options are checked in
// isolation first, independent of any Instance.
func validateOptions(opts Options) error {
	if opts.KMax < 0 {
		return ErrInvalidOptions
	}
	if opts.PerturbBatch < 0 {
		return ErrInvalidOptions
	}
	if opts.MaxTime < 0 {
		return ErrInvalidOptions
	}
	if opts.TargetRoutes < 0 {
		return ErrInvalidOptions
	}
	if opts.LogEvery < 0 {
		return ErrInvalidOptions
	}
	return nil
}

// validatePairs checks that pairs (as passed to Solution.Initialize) cover
// every non-depot node of inst exactly once, each pair correctly cross
// referencing a pickup and a delivery.
func validatePairs(inst *Instance, pairs [][2]int) error {
	seen := make([]bool, inst.N)
	for _, pr := range pairs {
		pickup, delivery := pr[0], pr[1]
		if pickup <= 0 || pickup >= inst.N || delivery <= 0 || delivery >= inst.N {
			return ErrUnpairedNode
		}
		if inst.IsDelivery[pickup] || !inst.IsDelivery[delivery] {
			return ErrUnpairedNode
		}
		if inst.Pair[pickup] != delivery || inst.Pair[delivery] != pickup {
			return ErrUnpairedNode
		}
		if seen[pickup] || seen[delivery] {
			return ErrUnpairedNode
		}
		seen[pickup] = true
		seen[delivery] = true
	}
	for i := 1; i < inst.N; i++ {
		if !seen[i] {
			return ErrUnpairedNode
		}
	}
	return nil
}

// pairsFromInstance derives the canonical pair list directly from inst, for
// callers that did not already build one while parsing.
func pairsFromInstance(inst *Instance) [][2]int {
	pairs := make([][2]int, 0, inst.N/2)
	for i := 1; i < inst.N; i++ {
		if inst.IsDelivery[i] {
			continue
		}
		pairs = append(pairs, [2]int{i, inst.Pair[i]})
	}
	return pairs
}
