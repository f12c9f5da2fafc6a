package ges

import "math"

// posInf marks a sumOfNext cell where fewer than k scores remain from that
// position onward, making the cell an impossible (unreachable) completion.
const posInf = math.MaxInt64 / 2

// combGen enumerates k-element index combinations over a window of ascending
// scores, depth-first in lexicographic index order (the visits are not
// sorted by total score), skipping every subtree that is provably at or over
// target. scores must already be
// sorted ascending (the pickup catalog is sorted by pool_times before a
// combGen is built over it); sumOfNext[i][k] then collapses to the sum of
// the k smallest scores at or after position i, so a partial combination's
// best possible (smallest) completion is known in O(1), letting a whole
// subtree be skipped instead of walked to its leaves.
type combGen struct {
	scores    []int64
	k         int
	target    int64
	sumOfNext [][]int64 // sumOfNext[i][j]: minimum total of j scores from scores[i:]
}

// newCombGen precomputes sumOfNext for an ascending-sorted window of scores,
// a target combination size k, and the score a combination's total must stay
// strictly under to be worth visiting.
//
// Complexity: O(n*k) time and space.
func newCombGen(scores []int64, k int, target int64) *combGen {
	n := len(scores)
	sumOfNext := make([][]int64, n+1)
	for i := range sumOfNext {
		sumOfNext[i] = make([]int64, k+1)
	}
	for j := 1; j <= k; j++ {
		sumOfNext[n][j] = posInf
	}
	for i := n - 1; i >= 0; i-- {
		sumOfNext[i][0] = 0
		for j := 1; j <= k; j++ {
			skip := sumOfNext[i+1][j]
			take := sumOfNext[i+1][j-1]
			if take != posInf {
				take += scores[i]
			}
			if take < skip {
				sumOfNext[i][j] = take
			} else {
				sumOfNext[i][j] = skip
			}
		}
	}
	return &combGen{scores: scores, k: k, target: target, sumOfNext: sumOfNext}
}

// Each visits every k-combination of indices (ascending order) whose total
// score stays strictly under target, via branch-and-bound over sumOfNext.
// For k == 0 the empty combination is visited once, whatever the target.
// visit returning false stops the walk early.
func (g *combGen) Each(visit func(idx []int) bool) {
	if g.k == 0 {
		visit(nil)
		return
	}
	chosen := make([]int, 0, g.k)
	g.walk(0, g.k, 0, chosen, visit)
}

func (g *combGen) walk(i, remaining int, acc int64, chosen []int, visit func(idx []int) bool) bool {
	if remaining == 0 {
		if acc < g.target {
			return visit(chosen)
		}
		return true
	}
	if i >= len(g.scores) {
		return true
	}
	bound := g.sumOfNext[i][remaining]
	if bound == posInf || acc+bound >= g.target {
		return true
	}

	// Take scores[i].
	if !g.walk(i+1, remaining-1, acc+g.scores[i], append(chosen, i), visit) {
		return false
	}
	// Skip i.
	return g.walk(i+1, remaining, acc, chosen, visit)
}
