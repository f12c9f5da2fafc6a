package ges

// RouteDistance returns the total distance of the route starting at first,
// depot to depot (the return leg included), as a plain float64 in the
// instance's original coordinate units (i.e. divided back out of the Mult
// fixed-point scale).
func (s *Solution) RouteDistance(first int) float64 {
	if first == 0 {
		return 0
	}
	last := lastOf(s, first)
	return float64(s.Evals[last].Distance+s.Inst.Dist[last][0]) / Mult
}

// TotalDistance sums RouteDistance across every active route.
func (s *Solution) TotalDistance() float64 {
	var total float64
	for _, first := range s.First {
		total += s.RouteDistance(first)
	}
	return total
}

func lastOf(s *Solution, first int) int {
	n := first
	for s.Next[n] != 0 {
		n = s.Next[n]
	}
	return n
}
