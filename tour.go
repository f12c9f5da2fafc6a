package ges

import (
	"strconv"
	"strings"
)

// DebugString renders the route starting at first as
// "[0 <n1> <n2> ... | 0]", depot markers included on both ends, for use in
// test failure messages and verbose logging.
func (s *Solution) DebugString(first int) string {
	var b strings.Builder
	b.WriteString("[0")
	for _, n := range s.RouteNodes(first) {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString(" | 0]")
	return b.String()
}

// EqualRoutes reports whether two routes visit the same node sequence.
func (s *Solution) EqualRoutes(firstA, firstB int) bool {
	a := s.RouteNodes(firstA)
	b := s.RouteNodes(firstB)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
