package ges

import (
	"fmt"
	"io"
)

// SolutionMeta carries the descriptive header fields WriteSolution prints
// ahead of the route listing, matching the conventional PDPTW solution
// report format.
type SolutionMeta struct {
	InstanceName string
	Authors      string
	Reference    string
	Date         string
}

// WriteSolution renders sol in the conventional text form:
//
//	Instance name: <name>
//	Authors: <authors>
//	Reference: <reference>
//	Date: <date>
//	Solution :
//	Route 1 : <id> <id> ...
//	Route 2 : <id> <id> ...
//
// Node ids are rendered as inst.ExternalID, i.e. the ids the instance was
// originally parsed with, not the engine's internal indices.
func WriteSolution(w io.Writer, meta SolutionMeta, sol *Solution, inst *Instance) error {
	if _, err := fmt.Fprintf(w, "Instance name: %s\n", meta.InstanceName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Authors: %s\n", meta.Authors); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Reference: %s\n", meta.Reference); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Date: %s\n", meta.Date); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solution :\n"); err != nil {
		return err
	}

	for i, first := range sol.First {
		if _, err := fmt.Fprintf(w, "Route %d :", i+1); err != nil {
			return err
		}
		for _, n := range sol.RouteNodes(first) {
			if _, err := fmt.Fprintf(w, " %d", inst.ExternalID[n]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
