// Package enumerate implements the state enumerators behind recviz.
//
// An enumerator walks every state a brute-force recursion (or a
// bottom-up DP table) reaches for one problem instance, and records the
// visitation order plus the parent relationship and transition label for
// each visited state. The output is deliberately plain data - a trace
// and a parent map - so that graph construction and rendering stay
// separate concerns.
//
// Two traversal shapes exist:
//
//   - DFS enumerators ([Knapsack], [TargetSum]) visit states pre-order.
//     Repeated states are never merged: each occurrence of the same
//     state signature gets a fresh identity, so the result is always a
//     tree (every non-root node has exactly one incoming edge).
//   - The DP enumerator ([BuildTable]) computes the full bottom-up table;
//     the derived graph has exactly one node per (i, w) cell and may give
//     a child two incoming edges when skip and pick derivations tie.
//
// Enumeration is total over validated input and single-threaded; callers
// are expected to keep inputs small (trees grow as O(2^n)).
package enumerate

import (
	"fmt"
	"strings"
)

// Edge is the incoming edge recorded for a visited state: the parent's
// unique identity and the label of the transition that was taken.
type Edge struct {
	Parent string
	Label  string
}

// Result holds the output of one DFS enumeration run.
type Result struct {
	// Trace lists unique node identities in visitation (pre-)order.
	// The first entry is always the root.
	Trace []string

	// Parents maps each non-root identity to its incoming edge.
	// The root never appears as a key.
	Parents map[string]Edge
}

// Root returns the identity of the initial state, or "" for an empty run.
func (r Result) Root() string {
	if len(r.Trace) == 0 {
		return ""
	}
	return r.Trace[0]
}

// counter disambiguates repeat visits of the same state signature.
// It is scoped to a single enumeration run: each run starts from an
// empty table, so counters for a given signature strictly increase
// within the run and reset across runs.
type counter map[string]int

// next returns a unique identity for sig by appending the occurrence
// number, starting at 1 for the first visit.
func (c counter) next(sig string) string {
	c[sig]++
	return fmt.Sprintf("%s_%d", sig, c[sig])
}

// DisplayLabel strips the occurrence suffix from a unique identity,
// recovering the human-readable state signature. Multiple identities may
// share a display label; only the identity is usable for edge wiring.
func DisplayLabel(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		return id[:i]
	}
	return id
}
