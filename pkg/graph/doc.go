// Package graph builds and serializes the state graphs produced by the
// enumerators.
//
// A [Graph] is a directed graph of visited states with labeled edges.
// Node identity (used for edge wiring) and display label (shown to the
// user) are deliberately distinct: the DFS enumerators revisit state
// signatures along different paths, so several nodes can share one
// label while remaining separate vertices.
//
// # Builders
//
//   - [FromTrace]: DFS trace + parent map → tree
//   - [FromTable]: DP table → derivation DAG (one node per cell)
//
// # Highlighting
//
// [AcceptingPaths] computes the node set lying on root-to-goal-leaf
// paths; [Graph.Paint] applies the two-color scheme to it.
//
// # Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "dfs(0, 0)_1", "label": "dfs(0, 0)", "color": "orange"}],
//	  "edges": [{"from": "dfs(0, 0)_1", "to": "dfs(1, 1)_1", "label": "+1"}]
//	}
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
