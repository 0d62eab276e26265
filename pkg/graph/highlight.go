package graph

import "github.com/matzehuels/recviz/pkg/enumerate"

// AcceptingPaths computes the set of node identities lying on at least
// one root-to-goal-leaf path. For each goal leaf the parent chain is
// walked up to the root via direct lookup, so the cost is
// O(len(goalLeaves) * depth). Re-adding an already-collected node is a
// no-op, which makes the walk idempotent when accepting paths share a
// prefix.
func AcceptingPaths(parents map[string]enumerate.Edge, goalLeaves []string) map[string]bool {
	highlighted := make(map[string]bool)
	for _, leaf := range goalLeaves {
		cur := leaf
		for {
			highlighted[cur] = true
			in, ok := parents[cur]
			if !ok {
				break // reached the root
			}
			cur = in.Parent
		}
	}
	return highlighted
}

// Paint applies the two-color scheme: nodes in the highlighted set get
// [ColorHighlight], all others keep their current color.
func (g *Graph) Paint(highlighted map[string]bool) {
	for id := range highlighted {
		if n, ok := g.nodes[id]; ok {
			n.Color = ColorHighlight
		}
	}
}
