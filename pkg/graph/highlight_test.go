package graph

import (
	"testing"

	"github.com/matzehuels/recviz/pkg/enumerate"
)

func TestAcceptingPaths(t *testing.T) {
	r := enumerate.TargetSum([]int{1, 1, 1}, 1)
	highlighted := AcceptingPaths(r.Parents, r.GoalLeaves)

	// The root lies on every accepting path.
	if !highlighted[r.Root()] {
		t.Error("root not highlighted")
	}

	// Every goal leaf and every ancestor of one is in the set.
	for _, leaf := range r.GoalLeaves {
		cur := leaf
		for {
			if !highlighted[cur] {
				t.Errorf("node %q on an accepting path not highlighted", cur)
			}
			in, ok := r.Parents[cur]
			if !ok {
				break
			}
			cur = in.Parent
		}
	}

	// Conversely every highlighted node reaches a goal leaf downward:
	// check via the closure property that a highlighted non-leaf has a
	// highlighted child.
	children := make(map[string][]string)
	for id, in := range r.Parents {
		children[in.Parent] = append(children[in.Parent], id)
	}
	goals := make(map[string]bool)
	for _, leaf := range r.GoalLeaves {
		goals[leaf] = true
	}
	for id := range highlighted {
		if goals[id] {
			continue
		}
		found := false
		for _, ch := range children[id] {
			if highlighted[ch] {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("highlighted node %q has no highlighted child", id)
		}
	}
}

func TestAcceptingPathsNoGoals(t *testing.T) {
	r := enumerate.TargetSum([]int{1, 2}, 100)

	highlighted := AcceptingPaths(r.Parents, r.GoalLeaves)
	if len(highlighted) != 0 {
		t.Errorf("highlighted = %v, want empty", highlighted)
	}
}

func TestPaint(t *testing.T) {
	r := enumerate.TargetSum([]int{1, 1}, 0)
	g, err := FromTrace(r.Result)
	if err != nil {
		t.Fatalf("FromTrace() error = %v", err)
	}

	highlighted := AcceptingPaths(r.Parents, r.GoalLeaves)
	g.Paint(highlighted)

	for _, n := range g.Nodes() {
		want := ColorNormal
		if highlighted[n.ID] {
			want = ColorHighlight
		}
		if n.Color != want {
			t.Errorf("color of %q = %q, want %q", n.ID, n.Color, want)
		}
	}

	// Painting twice is a no-op.
	g.Paint(highlighted)
	for _, n := range g.Nodes() {
		if highlighted[n.ID] && n.Color != ColorHighlight {
			t.Errorf("repaint changed color of %q to %q", n.ID, n.Color)
		}
	}
}

func TestPaintUnknownIDs(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a", Label: "a"})

	// IDs not present in the graph are skipped.
	g.Paint(map[string]bool{"missing": true})

	n, _ := g.Node("a")
	if n.Color != ColorNormal {
		t.Errorf("color = %q, want %q", n.Color, ColorNormal)
	}
}
