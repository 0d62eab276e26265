package enumerate

import "fmt"

// Knapsack enumerates the 0/1 knapsack recursion tree.
//
// Each state is (i, w, v): the item index, the remaining capacity and
// the value accumulated so far. The root is (0, capacity, 0). From every
// non-terminal state two branches are explored in fixed order:
//
//  1. skip item i: (i+1, w, v)
//  2. pick item i: (i+1, w-weights[i], v+values[i]), only if w >= weights[i]
//
// The traversal terminates when i has advanced past the last item.
// Capacity is not validated: a capacity too small for every item simply
// means the pick guard never fires and only the skip spine is explored.
//
// weights and values must have equal length; callers validate this
// before enumeration (see errors.ValidateSameLength).
func Knapsack(weights, values []int, capacity int) Result {
	r := Result{Parents: make(map[string]Edge)}
	seen := counter{}

	var dfs func(i, w, v int, parent, label string)
	dfs = func(i, w, v int, parent, label string) {
		id := seen.next(fmt.Sprintf("dp(%d,%d,%d)", i, w, v))
		r.Trace = append(r.Trace, id)
		if parent != "" {
			r.Parents[id] = Edge{Parent: parent, Label: label}
		}

		if i >= len(weights) {
			return
		}

		dfs(i+1, w, v, id, fmt.Sprintf("Skip item %d", i))
		if w >= weights[i] {
			dfs(i+1, w-weights[i], v+values[i], id, fmt.Sprintf("Pick item %d", i))
		}
	}

	dfs(0, capacity, 0, "", "")
	return r
}

// BestLeafValue returns the maximum accumulated value over all terminal
// states of a knapsack DFS run. This equals the optimal knapsack value
// and is used to cross-check the DP table.
func BestLeafValue(weights []int, r Result) int {
	best := 0
	for _, id := range r.Trace {
		var i, w, v int
		if _, err := fmt.Sscanf(DisplayLabel(id), "dp(%d,%d,%d)", &i, &w, &v); err != nil {
			continue
		}
		if i == len(weights) && v > best {
			best = v
		}
	}
	return best
}
