package enumerate

// Table is the bottom-up 0/1 knapsack DP table.
//
// Cells[i][w] is the best achievable value using the first i items
// within capacity w, for i in [0..len(Weights)] and w in [0..capacity].
// Row 0 is all zeros; each following row derives from the previous one:
//
//	Cells[i][w] = Cells[i-1][w]                               if w < Weights[i-1]
//	Cells[i][w] = max(Cells[i-1][w],
//	              Cells[i-1][w-Weights[i-1]] + Values[i-1])   otherwise
type Table struct {
	Weights []int
	Values  []int
	Cells   [][]int
}

// BuildTable computes the complete DP table for the given instance.
// weights and values must have equal length (validated by callers).
// A negative capacity yields zero-width rows (no reachable cells).
// Construction is O(n*W) and never fails.
func BuildTable(weights, values []int, capacity int) Table {
	n := len(weights)
	width := capacity + 1
	if width < 0 {
		width = 0
	}
	cells := make([][]int, n+1)
	for i := range cells {
		cells[i] = make([]int, width)
	}

	for i := 1; i <= n; i++ {
		for w := 0; w <= capacity; w++ {
			cells[i][w] = cells[i-1][w]
			if w >= weights[i-1] {
				if pick := cells[i-1][w-weights[i-1]] + values[i-1]; pick > cells[i][w] {
					cells[i][w] = pick
				}
			}
		}
	}

	return Table{Weights: weights, Values: values, Cells: cells}
}

// Items returns the number of items n.
func (t Table) Items() int { return len(t.Cells) - 1 }

// Capacity returns the capacity W.
func (t Table) Capacity() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0]) - 1
}

// Optimal returns Cells[n][W], the optimal knapsack value, or 0 when
// the table has no cells.
func (t Table) Optimal() int {
	if t.Capacity() < 0 {
		return 0
	}
	return t.Cells[t.Items()][t.Capacity()]
}
