package enumerate

import "testing"

func TestBuildTable(t *testing.T) {
	tab := BuildTable([]int{2, 3, 4}, []int{3, 4, 5}, 5)

	if got := tab.Items(); got != 3 {
		t.Errorf("Items() = %d, want 3", got)
	}
	if got := tab.Capacity(); got != 5 {
		t.Errorf("Capacity() = %d, want 5", got)
	}
	if got := tab.Optimal(); got != 7 {
		t.Errorf("Optimal() = %d, want 7", got)
	}

	// Row 0 is the no-items base case.
	for w, v := range tab.Cells[0] {
		if v != 0 {
			t.Errorf("Cells[0][%d] = %d, want 0", w, v)
		}
	}
}

func TestBuildTableRecurrence(t *testing.T) {
	weights := []int{1, 2, 3}
	values := []int{6, 10, 12}
	tab := BuildTable(weights, values, 5)

	for i := 1; i <= tab.Items(); i++ {
		for w := 0; w <= tab.Capacity(); w++ {
			want := tab.Cells[i-1][w]
			if w >= weights[i-1] {
				if pick := tab.Cells[i-1][w-weights[i-1]] + values[i-1]; pick > want {
					want = pick
				}
			}
			if tab.Cells[i][w] != want {
				t.Errorf("Cells[%d][%d] = %d, want %d", i, w, tab.Cells[i][w], want)
			}
		}
	}
}

func TestBuildTableMatchesDFS(t *testing.T) {
	// The table optimum must equal the best leaf of the brute-force tree.
	tests := []struct {
		name     string
		weights  []int
		values   []int
		capacity int
	}{
		{name: "small", weights: []int{2, 3, 4}, values: []int{3, 4, 5}, capacity: 5},
		{name: "all fit", weights: []int{1, 1, 1}, values: []int{2, 3, 4}, capacity: 10},
		{name: "none fit", weights: []int{6, 7}, values: []int{10, 20}, capacity: 5},
		{name: "tight", weights: []int{5}, values: []int{9}, capacity: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := BuildTable(tt.weights, tt.values, tt.capacity)
			r := Knapsack(tt.weights, tt.values, tt.capacity)
			if best := BestLeafValue(tt.weights, r); tab.Optimal() != best {
				t.Errorf("Optimal() = %d, DFS best leaf = %d", tab.Optimal(), best)
			}
		})
	}
}

func TestBuildTableZeroCapacity(t *testing.T) {
	tab := BuildTable([]int{1, 2}, []int{5, 6}, 0)

	if got := tab.Capacity(); got != 0 {
		t.Errorf("Capacity() = %d, want 0", got)
	}
	if got := tab.Optimal(); got != 0 {
		t.Errorf("Optimal() = %d, want 0", got)
	}
}

func TestBuildTableNegativeCapacity(t *testing.T) {
	// No cell is reachable: rows exist but have zero width.
	tab := BuildTable([]int{1, 2}, []int{3, 4}, -2)

	if got := len(tab.Cells); got != 3 {
		t.Fatalf("row count = %d, want 3", got)
	}
	for i, row := range tab.Cells {
		if len(row) != 0 {
			t.Errorf("len(Cells[%d]) = %d, want 0", i, len(row))
		}
	}
	if got := tab.Capacity(); got != -1 {
		t.Errorf("Capacity() = %d, want -1", got)
	}
	if got := tab.Optimal(); got != 0 {
		t.Errorf("Optimal() = %d, want 0", got)
	}
}

func TestBuildTableEmpty(t *testing.T) {
	tab := BuildTable(nil, nil, 3)

	if got := tab.Items(); got != 0 {
		t.Errorf("Items() = %d, want 0", got)
	}
	if got := tab.Optimal(); got != 0 {
		t.Errorf("Optimal() = %d, want 0", got)
	}
}
