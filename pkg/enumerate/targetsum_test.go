package enumerate

import (
	"fmt"
	"testing"
)

func TestTargetSumWays(t *testing.T) {
	tests := []struct {
		name   string
		nums   []int
		target int
		want   int
	}{
		{name: "classic", nums: []int{1, 1, 1, 1, 1}, target: 3, want: 5},
		{name: "three ones", nums: []int{1, 1, 1}, target: 1, want: 3},
		{name: "unreachable", nums: []int{1, 2}, target: 100, want: 0},
		{name: "parity mismatch", nums: []int{1, 1}, target: 1, want: 0},
		{name: "empty hits zero", nums: nil, target: 0, want: 1},
		{name: "empty misses nonzero", nums: nil, target: 3, want: 0},
		{name: "zeros double ways", nums: []int{0, 0}, target: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TargetSum(tt.nums, tt.target)
			if r.Ways != tt.want {
				t.Errorf("Ways = %d, want %d", r.Ways, tt.want)
			}
			if r.Ways != len(r.GoalLeaves) {
				t.Errorf("Ways = %d but len(GoalLeaves) = %d", r.Ways, len(r.GoalLeaves))
			}
		})
	}
}

func TestTargetSumWaysBruteForce(t *testing.T) {
	nums := []int{2, 1, 3, 1}
	for target := -8; target <= 8; target++ {
		r := TargetSum(nums, target)
		if want := bruteForceWays(nums, target); r.Ways != want {
			t.Errorf("target %d: Ways = %d, want %d", target, r.Ways, want)
		}
	}
}

// bruteForceWays counts sign assignments by iterating all 2^n bitmasks.
func bruteForceWays(nums []int, target int) int {
	ways := 0
	for mask := 0; mask < 1<<len(nums); mask++ {
		sum := 0
		for i, n := range nums {
			if mask&(1<<i) != 0 {
				sum += n
			} else {
				sum -= n
			}
		}
		if sum == target {
			ways++
		}
	}
	return ways
}

func TestTargetSumTreeShape(t *testing.T) {
	nums := []int{1, 2, 3}
	r := TargetSum(nums, 0)

	// Branching is unconditional: the tree is complete binary.
	want := 1<<(len(nums)+1) - 1
	if len(r.Trace) != want {
		t.Errorf("node count = %d, want %d", len(r.Trace), want)
	}

	if got := r.Root(); got != "dfs(0, 0)_1" {
		t.Errorf("Root() = %q, want %q", got, "dfs(0, 0)_1")
	}
}

func TestTargetSumPlusBeforeMinus(t *testing.T) {
	nums := []int{5}
	r := TargetSum(nums, 5)

	if got := DisplayLabel(r.Trace[1]); got != "dfs(1, 5)" {
		t.Errorf("first child = %q, want %q", got, "dfs(1, 5)")
	}
	if in := r.Parents[r.Trace[1]]; in.Label != "+5" {
		t.Errorf("first edge label = %q, want %q", in.Label, "+5")
	}
	if in := r.Parents[r.Trace[2]]; in.Label != "-5" {
		t.Errorf("second edge label = %q, want %q", in.Label, "-5")
	}
}

func TestTargetSumGoalLeavesAtMaxDepth(t *testing.T) {
	nums := []int{1, 1, 1, 1}
	r := TargetSum(nums, 2)

	for _, leaf := range r.GoalLeaves {
		var i, sum int
		if _, err := fmt.Sscanf(DisplayLabel(leaf), "dfs(%d, %d)", &i, &sum); err != nil {
			t.Fatalf("parse leaf %q: %v", leaf, err)
		}
		if i != len(nums) {
			t.Errorf("goal leaf %q at depth %d, want %d", leaf, i, len(nums))
		}
		if sum != 2 {
			t.Errorf("goal leaf %q has sum %d, want 2", leaf, sum)
		}
	}
}

func TestTargetSumNegativeSumSignature(t *testing.T) {
	r := TargetSum([]int{3}, -3)

	if len(r.GoalLeaves) != 1 {
		t.Fatalf("GoalLeaves = %v, want one leaf", r.GoalLeaves)
	}
	if got := DisplayLabel(r.GoalLeaves[0]); got != "dfs(1, -3)" {
		t.Errorf("goal leaf label = %q, want %q", got, "dfs(1, -3)")
	}
}
