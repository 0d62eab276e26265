package enumerate

import "fmt"

// TargetSumResult extends Result with the goal bookkeeping specific to
// the Target Sum Ways problem.
type TargetSumResult struct {
	Result

	// GoalLeaves lists the identities of terminal states whose running
	// sum equals the target, in visitation order. The set is never
	// mutated after the run completes.
	GoalLeaves []string

	// Ways counts the sign assignments reaching the target. It always
	// equals len(GoalLeaves).
	Ways int
}

// TargetSum enumerates the Target Sum Ways recursion tree.
//
// Each state is (i, sum): the index into nums and the running sum after
// signing the first i elements. The root is (0, 0). From every
// non-terminal state both branches are explored unconditionally, in
// fixed order: first +nums[i], then -nums[i].
//
// At a terminal state (i == len(nums)) the running sum is compared to
// target; on equality the leaf is recorded as a goal leaf and the ways
// counter is incremented.
func TargetSum(nums []int, target int) TargetSumResult {
	r := TargetSumResult{Result: Result{Parents: make(map[string]Edge)}}
	seen := counter{}

	var dfs func(i, sum int, parent, label string)
	dfs = func(i, sum int, parent, label string) {
		id := seen.next(fmt.Sprintf("dfs(%d, %d)", i, sum))
		r.Trace = append(r.Trace, id)
		if parent != "" {
			r.Parents[id] = Edge{Parent: parent, Label: label}
		}

		if i == len(nums) {
			if sum == target {
				r.GoalLeaves = append(r.GoalLeaves, id)
				r.Ways++
			}
			return
		}

		dfs(i+1, sum+nums[i], id, fmt.Sprintf("+%d", nums[i]))
		dfs(i+1, sum-nums[i], id, fmt.Sprintf("-%d", nums[i]))
	}

	dfs(0, 0, "", "")
	return r
}
