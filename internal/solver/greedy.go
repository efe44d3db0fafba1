package solver

import (
	"sort"

	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/internal/memsize"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

type greedyWorkspace struct {
	order    []int
	costs    []int64
	taken    []bool
	selected []string
}

// Greedy ranks candidates by descending profit/cost ratio and takes each one
// whose cost fits the remaining budget. A candidate that does not fit is
// skipped for good; nothing is revisited or split. Equal ratios keep their
// input order, so the result is reproducible.
//
// Costs and the budget are compared in whole cents, the same arithmetic Exact
// uses. Total profit is summed in input order, so a selection Exact also
// examines reports the identical profit. The result always respects the
// budget but is not necessarily the most profitable selection.
//
// Time is O(n log n) for the sort; working memory is O(n) index bookkeeping.
func Greedy(candidates []candidate.Candidate, budget float64) (Solution, Stats) {
	costs := centsOf(candidates)
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return candidates[order[i]].Ratio > candidates[order[j]].Ratio
	})

	remaining := mathutil.FloorCents(budget)
	taken := make([]bool, len(candidates))
	selected := make([]string, 0, len(candidates))
	var totalCents int64
	for _, i := range order {
		if costs[i] > remaining {
			continue
		}
		taken[i] = true
		selected = append(selected, candidates[i].ID)
		remaining -= costs[i]
		totalCents += costs[i]
	}

	var totalProfit float64
	for i, ok := range taken {
		if ok {
			totalProfit += candidates[i].ProfitValue
		}
	}

	solution := Solution{Selected: selected, TotalCost: mathutil.FromCents(totalCents), TotalProfit: totalProfit}
	workspace := greedyWorkspace{order: order, costs: costs, taken: taken, selected: selected}
	return solution, Stats{Evaluated: uint64(len(order)), AuxBytes: memsize.Estimate(workspace)}
}
