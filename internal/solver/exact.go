package solver

import (
	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/internal/memsize"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

type exactWorkspace struct {
	enumerator *subsets
	costs      []int64
	best       []int
	selected   []string
}

// Exact returns a feasible subset of maximum total profit by examining every
// non-empty subset. The empty selection, with zero cost and zero profit, is
// the starting point, so a subset replaces the current best only when its
// cost fits the budget and its profit is strictly greater.
//
// Costs and the budget are compared in whole cents, so the reported total
// cost never exceeds the budget whatever the binary form of the amounts.
//
// When several subsets share the maximum profit the first one enumerated is
// kept. Enumeration runs by subset size and then lexicographically by input
// position; that order is an implementation detail and callers should not
// depend on which of the tied subsets is returned.
//
// Time is O(2^n · n). Working memory is O(n): subsets are generated one at a
// time and never collected.
func Exact(candidates []candidate.Candidate, budget float64) (Solution, Stats) {
	var (
		bestCents  int64
		bestProfit float64
		evaluated  uint64
	)
	costs := centsOf(candidates)
	limit := mathutil.FloorCents(budget)
	best := make([]int, 0, len(candidates))

	enumerator := newSubsets(len(candidates))
	for enumerator.Next() {
		evaluated++
		var (
			cents  int64
			profit float64
		)
		for _, i := range enumerator.Indices() {
			cents += costs[i]
			profit += candidates[i].ProfitValue
		}
		if cents <= limit && profit > bestProfit {
			bestCents = cents
			bestProfit = profit
			best = append(best[:0], enumerator.Indices()...)
		}
	}

	selected := idsOf(candidates, best)
	solution := Solution{Selected: selected, TotalCost: mathutil.FromCents(bestCents), TotalProfit: bestProfit}
	workspace := exactWorkspace{enumerator: enumerator, costs: costs, best: best, selected: selected}
	return solution, Stats{Evaluated: evaluated, AuxBytes: memsize.Estimate(workspace)}
}
