package solver

import (
	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

func mk(id string, cost, profit float64) candidate.Candidate {
	return candidate.Candidate{ID: id, Cost: cost, ProfitValue: profit, Ratio: profit / cost}
}

func cloneCandidates(in []candidate.Candidate) []candidate.Candidate {
	out := make([]candidate.Candidate, len(in))
	copy(out, in)
	return out
}

// oracle finds the best feasible profit by walking every bitmask, independent
// of the enumerator used by Exact. Feasibility is judged in whole cents.
func oracle(candidates []candidate.Candidate, budget float64) (bestProfit float64, bestCost float64) {
	n := len(candidates)
	limit := mathutil.FloorCents(budget)
	for mask := 1; mask < 1<<n; mask++ {
		var (
			cents  int64
			profit float64
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				cents += mathutil.ToCents(candidates[i].Cost)
				profit += candidates[i].ProfitValue
			}
		}
		if cents <= limit && profit > bestProfit {
			bestProfit = profit
			bestCost = mathutil.FromCents(cents)
		}
	}
	return bestProfit, bestCost
}

func costOf(candidates []candidate.Candidate, ids []string) (cost, profit float64) {
	byID := make(map[string]candidate.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}
	for _, id := range ids {
		cost += byID[id].Cost
		profit += byID[id].ProfitValue
	}
	return cost, profit
}
