package candidate

import (
	"fmt"

	"github.com/iwvelando/budget-select/pkg/mathutil"
)

// Filter keeps records with 0 < cost <= ceiling and computes their profit/cost
// ratio. Costs are rounded to whole cents and compared against the ceiling in
// cents, the same arithmetic the solvers use, so every candidate fits the
// ceiling on its own. Output order follows input order.
func Filter(records []Record, ceiling float64) ([]Candidate, []Discard) {
	candidates := make([]Candidate, 0, len(records))
	var discards []Discard
	limit := mathutil.FloorCents(ceiling)
	for _, r := range records {
		cents := mathutil.ToCents(r.Cost)
		switch {
		case cents <= 0:
			discards = append(discards, Discard{
				Line: r.Line, ID: r.ID, Reason: ReasonNonPositiveCost,
				Detail: fmt.Sprintf("cost %g", r.Cost),
			})
		case cents > limit:
			discards = append(discards, Discard{
				Line: r.Line, ID: r.ID, Reason: ReasonOverBudget,
				Detail: fmt.Sprintf("cost %g exceeds ceiling %g", r.Cost, ceiling),
			})
		default:
			cost := mathutil.FromCents(cents)
			candidates = append(candidates, Candidate{
				ID:          r.ID,
				Cost:        cost,
				ProfitValue: r.ProfitValue,
				Ratio:       r.ProfitValue / cost,
			})
		}
	}
	return candidates, discards
}

// Prepare runs Normalize then Filter and reports what was kept and dropped.
// The returned report leaves Schema and Diagnostics for the caller to fill.
func Prepare(rows []RawRecord, ceiling float64) ([]Candidate, Report) {
	records, discards := Normalize(rows)
	candidates, filtered := Filter(records, ceiling)
	return candidates, Report{
		RowsRead: len(rows),
		Accepted: len(candidates),
		Discards: append(discards, filtered...),
	}
}
