// Package candidate turns raw, inconsistently formatted investment rows into
// validated candidates ready for the solvers.
//
// The pipeline runs in two stages. Normalize parses the textual fields of each
// row into numbers and derives the profit value; Filter then applies the
// budget constraints and computes the profit/cost ratio. Rows rejected at
// either stage are not errors: they are returned as Discard entries so callers
// can report them.
package candidate

import (
	"errors"
	"sort"
)

var (
	// ErrInputMissing indicates the candidate source file does not exist.
	ErrInputMissing = errors.New("candidate input missing")

	// ErrInvalidCost indicates a cost field could not be converted to a number.
	ErrInvalidCost = errors.New("invalid cost")

	// ErrInvalidProfit indicates a profit percentage could not be converted to a number.
	ErrInvalidProfit = errors.New("invalid profit percentage")
)

// Candidate is a cleaned investment ready for selection. Solvers treat
// candidates as read-only.
type Candidate struct {
	ID          string  `json:"id" yaml:"id"`
	Cost        float64 `json:"cost" yaml:"cost"`
	ProfitValue float64 `json:"profitValue" yaml:"profitValue"`
	Ratio       float64 `json:"ratio" yaml:"ratio"`
}

// Record is a normalized row before budget filtering.
type Record struct {
	Line           int
	ID             string
	Cost           float64
	ProfitFraction float64
	ProfitValue    float64
}

// RawRecord is one data row of the input as read from the source. Fields are
// positional: identifier, cost text, profit percentage text, then anything
// else the source carries.
type RawRecord struct {
	Line   int
	Fields []string
}

// DiscardReason classifies why a row did not become a candidate.
type DiscardReason string

const (
	ReasonMissingField    DiscardReason = "missing_field"
	ReasonInvalidCost     DiscardReason = "invalid_cost"
	ReasonInvalidProfit   DiscardReason = "invalid_profit"
	ReasonNonPositiveCost DiscardReason = "non_positive_cost"
	ReasonOverBudget      DiscardReason = "over_budget"
)

// Discard describes a row excluded from the candidate set.
type Discard struct {
	Line   int           `json:"line" yaml:"line"`
	ID     string        `json:"id,omitempty" yaml:"id,omitempty"`
	Reason DiscardReason `json:"reason" yaml:"reason"`
	Detail string        `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report summarizes one run of the cleaning pipeline.
type Report struct {
	Schema      Schema
	Diagnostics []string
	RowsRead    int
	Accepted    int
	Discards    []Discard
}

// Discarded returns the number of rows excluded from the candidate set.
func (r Report) Discarded() int {
	return len(r.Discards)
}

// DiscardCounts returns the number of discards per reason.
func (r Report) DiscardCounts() map[DiscardReason]int {
	counts := make(map[DiscardReason]int)
	for _, d := range r.Discards {
		counts[d.Reason]++
	}
	return counts
}

// DiscardReasons returns the reasons present in the report in a stable order.
func (r Report) DiscardReasons() []DiscardReason {
	counts := r.DiscardCounts()
	reasons := make([]DiscardReason, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	return reasons
}
