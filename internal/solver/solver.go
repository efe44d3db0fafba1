// Package solver selects candidates under a budget ceiling.
//
// Two strategies are provided. Exact enumerates every subset and returns one
// of maximal profit; its running time doubles with each candidate, so it is
// only practical for a few dozen candidates at most. Greedy ranks candidates
// by profit/cost ratio and fills the budget in that order; it is fast but
// offers no optimality guarantee.
//
// Both strategies are pure functions of (candidates, budget): they never
// modify the candidate slice and keep no state between calls.
package solver

import (
	"fmt"
	"strings"

	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

// Solution is the outcome of one solve.
type Solution struct {
	Selected    []string
	TotalCost   float64
	TotalProfit float64
}

// Stats describes the work a solve performed.
type Stats struct {
	// Evaluated counts subsets examined by Exact or candidates examined by Greedy.
	Evaluated uint64
	// AuxBytes estimates the working memory held by the solver beyond its input.
	AuxBytes int64
}

// Strategy names a selection algorithm.
type Strategy string

const (
	StrategyExact  Strategy = "exact"
	StrategyGreedy Strategy = "greedy"
)

// Strategies lists every strategy in comparison order.
var Strategies = []Strategy{StrategyExact, StrategyGreedy}

// Func is the signature shared by the strategies.
type Func func(candidates []candidate.Candidate, budget float64) (Solution, Stats)

// ParseStrategy resolves a strategy name. Common aliases are accepted.
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "exact", "brute-force", "bruteforce", "exhaustive":
		return StrategyExact, nil
	case "greedy", "heuristic", "ratio":
		return StrategyGreedy, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (expected %s or %s)", value, StrategyExact, StrategyGreedy)
	}
}

// Func returns the implementation of s.
func (s Strategy) Func() (Func, error) {
	switch s {
	case StrategyExact:
		return Exact, nil
	case StrategyGreedy:
		return Greedy, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", string(s))
	}
}

func idsOf(candidates []candidate.Candidate, indices []int) []string {
	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		ids = append(ids, candidates[i].ID)
	}
	return ids
}

// centsOf rounds each candidate cost to whole cents.
func centsOf(candidates []candidate.Candidate) []int64 {
	cents := make([]int64, len(candidates))
	for i, c := range candidates {
		cents[i] = mathutil.ToCents(c.Cost)
	}
	return cents
}
