// Package optimization provides shared data structures for solver results.
package optimization

import "time"

// Summary captures the result of a single solver run on one dataset.
type Summary struct {
	RunID             string        `json:"runId" yaml:"runId"`
	Dataset           string        `json:"dataset" yaml:"dataset"`
	Strategy          string        `json:"strategy" yaml:"strategy"`
	Budget            float64       `json:"budget" yaml:"budget"`
	Candidates        int           `json:"candidates" yaml:"candidates"`
	Discarded         int           `json:"discarded" yaml:"discarded"`
	Selected          []string      `json:"selected" yaml:"selected"`
	TotalCost         float64       `json:"totalCost" yaml:"totalCost"`
	TotalProfit       float64       `json:"totalProfit" yaml:"totalProfit"`
	BudgetUsedPercent float64       `json:"budgetUsedPercent" yaml:"budgetUsedPercent"`
	AuxBytes          int64         `json:"auxBytes" yaml:"auxBytes"`
	SubsetsEvaluated  uint64        `json:"subsetsEvaluated,omitempty" yaml:"subsetsEvaluated,omitempty"`
	Duration          string        `json:"duration" yaml:"duration"`
	Elapsed           time.Duration `json:"-" yaml:"-"`
	Notes             []string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SelectedCount returns the number of selected candidates.
func (s Summary) SelectedCount() int {
	return len(s.Selected)
}
