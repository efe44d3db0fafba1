// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
)

// DatasetInfo represents dataset catalog information
type DatasetInfo struct {
	Name string
	Path string
}

// SolverInfo represents solver configuration information
type SolverInfo struct {
	ExactWarnThreshold int
}

// Processor handles configuration processing and validation
type Processor struct{}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{}
}

// ValidateConfiguration validates the configuration and returns warnings
func (p *Processor) ValidateConfiguration(solver SolverInfo, datasets []DatasetInfo) []string {
	var warnings []string

	if solver.ExactWarnThreshold > constants.ExactHardWarnThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"solver.exactWarnThreshold %d exceeds %d; exhaustive solves up to that size examine more than %d subsets",
			solver.ExactWarnThreshold, constants.ExactHardWarnThreshold, uint64(1)<<constants.ExactHardWarnThreshold))
	}

	seen := make(map[string]int, len(datasets))
	for i, dataset := range datasets {
		name := strings.ToLower(dataset.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("Dataset #%d has no name and can only be reached with --file", i+1))
		} else if first, ok := seen[name]; ok {
			warnings = append(warnings, fmt.Sprintf("Dataset '%s' is defined more than once (entries #%d and #%d); the first wins",
				dataset.Name, first+1, i+1))
		} else {
			seen[name] = i
		}

		if dataset.Path == "" {
			warnings = append(warnings, fmt.Sprintf("Dataset '%s' has an empty path", dataset.Name))
		}
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
