package configprocessor

import (
	"strings"
	"testing"
)

func TestNewProcessor(t *testing.T) {
	processor := NewProcessor()
	if processor == nil {
		t.Error("NewProcessor() returned nil")
	}
}

func TestProcessor_ValidateConfiguration(t *testing.T) {
	processor := NewProcessor()

	tests := []struct {
		name             string
		solver           SolverInfo
		datasets         []DatasetInfo
		expectedWarnings int
		contains         string
	}{
		{
			name:   "Valid configuration",
			solver: SolverInfo{ExactWarnThreshold: 25},
			datasets: []DatasetInfo{
				{Name: "data_test", Path: "data/data_test.csv"},
				{Name: "dataset1", Path: "data/dataset1.csv"},
			},
			expectedWarnings: 0,
		},
		{
			name:             "Empty catalog",
			solver:           SolverInfo{ExactWarnThreshold: 25},
			expectedWarnings: 0,
		},
		{
			name:             "Threshold at limit",
			solver:           SolverInfo{ExactWarnThreshold: 30},
			expectedWarnings: 0,
		},
		{
			name:             "Threshold above limit",
			solver:           SolverInfo{ExactWarnThreshold: 31},
			expectedWarnings: 1,
			contains:         "exceeds 30",
		},
		{
			name:   "Duplicate names differing in case",
			solver: SolverInfo{ExactWarnThreshold: 25},
			datasets: []DatasetInfo{
				{Name: "small", Path: "a.csv"},
				{Name: "Small", Path: "b.csv"},
			},
			expectedWarnings: 1,
			contains:         "entries #1 and #2",
		},
		{
			name:   "Empty path",
			solver: SolverInfo{ExactWarnThreshold: 25},
			datasets: []DatasetInfo{
				{Name: "small", Path: ""},
			},
			expectedWarnings: 1,
			contains:         "empty path",
		},
		{
			name:   "Unnamed dataset",
			solver: SolverInfo{ExactWarnThreshold: 25},
			datasets: []DatasetInfo{
				{Name: "", Path: "a.csv"},
			},
			expectedWarnings: 1,
			contains:         "has no name",
		},
		{
			name:   "Multiple issues",
			solver: SolverInfo{ExactWarnThreshold: 40},
			datasets: []DatasetInfo{
				{Name: "a", Path: ""},
				{Name: "a", Path: ""},
			},
			expectedWarnings: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := processor.ValidateConfiguration(tt.solver, tt.datasets)
			if len(warnings) != tt.expectedWarnings {
				t.Fatalf("ValidateConfiguration() got %d warnings, want %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("ValidateConfiguration() warning %q does not contain %q", warnings[0], tt.contains)
			}
		})
	}
}

func TestProcessor_ValidateConfigurationReturnsNilWhenClean(t *testing.T) {
	warnings := NewProcessor().ValidateConfiguration(SolverInfo{ExactWarnThreshold: 10}, nil)
	if warnings != nil {
		t.Errorf("ValidateConfiguration() = %v, want nil", warnings)
	}
}
