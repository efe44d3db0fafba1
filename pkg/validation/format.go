// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatJSON,
	constants.OutputFormatYAML,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %q", strings.Join(OutputFormats, ", "), format)
}

// ValidateBudget checks that a budget is a positive finite amount.
func ValidateBudget(budget float64) error {
	if !mathutil.IsFinite(budget) {
		return fmt.Errorf("budget must be finite, got %v", budget)
	}
	if budget <= 0 {
		return fmt.Errorf("budget must be positive, got %v", budget)
	}
	return nil
}
