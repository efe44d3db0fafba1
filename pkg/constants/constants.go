// Package constants provides shared constants for the budget-select application.
package constants

// Budget constants
const (
	// DefaultBudget is the spending ceiling used when none is configured.
	DefaultBudget = 500000.0

	// DefaultCurrency is the unit label appended to rendered amounts.
	DefaultCurrency = "F CFA"
)

// Numeric constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Dataset file constants
const (
	// FieldSeparator separates columns in candidate files.
	FieldSeparator = ';'

	// MinimumFields is the number of leading columns a candidate row must carry:
	// identifier, cost text and profit percentage text.
	MinimumFields = 3
)

// Solver constants
const (
	// DefaultExactWarnThreshold is the candidate count above which an
	// exhaustive solve is reported as impractical.
	DefaultExactWarnThreshold = 25

	// ExactHardWarnThreshold is the configured threshold above which the
	// configuration itself is flagged.
	ExactHardWarnThreshold = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
