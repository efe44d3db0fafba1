// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/budget-select/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// PercentToFraction converts a percentage such as 12.5 into the fraction 0.125.
func PercentToFraction(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// ToCents converts a currency amount to whole cents, rounding to the nearest cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * constants.DecimalPrecision))
}

// FromCents converts whole cents back to a currency amount.
func FromCents(cents int64) float64 {
	return float64(cents) / constants.DecimalPrecision
}

// FloorCents converts a ceiling to the largest whole number of cents whose
// amount does not exceed it, so FromCents(FloorCents(x)) <= x always holds.
// NaN maps to math.MinInt64 and amounts beyond the int64 range saturate.
func FloorCents(amount float64) int64 {
	switch {
	case math.IsNaN(amount):
		return math.MinInt64
	case amount*constants.DecimalPrecision >= math.MaxInt64:
		return math.MaxInt64
	case amount*constants.DecimalPrecision <= math.MinInt64:
		return math.MinInt64
	}
	cents := int64(math.Round(amount * constants.DecimalPrecision))
	for FromCents(cents) > amount {
		cents--
	}
	return cents
}
