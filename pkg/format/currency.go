// Package format renders amounts for human-facing output.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns an amount with thousands separators followed by the unit
// label, e.g. "-1,234.56 F CFA". An empty unit yields the bare number.
func Currency(amount float64, unit string) string {
	formatted := NumericCurrency(amount)
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return formatted
	}
	return formatted + " " + unit
}

// NumericCurrency returns an amount without a unit but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 && math.Round(math.Abs(amount)*100) != 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(math.Abs(amount))
}

// Bytes renders a byte count using binary units (e.g., "1.5 KiB").
func Bytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
