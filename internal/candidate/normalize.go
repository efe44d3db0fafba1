package candidate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/mathutil"
)

// ParseCost converts currency-like text into a number. Every character other
// than an ASCII digit or '.' is dropped first, so "1,234.50 F" parses as
// 1234.5. Signs are dropped too.
func ParseCost(text string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q has no digits", ErrInvalidCost, text)
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCost, text)
	}
	return value, nil
}

// ParsePercentage converts text such as "12%", "7,5%" or "3.25" into a
// fraction (0.12, 0.075, 0.0325).
func ParsePercentage(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "%"))
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q is empty", ErrInvalidProfit, text)
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || !mathutil.IsFinite(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProfit, text)
	}
	return mathutil.PercentToFraction(value), nil
}

// NormalizeRow parses one raw row. Exactly one of the results is meaningful:
// a nil Discard means the Record is valid.
func NormalizeRow(raw RawRecord) (Record, *Discard) {
	if len(raw.Fields) < constants.MinimumFields {
		return Record{}, &Discard{
			Line:   raw.Line,
			ID:     fieldAt(raw.Fields, 0),
			Reason: ReasonMissingField,
			Detail: fmt.Sprintf("expected %d fields, got %d", constants.MinimumFields, len(raw.Fields)),
		}
	}

	id := strings.TrimSpace(raw.Fields[0])
	if id == "" {
		return Record{}, &Discard{Line: raw.Line, Reason: ReasonMissingField, Detail: "empty identifier"}
	}

	cost, err := ParseCost(raw.Fields[1])
	if err != nil {
		return Record{}, &Discard{Line: raw.Line, ID: id, Reason: ReasonInvalidCost, Detail: err.Error()}
	}

	fraction, err := ParsePercentage(raw.Fields[2])
	if err != nil {
		return Record{}, &Discard{Line: raw.Line, ID: id, Reason: ReasonInvalidProfit, Detail: err.Error()}
	}

	profit := cost * fraction
	if !mathutil.IsFinite(profit) {
		return Record{}, &Discard{Line: raw.Line, ID: id, Reason: ReasonInvalidProfit, Detail: "profit value is not finite"}
	}

	return Record{
		Line:           raw.Line,
		ID:             id,
		Cost:           cost,
		ProfitFraction: fraction,
		ProfitValue:    profit,
	}, nil
}

// Normalize parses every row, keeping input order for the valid ones.
func Normalize(rows []RawRecord) ([]Record, []Discard) {
	records := make([]Record, 0, len(rows))
	var discards []Discard
	for _, raw := range rows {
		record, discard := NormalizeRow(raw)
		if discard != nil {
			discards = append(discards, *discard)
			continue
		}
		records = append(records, record)
	}
	return records, discards
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return strings.TrimSpace(fields[i])
	}
	return ""
}
