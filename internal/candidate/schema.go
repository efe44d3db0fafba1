package candidate

import (
	"fmt"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
)

// Schema identifies the header layout of a candidate file.
type Schema string

const (
	// SchemaActions is the reference layout: "Actions #", cost per share, profit after two years.
	SchemaActions Schema = "actions"

	// SchemaNamePriceProfit is the layout of the bulk datasets: name, price, profit.
	SchemaNamePriceProfit Schema = "name-price-profit"

	// SchemaPositional means the header was not recognized and the leading
	// columns are used as identifier, cost and profit.
	SchemaPositional Schema = "positional"
)

// DetectSchema inspects the header row. Every known layout maps positionally
// onto (identifier, cost text, profit text); an unrecognized header is not an
// error, it yields SchemaPositional together with diagnostics.
func DetectSchema(header []string) (Schema, []string) {
	var diagnostics []string
	if len(header) < constants.MinimumFields {
		diagnostics = append(diagnostics, fmt.Sprintf(
			"header has %d columns, expected at least %d", len(header), constants.MinimumFields))
	}
	if len(header) == 0 {
		return SchemaPositional, diagnostics
	}

	first := strings.ToLower(cleanHeaderCell(header[0]))
	switch {
	case strings.Contains(first, "action"):
		return SchemaActions, diagnostics
	case strings.Contains(first, "name"):
		return SchemaNamePriceProfit, diagnostics
	}

	diagnostics = append(diagnostics, fmt.Sprintf(
		"unrecognized header %q, using the first %d columns as identifier, cost and profit",
		cleanHeaderCell(header[0]), constants.MinimumFields))
	return SchemaPositional, diagnostics
}

// cleanHeaderCell drops byte order marks (raw or decoded as Latin-1) and
// surrounding whitespace.
func cleanHeaderCell(cell string) string {
	cell = strings.TrimPrefix(cell, "\ufeff")
	cell = strings.TrimPrefix(cell, "\u00ef\u00bb\u00bf")
	return strings.TrimSpace(cell)
}
