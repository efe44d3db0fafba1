// Package output provides utilities for formatting and displaying solver results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/format"
	"github.com/iwvelando/budget-select/pkg/optimization"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var csvHeader = []string{
	"run_id",
	"dataset",
	"strategy",
	"budget",
	"candidates",
	"discarded",
	"selected_count",
	"selected",
	"total_cost",
	"total_profit",
	"budget_used_percent",
	"aux_bytes",
	"subsets_evaluated",
	"duration",
	"notes",
}

// Write renders summaries to w in the named format.
func Write(w io.Writer, outputFormat string, summaries []optimization.Summary, currency string) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, summaries, currency)
	case constants.OutputFormatCSV:
		return CsvFormat(w, summaries)
	case constants.OutputFormatJSON:
		return JSONFormat(w, summaries)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, summaries)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, summaries []optimization.Summary, currency string) error {
	p := message.NewPrinter(language.English)
	var buf bytes.Buffer

	for i, summary := range summaries {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "--- Results for dataset %s (%s) ---\n", summary.Dataset, summary.Strategy)
		fmt.Fprintf(&buf, "Run ID      | %s\n", summary.RunID)
		_, _ = p.Fprintf(&buf, "Candidates  | %d (%d discarded)\n", summary.Candidates, summary.Discarded)
		_, _ = p.Fprintf(&buf, "Selected    | %d\n", summary.SelectedCount())
		if len(summary.Selected) > 0 {
			fmt.Fprintf(&buf, "            | %s\n", strings.Join(summary.Selected, ", "))
		}
		fmt.Fprintf(&buf, "Total cost  | %s (%.2f%% of %s)\n",
			format.Currency(summary.TotalCost, currency),
			summary.BudgetUsedPercent,
			format.Currency(summary.Budget, currency))
		fmt.Fprintf(&buf, "Profit      | %s\n", format.Currency(summary.TotalProfit, currency))
		if summary.SubsetsEvaluated > 0 {
			_, _ = p.Fprintf(&buf, "Subsets     | %d\n", summary.SubsetsEvaluated)
		}
		fmt.Fprintf(&buf, "Aux memory  | %s\n", format.Bytes(summary.AuxBytes))
		fmt.Fprintf(&buf, "Duration    | %s\n", summary.Duration)
		for _, note := range summary.Notes {
			fmt.Fprintf(&buf, "Note        | %s\n", note)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// CsvFormat outputs in comma-separated value format, one row per summary.
func CsvFormat(w io.Writer, summaries []optimization.Summary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, summary := range summaries {
		subsets := ""
		if summary.SubsetsEvaluated > 0 {
			subsets = strconv.FormatUint(summary.SubsetsEvaluated, 10)
		}
		record := []string{
			summary.RunID,
			summary.Dataset,
			summary.Strategy,
			strconv.FormatFloat(summary.Budget, 'f', 2, 64),
			strconv.Itoa(summary.Candidates),
			strconv.Itoa(summary.Discarded),
			strconv.Itoa(summary.SelectedCount()),
			strings.Join(summary.Selected, " "),
			strconv.FormatFloat(summary.TotalCost, 'f', 2, 64),
			strconv.FormatFloat(summary.TotalProfit, 'f', 2, 64),
			strconv.FormatFloat(summary.BudgetUsedPercent, 'f', 2, 64),
			strconv.FormatInt(summary.AuxBytes, 10),
			subsets,
			summary.Duration,
			strings.Join(summary.Notes, "; "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CsvFormat rendering of summaries.
func CsvString(summaries []optimization.Summary) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, summaries); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat outputs summaries as an indented JSON array.
func JSONFormat(w io.Writer, summaries []optimization.Summary) error {
	if summaries == nil {
		summaries = []optimization.Summary{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summaries)
}

// YAMLFormat outputs summaries as a YAML sequence.
func YAMLFormat(w io.Writer, summaries []optimization.Summary) error {
	if summaries == nil {
		summaries = []optimization.Summary{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(summaries); err != nil {
		return err
	}
	return encoder.Close()
}
