package integration

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/internal/config"
	"github.com/iwvelando/budget-select/internal/solver"
	"github.com/iwvelando/budget-select/pkg/output"
	"github.com/iwvelando/budget-select/pkg/testutil"
	"go.uber.org/zap"
)

// TestReferenceDatasetBaseline runs the reference dataset through the same
// steps as the solve command and checks the known results.
func TestReferenceDatasetBaseline(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() warnings = %v", warnings)
	}

	entry, err := conf.FindDataset("reference")
	if err != nil {
		t.Fatalf("FindDataset() error = %v", err)
	}

	dataset, err := candidate.LoadFile(logger, entry.Name, entry.Path, conf.Budget)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if dataset.Schema != candidate.SchemaActions {
		t.Errorf("Expected schema %s, got %s", candidate.SchemaActions, dataset.Schema)
	}
	if dataset.Report.RowsRead != 10 {
		t.Errorf("Expected 10 rows read, got %d", dataset.Report.RowsRead)
	}

	expectedDiscards := map[candidate.DiscardReason]int{
		candidate.ReasonOverBudget:      1,
		candidate.ReasonNonPositiveCost: 1,
		candidate.ReasonInvalidCost:     1,
		candidate.ReasonInvalidProfit:   1,
	}
	counts := dataset.Report.DiscardCounts()
	for reason, want := range expectedDiscards {
		if counts[reason] != want {
			t.Errorf("Expected %d %s discards, got %d", want, reason, counts[reason])
		}
	}

	expectedIDs := []string{"Action-1", "Action-2", "Action-3", "Action-5", "Action-8", "Action-9"}
	if len(dataset.Candidates) != len(expectedIDs) {
		t.Fatalf("Expected %d candidates, got %d", len(expectedIDs), len(dataset.Candidates))
	}
	for i, id := range expectedIDs {
		if dataset.Candidates[i].ID != id {
			t.Errorf("Candidate %d: expected %s, got %s", i, id, dataset.Candidates[i].ID)
		}
	}

	runner, err := solver.NewRunner(logger, solver.Options{
		Budget:             conf.Budget,
		ExactWarnThreshold: conf.Solver.ExactWarnThreshold,
	})
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	summaries, err := runner.Compare(dataset)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	baselineChecks := []struct {
		strategy string
		cost     float64
		profit   float64
	}{
		{"exact", 950, 135},
		{"greedy", 950, 135},
	}
	for _, check := range baselineChecks {
		summary := testutil.FindSummary(summaries, check.strategy)
		if summary == nil {
			t.Errorf("Missing %s summary", check.strategy)
			continue
		}
		if diff := summary.TotalCost - check.cost; diff > 0.01 || diff < -0.01 {
			t.Errorf("%s: expected cost %.2f, got %.2f", check.strategy, check.cost, summary.TotalCost)
		}
		if diff := summary.TotalProfit - check.profit; diff > 0.01 || diff < -0.01 {
			t.Errorf("%s: expected profit %.2f, got %.2f", check.strategy, check.profit, summary.TotalProfit)
		}
	}

	exact := testutil.FindSummary(summaries, "exact")
	if exact != nil && exact.SubsetsEvaluated != 63 {
		t.Errorf("Expected 63 subsets evaluated, got %d", exact.SubsetsEvaluated)
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, conf.Output.Format, summaries, conf.Currency); err != nil {
		t.Fatalf("output.Write() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("output.Write() produced no output")
	}

	records, err := csv.NewReader(bytes.NewReader([]byte(output.CsvString(summaries)))).ReadAll()
	if err != nil {
		t.Fatalf("CsvString() produced unreadable CSV: %v", err)
	}
	if len(records) != len(summaries)+1 {
		t.Errorf("Expected %d CSV records, got %d", len(summaries)+1, len(records))
	}
}

// TestGreedyFallsShortOnAdversarialInput demonstrates that the heuristic is
// not optimal when an equal-ratio tie is resolved against the optimum.
func TestGreedyFallsShortOnAdversarialInput(t *testing.T) {
	path := testutil.WriteDataset(t, t.TempDir(), "adversarial.csv", []string{
		"name;price;profit",
		"B;50;30",
		"C;50;20",
		"A;100;20",
	})

	dataset, err := candidate.LoadFile(zap.NewNop(), "", path, 150)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if dataset.Name != "adversarial" {
		t.Errorf("Expected dataset name from file, got %q", dataset.Name)
	}

	runner, err := solver.NewRunner(zap.NewNop(), solver.Options{Budget: 150})
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	summaries, err := runner.Compare(dataset)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	exact := testutil.FindSummary(summaries, "exact")
	greedy := testutil.FindSummary(summaries, "greedy")
	if exact == nil || greedy == nil {
		t.Fatalf("Missing summaries: %+v", summaries)
	}
	if exact.TotalProfit-35 > 1e-9 || 35-exact.TotalProfit > 1e-9 {
		t.Errorf("Expected exact profit 35, got %v", exact.TotalProfit)
	}
	if greedy.TotalProfit-25 > 1e-9 || 25-greedy.TotalProfit > 1e-9 {
		t.Errorf("Expected greedy profit 25, got %v", greedy.TotalProfit)
	}
	if len(greedy.Notes) != 1 || greedy.Notes[0] != "heuristic reached 71.43% of the exhaustive optimum" {
		t.Errorf("Unexpected greedy notes %v", greedy.Notes)
	}
}
