package solver

import (
	"math"
	"testing"

	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func referenceDataset() *candidate.Dataset {
	return &candidate.Dataset{
		Name: "reference",
		Candidates: []candidate.Candidate{
			mk("B", 50, 15),
			mk("C", 50, 10),
			mk("A", 100, 20),
		},
		Report: candidate.Report{
			Schema:   candidate.SchemaActions,
			RowsRead: 4,
			Accepted: 3,
			Discards: []candidate.Discard{
				{Line: 5, ID: "D", Reason: candidate.ReasonOverBudget},
			},
		},
	}
}

func fixedRunner(t *testing.T, logger *zap.Logger, options Options) *Runner {
	t.Helper()
	runner, err := NewRunner(logger, options)
	require.NoError(t, err)
	runner.newID = func() string { return "run-1" }
	return runner
}

func TestNewRunnerRejectsInvalidBudgets(t *testing.T) {
	for _, budget := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewRunner(nil, Options{Budget: budget})
		assert.ErrorIs(t, err, ErrInvalidBudget, "budget %v", budget)
	}
}

func TestNewRunnerDefaultsThreshold(t *testing.T) {
	runner, err := NewRunner(nil, Options{Budget: 150})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultExactWarnThreshold, runner.options.ExactWarnThreshold)
	assert.Equal(t, 150.0, runner.Budget())
}

func TestRunSummaries(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})
	dataset := referenceDataset()

	exact, err := runner.Run(StrategyExact, dataset)
	require.NoError(t, err)
	assert.Equal(t, "run-1", exact.RunID)
	assert.Equal(t, "reference", exact.Dataset)
	assert.Equal(t, "exact", exact.Strategy)
	assert.Equal(t, 150.0, exact.Budget)
	assert.Equal(t, 3, exact.Candidates)
	assert.Equal(t, 1, exact.Discarded)
	assert.ElementsMatch(t, []string{"A", "B"}, exact.Selected)
	assert.Equal(t, 150.0, exact.TotalCost)
	assert.Equal(t, 35.0, exact.TotalProfit)
	assert.Equal(t, 100.0, exact.BudgetUsedPercent)
	assert.Equal(t, uint64(7), exact.SubsetsEvaluated)
	assert.Positive(t, exact.AuxBytes)
	assert.NotEmpty(t, exact.Duration)
	assert.Empty(t, exact.Notes)

	greedy, err := runner.Run(StrategyGreedy, dataset)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, greedy.Selected)
	assert.Equal(t, 25.0, greedy.TotalProfit)
	assert.Zero(t, greedy.SubsetsEvaluated)
}

func TestRunRejectsUnknownStrategyAndNilDataset(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})

	_, err := runner.Run(Strategy("simplex"), referenceDataset())
	assert.Error(t, err)

	_, err = runner.Run(StrategyExact, nil)
	assert.Error(t, err)
}

func TestRunWarnsAboveThreshold(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	runner := fixedRunner(t, zap.New(core), Options{Budget: 150, ExactWarnThreshold: 2})

	summary, err := runner.Run(StrategyExact, referenceDataset())
	require.NoError(t, err)
	assert.Equal(t, 35.0, summary.TotalProfit, "exhaustive search still completes")
	require.Len(t, summary.Notes, 1)
	assert.Contains(t, summary.Notes[0], "exhaustive search over 3 candidates")

	entries := logs.FilterField(zap.String("op", "solver.Run")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(3), entries[0].ContextMap()["candidates"])

	greedy, err := runner.Run(StrategyGreedy, referenceDataset())
	require.NoError(t, err)
	assert.Empty(t, greedy.Notes)
	assert.Equal(t, 1, logs.Len())
}

func TestRunCarriesInputDiagnostics(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})
	dataset := referenceDataset()
	dataset.Report.Diagnostics = []string{"unrecognized header"}

	summary, err := runner.Run(StrategyGreedy, dataset)
	require.NoError(t, err)
	assert.Equal(t, []string{"input: unrecognized header"}, summary.Notes)
}

func TestCompareAnnotatesGap(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})

	summaries, err := runner.Compare(referenceDataset())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	exact := testutil.FindSummary(summaries, "exact")
	greedy := testutil.FindSummary(summaries, "greedy")
	require.NotNil(t, exact)
	require.NotNil(t, greedy)
	assert.Empty(t, exact.Notes)
	assert.Equal(t, []string{"heuristic reached 71.43% of the exhaustive optimum"}, greedy.Notes)
}

func TestCompareMatchedOptimum(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})
	dataset := referenceDataset()
	dataset.Candidates = []candidate.Candidate{mk("A", 100, 20), mk("B", 50, 15), mk("C", 50, 10)}

	summaries, err := runner.Compare(dataset)
	require.NoError(t, err)
	greedy := testutil.FindSummary(summaries, "greedy")
	require.NotNil(t, greedy)
	assert.Equal(t, []string{"heuristic matched the exhaustive optimum"}, greedy.Notes)
}

func TestRunAllSingleStrategyHasNoGapNote(t *testing.T) {
	runner := fixedRunner(t, nil, Options{Budget: 150})

	summaries, err := runner.RunAll([]Strategy{StrategyGreedy}, referenceDataset())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Notes)
}
