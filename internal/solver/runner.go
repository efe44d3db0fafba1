package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/mathutil"
	"github.com/iwvelando/budget-select/pkg/optimization"
	"go.uber.org/zap"
)

// ErrInvalidBudget indicates a budget that is not a positive finite number.
var ErrInvalidBudget = errors.New("budget must be a positive finite number")

// Options configures a Runner.
type Options struct {
	Budget             float64
	ExactWarnThreshold int
}

// Runner executes strategies against prepared datasets and reports the
// outcome as optimization summaries.
type Runner struct {
	logger  *zap.Logger
	options Options
	newID   func() string
}

// NewRunner constructs a Runner. A non-positive warn threshold falls back to
// constants.DefaultExactWarnThreshold.
func NewRunner(logger *zap.Logger, options Options) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if options.Budget <= 0 || !mathutil.IsFinite(options.Budget) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBudget, options.Budget)
	}
	if options.ExactWarnThreshold <= 0 {
		options.ExactWarnThreshold = constants.DefaultExactWarnThreshold
	}
	return &Runner{logger: logger, options: options, newID: uuid.NewString}, nil
}

// Budget returns the ceiling every solve is run against.
func (r *Runner) Budget() float64 {
	return r.options.Budget
}

// Run solves dataset with strategy. The exhaustive strategy is never refused:
// above the warn threshold the run is logged as impractical and carries a
// note, but it still runs to completion.
func (r *Runner) Run(strategy Strategy, dataset *candidate.Dataset) (optimization.Summary, error) {
	if dataset == nil {
		return optimization.Summary{}, fmt.Errorf("dataset cannot be nil")
	}
	solve, err := strategy.Func()
	if err != nil {
		return optimization.Summary{}, err
	}

	runID := r.newID()
	n := len(dataset.Candidates)
	var notes []string
	for _, diagnostic := range dataset.Report.Diagnostics {
		notes = append(notes, "input: "+diagnostic)
	}

	if strategy == StrategyExact && n > r.options.ExactWarnThreshold {
		note := fmt.Sprintf("exhaustive search over %d candidates examines %.3g subsets and may not finish in practical time",
			n, math.Ldexp(1, n)-1)
		notes = append(notes, note)
		r.logger.Warn(note,
			zap.String("op", "solver.Run"),
			zap.String("runId", runID),
			zap.String("dataset", dataset.Name),
			zap.Int("candidates", n),
			zap.Int("threshold", r.options.ExactWarnThreshold),
		)
	}

	r.logger.Debug("solve started",
		zap.String("op", "solver.Run"),
		zap.String("runId", runID),
		zap.String("dataset", dataset.Name),
		zap.String("strategy", string(strategy)),
		zap.Int("candidates", n),
		zap.Float64("budget", r.options.Budget),
	)

	start := time.Now()
	solution, stats := solve(dataset.Candidates, r.options.Budget)
	elapsed := time.Since(start)

	summary := optimization.Summary{
		RunID:             runID,
		Dataset:           dataset.Name,
		Strategy:          string(strategy),
		Budget:            r.options.Budget,
		Candidates:        n,
		Discarded:         dataset.Report.Discarded(),
		Selected:          solution.Selected,
		TotalCost:         solution.TotalCost,
		TotalProfit:       solution.TotalProfit,
		BudgetUsedPercent: mathutil.Round(mathutil.CalculatePercentage(solution.TotalCost, r.options.Budget)),
		AuxBytes:          stats.AuxBytes,
		Duration:          elapsed.String(),
		Elapsed:           elapsed,
		Notes:             notes,
	}
	if strategy == StrategyExact {
		summary.SubsetsEvaluated = stats.Evaluated
	}

	r.logger.Info("solve completed",
		zap.String("op", "solver.Run"),
		zap.String("runId", runID),
		zap.String("dataset", dataset.Name),
		zap.String("strategy", string(strategy)),
		zap.Int("candidates", n),
		zap.Int("selected", len(solution.Selected)),
		zap.Float64("totalCost", solution.TotalCost),
		zap.Float64("totalProfit", solution.TotalProfit),
		zap.Int64("auxBytes", stats.AuxBytes),
		zap.Uint64("evaluated", stats.Evaluated),
		zap.Duration("duration", elapsed),
	)

	return summary, nil
}

// RunAll solves dataset with each strategy in order. When both the exhaustive
// and the greedy result are present, the greedy summary is annotated with how
// close it came to the optimum.
func (r *Runner) RunAll(strategies []Strategy, dataset *candidate.Dataset) ([]optimization.Summary, error) {
	summaries := make([]optimization.Summary, 0, len(strategies))
	for _, strategy := range strategies {
		summary, err := r.Run(strategy, dataset)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", strategy, err)
		}
		summaries = append(summaries, summary)
	}
	annotateGap(summaries)
	return summaries, nil
}

// Compare solves dataset with every strategy.
func (r *Runner) Compare(dataset *candidate.Dataset) ([]optimization.Summary, error) {
	return r.RunAll(Strategies, dataset)
}

func annotateGap(summaries []optimization.Summary) {
	var exact, greedy *optimization.Summary
	for i := range summaries {
		switch Strategy(summaries[i].Strategy) {
		case StrategyExact:
			exact = &summaries[i]
		case StrategyGreedy:
			greedy = &summaries[i]
		}
	}
	if exact == nil || greedy == nil {
		return
	}

	switch {
	case mathutil.WithinTolerance(greedy.TotalProfit, exact.TotalProfit, constants.CurrencyTolerance):
		greedy.Notes = append(greedy.Notes, "heuristic matched the exhaustive optimum")
	case exact.TotalProfit > 0:
		greedy.Notes = append(greedy.Notes, fmt.Sprintf("heuristic reached %.2f%% of the exhaustive optimum",
			mathutil.CalculatePercentage(greedy.TotalProfit, exact.TotalProfit)))
	default:
		greedy.Notes = append(greedy.Notes, fmt.Sprintf("heuristic profit differs from the exhaustive optimum by %.2f",
			exact.TotalProfit-greedy.TotalProfit))
	}
}
