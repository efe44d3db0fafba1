package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iwvelando/budget-select/internal/candidate"
	"github.com/iwvelando/budget-select/internal/solver"
	"github.com/iwvelando/budget-select/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const strategyBoth = "both"

func newSolveCmd(a *app) *cobra.Command {
	var (
		file     string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "solve [dataset]",
		Short: "Select candidates from a catalog dataset or a file",
		Long: `Loads a dataset, discards rows that cannot be parsed or do not fit the
budget, and runs the chosen strategy. With --strategy both (the default) the
exhaustive and greedy results are reported side by side.

The dataset is either a name from the configuration catalog or a file given
with --file. An exhaustive solve over a large dataset is reported as
impractical but still runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies, err := parseStrategies(strategy)
			if err != nil {
				return err
			}

			name, path, err := a.resolveDataset(args, file)
			if err != nil {
				return err
			}

			dataset, err := candidate.LoadFile(a.logger, name, path, a.conf.Budget)
			if err != nil {
				return err
			}

			runner, err := solver.NewRunner(a.logger, solver.Options{
				Budget:             a.conf.Budget,
				ExactWarnThreshold: a.conf.Solver.ExactWarnThreshold,
			})
			if err != nil {
				return err
			}

			summaries, err := runner.RunAll(strategies, dataset)
			if err != nil {
				return err
			}

			a.logger.Debug("rendering results",
				zap.String("op", "main.solve"),
				zap.String("format", a.conf.Output.Format),
				zap.Int("summaries", len(summaries)),
			)
			return output.Write(cmd.OutOrStdout(), a.conf.Output.Format, summaries, a.conf.Currency)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a candidate file instead of a catalog dataset")
	cmd.Flags().StringVar(&strategy, "strategy", strategyBoth, "strategy to run: exact, greedy or both")
	return cmd
}

func parseStrategies(value string) ([]solver.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(value), strategyBoth) {
		return solver.Strategies, nil
	}
	strategy, err := solver.ParseStrategy(value)
	if err != nil {
		return nil, err
	}
	return []solver.Strategy{strategy}, nil
}

// resolveDataset maps the positional argument and --file onto a dataset name
// and a path. With --file the argument, when given, only names the run.
func (a *app) resolveDataset(args []string, file string) (string, string, error) {
	if file != "" {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if len(args) == 1 {
			name = args[0]
		}
		return name, file, nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("specify a dataset name or --file (see the datasets command)")
	}
	dataset, err := a.conf.FindDataset(args[0])
	if err != nil {
		return "", "", err
	}
	return dataset.Name, dataset.Path, nil
}
