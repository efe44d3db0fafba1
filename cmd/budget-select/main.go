package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iwvelando/budget-select/internal/config"
	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand once the persistent
// flags have been applied.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string
	budget       float64

	conf   *config.Configuration
	logger *zap.Logger
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadConfiguration reads the configuration file. A missing default file
// yields the built-in configuration; a missing file that was asked for by
// name is an error.
func loadConfiguration(path string, explicit bool) (*config.Configuration, bool, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, false, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), true, nil
	}
	return nil, false, err
}

func (a *app) setup(cmd *cobra.Command) error {
	conf, defaulted, err := loadConfiguration(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	if cmd.Flags().Changed("budget") {
		if err := validation.ValidateBudget(a.budget); err != nil {
			return err
		}
		conf.Budget = a.budget
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	if a.outputFormat != "" {
		conf.Output.Format = a.outputFormat
	}
	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if defaulted {
		logger.Debug("configuration file not found; using built-in defaults",
			zap.String("op", "main.setup"),
			zap.String("path", a.configPath),
		)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.setup"),
		)
	}

	a.conf = conf
	a.logger = logger
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "budget-select",
		Short: "Choose investments that maximize profit within a budget",
		Long: `budget-select reads candidate investments (identifier, cost, profit
percentage) from a ';'-separated file and selects the subset with the best
total profit whose cost fits the budget.

Two strategies are available: an exhaustive search that is exact but only
practical for small inputs, and a ratio-greedy heuristic that is fast but
not guaranteed optimal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv, json, yaml")
	flags.Float64Var(&a.budget, "budget", constants.DefaultBudget, "budget ceiling override")

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newDatasetsCmd(a))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
