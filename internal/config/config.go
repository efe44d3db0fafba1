// Package config defines the data structures related to configuration and
// includes functions for loading, normalizing and validating it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/budget-select/pkg/configprocessor"
	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/iwvelando/budget-select/pkg/mathutil"
	"github.com/spf13/viper"
)

// ErrDatasetNotFound indicates a dataset name that is not in the catalog.
var ErrDatasetNotFound = errors.New("dataset not found")

// Configuration holds all configuration for budget-select.
type Configuration struct {
	Budget   float64         `yaml:"budget" mapstructure:"budget"`
	Currency string          `yaml:"currency,omitempty" mapstructure:"currency"`
	Solver   SolverConfig    `yaml:"solver,omitempty" mapstructure:"solver"`
	Datasets []DatasetConfig `yaml:"datasets,omitempty" mapstructure:"datasets"`
	Logging  LoggingConfig   `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig    `yaml:"output,omitempty" mapstructure:"output"`

	applied []string
}

// SolverConfig tunes the solver runner.
type SolverConfig struct {
	// ExactWarnThreshold is the candidate count above which an exhaustive
	// solve is flagged as impractical.
	ExactWarnThreshold int `yaml:"exactWarnThreshold,omitempty" mapstructure:"exactWarnThreshold"`
}

// DatasetConfig names a candidate file.
type DatasetConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Path        string `yaml:"path" mapstructure:"path"`
	Description string `yaml:"description,omitempty" mapstructure:"description"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json, yaml
}

// Default returns the configuration used when no file is present: the
// standard budget and the three datasets shipped under data/.
func Default() *Configuration {
	conf := &Configuration{
		Datasets: []DatasetConfig{
			{Name: "data_test", Path: "data/data_test.csv", Description: "reference set of 20 actions"},
			{Name: "dataset1", Path: "data/dataset1_Python+P3.csv", Description: "bulk dataset 1"},
			{Name: "dataset2", Path: "data/dataset2_Python+P3.csv", Description: "bulk dataset 2"},
		},
	}
	conf.Normalize()
	return conf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Relative dataset paths are resolved against the
// directory holding the file. The result is normalized but not validated.
func LoadConfiguration(configPath string) (*Configuration, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
	}
	configuration, err := LoadConfigurationFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	configuration.resolveDatasetPaths(filepath.Dir(configPath))
	return configuration, nil
}

// LoadConfigurationFromReader decodes YAML configuration from r. Keys present
// in the document can be overridden by BUDGET_SELECT_ environment variables,
// e.g. BUDGET_SELECT_BUDGET.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix("BUDGET_SELECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	configuration.applied = configuration.Normalize()
	return &configuration, nil
}

// Normalize applies defaults and trims string values. It returns a note for
// every default it had to apply.
func (c *Configuration) Normalize() []string {
	var applied []string

	if c.Budget == 0 {
		c.Budget = constants.DefaultBudget
		applied = append(applied, fmt.Sprintf("budget not set; using default %.2f", constants.DefaultBudget))
	}

	c.Currency = strings.TrimSpace(c.Currency)
	if c.Currency == "" {
		c.Currency = constants.DefaultCurrency
	}

	if c.Solver.ExactWarnThreshold <= 0 {
		c.Solver.ExactWarnThreshold = constants.DefaultExactWarnThreshold
	}

	for i := range c.Datasets {
		c.Datasets[i].Name = strings.TrimSpace(c.Datasets[i].Name)
		c.Datasets[i].Path = strings.TrimSpace(c.Datasets[i].Path)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}

	return applied
}

// Validate returns an error for settings no command can run with.
func (c *Configuration) Validate() error {
	if c.Budget <= 0 || !mathutil.IsFinite(c.Budget) {
		return fmt.Errorf("budget must be a positive finite number, got %v", c.Budget)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	datasets := make([]configprocessor.DatasetInfo, 0, len(c.Datasets))
	for _, dataset := range c.Datasets {
		datasets = append(datasets, configprocessor.DatasetInfo{
			Name: dataset.Name,
			Path: dataset.Path,
		})
	}

	warnings := append([]string(nil), c.applied...)
	processor := configprocessor.NewProcessor()
	warnings = append(warnings, processor.ValidateConfiguration(configprocessor.SolverInfo{
		ExactWarnThreshold: c.Solver.ExactWarnThreshold,
	}, datasets)...)
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

func (c *Configuration) resolveDatasetPaths(base string) {
	for i := range c.Datasets {
		path := c.Datasets[i].Path
		if path == "" || filepath.IsAbs(path) {
			continue
		}
		c.Datasets[i].Path = filepath.Join(base, path)
	}
}

// FindDataset returns the catalog entry called name.
func (c *Configuration) FindDataset(name string) (DatasetConfig, error) {
	for _, dataset := range c.Datasets {
		if strings.EqualFold(dataset.Name, strings.TrimSpace(name)) {
			return dataset, nil
		}
	}
	names := make([]string, 0, len(c.Datasets))
	for _, dataset := range c.Datasets {
		names = append(names, dataset.Name)
	}
	return DatasetConfig{}, fmt.Errorf("%w: %q (available: %s)", ErrDatasetNotFound, name, strings.Join(names, ", "))
}
