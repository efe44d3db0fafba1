package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/iwvelando/budget-select/pkg/constants"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type datasetEntry struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Present     bool   `json:"present" yaml:"present"`
}

func newDatasetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the configured datasets and whether their files exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]datasetEntry, 0, len(a.conf.Datasets))
			for _, dataset := range a.conf.Datasets {
				info, err := os.Stat(dataset.Path)
				entries = append(entries, datasetEntry{
					Name:        dataset.Name,
					Path:        dataset.Path,
					Description: dataset.Description,
					Present:     err == nil && !info.IsDir(),
				})
			}

			out := cmd.OutOrStdout()
			switch a.conf.Output.Format {
			case constants.OutputFormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			case constants.OutputFormatYAML:
				encoder := yaml.NewEncoder(out)
				if err := encoder.Encode(entries); err != nil {
					return err
				}
				return encoder.Close()
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATH\tSTATUS\tDESCRIPTION")
			for _, entry := range entries {
				status := "missing"
				if entry.Present {
					status = "present"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Name, entry.Path, status, entry.Description)
			}
			return tw.Flush()
		},
	}
}
