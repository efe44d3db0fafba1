// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/budget-select/pkg/optimization"
	"golang.org/x/text/encoding/charmap"
)

// FindSummary finds the summary produced by strategy.
// Returns a pointer to the summary if found, nil otherwise.
func FindSummary(summaries []optimization.Summary, strategy string) *optimization.Summary {
	for i := range summaries {
		if summaries[i].Strategy == strategy {
			return &summaries[i]
		}
	}
	return nil
}

// WriteDataset writes lines as a Latin-1 encoded, newline-terminated file in
// dir and returns its path. The test fails if a line cannot be represented
// in Latin-1.
func WriteDataset(t testing.TB, dir, name string, lines []string) string {
	t.Helper()

	encoded, err := charmap.ISO8859_1.NewEncoder().String(strings.Join(lines, "\n") + "\n")
	if err != nil {
		t.Fatalf("failed to encode dataset %s: %v", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("failed to write dataset %s: %v", name, err)
	}
	return path
}
