// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/topsis/schema"
)

// TableSource loads a decision table from a file.
// This allows the orchestration logic to be tested without real spreadsheets.
type TableSource interface {
	// ReadTable parses the file at path into a table. An empty sheet selects
	// the first worksheet of spreadsheet formats.
	ReadTable(ctx context.Context, path string, format schema.InputFormat, sheet string) (schema.Table, error)
}

// ResultWriter renders scoring output in the configured format.
type ResultWriter interface {
	// WriteResults writes a scored table.
	WriteResults(result schema.ResultTable, cfg *Config, duration time.Duration) error

	// WriteMethod writes the description of the procedure and the active criteria.
	WriteMethod(spec schema.CriteriaSpec, criteria []string, cfg *Config) error
}
