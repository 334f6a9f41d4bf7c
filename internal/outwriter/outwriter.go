// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResults prints a scored table using the configured output format.
func (ow *OutWriter) WriteResults(result schema.ResultTable, cfg *contract.Config, duration time.Duration) error {
	return PrintResults(result, cfg, duration)
}

// WriteMethod prints the procedure and the active criteria using the configured output format.
func (ow *OutWriter) WriteMethod(spec schema.CriteriaSpec, criteria []string, cfg *contract.Config) error {
	return PrintMethod(spec, criteria, cfg)
}

// GetMaxTableLabelWidth calculates the maximum width for alternative labels
// in table output based on terminal width and the number of columns.
func GetMaxTableLabelWidth(cfg *contract.Config, numCriteria int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Score + Label with borders/padding
	baseWidth := 30

	// Every criterion column takes roughly a formatted number
	baseWidth += 12 * numCriteria

	if cfg.Detail {
		baseWidth += 2 * (cfg.Precision + 8) // Best Dist + Worst Dist
	}

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 50 {
		return 50
	}
	return available
}
