package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/topsis/schema"
)

// LogRankHeader prints a header for a ranking run to stderr, so that
// machine-readable output on stdout stays clean.
func LogRankHeader(cfg *Config, table schema.Table, spec schema.CriteriaSpec) {
	name := filepath.Base(cfg.InputPath)
	if name == "" || name == "." {
		name = "stdin"
	}

	// Line 1: The input summary (file and shape)
	_, _ = fmt.Fprintf(os.Stderr, "🔎 Input: %s (%d alternatives × %d criteria)\n",
		name, table.NumAlternatives(), table.NumCriteria())

	// Line 2: The criteria being applied
	_, _ = fmt.Fprintf(os.Stderr, "⚖️  Weights: %s | Impacts: %s\n",
		schema.FormatWeights(spec.Weights), schema.FormatImpacts(spec.Impacts))
}
