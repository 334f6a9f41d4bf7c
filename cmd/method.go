package cmd

import (
	"github.com/huangsam/topsis/core"
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/internal/outwriter"
	"github.com/spf13/cobra"
)

// methodCmd displays the scoring procedure and the active criteria.
var methodCmd = &cobra.Command{
	Use:   "method",
	Short: "Display the TOPSIS formulas and the active criteria",
	Long: `Show the steps used to score alternatives and, when weights and impacts
are configured, the normalized weight and direction of every criterion.

No table is read - this is purely informational.

Examples:
  # Show the procedure
  topsis method

  # Check how weights are normalized
  topsis method --weights 1,1,2 --impacts +,-,+

  # View the criteria from a config file
  topsis method --config .topsis.yaml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMethod(rootCtx, cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot display method", err)
		}
	},
}
