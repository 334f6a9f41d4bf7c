package cmd

import (
	"github.com/huangsam/topsis/core"
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/internal/outwriter"
	"github.com/huangsam/topsis/internal/tableio"
	"github.com/spf13/cobra"
)

// rankCmd scores and ranks the rows of a decision table.
var rankCmd = &cobra.Command{
	Use:   "rank <input-file>",
	Short: "Rank the alternatives of a CSV or XLSX table.",
	Long: `Score every alternative of a decision table with TOPSIS and rank them.

The first column of the table labels the alternatives; every other column is
a numeric criterion. Each criterion needs a weight and an impact:
- "+" (benefit) when higher values are better
- "-" (cost) when lower values are better

Weights and impacts come from --weights/--impacts, TOPSIS_WEIGHTS and
TOPSIS_IMPACTS, or a criteria section in .topsis.yaml keyed by column name.

Examples:
  # Rank phones, price is a cost and the rest are benefits
  topsis rank phones.csv --weights 1,1,1,2 --impacts -,+,+,+

  # Show distances and the reference points, best first
  topsis rank phones.csv -w 1,1,1,2 -i -,+,+,+ --detail --explain --sorted

  # Read the second sheet of a workbook
  topsis rank data.xlsx --sheet Scores -w 1,1 -i +,+

  # Export the result in the layout of the input plus score and rank
  topsis rank phones.csv -w 1,1,1,2 -i -,+,+,+ --output csv --output-file result.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		source := tableio.NewFileTableSource()
		writer := outwriter.NewOutWriter()
		if err := core.ExecuteRank(rootCtx, cfg, source, writer); err != nil {
			contract.LogFatal("Cannot rank alternatives", err)
		}
	},
}
