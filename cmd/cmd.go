// Package cmd defines the command-line interface for topsis.
package cmd

import (
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(methodCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("weights", "w", "", "Comma-separated weights, one per criterion column (e.g. 1,1,2)")
	rootCmd.PersistentFlags().StringP("impacts", "i", "", "Comma-separated impacts, + for benefit and - for cost (e.g. +,-,+)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for computed columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Diagnostic log level: trace or debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("format", string(schema.AutoFormat), "Input format: auto or csv or xlsx")
	rankCmd.Flags().String("sheet", "", "Worksheet to read from an xlsx input (default: first sheet)")
	rankCmd.Flags().Bool("detail", false, "Print the distances to the ideal and anti-ideal points")
	rankCmd.Flags().Bool("explain", false, "Print the normalized weights and reference points per criterion")
	rankCmd.Flags().Bool("sorted", false, "Order rows by rank instead of input order")
	rankCmd.Flags().String("degenerate", string(schema.ErrorPolicy), "Policy when an alternative is both ideal and anti-ideal: error or zero")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}
}
