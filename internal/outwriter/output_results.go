package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/internal/parquet"
	"github.com/huangsam/topsis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintResults outputs a scored table, dispatching based on the output format configured.
func PrintResults(result schema.ResultTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		if err := writeResultsParquet(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteResultsJSON(w, result, cfg)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteResultsCSV(w, result, cfg)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteResultsTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// displayRows returns the rows in the order they should be printed.
func displayRows(result schema.ResultTable, cfg *contract.Config) []schema.ResultRow {
	if cfg.Sorted {
		return schema.SortedByRank(result.Rows)
	}
	return result.Rows
}

func labelHeader(result schema.ResultTable) string {
	if result.LabelHeader == "" {
		return "Alternative"
	}
	return result.LabelHeader
}

// WriteResultsTable generates and writes the human-readable table.
func WriteResultsTable(w io.Writer, result schema.ResultTable, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtRaw := createFormatters(cfg.Precision)
	numCriteria := len(result.Criteria)
	labelWidth := GetMaxTableLabelWidth(cfg, numCriteria)

	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Rank", labelHeader(result)}
	for i := range numCriteria {
		headers = append(headers, schema.CriterionName(result.Criteria, i))
	}
	if cfg.Detail {
		headers = append(headers, "Best Dist", "Worst Dist")
	}
	headers = append(headers, "Score", "Label")
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range displayRows(result, cfg) {
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateLabel(r.Label, labelWidth),
		}
		for _, v := range r.Values {
			row = append(row, fmtRaw(v))
		}
		if cfg.Detail {
			row = append(row, fmtFloat(r.DistBest), fmtFloat(r.DistWorst))
		}
		label := contract.GetPlainLabel(r.Score)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Score)
		}
		row = append(row, fmtFloat(r.Score), label)
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Explain {
		if err := writeBreakdownTable(w, result, fmtFloat); err != nil {
			return err
		}
	}

	// 5. Summary
	if best := result.Best(); len(best) > 0 {
		names := make([]string, len(best))
		for i, b := range best {
			names[i] = b.Label
		}
		if _, err := fmt.Fprintf(w, "Best alternative: %s (score %s)\n", strings.Join(names, ", "), fmtFloat(best[0].Score)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Scored %d alternatives on %d criteria in %v. Degenerate policy: %s\n",
		len(result.Rows), numCriteria, duration, cfg.Degenerate); err != nil {
		return err
	}
	return nil
}

// writeBreakdownTable prints the per-criterion ideal and anti-ideal values.
func writeBreakdownTable(w io.Writer, result schema.ResultTable, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Criterion", "Impact", "Weight", "Norm", "Ideal", "Anti-Ideal"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	bd := result.Breakdown
	var data [][]string
	for i := range bd.Weights {
		data = append(data, []string{
			schema.CriterionName(result.Criteria, i),
			fmt.Sprintf("%s %s", bd.Impacts[i], bd.Impacts[i].Name()),
			fmtFloat(bd.Weights[i]),
			fmtFloat(bd.RootSumSquares[i]),
			fmtFloat(bd.Ideal[i]),
			fmtFloat(bd.AntiIdeal[i]),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteResultsCSV writes the input columns followed by the score and rank,
// in the layout of the exported result file.
func WriteResultsCSV(w io.Writer, result schema.ResultTable, cfg *contract.Config) error {
	fmtFloat, fmtRaw := createFormatters(cfg.Precision)

	header := []string{labelHeader(result)}
	for i := range result.Criteria {
		header = append(header, schema.CriterionName(result.Criteria, i))
	}
	if cfg.Detail {
		header = append(header, schema.DistBestHeader, schema.DistWorstHeader)
	}
	header = append(header, schema.ScoreHeader, schema.RankHeader)

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range displayRows(result, cfg) {
			rec := []string{r.Label}
			for _, v := range r.Values {
				rec = append(rec, fmtRaw(v))
			}
			if cfg.Detail {
				rec = append(rec, fmtFloat(r.DistBest), fmtFloat(r.DistWorst))
			}
			rec = append(rec, fmtFloat(r.Score), strconv.Itoa(r.Rank))
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteResultsJSON writes the scored table with ratings in JSON format.
func WriteResultsJSON(w io.Writer, result schema.ResultTable, cfg *contract.Config) error {
	return writeJSON(w, schema.EnrichResult(result, cfg.Sorted))
}

// writeResultsParquet writes the scored rows to cfg.OutputFile.
func writeResultsParquet(result schema.ResultTable, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires an output file")
	}
	display := result
	display.Rows = displayRows(result, cfg)
	if err := parquet.WriteResultsParquet(parquet.ConvertResultRows(display), cfg.OutputFile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
