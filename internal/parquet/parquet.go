// Package parquet provides data structures and functions for exporting TOPSIS
// results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/topsis/schema"
	"github.com/parquet-go/parquet-go"
)

// ResultRow represents one scored alternative.
type ResultRow struct {
	// Label is the alternative identifier from the first input column
	Label string `parquet:"label,snappy"`

	// Criteria holds the criterion column names, in input order
	Criteria []string `parquet:"criteria,list"`

	// Values holds the raw criterion values, aligned with Criteria
	Values []float64 `parquet:"values,list"`

	// DistBest is the Euclidean distance to the ideal point
	DistBest float64 `parquet:"dist_best,snappy"`

	// DistWorst is the Euclidean distance to the anti-ideal point
	DistWorst float64 `parquet:"dist_worst,snappy"`

	// Score is the relative closeness to the ideal (0-1, higher is better)
	Score float64 `parquet:"score,snappy"`

	// Rank is the competition rank (1 = best)
	Rank int32 `parquet:"rank,snappy"`
}

// WriteResultsParquet writes a slice of ResultRow structs to a Parquet file.
func WriteResultsParquet(data []ResultRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ResultRow struct tags
	writer := parquet.NewGenericWriter[ResultRow](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertResultRows converts the rows of a schema.ResultTable for Parquet export.
func ConvertResultRows(result schema.ResultTable) []ResultRow {
	rows := make([]ResultRow, len(result.Rows))
	for i, row := range result.Rows {
		criteria := make([]string, len(row.Values))
		for j := range row.Values {
			criteria[j] = schema.CriterionName(result.Criteria, j)
		}
		values := make([]float64, len(row.Values))
		copy(values, row.Values)

		rows[i] = ResultRow{
			Label:     row.Label,
			Criteria:  criteria,
			Values:    values,
			DistBest:  row.DistBest,
			DistWorst: row.DistWorst,
			Score:     row.Score,
			Rank:      int32(row.Rank),
		}
	}
	return rows
}
