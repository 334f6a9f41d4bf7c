package algo

import (
	"errors"
	"math"
	"testing"

	"github.com/huangsam/topsis/schema"
)

// FuzzScore checks that scores stay in [0,1] and ranks stay consistent
// for arbitrary 3x2 tables.
func FuzzScore(f *testing.F) {
	f.Add(250.0, 16.0, 200.0, 16.0, 300.0, 32.0, 1.0, 1.0, false)
	f.Add(1.0, 0.0, 1.0, 0.0, 2.0, 5.0, 0.5, 2.0, true)
	f.Add(-3.0, 4.0, 3.0, -4.0, 0.0, 1.0, 1.0, 0.0, true)

	f.Fuzz(func(t *testing.T, a, b, c, d, e, g, w1, w2 float64, cost bool) {
		second := schema.Benefit
		if cost {
			second = schema.Cost
		}
		table := newTable([][]float64{{a, b}, {c, d}, {e, g}})
		spec := schema.CriteriaSpec{Weights: []float64{w1, w2}, Impacts: []schema.Impact{schema.Benefit, second}}

		result, err := Score(table, spec)
		if err != nil {
			known := []error{
				schema.ErrNonNumeric, schema.ErrInvalidWeights,
				schema.ErrDegenerateColumn, schema.ErrDegenerateScore,
			}
			for _, k := range known {
				if errors.Is(err, k) {
					return
				}
			}
			t.Fatalf("unexpected error: %v", err)
		}

		for _, row := range result.Rows {
			if math.IsNaN(row.Score) {
				t.Skip("overflowing input")
			}
		}
		for i, row := range result.Rows {
			if row.Score < 0 || row.Score > 1 {
				t.Fatalf("score %v out of bounds", row.Score)
			}
			higher := 0
			for _, other := range result.Rows {
				if other.Score > row.Score {
					higher++
				}
			}
			if row.Rank != higher+1 {
				t.Fatalf("row %d: rank %d, expected %d", i, row.Rank, higher+1)
			}
		}
	})
}
