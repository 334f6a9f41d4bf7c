package algo

import (
	"errors"
	"math"
	"testing"

	"github.com/huangsam/topsis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// newTable builds a table with generated labels A1..An and criteria C1..Cm.
func newTable(values [][]float64) schema.Table {
	table := schema.Table{LabelHeader: "Alternative"}
	if len(values) > 0 {
		for j := range values[0] {
			table.Criteria = append(table.Criteria, schema.CriterionName(nil, j))
		}
	}
	for i, row := range values {
		table.Alternatives = append(table.Alternatives, schema.Alternative{
			Label:  "A" + string(rune('1'+i)),
			Values: row,
		})
	}
	return table
}

func benefits(n int) []schema.Impact {
	impacts := make([]schema.Impact, n)
	for i := range impacts {
		impacts[i] = schema.Benefit
	}
	return impacts
}

// TestScoreReference checks scores against hand-computed values.
func TestScoreReference(t *testing.T) {
	tests := []struct {
		name           string
		values         [][]float64
		weights        []float64
		impacts        []schema.Impact
		expectedScores []float64
		expectedRanks  []int
	}{
		{
			name:           "two benefit criteria",
			values:         [][]float64{{250, 16}, {200, 16}, {300, 32}, {275, 32}},
			weights:        []float64{1, 1},
			impacts:        benefits(2),
			expectedScores: []float64{0.226031, 0.000000, 1.000000, 0.878111},
			expectedRanks:  []int{3, 4, 1, 2},
		},
		{
			name: "mixed impacts",
			values: [][]float64{
				{250, 16, 12, 5},
				{200, 16, 8, 3},
				{300, 32, 16, 4},
				{275, 32, 8, 4},
				{225, 16, 16, 2},
			},
			weights:        []float64{0.25, 0.25, 0.25, 0.25},
			impacts:        []schema.Impact{schema.Cost, schema.Benefit, schema.Benefit, schema.Benefit},
			expectedScores: []float64{0.534277, 0.308368, 0.691632, 0.534737, 0.401046},
			expectedRanks:  []int{3, 5, 1, 2, 4},
		},
		{
			name:           "identical rows tie",
			values:         [][]float64{{1, 2}, {1, 2}, {2, 1}},
			weights:        []float64{1, 1},
			impacts:        benefits(2),
			expectedScores: []float64{0.449490, 0.449490, 0.550510},
			expectedRanks:  []int{2, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(newTable(tt.values), schema.CriteriaSpec{Weights: tt.weights, Impacts: tt.impacts})
			require.NoError(t, err)
			require.Len(t, result.Rows, len(tt.values))

			for i, row := range result.Rows {
				assert.InDelta(t, tt.expectedScores[i], row.Score, 1e-6, "score of row %d", i)
				assert.Equal(t, tt.expectedRanks[i], row.Rank, "rank of row %d", i)
			}
		})
	}
}

// TestScoreValidation covers every validation failure.
func TestScoreValidation(t *testing.T) {
	threeCols := newTable([][]float64{{1, 2, 3}, {4, 5, 6}})
	twoCols := newTable([][]float64{{1, 2}, {3, 4}})

	tests := []struct {
		name     string
		table    schema.Table
		spec     schema.CriteriaSpec
		expected error
	}{
		{
			name:     "weights shorter than criteria",
			table:    threeCols,
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: []schema.Impact{schema.Benefit}},
			expected: schema.ErrDimensionMismatch,
		},
		{
			name:     "weights and impacts agree but not the table",
			table:    threeCols,
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrDimensionMismatch,
		},
		{
			name:     "invalid impact",
			table:    twoCols,
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: []schema.Impact{"+", "x"}},
			expected: schema.ErrInvalidImpact,
		},
		{
			name:     "no rows",
			table:    schema.Table{Criteria: []string{"C1"}},
			spec:     schema.CriteriaSpec{Weights: []float64{1}, Impacts: benefits(1)},
			expected: schema.ErrEmptyInput,
		},
		{
			name:     "no criteria",
			table:    schema.Table{Alternatives: []schema.Alternative{{Label: "A1"}}},
			spec:     schema.CriteriaSpec{},
			expected: schema.ErrEmptyInput,
		},
		{
			name: "ragged row",
			table: schema.Table{
				Criteria:     []string{"C1", "C2"},
				Alternatives: []schema.Alternative{{Label: "A1", Values: []float64{1, 2}}, {Label: "A2", Values: []float64{1}}},
			},
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrDimensionMismatch,
		},
		{
			name:     "NaN cell",
			table:    newTable([][]float64{{1, math.NaN()}, {3, 4}}),
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrNonNumeric,
		},
		{
			name:     "weights sum to zero",
			table:    twoCols,
			spec:     schema.CriteriaSpec{Weights: []float64{1, -1}, Impacts: benefits(2)},
			expected: schema.ErrInvalidWeights,
		},
		{
			name:     "all weights zero",
			table:    twoCols,
			spec:     schema.CriteriaSpec{Weights: []float64{0, 0}, Impacts: benefits(2)},
			expected: schema.ErrInvalidWeights,
		},
		{
			name:     "all weights negative",
			table:    twoCols,
			spec:     schema.CriteriaSpec{Weights: []float64{-1, -2}, Impacts: benefits(2)},
			expected: schema.ErrInvalidWeights,
		},
		{
			name:     "infinite weight",
			table:    twoCols,
			spec:     schema.CriteriaSpec{Weights: []float64{math.Inf(1), 1}, Impacts: benefits(2)},
			expected: schema.ErrInvalidWeights,
		},
		{
			name:     "weights sum overflows",
			table:    newTable([][]float64{{1, 2}, {3, 4}, {5, 7}}),
			spec:     schema.CriteriaSpec{Weights: []float64{1e308, 1e308}, Impacts: benefits(2)},
			expected: schema.ErrInvalidWeights,
		},
		{
			name:     "all-zero column",
			table:    newTable([][]float64{{0, 2}, {0, 4}}),
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrDegenerateColumn,
		},
		{
			name:     "identical rows",
			table:    newTable([][]float64{{1, 2}, {1, 2}}),
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrDegenerateScore,
		},
		{
			name:     "single row",
			table:    newTable([][]float64{{1, 2}}),
			spec:     schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)},
			expected: schema.ErrDegenerateScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.table, tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "expected %v, got %v", tt.expected, err)
		})
	}
}

func TestScoreZeroDegeneratePolicy(t *testing.T) {
	table := newTable([][]float64{{1, 2}, {1, 2}, {1, 2}})
	spec := schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)}

	for _, opt := range []Option{WithZeroDegenerateScores(), WithDegeneratePolicy(schema.ZeroPolicy)} {
		result, err := Score(table, spec, opt)
		require.NoError(t, err)
		for _, row := range result.Rows {
			assert.Equal(t, 0.0, row.Score)
			assert.Equal(t, 1, row.Rank)
		}
	}

	_, err := Score(table, spec, WithDegeneratePolicy(schema.ErrorPolicy))
	assert.ErrorIs(t, err, schema.ErrDegenerateScore)
}

func TestScoreNormalizationInvariants(t *testing.T) {
	table := newTable([][]float64{{250, 16, 12}, {200, 16, 8}, {300, 32, 16}, {275, 32, 8}})
	spec := schema.CriteriaSpec{Weights: []float64{2, 1, 3}, Impacts: []schema.Impact{schema.Cost, schema.Benefit, schema.Benefit}}

	result, analysis, err := Analyze(table, spec)
	require.NoError(t, err)
	require.NotNil(t, analysis)

	_, c := analysis.Normalized.Dims()
	for j := range c {
		col := mat.Col(nil, j, analysis.Normalized)
		assert.InDelta(t, 1.0, floats.Dot(col, col), 1e-12, "column %d", j)
	}
	assert.InDelta(t, 1.0, floats.Sum(result.Breakdown.Weights), 1e-12)
	assert.InDeltaSlice(t, []float64{2.0 / 6, 1.0 / 6, 3.0 / 6}, result.Breakdown.Weights, 1e-12)

	// Cost columns take the minimum as ideal.
	costCol := mat.Col(nil, 0, analysis.Weighted)
	assert.Equal(t, floats.Min(costCol), result.Breakdown.Ideal[0])
	assert.Equal(t, floats.Max(costCol), result.Breakdown.AntiIdeal[0])
}

func TestScorePreservesInputAndOrder(t *testing.T) {
	values := [][]float64{{1, 9}, {5, 5}, {9, 1}, {3, 3}}
	table := newTable(values)
	spec := schema.CriteriaSpec{Weights: []float64{1, 2}, Impacts: []schema.Impact{schema.Benefit, schema.Cost}}

	first, err := Score(table, spec)
	require.NoError(t, err)
	second, err := Score(table, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i, row := range first.Rows {
		assert.Equal(t, table.Alternatives[i].Label, row.Label)
		assert.Equal(t, values[i], row.Values)
	}
	assert.Equal(t, []float64{1, 9}, table.Alternatives[0].Values, "input must not be mutated")

	// Result values are copies.
	first.Rows[0].Values[0] = 100
	assert.Equal(t, 1.0, table.Alternatives[0].Values[0])
}

func TestScoreBoundsAndRanks(t *testing.T) {
	table := newTable([][]float64{{7, 9, 9, 8}, {8, 7, 8, 7}, {9, 6, 8, 9}, {6, 7, 8, 6}})
	spec := schema.CriteriaSpec{Weights: []float64{0.1, 0.4, 0.3, 0.2}, Impacts: benefits(4)}

	result, err := Score(table, spec)
	require.NoError(t, err)

	best := 0
	for i, row := range result.Rows {
		assert.GreaterOrEqual(t, row.Score, 0.0)
		assert.LessOrEqual(t, row.Score, 1.0)
		if row.Score > result.Rows[best].Score {
			best = i
		}
	}
	assert.Equal(t, 1, result.Rows[best].Rank)
}

func TestNormalizeWeights(t *testing.T) {
	got, err := NormalizeWeights([]float64{1, 1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, got, 1e-12)

	// A negative weight is accepted when the total stays positive.
	got, err = NormalizeWeights([]float64{3, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, -0.5}, got, 1e-12)
}

func TestSentinelAliases(t *testing.T) {
	table := newTable([][]float64{{0, 1}, {0, 2}})
	_, err := Score(table, schema.CriteriaSpec{Weights: []float64{1, 1}, Impacts: benefits(2)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateColumn)
	assert.ErrorIs(t, err, schema.ErrDegenerateColumn)
	assert.Contains(t, err.Error(), `"C1"`)
}

// BenchmarkScore benchmarks a scoring pass over a mid-sized table.
func BenchmarkScore(b *testing.B) {
	values := make([][]float64, 500)
	for i := range values {
		values[i] = []float64{float64(i%17 + 1), float64(i%23 + 2), float64(i%5 + 3), float64(i%11 + 1)}
	}
	table := newTable(values)
	spec := schema.CriteriaSpec{Weights: []float64{1, 2, 3, 4}, Impacts: []schema.Impact{"+", "-", "+", "-"}}

	for b.Loop() {
		_, _ = Score(table, spec)
	}
}
