// Package algo implements the TOPSIS scoring pipeline: vector normalization,
// weighting, ideal and anti-ideal points, Euclidean distances and ranking.
package algo

import (
	"fmt"
	"math"

	"github.com/huangsam/topsis/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Option configures a scoring pass.
type Option func(*options)

type options struct {
	zeroDegenerate bool
}

// WithZeroDegenerateScores assigns a score of 0 to rows whose distances to
// both reference points are zero, instead of failing with ErrDegenerateScore.
func WithZeroDegenerateScores() Option {
	return func(o *options) {
		o.zeroDegenerate = true
	}
}

// WithDegeneratePolicy maps a configured policy onto the matching option.
func WithDegeneratePolicy(policy schema.DegeneratePolicy) Option {
	return func(o *options) {
		o.zeroDegenerate = policy == schema.ZeroPolicy
	}
}

// Analysis holds the intermediate matrices of a scoring pass.
type Analysis struct {
	Values     *mat.Dense // raw criterion values
	Normalized *mat.Dense // column L2-normalized values
	Weighted   *mat.Dense // normalized values scaled by normalized weights
}

// Score ranks the alternatives of table according to spec.
// The input is never modified and the result keeps the input row order.
func Score(table schema.Table, spec schema.CriteriaSpec, opts ...Option) (schema.ResultTable, error) {
	result, _, err := Analyze(table, spec, opts...)
	return result, err
}

// Analyze is Score that also returns the intermediate matrices.
func Analyze(table schema.Table, spec schema.CriteriaSpec, opts ...Option) (schema.ResultTable, *Analysis, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := Validate(table, spec); err != nil {
		return schema.ResultTable{}, nil, err
	}

	weights, err := NormalizeWeights(spec.Weights)
	if err != nil {
		return schema.ResultTable{}, nil, err
	}

	values := valueMatrix(table)
	normalized, norms, err := normalizeColumns(values, table.Criteria)
	if err != nil {
		return schema.ResultTable{}, nil, err
	}

	weighted := applyWeights(normalized, weights)
	ideal, antiIdeal := IdealPoints(weighted, spec.Impacts)
	distBest, distWorst := Distances(weighted, ideal, antiIdeal)

	scores, err := closeness(table, distBest, distWorst, o)
	if err != nil {
		return schema.ResultTable{}, nil, err
	}
	ranks := CompetitionRanks(scores)

	rows := make([]schema.ResultRow, len(table.Alternatives))
	for i, alt := range table.Alternatives {
		vals := make([]float64, len(alt.Values))
		copy(vals, alt.Values)
		rows[i] = schema.ResultRow{
			Alternative: schema.Alternative{Label: alt.Label, Values: vals},
			DistBest:    distBest[i],
			DistWorst:   distWorst[i],
			Score:       scores[i],
			Rank:        ranks[i],
		}
	}

	impacts := make([]schema.Impact, len(spec.Impacts))
	copy(impacts, spec.Impacts)
	criteria := make([]string, len(table.Criteria))
	copy(criteria, table.Criteria)

	result := schema.ResultTable{
		LabelHeader: table.LabelHeader,
		Criteria:    criteria,
		Rows:        rows,
		Breakdown: schema.Breakdown{
			RootSumSquares: norms,
			Weights:        weights,
			Impacts:        impacts,
			Ideal:          ideal,
			AntiIdeal:      antiIdeal,
		},
	}
	return result, &Analysis{Values: values, Normalized: normalized, Weighted: weighted}, nil
}

// Validate checks the shape of table and spec before any computation.
func Validate(table schema.Table, spec schema.CriteriaSpec) error {
	if table.NumCriteria() == 0 {
		return fmt.Errorf("table has no criterion columns: %w", schema.ErrEmptyInput)
	}
	if table.NumAlternatives() == 0 {
		return fmt.Errorf("table has no rows: %w", schema.ErrEmptyInput)
	}
	if len(spec.Weights) != len(spec.Impacts) {
		return fmt.Errorf("number of weights and impacts must be equal, got %d weights and %d impacts: %w",
			len(spec.Weights), len(spec.Impacts), schema.ErrDimensionMismatch)
	}
	for i, imp := range spec.Impacts {
		if !imp.Valid() {
			return fmt.Errorf("impact %d is %q, impacts must be '+' or '-': %w", i+1, imp, schema.ErrInvalidImpact)
		}
	}
	if spec.Len() != table.NumCriteria() {
		return fmt.Errorf("got %d weights for %d criterion columns: %w",
			spec.Len(), table.NumCriteria(), schema.ErrDimensionMismatch)
	}
	for _, alt := range table.Alternatives {
		if len(alt.Values) != table.NumCriteria() {
			return fmt.Errorf("row %q has %d values, expected %d: %w",
				alt.Label, len(alt.Values), table.NumCriteria(), schema.ErrDimensionMismatch)
		}
		for j, v := range alt.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("row %q, criterion %q: %w",
					alt.Label, schema.CriterionName(table.Criteria, j), schema.ErrNonNumeric)
			}
		}
	}
	return nil
}

// NormalizeWeights scales weights so that they sum to 1. Individual zero or
// negative weights are accepted as long as at least one weight is positive
// and the sum is non-zero and finite.
func NormalizeWeights(weights []float64) ([]float64, error) {
	anyPositive := false
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %d is not finite: %w", i+1, schema.ErrInvalidWeights)
		}
		if w > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return nil, fmt.Errorf("at least one weight must be positive: %w", schema.ErrInvalidWeights)
	}
	sum := floats.Sum(weights)
	if math.IsInf(sum, 0) {
		return nil, fmt.Errorf("weights sum overflows: %w", schema.ErrInvalidWeights)
	}
	if sum == 0 {
		return nil, fmt.Errorf("weights sum to zero: %w", schema.ErrInvalidWeights)
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}

// IdealPoints returns the ideal and anti-ideal value of every column.
// Benefit columns take the maximum as ideal; cost columns the minimum.
func IdealPoints(weighted mat.Matrix, impacts []schema.Impact) (ideal, antiIdeal []float64) {
	_, c := weighted.Dims()
	ideal = make([]float64, c)
	antiIdeal = make([]float64, c)
	for j := range c {
		col := mat.Col(nil, j, weighted)
		hi, lo := floats.Max(col), floats.Min(col)
		if impacts[j] == schema.Cost {
			hi, lo = lo, hi
		}
		ideal[j], antiIdeal[j] = hi, lo
	}
	return ideal, antiIdeal
}

// Distances returns the Euclidean distance of every row to both reference points.
func Distances(weighted *mat.Dense, ideal, antiIdeal []float64) (distBest, distWorst []float64) {
	r, _ := weighted.Dims()
	distBest = make([]float64, r)
	distWorst = make([]float64, r)
	for i := range r {
		row := weighted.RawRowView(i)
		distBest[i] = floats.Distance(row, ideal, 2)
		distWorst[i] = floats.Distance(row, antiIdeal, 2)
	}
	return distBest, distWorst
}

// valueMatrix copies the criterion values into a dense matrix.
func valueMatrix(table schema.Table) *mat.Dense {
	r, c := table.NumAlternatives(), table.NumCriteria()
	data := make([]float64, 0, r*c)
	for _, alt := range table.Alternatives {
		data = append(data, alt.Values...)
	}
	return mat.NewDense(r, c, data)
}

// normalizeColumns divides every column by its root sum of squares.
func normalizeColumns(values *mat.Dense, criteria []string) (*mat.Dense, []float64, error) {
	r, c := values.Dims()
	normalized := mat.NewDense(r, c, nil)
	norms := make([]float64, c)
	col := make([]float64, r)
	for j := range c {
		mat.Col(col, j, values)
		rss := floats.Norm(col, 2)
		if rss == 0 {
			return nil, nil, fmt.Errorf("criterion %q has a zero sum of squares: %w",
				schema.CriterionName(criteria, j), schema.ErrDegenerateColumn)
		}
		for i := range col {
			col[i] /= rss
		}
		normalized.SetCol(j, col)
		norms[j] = rss
	}
	return normalized, norms, nil
}

// applyWeights scales every column of normalized by its weight.
func applyWeights(normalized *mat.Dense, weights []float64) *mat.Dense {
	var weighted mat.Dense
	weighted.Apply(func(_, j int, v float64) float64 {
		return v * weights[j]
	}, normalized)
	return &weighted
}

// closeness computes the relative closeness to the ideal point.
func closeness(table schema.Table, distBest, distWorst []float64, o options) ([]float64, error) {
	scores := make([]float64, len(distBest))
	for i := range distBest {
		total := distBest[i] + distWorst[i]
		if total == 0 {
			if o.zeroDegenerate {
				scores[i] = 0
				continue
			}
			return nil, fmt.Errorf("row %q coincides with both reference points: %w",
				table.Alternatives[i].Label, schema.ErrDegenerateScore)
		}
		scores[i] = distWorst[i] / total
	}
	return scores, nil
}
