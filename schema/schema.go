// Package schema has models, constants and shared errors for all parts of topsis.
package schema

import "fmt"

// Alternative is one row of the input table.
type Alternative struct {
	Label  string    `json:"label"`  // Opaque identifier from the first column
	Values []float64 `json:"values"` // One value per criterion, in column order
}

// Table is a rectangular decision matrix with a label column.
type Table struct {
	LabelHeader  string        `json:"label_header"` // Name of the first column
	Criteria     []string      `json:"criteria"`     // Criterion column names
	Alternatives []Alternative `json:"alternatives"`
}

// NumCriteria returns the number of criterion columns.
func (t Table) NumCriteria() int {
	return len(t.Criteria)
}

// NumAlternatives returns the number of rows.
func (t Table) NumAlternatives() int {
	return len(t.Alternatives)
}

// CriteriaSpec holds parallel weights and impacts, one entry per criterion.
type CriteriaSpec struct {
	Weights []float64 `json:"weights"`
	Impacts []Impact  `json:"impacts"`
}

// Len returns the number of weights. It does not check the impacts.
func (s CriteriaSpec) Len() int {
	return len(s.Weights)
}

// ParseImpact converts "+" or "-" into an Impact.
func ParseImpact(s string) (Impact, error) {
	imp := Impact(s)
	if !imp.Valid() {
		return "", fmt.Errorf("impacts must be '+' or '-', got %q: %w", s, ErrInvalidImpact)
	}
	return imp, nil
}

// Valid reports whether the impact is Benefit or Cost.
func (i Impact) Valid() bool {
	return i == Benefit || i == Cost
}

// String returns the impact in "+" / "-" notation.
func (i Impact) String() string {
	return string(i)
}

// Name returns a human-friendly name for the impact.
func (i Impact) Name() string {
	switch i {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return "unknown"
	}
}

// ResultRow is an alternative augmented with its TOPSIS outcome.
type ResultRow struct {
	Alternative
	DistBest  float64 `json:"dist_best"`  // Euclidean distance to the ideal point
	DistWorst float64 `json:"dist_worst"` // Euclidean distance to the anti-ideal point
	Score     float64 `json:"score"`      // Relative closeness in [0,1]
	Rank      int     `json:"rank"`       // 1 is best; equal scores share a rank
}

// Breakdown holds the per-criterion quantities of a scoring pass.
type Breakdown struct {
	RootSumSquares []float64 `json:"root_sum_squares"` // Column L2 norms of the raw values
	Weights        []float64 `json:"weights"`          // Weights normalized to sum to 1
	Impacts        []Impact  `json:"impacts"`
	Ideal          []float64 `json:"ideal"`
	AntiIdeal      []float64 `json:"anti_ideal"`
}

// ResultTable is the input table plus distances, scores and ranks.
// Rows keep the input order.
type ResultTable struct {
	LabelHeader string      `json:"label_header"`
	Criteria    []string    `json:"criteria"`
	Rows        []ResultRow `json:"rows"`
	Breakdown   Breakdown   `json:"breakdown"`
}

// Best returns the rows ranked first. More than one row is returned on ties.
func (r ResultTable) Best() []ResultRow {
	var best []ResultRow
	for _, row := range r.Rows {
		if row.Rank == 1 {
			best = append(best, row)
		}
	}
	return best
}
