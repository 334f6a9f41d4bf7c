package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedByRank(t *testing.T) {
	rows := []ResultRow{
		{Alternative: Alternative{Label: "A1"}, Rank: 3},
		{Alternative: Alternative{Label: "A2"}, Rank: 1},
		{Alternative: Alternative{Label: "A3"}, Rank: 1},
		{Alternative: Alternative{Label: "A4"}, Rank: 4},
	}

	sorted := SortedByRank(rows)

	labels := make([]string, len(sorted))
	for i, r := range sorted {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{"A2", "A3", "A1", "A4"}, labels)
	assert.Equal(t, "A1", rows[0].Label, "input slice must not be reordered")
}

func TestFormatWeightsAndImpacts(t *testing.T) {
	assert.Equal(t, "1,0.5,2", FormatWeights([]float64{1, 0.5, 2}))
	assert.Equal(t, "", FormatWeights(nil))
	assert.Equal(t, "+,-,+", FormatImpacts([]Impact{Benefit, Cost, Benefit}))
}

func TestCriterionName(t *testing.T) {
	tests := []struct {
		name     string
		criteria []string
		index    int
		expected string
	}{
		{name: "named", criteria: []string{"Price", "Storage"}, index: 1, expected: "Storage"},
		{name: "blank header", criteria: []string{"Price", "  "}, index: 1, expected: "C2"},
		{name: "out of range", criteria: nil, index: 0, expected: "C1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CriterionName(tt.criteria, tt.index))
		})
	}
}
