package schema

import (
	"sort"
	"strconv"
	"strings"
)

// SortedByRank returns a copy of rows ordered by rank. Rows sharing a rank
// keep their input order.
func SortedByRank(rows []ResultRow) []ResultRow {
	sorted := make([]ResultRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

// FormatWeights formats weights back into the comma-separated notation.
func FormatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strconv.FormatFloat(w, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// FormatImpacts formats impacts back into the comma-separated notation.
func FormatImpacts(impacts []Impact) string {
	parts := make([]string, len(impacts))
	for i, imp := range impacts {
		parts[i] = imp.String()
	}
	return strings.Join(parts, ",")
}

// CriterionName returns the name of criterion i, falling back to C1, C2, ...
// when the table has no header for it.
func CriterionName(criteria []string, i int) string {
	if i < len(criteria) && strings.TrimSpace(criteria[i]) != "" {
		return criteria[i]
	}
	return "C" + strconv.Itoa(i+1)
}
