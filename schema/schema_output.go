package schema

// Closeness ratings, from best to worst.
const (
	StrongRating = "Strong"
	GoodRating   = "Good"
	FairRating   = "Fair"
	WeakRating   = "Weak"
)

// EnrichedResultRow adds presentation data to a ResultRow.
type EnrichedResultRow struct {
	ResultRow
	Rating string `json:"rating"`
}

// EnrichedResultTable is the JSON shape of a scored table.
type EnrichedResultTable struct {
	LabelHeader string              `json:"label_header"`
	Criteria    []string            `json:"criteria"`
	Rows        []EnrichedResultRow `json:"rows"`
	Breakdown   Breakdown           `json:"breakdown"`
}

// GetRating returns a plain text rating for a closeness score in [0,1].
func GetRating(score float64) string {
	switch {
	case score >= 0.75:
		return StrongRating
	case score >= 0.5:
		return GoodRating
	case score >= 0.25:
		return FairRating
	default:
		return WeakRating
	}
}

// EnrichRows adds ratings to a list of result rows.
func EnrichRows(rows []ResultRow) []EnrichedResultRow {
	output := make([]EnrichedResultRow, len(rows))
	for i, r := range rows {
		output[i] = EnrichedResultRow{
			ResultRow: r,
			Rating:    GetRating(r.Score),
		}
	}
	return output
}

// EnrichResult adds ratings to every row of a result table. Rows are sorted
// by rank when sorted is true.
func EnrichResult(result ResultTable, sorted bool) EnrichedResultTable {
	rows := result.Rows
	if sorted {
		rows = SortedByRank(rows)
	}
	return EnrichedResultTable{
		LabelHeader: result.LabelHeader,
		Criteria:    result.Criteria,
		Rows:        EnrichRows(rows),
		Breakdown:   result.Breakdown,
	}
}
