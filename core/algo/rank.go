package algo

import "sort"

// CompetitionRanks ranks scores in descending order. Equal scores share the
// lowest rank of their group and the next rank skips accordingly, so scores
// {0.9, 0.5, 0.9, 0.1} rank as {1, 3, 1, 4}.
func CompetitionRanks(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		if pos > 0 && scores[idx] == scores[order[pos-1]] {
			ranks[idx] = ranks[order[pos-1]]
			continue
		}
		ranks[idx] = pos + 1
	}
	return ranks
}
