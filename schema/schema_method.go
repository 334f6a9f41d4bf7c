package schema

// MethodStep is one step of the scoring procedure for display purposes.
type MethodStep struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}

// MethodCriterion describes one configured criterion.
type MethodCriterion struct {
	Name             string  `json:"name"`
	Impact           Impact  `json:"impact"`
	Direction        string  `json:"direction"`
	Weight           float64 `json:"weight"`
	NormalizedWeight float64 `json:"normalized_weight"`
}

// MethodRenderModel contains all processed data needed for displaying the
// procedure and the active criteria.
type MethodRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Steps       []MethodStep      `json:"steps"`
	Criteria    []MethodCriterion `json:"criteria,omitempty"`
	Ranking     string            `json:"ranking"`
}
