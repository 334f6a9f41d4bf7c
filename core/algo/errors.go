package algo

import "github.com/huangsam/topsis/schema"

// Sentinel errors returned by Score and Analyze. They are the same values
// as the schema errors, so errors.Is matches either name.
var (
	ErrDimensionMismatch = schema.ErrDimensionMismatch
	ErrInvalidImpact     = schema.ErrInvalidImpact
	ErrEmptyInput        = schema.ErrEmptyInput
	ErrInvalidWeights    = schema.ErrInvalidWeights
	ErrDegenerateColumn  = schema.ErrDegenerateColumn
	ErrDegenerateScore   = schema.ErrDegenerateScore
	ErrNonNumeric        = schema.ErrNonNumeric
)
