package schema

import "errors"

// Errors reported by the scorer and the parameter parsers.
// Callers match them with errors.Is; messages are wrapped with context.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidImpact     = errors.New("invalid impact")
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidWeights    = errors.New("invalid weights")
	ErrDegenerateColumn  = errors.New("degenerate column")
	ErrDegenerateScore   = errors.New("degenerate score")
	ErrNonNumeric        = errors.New("non-numeric value")
)
