package contract

import (
	"errors"
	"testing"

	"github.com/huangsam/topsis/schema"
)

// FuzzParseCriteriaSpec fuzzes the weights and impacts parsers with random strings.
func FuzzParseCriteriaSpec(f *testing.F) {
	seeds := []struct {
		weights string
		impacts string
	}{
		{"1,1,1", "+,+,-"},
		{"0.5, 2", "-, +"},
		{"", ""},
		{"1,,2", "+,+"},
		{"a,b", "x,y"},
		{"1e308,1e308", "+,+"},
	}
	for _, seed := range seeds {
		f.Add(seed.weights, seed.impacts)
	}

	f.Fuzz(func(t *testing.T, weights string, impacts string) {
		spec, err := ParseCriteriaSpec(weights, impacts)
		if err != nil {
			if !errors.Is(err, schema.ErrInvalidWeights) &&
				!errors.Is(err, schema.ErrInvalidImpact) &&
				!errors.Is(err, schema.ErrDimensionMismatch) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if len(spec.Weights) != len(spec.Impacts) {
			t.Fatalf("weights %d and impacts %d differ", len(spec.Weights), len(spec.Impacts))
		}
		for _, imp := range spec.Impacts {
			if !imp.Valid() {
				t.Fatalf("invalid impact %q accepted", imp)
			}
		}
	})
}
