package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/topsis/core/algo"
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMethod displays the TOPSIS procedure and the active criteria.
// This is a static display that does not require an input table.
func PrintMethod(spec schema.CriteriaSpec, criteria []string, cfg *contract.Config) error {
	renderModel, err := BuildMethodRenderModel(spec, criteria)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteMethodCSV(w, renderModel, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteMethodText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// BuildMethodRenderModel constructs the complete render model. Criteria are
// included only when a spec is given; criterion names fall back to C1, C2, ...
func BuildMethodRenderModel(spec schema.CriteriaSpec, criteria []string) (*schema.MethodRenderModel, error) {
	model := &schema.MethodRenderModel{
		Title: "TOPSIS Method",
		Description: "Technique for Order of Preference by Similarity to Ideal Solution. " +
			"Alternatives are ranked by how close they are to the best value of every criterion " +
			"and how far they are from the worst.",
		Steps: []schema.MethodStep{
			{Name: "Normalize", Formula: "r[i,j] = x[i,j] / sqrt(sum_i x[i,j]^2)"},
			{Name: "Weight", Formula: "v[i,j] = r[i,j] * w[j] / sum(w)"},
			{Name: "Ideal points", Formula: "benefit (+): A+[j] = max_i v[i,j], A-[j] = min_i v[i,j]; cost (-): swapped"},
			{Name: "Distances", Formula: "S+[i] = ||v[i] - A+||, S-[i] = ||v[i] - A-||"},
			{Name: "Closeness", Formula: "P[i] = S-[i] / (S+[i] + S-[i])"},
		},
		Ranking: "Rank 1 has the highest closeness. Equal scores share the lowest rank (1, 2, 2, 4).",
	}

	if spec.Len() == 0 && len(spec.Impacts) == 0 {
		return model, nil
	}
	if len(spec.Weights) != len(spec.Impacts) {
		return nil, fmt.Errorf("number of weights and impacts must be equal, got %d weights and %d impacts: %w",
			len(spec.Weights), len(spec.Impacts), schema.ErrDimensionMismatch)
	}
	normalized, err := algo.NormalizeWeights(spec.Weights)
	if err != nil {
		return nil, err
	}
	for i, w := range spec.Weights {
		imp := spec.Impacts[i]
		if !imp.Valid() {
			return nil, fmt.Errorf("impacts must be '+' or '-', got %q: %w", imp, schema.ErrInvalidImpact)
		}
		model.Criteria = append(model.Criteria, schema.MethodCriterion{
			Name:             schema.CriterionName(criteria, i),
			Impact:           imp,
			Direction:        imp.Name(),
			Weight:           w,
			NormalizedWeight: normalized[i],
		})
	}
	return model, nil
}

// WriteMethodText displays the procedure in human-readable text format.
func WriteMethodText(w io.Writer, model *schema.MethodRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "📐 %s\n==============\n\n%s\n\n", model.Title, model.Description); err != nil {
		return err
	}
	for i, step := range model.Steps {
		if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, step.Name, step.Formula); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n🏁 %s\n", model.Ranking); err != nil {
		return err
	}

	if len(model.Criteria) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n⚖️  Active criteria\n"); err != nil {
		return err
	}

	fmtFloat, fmtRaw := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Criterion", "Impact", "Direction", "Weight", "Normalized"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, c := range model.Criteria {
		data = append(data, []string{c.Name, c.Impact.String(), c.Direction, fmtRaw(c.Weight), fmtFloat(c.NormalizedWeight)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteMethodCSV writes the active criteria in CSV format, or the procedure
// steps when no criteria are configured.
func WriteMethodCSV(w io.Writer, model *schema.MethodRenderModel, cfg *contract.Config) error {
	if len(model.Criteria) == 0 {
		return writeCSVWithHeader(w, []string{"step", "name", "formula"}, func(csvWriter *csv.Writer) error {
			for i, step := range model.Steps {
				if err := csvWriter.Write([]string{fmt.Sprint(i + 1), step.Name, step.Formula}); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			return nil
		})
	}

	fmtFloat, fmtRaw := createFormatters(cfg.Precision)
	header := []string{"criterion", "impact", "direction", "weight", "normalized_weight"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, c := range model.Criteria {
			rec := []string{c.Name, c.Impact.String(), c.Direction, fmtRaw(c.Weight), fmtFloat(c.NormalizedWeight)}
			if err := csvWriter.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
