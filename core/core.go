// Package core has core logic for loading, scoring and ranking decision tables.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/topsis/core/algo"
	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/schema"
	"github.com/rs/zerolog/log"
)

// ExecuteRank loads the configured table, scores it and writes the result.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, source contract.TableSource, writer contract.ResultWriter) error {
	start := time.Now()

	table, err := source.ReadTable(ctx, cfg.InputPath, cfg.InputFormat, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", cfg.InputPath, err)
	}
	log.Debug().
		Str("path", cfg.InputPath).
		Str("format", string(cfg.InputFormat)).
		Int("rows", table.NumAlternatives()).
		Int("criteria", table.NumCriteria()).
		Msg("table loaded")

	result, err := GetRankResults(ctx, cfg, table)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return writer.WriteResults(result, cfg, duration)
}

// GetRankResults scores an in-memory table with the configured criteria.
func GetRankResults(ctx context.Context, cfg *contract.Config, table schema.Table) (schema.ResultTable, error) {
	if err := ctx.Err(); err != nil {
		return schema.ResultTable{}, err
	}

	spec, err := cfg.ResolveSpec(table)
	if err != nil {
		return schema.ResultTable{}, err
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogRankHeader(cfg, table, spec)
	}
	log.Debug().
		Str("weights", schema.FormatWeights(spec.Weights)).
		Str("impacts", schema.FormatImpacts(spec.Impacts)).
		Str("degenerate", string(cfg.Degenerate)).
		Msg("criteria resolved")

	result, analysis, err := algo.Analyze(table, spec, algo.WithDegeneratePolicy(cfg.Degenerate))
	if err != nil {
		return schema.ResultTable{}, err
	}

	rows, _ := analysis.Weighted.Dims()
	for r := range rows {
		log.Trace().
			Str("label", result.Rows[r].Label).
			Floats64("normalized", analysis.Normalized.RawRowView(r)).
			Floats64("weighted", analysis.Weighted.RawRowView(r)).
			Msg("row transformed")
	}
	bd := result.Breakdown
	log.Debug().
		Floats64("rss", bd.RootSumSquares).
		Floats64("weights", bd.Weights).
		Floats64("ideal", bd.Ideal).
		Floats64("anti_ideal", bd.AntiIdeal).
		Msg("reference points computed")
	for _, row := range result.Rows {
		log.Debug().
			Str("label", row.Label).
			Float64("dist_best", row.DistBest).
			Float64("dist_worst", row.DistWorst).
			Float64("score", row.Score).
			Int("rank", row.Rank).
			Msg("alternative scored")
	}
	return result, nil
}

// ExecuteMethod writes the procedure description and the configured criteria.
// It serves as the main entry point for the 'method' command.
func ExecuteMethod(_ context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	spec, criteria := methodSpec(cfg)
	return writer.WriteMethod(spec, criteria, cfg)
}

// methodSpec picks the active criteria without an input table. Named
// criteria keep their config file order.
func methodSpec(cfg *contract.Config) (schema.CriteriaSpec, []string) {
	if !cfg.HasSpec() {
		return schema.CriteriaSpec{}, nil
	}
	if len(cfg.Weights) > 0 || len(cfg.Impacts) > 0 {
		return schema.CriteriaSpec{Weights: cfg.Weights, Impacts: cfg.Impacts}, nil
	}
	spec := schema.CriteriaSpec{}
	criteria := make([]string, 0, len(cfg.NamedCriteria))
	for _, nc := range cfg.NamedCriteria {
		spec.Weights = append(spec.Weights, nc.Weight)
		spec.Impacts = append(spec.Impacts, nc.Impact)
		criteria = append(criteria, nc.Name)
	}
	return spec, criteria
}
