package contract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/topsis/schema"
	"github.com/rs/zerolog"
)

// Default values for configuration.
const (
	DefaultPrecision = 6
	MaxPrecision     = 8
	DefaultLogLevel  = "warn"
)

// NamedCriterion binds a weight and an impact to a criterion column by name.
type NamedCriterion struct {
	Name   string
	Weight float64
	Impact schema.Impact
}

// CriterionRawInput holds one entry of the criteria section of the YAML config file.
type CriterionRawInput struct {
	Name   string  `mapstructure:"name"`
	Weight float64 `mapstructure:"weight"`
	Impact string  `mapstructure:"impact"`
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	InputPath   string
	InputFormat schema.InputFormat
	Sheet       string

	// Weights and Impacts come from --weights and --impacts. They take
	// precedence over NamedCriteria.
	Weights []float64
	Impacts []schema.Impact

	// NamedCriteria comes from the criteria section of the config file and is
	// resolved against the table header.
	NamedCriteria []NamedCriterion

	Degenerate schema.DegeneratePolicy

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Detail     bool
	Explain    bool
	Sorted     bool
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	LogLevel zerolog.Level
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log-level"`
	Weights    string `mapstructure:"weights"`
	Impacts    string `mapstructure:"impacts"`

	// --- Fields from rankCmd.Flags() ---
	Format     string `mapstructure:"format"`
	Sheet      string `mapstructure:"sheet"`
	Detail     bool   `mapstructure:"detail"`
	Explain    bool   `mapstructure:"explain"`
	Sorted     bool   `mapstructure:"sorted"`
	Degenerate string `mapstructure:"degenerate"`

	// --- Criteria from config file ---
	Criteria []CriterionRawInput `mapstructure:"criteria"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Weights != nil {
		clone.Weights = make([]float64, len(c.Weights))
		copy(clone.Weights, c.Weights)
	}
	if c.Impacts != nil {
		clone.Impacts = make([]schema.Impact, len(c.Impacts))
		copy(clone.Impacts, c.Impacts)
	}
	if c.NamedCriteria != nil {
		clone.NamedCriteria = make([]NamedCriterion, len(c.NamedCriteria))
		copy(clone.NamedCriteria, c.NamedCriteria)
	}
	return &clone
}

// HasSpec reports whether any weights or criteria were configured.
func (c *Config) HasSpec() bool {
	return len(c.Weights) > 0 || len(c.Impacts) > 0 || len(c.NamedCriteria) > 0
}

// ResolveSpec returns the criteria spec to apply to table. Positional
// weights and impacts win; otherwise the named criteria are matched against
// the table header, case-insensitively.
func (c *Config) ResolveSpec(table schema.Table) (schema.CriteriaSpec, error) {
	if !c.HasSpec() {
		return schema.CriteriaSpec{}, fmt.Errorf("no weights or impacts given, use --weights and --impacts or a criteria section: %w", schema.ErrDimensionMismatch)
	}
	if len(c.Weights) > 0 || len(c.Impacts) > 0 {
		return schema.CriteriaSpec{Weights: c.Weights, Impacts: c.Impacts}, nil
	}

	byName := make(map[string]NamedCriterion, len(c.NamedCriteria))
	for _, nc := range c.NamedCriteria {
		byName[strings.ToLower(strings.TrimSpace(nc.Name))] = nc
	}

	spec := schema.CriteriaSpec{
		Weights: make([]float64, 0, table.NumCriteria()),
		Impacts: make([]schema.Impact, 0, table.NumCriteria()),
	}
	for _, name := range table.Criteria {
		nc, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return schema.CriteriaSpec{}, fmt.Errorf("no weight configured for criterion %q: %w", name, schema.ErrDimensionMismatch)
		}
		spec.Weights = append(spec.Weights, nc.Weight)
		spec.Impacts = append(spec.Impacts, nc.Impact)
	}
	return spec, nil
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInput(cfg, input); err != nil {
		return err
	}
	if err := processCriteria(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Sorted = input.Sorted
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 3. Degenerate Policy Validation ---
	cfg.Degenerate = schema.DegeneratePolicy(strings.ToLower(input.Degenerate))
	if cfg.Degenerate == "" {
		cfg.Degenerate = schema.ErrorPolicy
	}
	if _, ok := schema.ValidDegeneratePolicies[cfg.Degenerate]; !ok {
		return fmt.Errorf("invalid degenerate policy '%s'. must be error, zero", input.Degenerate)
	}

	// --- 4. Log Level Validation ---
	level, err := ParseLogLevel(input.LogLevel)
	if err != nil {
		return err
	}
	cfg.LogLevel = level

	return nil
}

// processInput resolves the input path and its format.
func processInput(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = strings.TrimSpace(input.InputPathStr)
	cfg.Sheet = strings.TrimSpace(input.Sheet)

	format := schema.InputFormat(strings.ToLower(strings.TrimSpace(input.Format)))
	if format == "" {
		format = schema.AutoFormat
	}
	if _, ok := schema.ValidInputFormats[format]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be auto, csv, xlsx", input.Format)
	}
	if format == schema.AutoFormat && cfg.InputPath != "" {
		detected, err := DetectInputFormat(cfg.InputPath)
		if err != nil {
			return err
		}
		format = detected
	}
	cfg.InputFormat = format
	return nil
}

// processCriteria parses --weights/--impacts and the criteria config section.
func processCriteria(cfg *Config, input *ConfigRawInput) error {
	cfg.Weights = nil
	cfg.Impacts = nil
	cfg.NamedCriteria = nil

	if strings.TrimSpace(input.Weights) != "" || strings.TrimSpace(input.Impacts) != "" {
		spec, err := ParseCriteriaSpec(input.Weights, input.Impacts)
		if err != nil {
			return err
		}
		cfg.Weights = spec.Weights
		cfg.Impacts = spec.Impacts
	}

	seen := make(map[string]struct{}, len(input.Criteria))
	for i, raw := range input.Criteria {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return fmt.Errorf("criteria entry %d has no name", i+1)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("criteria entry %q is defined twice", name)
		}
		seen[key] = struct{}{}

		impact, err := schema.ParseImpact(strings.TrimSpace(raw.Impact))
		if err != nil {
			return fmt.Errorf("criteria entry %q: %w", name, err)
		}
		cfg.NamedCriteria = append(cfg.NamedCriteria, NamedCriterion{Name: name, Weight: raw.Weight, Impact: impact})
	}
	return nil
}

// ParseCriteriaSpec parses comma-separated weights and impacts such as
// "1,1,2" and "+,-,+". The entry counts are compared before any entry is parsed.
func ParseCriteriaSpec(weights, impacts string) (schema.CriteriaSpec, error) {
	wParts, iParts := splitList(weights), splitList(impacts)
	if len(wParts) != len(iParts) {
		return schema.CriteriaSpec{}, fmt.Errorf("number of weights and impacts must be equal, got %d weights and %d impacts: %w",
			len(wParts), len(iParts), schema.ErrDimensionMismatch)
	}
	w, err := parseWeightParts(wParts)
	if err != nil {
		return schema.CriteriaSpec{}, err
	}
	imp, err := parseImpactParts(iParts)
	if err != nil {
		return schema.CriteriaSpec{}, err
	}
	return schema.CriteriaSpec{Weights: w, Impacts: imp}, nil
}

// ParseWeights parses a comma-separated list of numbers.
func ParseWeights(s string) ([]float64, error) {
	return parseWeightParts(splitList(s))
}

// ParseImpacts parses a comma-separated list of "+" and "-".
func ParseImpacts(s string) ([]schema.Impact, error) {
	return parseImpactParts(splitList(s))
}

// splitList splits on commas and trims every entry. A blank string has no entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseWeightParts(parts []string) ([]float64, error) {
	var weights []float64
	for _, part := range parts {
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("weights must be numeric, got %q: %w", part, schema.ErrInvalidWeights)
		}
		weights = append(weights, w)
	}
	return weights, nil
}

func parseImpactParts(parts []string) ([]schema.Impact, error) {
	var impacts []schema.Impact
	for _, part := range parts {
		imp, err := schema.ParseImpact(part)
		if err != nil {
			return nil, err
		}
		impacts = append(impacts, imp)
	}
	return impacts, nil
}

// DetectInputFormat picks the input format from the file extension.
func DetectInputFormat(path string) (schema.InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return schema.CSVFormat, nil
	case ".xlsx", ".xlsm":
		return schema.XLSXFormat, nil
	default:
		return "", fmt.Errorf("cannot detect input format of %q, use --format csv or --format xlsx", path)
	}
}

// ParseLogLevel parses a zerolog level name. An empty string selects DefaultLogLevel.
func ParseLogLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		s = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s': %w", s, err)
	}
	return level, nil
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profilePrefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}
