package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// InputFormat represents the format of the input table.
	InputFormat string

	// Impact represents the direction of a criterion.
	Impact string

	// DegeneratePolicy decides what happens when a score is undefined.
	DegeneratePolicy string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All input formats supported.
const (
	AutoFormat InputFormat = "auto" // default, picked from the file extension
	CSVFormat  InputFormat = "csv"
	XLSXFormat InputFormat = "xlsx"
)

// Impact directions. The string values match the "+" and "-" notation
// used on the command line.
const (
	Benefit Impact = "+" // higher is better
	Cost    Impact = "-" // lower is better
)

// All degenerate score policies supported.
const (
	ErrorPolicy DegeneratePolicy = "error" // default
	ZeroPolicy  DegeneratePolicy = "zero"
)

// Column headers used by the exported result table.
const (
	DistBestHeader  = "best_dist"
	DistWorstHeader = "worst_dist"
	ScoreHeader     = "Topsis Score"
	RankHeader      = "Rank"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoFormat: {},
	CSVFormat:  {},
	XLSXFormat: {},
}

// ValidDegeneratePolicies lists all valid degenerate score policies.
var ValidDegeneratePolicies = map[DegeneratePolicy]struct{}{
	ErrorPolicy: {},
	ZeroPolicy:  {},
}
