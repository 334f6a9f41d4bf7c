// Package tableio reads decision tables from CSV and XLSX files.
package tableio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/topsis/internal/contract"
	"github.com/huangsam/topsis/schema"
	"github.com/xuri/excelize/v2"
)

// FileTableSource implements the TableSource interface by reading files
// from the local filesystem.
type FileTableSource struct{}

var _ contract.TableSource = &FileTableSource{} // Compile-time check

// NewFileTableSource creates a new file-backed table source.
func NewFileTableSource() *FileTableSource {
	return &FileTableSource{}
}

// ReadTable implements the TableSource interface.
func (s *FileTableSource) ReadTable(ctx context.Context, path string, format schema.InputFormat, sheet string) (schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return schema.Table{}, err
	}
	if path == "" {
		return schema.Table{}, fmt.Errorf("no input file given: %w", schema.ErrEmptyInput)
	}

	if format == "" || format == schema.AutoFormat {
		detected, err := contract.DetectInputFormat(path)
		if err != nil {
			return schema.Table{}, err
		}
		format = detected
	}

	switch format {
	case schema.CSVFormat:
		f, err := os.Open(path)
		if err != nil {
			return schema.Table{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(f)
	case schema.XLSXFormat:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return schema.Table{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return readWorkbook(f, sheet)
	default:
		return schema.Table{}, fmt.Errorf("unsupported input format '%s'", format)
	}
}

// ReadCSV parses CSV text with a header row into a table.
func ReadCSV(r io.Reader) (schema.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are reported by ParseRecords
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return ParseRecords(records)
}

// ReadXLSX parses a workbook from r. An empty sheet selects the first worksheet.
func ReadXLSX(r io.Reader, sheet string) (schema.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (schema.Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return schema.Table{}, fmt.Errorf("workbook has no sheets: %w", schema.ErrEmptyInput)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return ParseRecords(rows)
}

// ParseRecords converts raw rows into a table. The first row is the header,
// the first column holds the alternative labels and every other cell must
// be a finite number. Blank rows are skipped.
func ParseRecords(records [][]string) (schema.Table, error) {
	records = dropBlankRows(records)
	if len(records) == 0 {
		return schema.Table{}, fmt.Errorf("input has no header row: %w", schema.ErrEmptyInput)
	}

	header := trimAll(records[0])
	header = trimTrailingEmpty(header)
	if len(header) == 0 {
		return schema.Table{}, fmt.Errorf("input has an empty header row: %w", schema.ErrEmptyInput)
	}

	table := schema.Table{
		LabelHeader:  header[0],
		Criteria:     header[1:],
		Alternatives: make([]schema.Alternative, 0, len(records)-1),
	}
	numCriteria := len(table.Criteria)

	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header
		cells := trimTrailingEmpty(trimAll(record))
		if len(cells) != numCriteria+1 {
			return schema.Table{}, fmt.Errorf("row %d has %d cells, expected %d: %w",
				line, len(cells), numCriteria+1, schema.ErrDimensionMismatch)
		}

		alt := schema.Alternative{Label: cells[0], Values: make([]float64, numCriteria)}
		for j, cell := range cells[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return schema.Table{}, fmt.Errorf("row %d, column %q: value %q is not numeric: %w",
					line, schema.CriterionName(table.Criteria, j), cell, schema.ErrNonNumeric)
			}
			alt.Values[j] = v
		}
		table.Alternatives = append(table.Alternatives, alt)
	}
	return table, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// trimTrailingEmpty drops empty cells at the end of a row. Spreadsheets and
// some CSV exports pad rows with them.
func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

func dropBlankRows(records [][]string) [][]string {
	out := make([][]string, 0, len(records))
	for _, r := range records {
		if len(trimTrailingEmpty(trimAll(r))) == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}
