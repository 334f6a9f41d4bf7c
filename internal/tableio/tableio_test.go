package tableio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/topsis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const carsCSV = `Model,Price,Storage,Camera,Looks
M1,250,16,12,5
M2,200,16,8,3
M3,300,32,16,4
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(carsCSV))
	require.NoError(t, err)

	assert.Equal(t, "Model", table.LabelHeader)
	assert.Equal(t, []string{"Price", "Storage", "Camera", "Looks"}, table.Criteria)
	require.Len(t, table.Alternatives, 3)
	assert.Equal(t, schema.Alternative{Label: "M2", Values: []float64{200, 16, 8, 3}}, table.Alternatives[1])
}

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name     string
		records  [][]string
		expected schema.Table
		err      error
	}{
		{
			name: "spaces and blank rows",
			records: [][]string{
				{" Fund ", " R1 ", "R2"},
				{},
				{"F1", " 0.5", "1e2 "},
				{"", "", ""},
			},
			expected: schema.Table{
				LabelHeader:  "Fund",
				Criteria:     []string{"R1", "R2"},
				Alternatives: []schema.Alternative{{Label: "F1", Values: []float64{0.5, 100}}},
			},
		},
		{
			name:    "trailing empty spreadsheet cells",
			records: [][]string{{"Fund", "R1", ""}, {"F1", "3", ""}},
			expected: schema.Table{
				LabelHeader:  "Fund",
				Criteria:     []string{"R1"},
				Alternatives: []schema.Alternative{{Label: "F1", Values: []float64{3}}},
			},
		},
		{
			name:     "header only",
			records:  [][]string{{"Fund", "R1"}},
			expected: schema.Table{LabelHeader: "Fund", Criteria: []string{"R1"}, Alternatives: []schema.Alternative{}},
		},
		{
			name:    "no rows at all",
			records: nil,
			err:     schema.ErrEmptyInput,
		},
		{
			name:    "short row",
			records: [][]string{{"Fund", "R1", "R2"}, {"F1", "1"}},
			err:     schema.ErrDimensionMismatch,
		},
		{
			name:    "long row",
			records: [][]string{{"Fund", "R1"}, {"F1", "1", "2"}},
			err:     schema.ErrDimensionMismatch,
		},
		{
			name:    "text cell",
			records: [][]string{{"Fund", "R1"}, {"F1", "high"}},
			err:     schema.ErrNonNumeric,
		},
		{
			name:    "empty cell in the middle",
			records: [][]string{{"Fund", "R1", "R2"}, {"F1", "", "2"}},
			err:     schema.ErrNonNumeric,
		},
		{
			name:    "NaN cell",
			records: [][]string{{"Fund", "R1"}, {"F1", "NaN"}},
			err:     schema.ErrNonNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseRecords(tt.records)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, table)
		})
	}
}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

func TestReadXLSX(t *testing.T) {
	f := writeWorkbook(t, "Sheet1", [][]any{
		{"Model", "Price", "Storage"},
		{"M1", 250, 16},
		{"M2", 200.5, 32},
	})
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	table, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, "Model", table.LabelHeader)
	assert.Equal(t, []string{"Price", "Storage"}, table.Criteria)
	require.Len(t, table.Alternatives, 2)
	assert.Equal(t, []float64{200.5, 32}, table.Alternatives[1].Values)
}

func TestFileTableSource(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	source := NewFileTableSource()

	csvPath := filepath.Join(dir, "cars.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(carsCSV), 0o644))

	f := writeWorkbook(t, "Scores", [][]any{
		{"Fund", "R1", "R2"},
		{"F1", 0.5, 1},
	})
	xlsxPath := filepath.Join(dir, "funds.xlsx")
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	t.Run("csv by extension", func(t *testing.T) {
		table, err := source.ReadTable(ctx, csvPath, schema.AutoFormat, "")
		require.NoError(t, err)
		assert.Equal(t, 3, table.NumAlternatives())
	})

	t.Run("xlsx named sheet", func(t *testing.T) {
		table, err := source.ReadTable(ctx, xlsxPath, schema.AutoFormat, "Scores")
		require.NoError(t, err)
		assert.Equal(t, "Fund", table.LabelHeader)
		assert.Equal(t, []float64{0.5, 1}, table.Alternatives[0].Values)
	})

	t.Run("xlsx missing sheet", func(t *testing.T) {
		_, err := source.ReadTable(ctx, xlsxPath, schema.XLSXFormat, "Nope")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := source.ReadTable(ctx, filepath.Join(dir, "missing.csv"), schema.CSVFormat, "")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := source.ReadTable(ctx, filepath.Join(dir, "cars.json"), schema.AutoFormat, "")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := source.ReadTable(cancelled, csvPath, schema.CSVFormat, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
