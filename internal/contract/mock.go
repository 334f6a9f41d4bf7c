package contract

import (
	"context"
	"time"

	"github.com/huangsam/topsis/schema"
	"github.com/stretchr/testify/mock"
)

// MockTableSource is a mock implementation of TableSource for testing.
type MockTableSource struct {
	mock.Mock
}

var _ TableSource = &MockTableSource{} // Compile-time check

// ReadTable implements the TableSource interface.
func (m *MockTableSource) ReadTable(ctx context.Context, path string, format schema.InputFormat, sheet string) (schema.Table, error) {
	ret := m.Called(ctx, path, format, sheet)
	table, _ := ret.Get(0).(schema.Table)
	return table, ret.Error(1)
}

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ ResultWriter = &MockResultWriter{} // Compile-time check

// WriteResults implements the ResultWriter interface.
func (m *MockResultWriter) WriteResults(result schema.ResultTable, cfg *Config, duration time.Duration) error {
	ret := m.Called(result, cfg, duration)
	return ret.Error(0)
}

// WriteMethod implements the ResultWriter interface.
func (m *MockResultWriter) WriteMethod(spec schema.CriteriaSpec, criteria []string, cfg *Config) error {
	ret := m.Called(spec, criteria, cfg)
	return ret.Error(0)
}
