// Package main provides a performance benchmarking tool for the topsis CLI.
// It generates decision tables of increasing size, ranks each one with every
// output mode several times, treats the first successful run as cold and
// averages the rest as warm, and writes a CSV summary for documentation.
//
// Prerequisites:
// - topsis binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory used for generated tables and output files
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark suite (cold run and average of warm runs).
type BenchmarkResult struct {
	Table    string
	Output   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir   string
	Timeout   time.Duration
	Runs      int
	Criteria  int
	TableRows []int
	Outputs   []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:   os.Args[1],
		Timeout:   2 * time.Minute,
		Runs:      4,
		Criteria:  6,
		TableRows: []int{10, 1_000, 10_000, 100_000},
		Outputs:   []string{"text", "csv", "json", "parquet"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the topsis binary exists and the work dir is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("topsis"); err != nil {
		return fmt.Errorf("topsis binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot use work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks executes all benchmark suites across generated tables
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d tables, %d criteria, %v timeout, %d runs per output\n",
		len(config.TableRows), config.Criteria, config.Timeout, config.Runs)

	for _, rows := range config.TableRows {
		name := fmt.Sprintf("rows_%d", rows)
		tablePath := filepath.Join(config.WorkDir, name+".csv")
		if err := generateTable(tablePath, rows, config.Criteria); err != nil {
			fmt.Printf("Skipping %s: %v\n", name, err)
			continue
		}
		fmt.Printf("Benchmarking %s\n", name)

		for _, output := range config.Outputs {
			results = append(results, runBenchmarkSuite(config, name, tablePath, output))
		}
	}

	return results
}

// generateTable writes a random decision table with a label column and the given shape
func generateTable(path string, rows, criteria int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	header := []string{"Alternative"}
	for c := range criteria {
		header = append(header, fmt.Sprintf("C%d", c+1))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(rows), uint64(criteria)))
	record := make([]string, criteria+1)
	for r := range rows {
		record[0] = fmt.Sprintf("A%d", r+1)
		for c := range criteria {
			record[c+1] = strconv.FormatFloat(1+rng.Float64()*99, 'f', 3, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmarkSuite ranks one table with one output mode and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, name, tablePath, output string) BenchmarkResult {
	fmt.Printf("  %s output (%d runs)\n", output, config.Runs)

	coldTime, warmTimes := runBenchmark(config, tablePath, output)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Table:    name,
		Output:   output,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes topsis rank multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, tablePath, output string) (coldTime float64, warmTimes []float64) {
	args := []string{"rank", tablePath,
		"--weights", strings.TrimSuffix(strings.Repeat("1,", config.Criteria), ","),
		"--impacts", impactsFor(config.Criteria),
		"--output", output,
		"--degenerate", "zero",
	}
	if output != "text" {
		outFile := filepath.Join(config.WorkDir, "result."+output)
		args = append(args, "--output-file", outFile)
	}

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("topsis", args...)

		done := make(chan bool)
		var outBytes []byte
		var cmdErr error

		go func() {
			outBytes, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(outBytes, output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// impactsFor alternates cost and benefit criteria
func impactsFor(criteria int) string {
	impacts := make([]string, criteria)
	for i := range impacts {
		if i%2 == 0 {
			impacts[i] = "+"
		} else {
			impacts[i] = "-"
		}
	}
	return strings.Join(impacts, ",")
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, mode string) bool {
	outputStr := string(output)
	if mode == "text" {
		return strings.Contains(outputStr, "Scored") && strings.Contains(outputStr, "alternatives")
	}
	return strings.Contains(outputStr, "Wrote")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/topsis_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"table", "output", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Table, result.Output, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, output := range config.Outputs {
		fmt.Printf("%s output:\n", output)
		for _, result := range results {
			if result.Output == output {
				fmt.Printf("  %-12s: Cold: %s, Warm: %s\n", result.Table, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
