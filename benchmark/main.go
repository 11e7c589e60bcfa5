// Package main provides a performance benchmarking tool for the threesixty CLI.
// It measures execution times across workbooks of different sizes and command
// types, running each test multiple times, treating the first successful run as
// cold and averaging the rest as warm, generating CSV output for performance
// analysis and documentation.
//
// Prerequisites:
// - threesixty binary installed and available in PATH
// - Survey workbooks (.xlsx) placed in the specified base directory
//
// Usage: go run benchmark/main.go [workbook-base-dir]
//
//	workbook-base-dir: Directory containing survey workbooks
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold
// run and average of warm runs).
type BenchmarkResult struct {
	Workbook    string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkbookBase string
	Timeout      time.Duration
	NoCacheRuns  int
	CacheRuns    int
	Commands     []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [workbook-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkbookBase: os.Args[1],
		Timeout:      2 * time.Minute,
		NoCacheRuns:  3,
		CacheRuns:    4,
		Commands:     []string{"leaderboard", "competencies", "digest", "export"},
	}

	workbooks, err := findWorkbooks(config.WorkbookBase)
	if err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache so cold timings are honest
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("threesixty", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config, workbooks)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config.Commands)
}

// findWorkbooks verifies the threesixty binary and locates the test workbooks.
func findWorkbooks(base string) ([]string, error) {
	if _, err := exec.LookPath("threesixty"); err != nil {
		return nil, fmt.Errorf("threesixty binary not found in PATH")
	}

	matches, err := filepath.Glob(filepath.Join(base, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .xlsx workbooks found in %s", base)
	}
	return matches, nil
}

// runBenchmarks executes all benchmark tests across the configured workbooks.
func runBenchmarks(config BenchmarkConfig, workbooks []string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d workbooks, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(workbooks), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, workbook := range workbooks {
		name := filepath.Base(workbook)
		fmt.Printf("Benchmarking %s\n", name)

		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, name, workbook, command))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, name, workbook, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, name)

	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, workbook, command, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Workbook:    name,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a threesixty command multiple times with the specified
// cache backend and returns the cold time and warm times.
func runBenchmark(config BenchmarkConfig, workbook, command, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, workbook, "--cache-backend", cacheBackend}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("threesixty", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/threesixty_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"workbook", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Workbook, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult, commands []string) {
	fmt.Printf("Benchmark complete\n")

	for _, command := range commands {
		fmt.Printf("%s:\n", strings.ToUpper(command[:1])+command[1:])
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-24s: No-cache: %s, Cold: %s, Warm: %s\n",
					result.Workbook, result.NoCacheTime, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
