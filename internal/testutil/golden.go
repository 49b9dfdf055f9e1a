// Package testutil provides shared test infrastructure for the router simulator.
// It holds the golden scenario dataset used by the sim/ and cmd/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single router scenario from the golden dataset.
type GoldenTestCase struct {
	Name       string        `json:"name"`
	Input      string        `json:"input"` // router input file contents
	DrainDelay int           `json:"drain_delay"`
	Metrics    GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected outcome of a golden scenario.
type GoldenMetrics struct {
	Snapshot      []int `json:"snapshot"`
	MaxCongestion int   `json:"max_congestion"`
	PeakClock     int64 `json:"peak_clock"`
	Ticks         int64 `json:"ticks"`
	Transferred   int   `json:"transferred"`
	Drained       int   `json:"drained"`
	DrainCycles   int   `json:"drain_cycles"`
	Residual      int   `json:"residual"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// WriteInputFile writes tc.Input to a temporary file and returns its path.
func WriteInputFile(t *testing.T, tc GoldenTestCase) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), tc.Name+".txt")
	if err := os.WriteFile(path, []byte(tc.Input), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}
