package sim

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Print_OneBasedPortLines(t *testing.T) {
	// GIVEN metrics with a 3-port snapshot
	m := NewMetrics(3)
	m.Snapshot = []int{1, 0, 4}

	// WHEN printed
	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))

	// THEN each port is reported with 1-based numbering
	assert.Equal(t, "output port 1: 1 packets\noutput port 2: 0 packets\noutput port 3: 4 packets\n", buf.String())
}

func TestMetrics_Summary_NoTicks_ZeroValues(t *testing.T) {
	m := NewMetrics(2)
	s := m.Summary()
	assert.Equal(t, CongestionSummary{}, s)
}

func TestMetrics_Summary_ComputesSeriesStatistics(t *testing.T) {
	// GIVEN a congestion series 1,2,3,2 and snapshot [1,2]
	m := NewMetrics(2)
	m.CongestionSeries = []float64{1, 2, 3, 2}
	m.Snapshot = []int{1, 2}

	// WHEN summarized
	s := m.Summary()

	// THEN mean, sample stddev, and max are reported
	assert.InDelta(t, 2.0, s.MeanCongestion, 1e-9)
	assert.InDelta(t, 0.816496580927726, s.StdDevCongestion, 1e-9)
	assert.Equal(t, 3.0, s.MaxEndOfTick)
	assert.InDelta(t, 1.5, s.MeanPeakDepth, 1e-9)
}

func TestMetrics_Summary_SingleSample_ZeroStdDev(t *testing.T) {
	m := NewMetrics(1)
	m.CongestionSeries = []float64{4}
	assert.Equal(t, 0.0, m.Summary().StdDevCongestion)
}

func TestMetrics_Conserved(t *testing.T) {
	m := NewMetrics(2)
	m.TotalLoaded = 10
	m.Drained = 3
	assert.True(t, m.Conserved(2, 5))
	assert.False(t, m.Conserved(2, 4))
}

func TestMetrics_SaveResults_WritesJSON(t *testing.T) {
	// GIVEN metrics from a finished run
	s := mustNewSimulator(t, 3, []Packet{2, 3}, []Packet{1}, nil)
	s.Run()
	path := filepath.Join(t.TempDir(), "results.json")

	// WHEN saved
	require.NoError(t, s.Metrics.SaveResults(path))

	// THEN the file decodes to the same results
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Results
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 3, got.NumPorts)
	assert.Equal(t, []int{1, 1, 1}, got.Snapshot)
	assert.Equal(t, 3, got.MaxCongestion)
	assert.Equal(t, int64(4), got.Ticks)
}
