// Tracks simulation-wide counters and the final congestion report.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	TotalLoaded   int   // packets present in the input queues before the first tick
	Transferred   int   // packets moved from an input queue to an output queue
	Drained       int   // packets removed from output queues by periodic drains
	Ticks         int64 // ticks executed
	DrainCycles   int   // drain events fired
	MaxCongestion int   // peak total output occupancy
	PeakClock     int64 // tick at which MaxCongestion was first reached
	Snapshot      []int // per-port output occupancy at MaxCongestion
	Residual      int   // packets still in output queues at termination

	// CongestionSeries holds total output occupancy sampled at the end of each tick.
	CongestionSeries []float64
}

// NewMetrics creates a Metrics for numPorts output ports.
func NewMetrics(numPorts int) *Metrics {
	return &Metrics{
		Snapshot:         make([]int, numPorts),
		CongestionSeries: make([]float64, 0),
	}
}

// Conserved reports whether every loaded packet is accounted for, given the
// number of packets still waiting in input queues and resident in output queues.
func (m *Metrics) Conserved(inputsLeft, outputsResident int) bool {
	return inputsLeft+outputsResident+m.Drained == m.TotalLoaded
}

// CongestionSummary holds descriptive statistics over the per-tick congestion series.
type CongestionSummary struct {
	MeanCongestion   float64 `json:"mean_congestion"`
	StdDevCongestion float64 `json:"stddev_congestion"`
	MaxEndOfTick     float64 `json:"max_end_of_tick_congestion"`
	MeanPeakDepth    float64 `json:"mean_peak_port_depth"`
}

// Summary computes statistics over the congestion series and peak snapshot.
// Safe for runs with no ticks (returns zero values).
func (m *Metrics) Summary() CongestionSummary {
	var s CongestionSummary
	if n := len(m.CongestionSeries); n > 0 {
		s.MeanCongestion = stat.Mean(m.CongestionSeries, nil)
		s.MaxEndOfTick = floats.Max(m.CongestionSeries)
		if n > 1 {
			s.StdDevCongestion = stat.StdDev(m.CongestionSeries, nil)
		}
	}
	if len(m.Snapshot) > 0 {
		depths := make([]float64, len(m.Snapshot))
		for i, v := range m.Snapshot {
			depths[i] = float64(v)
		}
		s.MeanPeakDepth = stat.Mean(depths, nil)
	}
	if math.IsNaN(s.StdDevCongestion) {
		s.StdDevCongestion = 0
	}
	return s
}

// Print writes the congestion report, one line per output port using
// 1-based port numbering.
func (m *Metrics) Print(w io.Writer) error {
	for i, n := range m.Snapshot {
		if _, err := fmt.Fprintf(w, "output port %d: %d packets\n", i+1, n); err != nil {
			return err
		}
	}
	return nil
}

// Results is the JSON document written by SaveResults.
type Results struct {
	NumPorts      int               `json:"num_ports"`
	TotalLoaded   int               `json:"total_loaded"`
	Transferred   int               `json:"transferred"`
	Drained       int               `json:"drained"`
	Residual      int               `json:"residual"`
	Ticks         int64             `json:"ticks"`
	DrainCycles   int               `json:"drain_cycles"`
	MaxCongestion int               `json:"max_congestion"`
	PeakClock     int64             `json:"peak_clock"`
	Snapshot      []int             `json:"snapshot"`
	Summary       CongestionSummary `json:"summary"`
}

// Results builds the serializable form of the metrics.
func (m *Metrics) Results() Results {
	return Results{
		NumPorts:      len(m.Snapshot),
		TotalLoaded:   m.TotalLoaded,
		Transferred:   m.Transferred,
		Drained:       m.Drained,
		Residual:      m.Residual,
		Ticks:         m.Ticks,
		DrainCycles:   m.DrainCycles,
		MaxCongestion: m.MaxCongestion,
		PeakClock:     m.PeakClock,
		Snapshot:      m.Snapshot,
		Summary:       m.Summary(),
	}
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path string) error {
	data, err := json.MarshalIndent(m.Results(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Infof("Results written to %s", path)
	return nil
}
