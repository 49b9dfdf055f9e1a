package trace

import "golang.org/x/exp/slices"

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures every packet transfer and output drain.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels lists accepted trace level strings; empty defaults to none.
var validTraceLevels = []TraceLevel{TraceLevelNone, TraceLevelTicks, ""}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return slices.Contains(validTraceLevels, TraceLevel(level))
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected at all.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelTicks
}

// SimulationTrace collects transfer and drain records during a router simulation.
type SimulationTrace struct {
	Config    TraceConfig
	Transfers []TransferRecord
	Drains    []DrainRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:    config,
		Transfers: make([]TransferRecord, 0),
		Drains:    make([]DrainRecord, 0),
	}
}

// RecordTransfer appends a transfer record.
func (st *SimulationTrace) RecordTransfer(record TransferRecord) {
	st.Transfers = append(st.Transfers, record)
}

// RecordDrain appends a drain record.
func (st *SimulationTrace) RecordDrain(record DrainRecord) {
	st.Drains = append(st.Drains, record)
}
