package trace

import "golang.org/x/exp/slices"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransfers     int
	TotalDrained       int
	DrainCycles        int
	PeakUpdates        int
	BusiestOutputPort  int         // 0-based; -1 if no transfers
	OutputDistribution map[int]int // output port → transfers received
	InputDistribution  map[int]int // input port → transfers sent
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		BusiestOutputPort:  -1,
		OutputDistribution: make(map[int]int),
		InputDistribution:  make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransfers = len(st.Transfers)
	for _, tr := range st.Transfers {
		summary.OutputDistribution[tr.OutputPort]++
		summary.InputDistribution[tr.InputPort]++
		if tr.NewPeak {
			summary.PeakUpdates++
		}
	}

	summary.DrainCycles = len(st.Drains)
	for _, d := range st.Drains {
		summary.TotalDrained += len(d.Ports)
	}

	// Lowest port index wins ties.
	ports := make([]int, 0, len(summary.OutputDistribution))
	for p := range summary.OutputDistribution {
		ports = append(ports, p)
	}
	slices.Sort(ports)
	best := 0
	for _, p := range ports {
		if n := summary.OutputDistribution[p]; n > best {
			best = n
			summary.BusiestOutputPort = p
		}
	}

	return summary
}
