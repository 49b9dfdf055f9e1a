// sim/simulator.go
//
// The router simulation loop: round-robin service of input ports, one packet
// transfer per tick at most, periodic output drains tied to the clock, and
// congestion tracking over the output queues.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/router-sim/router-sim/sim/trace"
)

// Simulator owns the input queues, output queues and congestion tracker for
// the duration of a run. It is single-threaded and not safe for concurrent use.
type Simulator struct {
	Config  RouterConfig
	Clock   int64 // logical ticks executed so far
	Cursor  int   // input port served on the next tick, in [0, NumPorts)
	Tracker *CongestionTracker
	Metrics *Metrics
	Trace   *trace.SimulationTrace // nil when tracing is disabled

	inputs  []*PacketQueue
	outputs []*PacketQueue
}

// NewSimulator validates cfg and takes ownership of inputs, which must hold
// exactly cfg.NumPorts queues. Every queued packet's destination must already
// be in [1, cfg.NumPorts]; the simulator does not re-check it.
func NewSimulator(cfg RouterConfig, inputs []*PacketQueue) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != cfg.NumPorts {
		return nil, &ConfigurationError{
			Field: "input_queues",
			Msg:   fmt.Sprintf("got %d queues for %d ports", len(inputs), cfg.NumPorts),
		}
	}
	owned := make([]*PacketQueue, cfg.NumPorts)
	outputs := make([]*PacketQueue, cfg.NumPorts)
	for i := range inputs {
		owned[i] = inputs[i]
		if owned[i] == nil {
			owned[i] = &PacketQueue{}
		}
		outputs[i] = &PacketQueue{}
	}
	s := &Simulator{
		Config:  cfg,
		Tracker: NewCongestionTracker(cfg.NumPorts),
		Metrics: NewMetrics(cfg.NumPorts),
		inputs:  owned,
		outputs: outputs,
	}
	s.Metrics.TotalLoaded = totalLen(owned)
	return s, nil
}

// SetTrace attaches a trace recorder. A nil or disabled trace records nothing.
func (s *Simulator) SetTrace(st *trace.SimulationTrace) {
	if st != nil && !st.Config.Enabled() {
		st = nil
	}
	s.Trace = st
}

// InputQueues returns the input queues. Callers MUST NOT mutate them.
func (s *Simulator) InputQueues() []*PacketQueue {
	return s.inputs
}

// OutputQueues returns the output queues. Callers MUST NOT mutate them.
func (s *Simulator) OutputQueues() []*PacketQueue {
	return s.outputs
}

// Done reports whether every input queue is empty. Output queues may still
// hold packets; they are not drained further once the inputs are exhausted.
func (s *Simulator) Done() bool {
	return totalLen(s.inputs) == 0
}

// Step executes a single tick and reports whether the simulation has terminated.
// Calling Step after termination is a no-op.
func (s *Simulator) Step() bool {
	if s.Done() {
		return true
	}
	numPorts := s.Config.NumPorts

	in := s.inputs[s.Cursor]
	if !in.IsEmpty() {
		pkt := in.Front()
		out := int(pkt) - 1
		s.outputs[out].Enqueue(pkt)
		in.Dequeue()
		s.Metrics.Transferred++

		peak := s.Tracker.Observe(s.Clock, s.outputs)
		if peak {
			s.Metrics.MaxCongestion = s.Tracker.Max()
			s.Metrics.PeakClock = s.Clock
		}
		logrus.Debugf("[tick %07d] input port %d -> output port %d (congestion=%d)",
			s.Clock, s.Cursor+1, out+1, totalLen(s.outputs))
		if s.Trace != nil {
			s.Trace.RecordTransfer(trace.TransferRecord{
				Clock:      s.Clock,
				InputPort:  s.Cursor,
				OutputPort: out,
				Congestion: totalLen(s.outputs),
				NewPeak:    peak,
			})
		}
	}

	s.Cursor++
	if s.Cursor == numPorts {
		s.Cursor = 0
	}

	s.Clock++

	if s.Clock%s.Config.DrainInterval() == 0 {
		s.drain()
	}

	s.Metrics.Ticks = s.Clock
	s.Metrics.CongestionSeries = append(s.Metrics.CongestionSeries, float64(totalLen(s.outputs)))

	return s.Done()
}

// drain removes one packet from every non-empty output queue.
func (s *Simulator) drain() {
	var drained []int
	for i, q := range s.outputs {
		if q.IsEmpty() {
			continue
		}
		q.Dequeue()
		drained = append(drained, i)
	}
	s.Metrics.Drained += len(drained)
	s.Metrics.DrainCycles++
	logrus.Debugf("[tick %07d] drained %d output queues", s.Clock, len(drained))
	if s.Trace != nil {
		s.Trace.RecordDrain(trace.DrainRecord{Clock: s.Clock, Ports: drained})
	}
}

// Run steps the simulation until every input queue is empty and returns the
// congestion snapshot: per-port output queue lengths at peak total congestion.
func (s *Simulator) Run() []int {
	logrus.Infof("Starting simulation with %d ports, %d packets, drain interval=%d ticks",
		s.Config.NumPorts, s.Metrics.TotalLoaded, s.Config.DrainInterval())
	for !s.Done() {
		s.Step()
	}
	s.Metrics.Snapshot = s.Tracker.Snapshot()
	s.Metrics.Residual = totalLen(s.outputs)
	logrus.Infof("[tick %07d] Simulation ended, peak congestion %d at tick %d",
		s.Clock, s.Tracker.Max(), s.Tracker.ObservedAt())
	return s.Tracker.Snapshot()
}
