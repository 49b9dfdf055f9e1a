// Package sim provides the core simulation engine for the round-robin router.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - queue.go: PacketQueue, the FIFO used for every input and output port
//   - congestion.go: CongestionTracker, the peak output occupancy and its per-port snapshot
//   - simulator.go: the tick loop, round-robin service, periodic drains and termination
//
// # Architecture
//
// The sim package owns the state machine; collaborators live in sub-packages:
//   - sim/input/: parsing of the router input text format, with typed errors
//   - sim/trace/: optional per-tick transfer and drain recording
//   - sim/workload/: seeded random input generation
//
// # Tick semantics
//
// Each tick serves the input port under the cursor: if its queue is non-empty,
// the front packet moves to the output queue named by its destination and the
// CongestionTracker observes the outputs. The cursor then advances (wrapping),
// the clock increments, and when the clock is a multiple of DrainDelay*NumPorts
// every non-empty output queue loses one packet. The run ends as soon as all
// input queues are empty, regardless of what the outputs still hold.
package sim
