// Package trace provides tick-level recording of router simulation activity.
// This package has no dependencies on sim/; it stores pure data types.
// Port indices in records are 0-based.
package trace

// TransferRecord captures one packet moving from an input queue to an output queue.
type TransferRecord struct {
	Clock      int64 `json:"clock"`
	InputPort  int   `json:"input_port"`
	OutputPort int   `json:"output_port"`
	Congestion int   `json:"congestion"` // total output occupancy after the transfer
	NewPeak    bool  `json:"new_peak"`   // true if this transfer set a new congestion maximum
}

// DrainRecord captures one periodic drain and the output ports that lost a packet.
type DrainRecord struct {
	Clock int64 `json:"clock"`
	Ports []int `json:"ports"`
}
