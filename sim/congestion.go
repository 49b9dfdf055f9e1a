package sim

// CongestionTracker holds the peak total occupancy observed across the output
// queues and the per-port breakdown captured at that peak.
//
// Invariant: sum(Snapshot()) == Max(), and Max() never decreases.
type CongestionTracker struct {
	maxCongestion int
	snapshot      []int
	observedAt    int64 // clock of the observation that set the current max
}

// NewCongestionTracker creates a tracker for numPorts output queues with an
// all-zero snapshot.
func NewCongestionTracker(numPorts int) *CongestionTracker {
	return &CongestionTracker{snapshot: make([]int, numPorts)}
}

// Observe records the output queue state at clock. The snapshot is only
// replaced when the total strictly exceeds the previous maximum, so among
// equal peaks the earliest configuration is kept.
// Returns true if the snapshot was updated.
func (ct *CongestionTracker) Observe(clock int64, outputQueues []*PacketQueue) bool {
	total := totalLen(outputQueues)
	if total <= ct.maxCongestion {
		return false
	}
	ct.maxCongestion = total
	ct.observedAt = clock
	for i, q := range outputQueues {
		ct.snapshot[i] = q.Len()
	}
	return true
}

// Max returns the highest total output occupancy observed so far.
func (ct *CongestionTracker) Max() int {
	return ct.maxCongestion
}

// ObservedAt returns the clock at which the current maximum was first reached.
func (ct *CongestionTracker) ObservedAt() int64 {
	return ct.observedAt
}

// Snapshot returns a copy of the per-port output queue lengths at peak congestion.
func (ct *CongestionTracker) Snapshot() []int {
	out := make([]int, len(ct.snapshot))
	copy(out, ct.snapshot)
	return out
}
