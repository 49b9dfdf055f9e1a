// Implements the PacketQueue, the FIFO held by every input and output port.

package sim

import (
	"fmt"
	"strings"
)

// Packet is a single unit of traffic. Its only payload is the 1-based
// destination port number.
type Packet int

// PacketQueue represents a FIFO queue of packets owned by exactly one port role
// (input or output) at one port index.
type PacketQueue struct {
	queue []Packet // FIFO queue of packets
	head  int      // index of the front packet within queue
}

// NewPacketQueue returns a queue pre-loaded with the given packets in order.
func NewPacketQueue(packets ...Packet) *PacketQueue {
	pq := &PacketQueue{}
	for _, p := range packets {
		pq.Enqueue(p)
	}
	return pq
}

// Enqueue adds a packet to the back of the queue.
func (pq *PacketQueue) Enqueue(p Packet) {
	pq.queue = append(pq.queue, p)
}

// Dequeue removes the packet at the front of the queue.
// Calling Dequeue on an empty queue is a no-op.
func (pq *PacketQueue) Dequeue() {
	if pq.IsEmpty() {
		return
	}
	pq.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if pq.head == len(pq.queue) {
		pq.queue = pq.queue[:0]
		pq.head = 0
	} else if pq.head > 32 && pq.head*2 > len(pq.queue) {
		pq.queue = append(pq.queue[:0], pq.queue[pq.head:]...)
		pq.head = 0
	}
}

// Front returns the packet at the front of the queue without removing it.
// The queue must not be empty.
func (pq *PacketQueue) Front() Packet {
	if pq.IsEmpty() {
		panic("Front: queue must not be empty")
	}
	return pq.queue[pq.head]
}

// IsEmpty reports whether the queue holds no packets.
func (pq *PacketQueue) IsEmpty() bool {
	return pq.Len() == 0
}

// Len returns the number of packets in the queue.
func (pq *PacketQueue) Len() int {
	return len(pq.queue) - pq.head
}

// Items returns the queued packets front to back.
// The returned slice aliases the queue's storage and MUST NOT be modified.
func (pq *PacketQueue) Items() []Packet {
	return pq.queue[pq.head:]
}

func (pq *PacketQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.Items() {
		sb.WriteString(fmt.Sprint(int(val)))
		if i < pq.Len()-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// totalLen sums the lengths of all queues.
func totalLen(queues []*PacketQueue) int {
	sum := 0
	for _, q := range queues {
		sum += q.Len()
	}
	return sum
}
