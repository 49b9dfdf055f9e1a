package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketQueue_Front_NonEmpty_ReturnsHead(t *testing.T) {
	// GIVEN a queue with packets [2, 3]
	pq := NewPacketQueue(2, 3)

	// WHEN Front() is called
	got := pq.Front()

	// THEN it returns the head without removing it
	assert.Equal(t, Packet(2), got)
	assert.Equal(t, 2, pq.Len(), "Front must not modify the queue length")
}

func TestPacketQueue_Front_Empty_Panics(t *testing.T) {
	pq := &PacketQueue{}
	assert.PanicsWithValue(t, "Front: queue must not be empty", func() {
		pq.Front()
	})
}

func TestPacketQueue_Dequeue_PreservesFIFOOrder(t *testing.T) {
	// GIVEN packets enqueued as 1, 2, 3
	pq := &PacketQueue{}
	pq.Enqueue(1)
	pq.Enqueue(2)
	pq.Enqueue(3)

	// WHEN the queue is drained
	var got []Packet
	for !pq.IsEmpty() {
		got = append(got, pq.Front())
		pq.Dequeue()
	}

	// THEN packets leave in arrival order
	assert.Equal(t, []Packet{1, 2, 3}, got)
	assert.Equal(t, 0, pq.Len())
}

func TestPacketQueue_Dequeue_Empty_IsNoOp(t *testing.T) {
	// GIVEN an empty queue
	pq := &PacketQueue{}

	// WHEN Dequeue() is called twice
	pq.Dequeue()
	pq.Dequeue()

	// THEN the queue stays empty and remains usable
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())
	pq.Enqueue(7)
	assert.Equal(t, Packet(7), pq.Front())
	assert.Equal(t, 1, pq.Len())
}

func TestPacketQueue_Len_EqualsEnqueuesMinusDequeues(t *testing.T) {
	// GIVEN an interleaving of enqueues and dequeues long enough to trigger compaction
	pq := &PacketQueue{}
	enq, deq := 0, 0
	for i := 0; i < 500; i++ {
		pq.Enqueue(Packet(i%5 + 1))
		enq++
		if i%3 == 0 {
			pq.Dequeue()
			deq++
		}
		// THEN the length always matches the operation count
		assert.Equal(t, enq-deq, pq.Len(), "iteration %d", i)
	}

	// AND the front is the oldest packet not yet dequeued
	assert.Equal(t, Packet(deq%5+1), pq.Front())
}

func TestPacketQueue_Items_ReturnsContentsInOrder(t *testing.T) {
	pq := NewPacketQueue(4, 1, 3)
	pq.Dequeue()
	assert.Equal(t, []Packet{1, 3}, pq.Items())
}

func TestPacketQueue_String(t *testing.T) {
	assert.Equal(t, "[]", (&PacketQueue{}).String())
	assert.Equal(t, "[2 3]", NewPacketQueue(2, 3).String())
}

func TestTotalLen_SumsAllQueues(t *testing.T) {
	queues := []*PacketQueue{NewPacketQueue(1, 2), {}, NewPacketQueue(3)}
	assert.Equal(t, 3, totalLen(queues))
}
