// Package workload generates random router inputs in the text format read by sim/input.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/router-sim/router-sim/sim"
)

// Workload is a generated set of per-port destination lists.
type Workload struct {
	Seed  uint64
	Ports [][]sim.Packet // Ports[i] is the input queue of port i+1, front first
}

// Generate draws a workload from spec. The same spec always yields the same workload.
func Generate(spec *GeneratorSpec) *Workload {
	rng := rand.New(rand.NewSource(spec.Seed))
	w := &Workload{Seed: spec.Seed, Ports: make([][]sim.Packet, spec.NumPorts)}
	for i := range w.Ports {
		n := spec.MinPackets
		if spread := spec.MaxPackets - spec.MinPackets; spread > 0 {
			n += rng.Intn(spread + 1)
		}
		pkts := make([]sim.Packet, n)
		for j := range pkts {
			pkts[j] = drawDestination(rng, spec)
		}
		w.Ports[i] = pkts
	}
	logrus.Debugf("generated %d packets across %d ports (seed=%d)", w.TotalPackets(), spec.NumPorts, spec.Seed)
	return w
}

func drawDestination(rng *rand.Rand, spec *GeneratorSpec) sim.Packet {
	if h := spec.Hotspot; h != nil && rng.Float64() < h.Fraction {
		return sim.Packet(h.Port)
	}
	return sim.Packet(rng.Intn(spec.NumPorts) + 1)
}

// TotalPackets returns the number of generated packets.
func (w *Workload) TotalPackets() int {
	total := 0
	for _, p := range w.Ports {
		total += len(p)
	}
	return total
}

// Queues builds fresh input queues holding the workload.
func (w *Workload) Queues() []*sim.PacketQueue {
	queues := make([]*sim.PacketQueue, len(w.Ports))
	for i, pkts := range w.Ports {
		queues[i] = sim.NewPacketQueue(pkts...)
	}
	return queues
}

// Write emits the workload in router input format.
func (w *Workload) Write(out io.Writer) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "# generated by router-sim (seed=%d, packets=%d)\n", w.Seed, w.TotalPackets())
	fmt.Fprintf(bw, "P %d\n", len(w.Ports))
	for _, pkts := range w.Ports {
		for j, p := range pkts {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(p)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
