// Package input reads router input files into per-port input queues.
//
// The format is line oriented:
//
//	# comment
//	P 3
//	2 3
//	1
//
// A line starting with 'P' declares the port count. Every other non-comment
// line is the space-separated list of 1-based destinations queued at the next
// input port, in order. An empty line is a port with no packets; empty lines
// after the last port line are ignored.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/router-sim/router-sim/sim"
)

// Input is a validated router input: every destination lies in [1, NumPorts].
type Input struct {
	NumPorts int
	Queues   []*sim.PacketQueue // len(Queues) == NumPorts
}

// TotalPackets returns the number of packets across all input queues.
func (in *Input) TotalPackets() int {
	total := 0
	for _, q := range in.Queues {
		total += q.Len()
	}
	return total
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, maxPorts int) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Kind: FileUnreadable, Path: path, Err: err}
	}
	defer f.Close()
	in, err := Parse(f, maxPorts)
	if pe, ok := err.(*ParseError); ok {
		pe.Path = path
	}
	return in, err
}

// Parse reads the router input format from r. A declared port count above
// maxPorts is rejected with a *sim.ConfigurationError.
func Parse(r io.Reader, maxPorts int) (*Input, error) {
	var (
		in           *Input
		port         int
		pendingBlank int
		lineNo       int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "P") {
			if in != nil || port > 0 || pendingBlank > 0 {
				return nil, &ParseError{Kind: MalformedDirective, Line: lineNo, Msg: "port directive must appear once, before any port line"}
			}
			n, err := parseDirective(line)
			if err != nil {
				return nil, &ParseError{Kind: MalformedDirective, Line: lineNo, Msg: fmt.Sprintf("%q", line), Err: err}
			}
			if n > maxPorts {
				return nil, &sim.ConfigurationError{Field: "num_ports", Msg: fmt.Sprintf("%d exceeds maximum of %d", n, maxPorts)}
			}
			in = &Input{NumPorts: n, Queues: make([]*sim.PacketQueue, n)}
			for i := range in.Queues {
				in.Queues[i] = &sim.PacketQueue{}
			}
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			pendingBlank++
			continue
		}

		numPorts := 0
		if in != nil {
			numPorts = in.NumPorts
		}
		port += pendingBlank
		pendingBlank = 0
		if in != nil && port >= numPorts {
			return nil, &ParseError{Kind: PortOutOfSequence, Line: lineNo,
				Msg: fmt.Sprintf("port %d declared but only %d ports configured", port+1, numPorts)}
		}

		for _, tok := range tokens {
			dest, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Kind: MalformedDirective, Line: lineNo, Msg: fmt.Sprintf("destination %q is not an integer", tok), Err: err}
			}
			if dest < 1 || dest > numPorts {
				return nil, &ParseError{Kind: DestinationOutOfRange, Line: lineNo,
					Msg: fmt.Sprintf("destination %d not in [1, %d]", dest, numPorts)}
			}
			in.Queues[port].Enqueue(sim.Packet(dest))
		}
		port++
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Kind: FileUnreadable, Line: lineNo, Err: err}
	}

	if in == nil {
		return nil, &ParseError{Kind: MalformedDirective, Msg: "missing port directive"}
	}
	if pendingBlank > 0 {
		logrus.Debugf("ignoring %d trailing empty line(s)", pendingBlank)
	}
	if port < in.NumPorts {
		logrus.Warnf("input declares %d ports but lists %d; remaining ports start empty", in.NumPorts, port)
	}
	return in, nil
}

// parseDirective extracts n from a "P <n>" line.
func parseDirective(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("expected \"P <ports>\"")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("port count must be positive, got %d", n)
	}
	return n, nil
}
