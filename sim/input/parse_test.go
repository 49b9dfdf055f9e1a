package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/router-sim/router-sim/sim"
)

func queueContents(in *Input) [][]sim.Packet {
	out := make([][]sim.Packet, len(in.Queues))
	for i, q := range in.Queues {
		out[i] = append([]sim.Packet{}, q.Items()...)
	}
	return out
}

func TestParse_ValidInput_FillsQueuesInOrder(t *testing.T) {
	// GIVEN a file with comments, a directive, and three port lines
	src := "# three port router\nP 3\n2 3\n1\n\n"

	// WHEN parsed
	in, err := Parse(strings.NewReader(src), sim.DefaultMaxPorts)

	// THEN each port holds its destinations in order
	require.NoError(t, err)
	assert.Equal(t, 3, in.NumPorts)
	assert.Equal(t, [][]sim.Packet{{2, 3}, {1}, {}}, queueContents(in))
	assert.Equal(t, 3, in.TotalPackets())
}

func TestParse_BlankLineBetweenPorts_IsEmptyPort(t *testing.T) {
	in, err := Parse(strings.NewReader("P 3\n1\n\n2 2\n"), sim.DefaultMaxPorts)
	require.NoError(t, err)
	assert.Equal(t, [][]sim.Packet{{1}, {}, {2, 2}}, queueContents(in))
}

func TestParse_CRLFAndExtraSpaces_Accepted(t *testing.T) {
	in, err := Parse(strings.NewReader("P  2\r\n 1  2 \r\n2\r\n"), sim.DefaultMaxPorts)
	require.NoError(t, err)
	assert.Equal(t, [][]sim.Packet{{1, 2}, {2}}, queueContents(in))
}

func TestParse_DirectiveOnly_AllPortsEmpty(t *testing.T) {
	in, err := Parse(strings.NewReader("P 2\n"), sim.DefaultMaxPorts)
	require.NoError(t, err)
	assert.Equal(t, 0, in.TotalPackets())
	assert.Len(t, in.Queues, 2)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		sentinel error
		line     int
	}{
		{"missing directive", "# nothing\n", ErrMalformedDirective, 0},
		{"directive without count", "P\n1\n", ErrMalformedDirective, 1},
		{"non-integer count", "P three\n", ErrMalformedDirective, 1},
		{"zero count", "P 0\n", ErrMalformedDirective, 1},
		{"duplicate directive", "P 2\n1\nP 3\n", ErrMalformedDirective, 3},
		{"non-integer destination", "P 2\n1 x\n", ErrMalformedDirective, 2},
		{"destination too large", "P 2\n1 3\n", ErrDestinationOutOfRange, 2},
		{"destination zero", "P 2\n0\n", ErrDestinationOutOfRange, 2},
		{"negative destination", "P 2\n-1\n", ErrDestinationOutOfRange, 2},
		{"destination before directive", "1 2\nP 2\n", ErrDestinationOutOfRange, 1},
		{"too many port lines", "P 1\n1\n1\n", ErrPortOutOfSequence, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), sim.DefaultMaxPorts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v, want %v", err, tt.sentinel)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestParse_PortCountAboveMax_ReturnsConfigurationError(t *testing.T) {
	_, err := Parse(strings.NewReader("P 5\n"), 4)
	var cfgErr *sim.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "num_ports", cfgErr.Field)
}

func TestParseFile_Missing_FileUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := ParseFile(path, sim.DefaultMaxPorts)
	assert.ErrorIs(t, err, ErrFileUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestParseFile_ErrorCarriesPathAndLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("P 2\n9\n"), 0o644))
	_, err := ParseFile(path, sim.DefaultMaxPorts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":2")
	assert.ErrorIs(t, err, ErrDestinationOutOfRange)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "port out of sequence", PortOutOfSequence.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
