package input

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an input file was rejected.
type ErrorKind int

const (
	// FileUnreadable means the source could not be opened or read.
	FileUnreadable ErrorKind = iota + 1
	// MalformedDirective means the port-count directive, or a token, is not a valid integer.
	MalformedDirective
	// DestinationOutOfRange means a packet names a port outside [1, numPorts].
	DestinationOutOfRange
	// PortOutOfSequence means more port lines were given than the directive declared.
	PortOutOfSequence
)

// Sentinel errors for use with errors.Is.
var (
	ErrFileUnreadable        = errors.New("file unreadable")
	ErrMalformedDirective    = errors.New("malformed directive")
	ErrDestinationOutOfRange = errors.New("destination out of range")
	ErrPortOutOfSequence     = errors.New("port out of sequence")
)

var kindSentinels = map[ErrorKind]error{
	FileUnreadable:        ErrFileUnreadable,
	MalformedDirective:    ErrMalformedDirective,
	DestinationOutOfRange: ErrDestinationOutOfRange,
	PortOutOfSequence:     ErrPortOutOfSequence,
}

func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports a rejected input, with the 1-based line number when known.
type ParseError struct {
	Kind ErrorKind
	Path string // empty when parsing from a reader
	Line int    // 0 when not tied to a line
	Msg  string
	Err  error // underlying cause, if any
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		if loc == "" {
			loc = fmt.Sprintf("line %d", e.Line)
		} else {
			loc = fmt.Sprintf("%s:%d", loc, e.Line)
		}
	}
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if loc != "" {
		msg = loc + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the sentinel error for the kind.
func (e *ParseError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
