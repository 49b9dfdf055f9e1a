package cmd

import (
	"errors"

	"github.com/router-sim/router-sim/sim"
	"github.com/router-sim/router-sim/sim/input"
)

// Process exit codes, one per failure kind.
const (
	ExitOK                    = 0
	ExitUsage                 = 1
	ExitFileUnreadable        = 2
	ExitMalformedDirective    = 3
	ExitDestinationOutOfRange = 4
	ExitPortOutOfSequence     = 5
	ExitConfiguration         = 6
)

// exitCode maps an error to the process exit code for its kind.
func exitCode(err error) int {
	var cfgErr *sim.ConfigurationError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, input.ErrFileUnreadable):
		return ExitFileUnreadable
	case errors.Is(err, input.ErrMalformedDirective):
		return ExitMalformedDirective
	case errors.Is(err, input.ErrDestinationOutOfRange):
		return ExitDestinationOutOfRange
	case errors.Is(err, input.ErrPortOutOfSequence):
		return ExitPortOutOfSequence
	case errors.As(err, &cfgErr):
		return ExitConfiguration
	default:
		return ExitUsage
	}
}
