package sim

import "fmt"

const (
	// DefaultMaxPorts bounds the number of ports a router may declare.
	DefaultMaxPorts = 128
	// DefaultDrainDelay is the number of full round-robin cycles between drains.
	DefaultDrainDelay = 3
)

// RouterConfig groups the fixed parameters of a simulation run.
type RouterConfig struct {
	NumPorts   int // ports declared by the input (must be in [1, MaxPorts])
	MaxPorts   int // capacity limit on NumPorts
	DrainDelay int // drain every DrainDelay*NumPorts ticks (must be > 0)
}

// NewRouterConfig creates a RouterConfig with all fields explicitly specified.
func NewRouterConfig(numPorts, maxPorts, drainDelay int) RouterConfig {
	return RouterConfig{
		NumPorts:   numPorts,
		MaxPorts:   maxPorts,
		DrainDelay: drainDelay,
	}
}

// DrainInterval returns the number of ticks between output drains.
func (c RouterConfig) DrainInterval() int64 {
	return int64(c.DrainDelay) * int64(c.NumPorts)
}

// Validate checks the configuration, returning a *ConfigurationError on the first violation.
func (c RouterConfig) Validate() error {
	if c.MaxPorts < 1 {
		return &ConfigurationError{Field: "max_ports", Msg: fmt.Sprintf("must be positive, got %d", c.MaxPorts)}
	}
	if c.NumPorts < 1 {
		return &ConfigurationError{Field: "num_ports", Msg: fmt.Sprintf("must be positive, got %d", c.NumPorts)}
	}
	if c.NumPorts > c.MaxPorts {
		return &ConfigurationError{Field: "num_ports", Msg: fmt.Sprintf("%d exceeds maximum of %d", c.NumPorts, c.MaxPorts)}
	}
	if c.DrainDelay < 1 {
		return &ConfigurationError{Field: "drain_delay", Msg: fmt.Sprintf("must be positive, got %d", c.DrainDelay)}
	}
	return nil
}

// ConfigurationError reports an invalid router configuration.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid router configuration: %s %s", e.Field, e.Msg)
}
