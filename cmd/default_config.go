package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/router-sim/router-sim/sim"
	"github.com/router-sim/router-sim/sim/trace"
)

// Config represents a router defaults file.
// Every key must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	MaxPorts   int    `yaml:"max_ports"`
	DrainDelay int    `yaml:"drain_delay"`
	TraceLevel string `yaml:"trace_level"`
}

// loadDefaultsConfig parses a defaults YAML file with strict field checking.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return cfg, nil
}

// settings are the resolved knobs for a run.
type settings struct {
	MaxPorts   int
	DrainDelay int
	TraceLevel trace.TraceLevel
}

// resolveSettings starts from the flag values and applies the defaults file
// for every flag the user did not set explicitly.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := settings{MaxPorts: maxPorts, DrainDelay: drainDelay, TraceLevel: trace.TraceLevel(traceLevel)}
	if configPath != "" {
		cfg, err := loadDefaultsConfig(configPath)
		if err != nil {
			return s, err
		}
		if cfg.MaxPorts != 0 && !cmd.Flags().Changed("max-ports") {
			s.MaxPorts = cfg.MaxPorts
		}
		if cfg.DrainDelay != 0 && !cmd.Flags().Changed("drain-delay") {
			s.DrainDelay = cfg.DrainDelay
		}
		if cfg.TraceLevel != "" && !cmd.Flags().Changed("trace") {
			s.TraceLevel = trace.TraceLevel(cfg.TraceLevel)
		}
	}
	if !trace.IsValidTraceLevel(string(s.TraceLevel)) {
		return s, fmt.Errorf("unknown trace level %q; valid: none, ticks", s.TraceLevel)
	}
	if s.MaxPorts < 1 {
		return s, &sim.ConfigurationError{Field: "max_ports", Msg: fmt.Sprintf("must be positive, got %d", s.MaxPorts)}
	}
	return s, nil
}
