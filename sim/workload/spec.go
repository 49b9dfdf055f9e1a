package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorSpec describes a random router input.
// Loaded from YAML via LoadGeneratorSpec(path).
type GeneratorSpec struct {
	NumPorts   int          `yaml:"num_ports"`
	MinPackets int          `yaml:"min_packets_per_port"`
	MaxPackets int          `yaml:"max_packets_per_port"`
	Seed       uint64       `yaml:"seed"`
	Hotspot    *HotspotSpec `yaml:"hotspot,omitempty"`
}

// HotspotSpec biases destinations toward a single output port.
type HotspotSpec struct {
	Port     int     `yaml:"port"`     // 1-based output port
	Fraction float64 `yaml:"fraction"` // probability a packet targets Port, in [0, 1]
}

// LoadGeneratorSpec reads a GeneratorSpec with strict field checking.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid for a router of at most maxPorts ports.
func (s *GeneratorSpec) Validate(maxPorts int) error {
	if s.NumPorts < 1 || s.NumPorts > maxPorts {
		return fmt.Errorf("num_ports must be in [1, %d], got %d", maxPorts, s.NumPorts)
	}
	if s.MinPackets < 0 {
		return fmt.Errorf("min_packets_per_port must be non-negative, got %d", s.MinPackets)
	}
	if s.MaxPackets < s.MinPackets {
		return fmt.Errorf("max_packets_per_port (%d) must be >= min_packets_per_port (%d)", s.MaxPackets, s.MinPackets)
	}
	if h := s.Hotspot; h != nil {
		if h.Port < 1 || h.Port > s.NumPorts {
			return fmt.Errorf("hotspot.port must be in [1, %d], got %d", s.NumPorts, h.Port)
		}
		if h.Fraction < 0 || h.Fraction > 1 {
			return fmt.Errorf("hotspot.fraction must be in [0, 1], got %f", h.Fraction)
		}
	}
	return nil
}
