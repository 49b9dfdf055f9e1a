package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/router-sim/router-sim/sim"
	"github.com/router-sim/router-sim/sim/workload"
)

var (
	// CLI flags for the generate command
	genSpecPath        string
	genPorts           int
	genMinPackets      int
	genMaxPackets      int
	genSeed            uint64
	genHotspotPort     int
	genHotspotFraction float64
	genOutputPath      string
)

// generateCmd writes a random router input file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random router input file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := io.Writer(os.Stdout)
		if genOutputPath != "" {
			f, err := os.Create(genOutputPath)
			if err != nil {
				logrus.Fatalf("creating %s: %v", genOutputPath, err)
			}
			defer f.Close()
			out = f
		}
		if err := runGenerate(cmd, out); err != nil {
			logrus.Errorf("%v", err)
			os.Exit(exitCode(err))
		}
	},
}

// buildGeneratorSpec loads --spec if given and overlays explicitly set flags.
func buildGeneratorSpec(cmd *cobra.Command) (*workload.GeneratorSpec, error) {
	spec := &workload.GeneratorSpec{
		NumPorts:   genPorts,
		MinPackets: genMinPackets,
		MaxPackets: genMaxPackets,
		Seed:       genSeed,
	}
	if genSpecPath != "" {
		loaded, err := workload.LoadGeneratorSpec(genSpecPath)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("ports") {
			loaded.NumPorts = genPorts
		}
		if cmd.Flags().Changed("min-packets") {
			loaded.MinPackets = genMinPackets
		}
		if cmd.Flags().Changed("max-packets") {
			loaded.MaxPackets = genMaxPackets
		}
		if cmd.Flags().Changed("seed") {
			loaded.Seed = genSeed
		}
		spec = loaded
	}
	if cmd.Flags().Changed("hotspot-port") {
		spec.Hotspot = &workload.HotspotSpec{Port: genHotspotPort, Fraction: genHotspotFraction}
	}
	if err := spec.Validate(sim.DefaultMaxPorts); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	return spec, nil
}

func runGenerate(cmd *cobra.Command, out io.Writer) error {
	spec, err := buildGeneratorSpec(cmd)
	if err != nil {
		return err
	}
	w := workload.Generate(spec)
	logrus.Infof("Generated %d packets for %d ports", w.TotalPackets(), spec.NumPorts)
	return w.Write(out)
}

// registerGenerateFlags binds the generate flags to c.
func registerGenerateFlags(c *cobra.Command) {
	c.Flags().StringVar(&genSpecPath, "spec", "", "YAML generator spec (flags override its fields)")
	c.Flags().IntVar(&genPorts, "ports", 4, "Number of ports")
	c.Flags().IntVar(&genMinPackets, "min-packets", 0, "Minimum packets per input port")
	c.Flags().IntVar(&genMaxPackets, "max-packets", 10, "Maximum packets per input port")
	c.Flags().Uint64Var(&genSeed, "seed", 42, "Seed for destination generation")
	c.Flags().IntVar(&genHotspotPort, "hotspot-port", 0, "Output port (1-based) receiving a biased share of packets")
	c.Flags().Float64Var(&genHotspotFraction, "hotspot-fraction", 0.5, "Probability a packet targets the hotspot port")
	c.Flags().StringVar(&genOutputPath, "output", "", "Output file (default stdout)")
}
