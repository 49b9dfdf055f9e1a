package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/router-sim/router-sim/sim"
	"github.com/router-sim/router-sim/sim/input"
	"github.com/router-sim/router-sim/sim/trace"
)

var (
	// CLI flags for the run command
	logLevel    string // Log verbosity level
	configPath  string // Optional YAML defaults file
	maxPorts    int    // Maximum number of ports an input may declare
	drainDelay  int    // Round-robin cycles between output drains
	traceLevel  string // Trace verbosity: none or ticks
	resultsPath string // Optional JSON results file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "router-sim",
	Short: "Round-robin router congestion simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// runCmd executes the simulation on an input file
var runCmd = &cobra.Command{
	Use:   "run <input-file>",
	Short: "Run the router simulation and report per-port congestion",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulation(cmd, args[0], os.Stdout); err != nil {
			logrus.Errorf("%v", err)
			os.Exit(exitCode(err))
		}
	},
}

// runSimulation parses path, runs the simulator, and writes the report to out.
func runSimulation(cmd *cobra.Command, path string, out io.Writer) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	in, err := input.ParseFile(path, cfg.MaxPorts)
	if err != nil {
		return err
	}

	routerCfg := sim.NewRouterConfig(in.NumPorts, cfg.MaxPorts, cfg.DrainDelay)
	s, err := sim.NewSimulator(routerCfg, in.Queues)
	if err != nil {
		return err
	}

	var st *trace.SimulationTrace
	if cfg.TraceLevel == trace.TraceLevelTicks {
		st = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
		s.SetTrace(st)
	}

	startTime := time.Now()
	s.Run()
	logrus.Infof("Simulation complete in %v", time.Since(startTime))

	if err := s.Metrics.Print(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if st != nil {
		printTraceSummary(out, trace.Summarize(st))
	}
	if resultsPath != "" {
		if err := s.Metrics.SaveResults(resultsPath); err != nil {
			return err
		}
	}
	return nil
}

func printTraceSummary(out io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(out, "=== Trace Summary ===")
	fmt.Fprintf(out, "Transfers            : %d\n", summary.TotalTransfers)
	fmt.Fprintf(out, "Drain cycles         : %d\n", summary.DrainCycles)
	fmt.Fprintf(out, "Packets drained      : %d\n", summary.TotalDrained)
	fmt.Fprintf(out, "Peak updates         : %d\n", summary.PeakUpdates)
	if summary.BusiestOutputPort >= 0 {
		fmt.Fprintf(out, "Busiest output port  : %d (%d packets)\n",
			summary.BusiestOutputPort+1, summary.OutputDistribution[summary.BusiestOutputPort])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsage)
	}
}

// registerRunFlags binds the run flags to c. Binding resets the flag variables to their defaults.
func registerRunFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "YAML defaults file (max_ports, drain_delay, trace_level)")
	c.Flags().IntVar(&maxPorts, "max-ports", sim.DefaultMaxPorts, "Maximum number of ports an input file may declare")
	c.Flags().IntVar(&drainDelay, "drain-delay", sim.DefaultDrainDelay, "Round-robin cycles between output drains")
	c.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trace level (none, ticks)")
	c.Flags().StringVar(&resultsPath, "results-path", "", "Write JSON results to this file")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	registerRunFlags(runCmd)
	registerGenerateFlags(generateCmd)

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
