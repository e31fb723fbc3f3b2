package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ridequeue/ridequeue-sim/sim/ride"
	"github.com/ridequeue/ridequeue-sim/sim/scenario"
	"github.com/ridequeue/ridequeue-sim/sim/stats"
	"github.com/ridequeue/ridequeue-sim/sim/trace"
)

const defaultHorizon = 8 * 3600.0 // one 8-hour operating day, in seconds

var (
	// CLI flags for the run
	seed              int64   // Seed for inter-arrival draws
	simulationHorizon float64 // Total simulation time (in seconds)
	logLevel          string  // Log verbosity level
	scenarioLabel     string  // Scenario to run
	scenariosPath     string  // Optional YAML catalog extending the built-in scenarios
	opensAt           string  // Cron expression for park opening
	closesAt          string  // Cron expression for park closing
	referenceDate     string  // Day the operating window is evaluated from (YYYY-MM-DD)
	traceLevel        string  // Lifecycle trace verbosity
	resultsPath       string  // File to write the statistics record to (stdout if empty)

	// CLI flags for the ride
	boardingDuration float64 // Boarding/disembarking time per cycle (seconds)
	rideDuration     float64 // Ride time per cycle (seconds)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ridequeue-sim",
	Short: "Discrete-event simulator for a single-server ride queue",
}

// runCmd executes one scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ride queue simulation for one scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		registry, err := loadRegistry(scenariosPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		sc, err := registry.Resolve(scenarioLabel)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		windowSet := cmd.Flags().Changed("opens-at") || cmd.Flags().Changed("closes-at")
		horizon, err := resolveHorizon(simulationHorizon, cmd.Flags().Changed("horizon"), windowSet,
			opensAt, closesAt, referenceDate)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		cfg := ride.DefaultConfig(sc, horizon, seed)
		cfg.BoardingDuration = boardingDuration
		cfg.RideDuration = rideDuration
		cfg.TraceLevel = trace.TraceLevel(traceLevel)

		logrus.Infof("Starting simulation: scenario=%s, horizon=%.0fs, seed=%d, cycle=%.0fs",
			sc.Label, horizon, seed, cfg.CycleDuration())
		startTime := time.Now()

		result, summary, err := runScenario(cfg)
		if errors.Is(err, stats.ErrEmptyResultSet) {
			logrus.Warnf("Scenario %s: %v", sc.Label, err)
		} else if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if summary != nil {
			logrus.Infof("Trace: %d arrivals, %d admissions, %d completions, peak queue %d, peak holders %d",
				summary.Arrivals, summary.Admissions, summary.Completions, summary.PeakQueueLength, summary.PeakHolders)
		}

		if err := saveResults(result, resultsPath); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// runScenario runs the model and collects its statistics.
// The trace summary is nil when tracing is off.
// A stats.ErrEmptyResultSet error comes with a usable Result.
func runScenario(cfg ride.Config) (*stats.Result, *trace.TraceSummary, error) {
	out, err := ride.Run(cfg)
	if err != nil {
		return nil, nil, err
	}
	var summary *trace.TraceSummary
	if out.Trace != nil {
		summary = trace.Summarize(out.Trace)
	}
	result, err := stats.Collect(stats.InputFrom(out))
	return result, summary, err
}

// resolveHorizon picks the run horizon: the operating window when one was given,
// otherwise the --horizon value. Passing both is rejected.
func resolveHorizon(horizon float64, horizonSet, windowSet bool, opens, closes, date string) (float64, error) {
	if !windowSet {
		return horizon, nil
	}
	if horizonSet {
		return 0, fmt.Errorf("--horizon cannot be combined with --opens-at/--closes-at")
	}
	h, err := windowHorizon(opens, closes, date)
	if err != nil {
		return 0, fmt.Errorf("invalid operating window: %w", err)
	}
	return h, nil
}

// windowHorizon derives the horizon from cron opening/closing expressions.
// An empty date means today.
func windowHorizon(opens, closes, date string) (float64, error) {
	ref := time.Now()
	if date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return 0, fmt.Errorf("parsing date %q: %w", date, err)
		}
		ref = d
	}
	w := scenario.OperatingWindow{OpensAt: opens, ClosesAt: closes}
	return w.Horizon(ref)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for inter-arrival draws")
	runCmd.Flags().Float64Var(&simulationHorizon, "horizon", defaultHorizon, "Total simulation horizon (in seconds)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioLabel, "scenario", scenario.LowSeason, "Scenario label")
	runCmd.Flags().StringVar(&scenariosPath, "scenarios", "", "Path to a YAML scenario catalog extending the built-ins")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Lifecycle trace level (none, events)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "File to write the statistics JSON to (stdout if empty)")

	// Operating window (replaces --horizon; setting both is an error)
	runCmd.Flags().StringVar(&opensAt, "opens-at", "0 9 * * *", "Cron expression for the park opening")
	runCmd.Flags().StringVar(&closesAt, "closes-at", "0 17 * * *", "Cron expression for the park closing")
	runCmd.Flags().StringVar(&referenceDate, "date", "", "Day to evaluate the operating window from (YYYY-MM-DD, default today)")

	// Ride configs
	runCmd.Flags().Float64Var(&boardingDuration, "boarding-duration", ride.BoardingDuration, "Boarding/disembarking time per cycle (seconds)")
	runCmd.Flags().Float64Var(&rideDuration, "ride-duration", ride.RideDuration, "Ride time per cycle (seconds)")

	scenariosCmd.Flags().StringVar(&scenariosPath, "scenarios", "", "Path to a YAML scenario catalog extending the built-ins")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}
