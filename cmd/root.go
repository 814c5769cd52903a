package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/capacity-sim/capacity-sim/sim"
	"github.com/capacity-sim/capacity-sim/sim/trace"
	"github.com/capacity-sim/capacity-sim/sim/workload"
)

var (
	// CLI flags for the run command
	tracePath     string    // Path to the CSV arrival trace
	workers       int       // Number of workers in the pool
	queueCapacity int       // Admission queue capacity (-1 = unbounded)
	endpoints     int       // Number of rate-limited endpoints
	rpmLimit      int       // Uniform per-window admission cap
	rpmLimits     []int     // Per-endpoint admission caps (overrides --rpm-limit)
	percentiles   []float64 // Queueing-delay percentiles to report
	logLevel      string    // Log verbosity level
	scenarioFile  string    // YAML scenario preset file
	scenarioName  string    // Scenario name inside the preset file
	traceLevel    string    // Decision trace level (none, decisions)
	reportPath    string    // Optional YAML report output path

	// CLI flags for the generate command
	genOutput     string  // Output CSV path
	genNumTasks   int     // Number of tasks to generate
	genSeed       int64   // RNG seed
	genProcess    string  // Arrival process (poisson, uniform)
	genMeanIAT    float64 // Poisson mean inter-arrival ticks
	genMinIAT     int64   // Uniform inter-arrival lower bound
	genMaxIAT     int64   // Uniform inter-arrival upper bound
	genServiceMin int64   // Service duration lower bound
	genServiceMax int64   // Service duration upper bound
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "capsim",
	Short: "Discrete-event simulator for bounded-capacity services",
	Long: `capsim simulates a fixed worker pool draining an admission-controlled FIFO
queue, where each task additionally needs a call to one of several externally
rate-limited endpoints tried in fixed priority order. It reports the queueing
delay distribution, rejection and failure counts, and per-endpoint load.`,
}

// runCmd executes a simulation over a recorded arrival trace
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation over a CSV arrival trace",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if tracePath == "" {
			logrus.Fatalf("No arrival trace provided. Use --trace.")
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (valid: none, decisions)", traceLevel)
		}

		cfg := resolveConfig()

		tasks, err := ParseTraceCSV(tracePath)
		if err != nil {
			logrus.Fatalf("Unable to load arrival trace: %v", err)
		}
		logrus.Infof("Starting simulation: %d tasks, %d workers, queue capacity %d, %d endpoints",
			len(tasks), cfg.Workers, cfg.QueueCapacity, len(cfg.RPMLimits))

		s, err := sim.NewSimulator(cfg, tasks)
		if err != nil {
			logrus.Fatalf("Refusing to start run: %v", err)
		}
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			s.Trace = trace.NewSimulationTrace(trace.TraceLevelDecisions)
		}

		startTime := time.Now()
		terminal := s.Run()
		logrus.Infof("Simulation finished in %v wall time", time.Since(startTime))

		report := sim.ComputeReport(terminal, len(cfg.RPMLimits), cfg.ReportPercentiles())
		report.Print()
		printTraceSummary(s.Trace)

		if reportPath != "" {
			if err := writeReport(reportPath, report); err != nil {
				logrus.Fatalf("Unable to write report: %v", err)
			}
			logrus.Infof("Report written to %s", reportPath)
		}
	},
}

// generateCmd emits a synthetic arrival trace readable by the run command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic CSV arrival trace",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		tasks, err := workload.Generate(workload.GeneratorConfig{
			NumTasks:         genNumTasks,
			Seed:             genSeed,
			Process:          genProcess,
			MeanInterarrival: genMeanIAT,
			MinInterarrival:  genMinIAT,
			MaxInterarrival:  genMaxIAT,
			ServiceMin:       genServiceMin,
			ServiceMax:       genServiceMax,
		})
		if err != nil {
			logrus.Fatalf("Unable to generate trace: %v", err)
		}
		if err := WriteTraceCSV(genOutput, tasks); err != nil {
			logrus.Fatalf("Unable to write trace: %v", err)
		}
		fmt.Printf("Generated %d tasks in '%s'\n", len(tasks), genOutput)
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig builds the simulation Config from a scenario preset when one
// is named, otherwise from the individual flags.
func resolveConfig() sim.Config {
	if scenarioFile != "" {
		cfg, err := GetScenarioConfig(scenarioFile, scenarioName)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		logrus.Infof("Using scenario preset %q from %s", scenarioName, scenarioFile)
		return *cfg
	}

	limits := rpmLimits
	if len(limits) == 0 {
		limits = sim.UniformRPMLimits(endpoints, rpmLimit)
	}
	return sim.Config{
		Workers:       workers,
		QueueCapacity: queueCapacity,
		RPMLimits:     limits,
		Percentiles:   percentiles,
	}
}

func printTraceSummary(st *trace.SimulationTrace) {
	if st == nil {
		return
	}
	summary := trace.Summarize(st)
	fmt.Println("=== Decision Trace Summary ===")
	fmt.Printf("Admissions           : %d (%d admitted, %d rejected, %d fast-path)\n",
		summary.TotalAdmissions, summary.AdmittedCount, summary.RejectedCount, summary.FastPathCount)
	fmt.Printf("Dispatches           : %d (%d granted, %d exhausted)\n",
		summary.TotalDispatches, summary.GrantedCount, summary.ExhaustedCount)
	fmt.Printf("Peak Queue Length    : %d\n", summary.MaxQueueLen)
}

func writeReport(path string, report *sim.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Path to the CSV arrival trace")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of workers in the pool")
	runCmd.Flags().IntVarP(&queueCapacity, "queue-capacity", "q", sim.UnboundedCapacity, "Admission queue capacity (-1 = unbounded)")
	runCmd.Flags().IntVar(&endpoints, "endpoints", 1, "Number of rate-limited endpoints")
	runCmd.Flags().IntVar(&rpmLimit, "rpm-limit", 60, "Per-window admission cap, uniform across endpoints")
	runCmd.Flags().IntSliceVar(&rpmLimits, "rpm-limits", nil, "Per-endpoint admission caps (overrides --rpm-limit and --endpoints)")
	runCmd.Flags().Float64SliceVar(&percentiles, "percentiles", nil, "Queueing-delay percentiles to report (default 50,75,90,99)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario preset file")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "default", "Scenario name inside --scenario-file")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVarP(&reportPath, "output", "o", "", "Write the report as YAML to this path")

	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "sample_requests.csv", "Output CSV file name")
	generateCmd.Flags().IntVarP(&genNumTasks, "num-tasks", "n", 25, "Number of tasks to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random trace generation")
	generateCmd.Flags().StringVar(&genProcess, "process", workload.ProcessUniform, "Arrival process (poisson, uniform)")
	generateCmd.Flags().Float64Var(&genMeanIAT, "mean-interarrival", 5, "Poisson mean inter-arrival ticks")
	generateCmd.Flags().Int64Var(&genMinIAT, "min-interarrival", 0, "Uniform inter-arrival lower bound in ticks")
	generateCmd.Flags().Int64Var(&genMaxIAT, "max-interarrival", 1, "Uniform inter-arrival upper bound in ticks")
	generateCmd.Flags().Int64Var(&genServiceMin, "service-min", 1, "Service duration lower bound in ticks")
	generateCmd.Flags().Int64Var(&genServiceMax, "service-max", 10, "Service duration upper bound in ticks")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
