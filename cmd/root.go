package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed         int64   // Seed for the shared variate stream
	horizon      float64 // Simulated duration of each policy run (time units)
	logLevel     string  // Log verbosity level
	initialLevel int     // Stock level each run starts from
	reviewPeriod float64 // Interval between inventory reviews

	// CLI flags for the demand and delivery models
	demandSizeCDF   []float64 // Cumulative probabilities for demand sizes 1..N
	meanInterdemand float64   // Mean exponential gap between demands
	deliveryLagMin  float64   // Lower bound of the uniform delivery lag
	deliveryLagMax  float64   // Upper bound of the uniform delivery lag

	// CLI flags for cost coefficients
	setupCost       float64 // K, per order placed
	incrementalCost float64 // i, per unit ordered
	holdingCost     float64 // h, per unit held per time unit
	shortageCost    float64 // pi, per unit backordered per time unit

	// CLI flag for the policy sweep table
	policiesFile string // Optional yaml file listing (s,S) policies
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Discrete-event simulator for (s,S) inventory policies",
}

// runCmd evaluates the policy sweep using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation over the policy sweep",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params := &sim.Parameters{
			InitialInventoryLevel: initialLevel,
			DemandSizeCDF:         demandSizeCDF,
			MeanInterdemandTime:   meanInterdemand,
			DeliveryLagMin:        deliveryLagMin,
			DeliveryLagMax:        deliveryLagMax,
			ReviewPeriod:          reviewPeriod,
			Horizon:               horizon,
			SetupCost:             setupCost,
			IncrementalCost:       incrementalCost,
			HoldingCost:           holdingCost,
			ShortageCost:          shortageCost,
		}
		if err := params.Validate(); err != nil {
			logrus.Fatalf("Invalid parameters: %v", err)
		}

		policies, err := ResolvePolicies(policiesFile)
		if err != nil {
			logrus.Fatalf("Could not load policy sweep: %v", err)
		}

		logrus.Infof("Starting sweep of %d policies, horizon=%v, seed=%d",
			len(policies), horizon, seed)
		startTime := time.Now()

		// One continuing stream across the whole sweep: policies are
		// compared against a comparable demand history.
		stream := sim.NewVariateStream(seed)

		sim.PrintHeader()
		for _, policy := range policies {
			report := sim.RunPolicy(params, policy, stream)
			report.Print()
		}

		logrus.Infof("Sweep complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().Int64Var(&seed, "seed", 1234, "Seed for the shared variate stream")
	runCmd.Flags().Float64Var(&horizon, "horizon", 120, "Simulated duration of each policy run (time units)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Inventory system configs
	runCmd.Flags().IntVar(&initialLevel, "initial-level", 60, "Stock level each run starts from")
	runCmd.Flags().Float64Var(&reviewPeriod, "review-period", 1, "Interval between inventory reviews")

	// Demand and delivery model configs
	runCmd.Flags().Float64SliceVar(&demandSizeCDF, "demand-size-cdf", []float64{0.167, 0.500, 0.833, 1.000},
		"Comma-separated cumulative probabilities for demand sizes 1..N")
	runCmd.Flags().Float64Var(&meanInterdemand, "mean-interdemand-time", 0.10, "Mean gap between successive demands")
	runCmd.Flags().Float64Var(&deliveryLagMin, "delivery-lag-min", 0.50, "Lower bound of the uniform delivery lag")
	runCmd.Flags().Float64Var(&deliveryLagMax, "delivery-lag-max", 1.00, "Upper bound of the uniform delivery lag")

	// Cost coefficients
	runCmd.Flags().Float64Var(&setupCost, "setup-cost", 32.0, "Setup cost K per order placed")
	runCmd.Flags().Float64Var(&incrementalCost, "incremental-cost", 3.0, "Incremental cost i per unit ordered")
	runCmd.Flags().Float64Var(&holdingCost, "holding-cost", 1.0, "Holding cost h per unit per time unit")
	runCmd.Flags().Float64Var(&shortageCost, "shortage-cost", 5.0, "Shortage cost pi per backordered unit per time unit")

	// Policy sweep table
	runCmd.Flags().StringVar(&policiesFile, "policies", "", "Path to a yaml policy table (defaults to the built-in sweep)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
