package main

import (
	"fmt"
	"os"

	"tripplanner/internal/bootstrap"
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/costs"
	"tripplanner/internal/logger"
	"tripplanner/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagNoCache bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "tripctl",
	Short:         "Trip budget estimates and cost data",
	Long:          "Estimate trip budgets and inspect the city cost table, city profiles and exchange rates.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite snapshot cache")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log cost source activity to stderr")
}

// openSource is the shared cost source setup used by all commands.
func openSource() (*costs.Source, func(), error) {
	env := intconfig.LoadEnv()
	if flagNoCache {
		env.Costs.CachePath = ""
	}

	log := zap.NewNop()
	if flagVerbose {
		if err := logger.Init(env.LogLevel); err != nil {
			return nil, nil, err
		}
		log = logger.Named("costs")
	}
	return bootstrap.CostSource(env.Costs, log)
}

func inr(amount float64) string {
	return utils.FormatINR(utils.RoundToInt(amount))
}
