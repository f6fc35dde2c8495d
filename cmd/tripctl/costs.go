package main

import (
	"fmt"
	"strings"

	"tripplanner/internal/cli"

	"github.com/spf13/cobra"
)

var flagRefresh bool

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Daily cost table for the home-country cities",
	RunE:  runCosts,
}

func init() {
	costsCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Drop cached values and fetch fresh signals first")
	rootCmd.AddCommand(costsCmd)
}

func runCosts(cmd *cobra.Command, _ []string) error {
	src, closeFn, err := openSource()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	if flagRefresh {
		info := src.Refresh(ctx)
		if info.Degraded {
			fmt.Println(cli.Warn(fmt.Sprintf("  live data unavailable (%s), showing static costs", info.Reason)))
		}
	}

	table := src.CityCosts(ctx)
	rows := make([][]string, 0, len(table))
	for _, c := range table {
		rows = append(rows, []string{c.Name, c.State, strings.ToLower(c.CostIndex), fmt.Sprintf("x%.2f", c.Multiplier), inr(c.DailyCost)})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CITY DAILY COSTS  " + src.Catalog().Currency))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"City", "State", "Cost", "Multiplier", "Daily"},
		Rows:    rows,
	}))
	return nil
}
