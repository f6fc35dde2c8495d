package main

import (
	"fmt"
	"strings"

	"tripplanner/internal/cli"
	"tripplanner/internal/costs"
	"tripplanner/internal/services"

	"github.com/spf13/cobra"
)

var (
	flagCost       string
	flagPopularity string
)

var citiesCmd = &cobra.Command{
	Use:   "cities [QUERY]",
	Short: "Search city travel profiles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCities,
}

func init() {
	citiesCmd.Flags().StringVar(&flagCost, "cost", "", "Filter by cost index: low, medium or high")
	citiesCmd.Flags().StringVar(&flagPopularity, "popularity", "", "Filter by popularity: low, medium or high")
	rootCmd.AddCommand(citiesCmd)
}

func runCities(_ *cobra.Command, args []string) error {
	catalog, err := costs.DefaultCatalog()
	if err != nil {
		return err
	}
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	list := services.CityService{Catalog: catalog}.Search(query, flagCost, flagPopularity)
	if len(list) == 0 {
		fmt.Println("\n  No cities match.")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.Name, c.State, c.CostIndex, c.Popularity, c.BestTime, inr(c.AvgCost), strings.Join(c.Highlights, ", ")})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%d cities", len(list)),
		Headers: []string{"City", "State", "Cost", "Popularity", "Best time", "Avg/day", "Highlights"},
		Rows:    rows,
	}))
	return nil
}
