package main

import (
	"fmt"
	"strconv"
	"strings"

	"tripplanner/internal/budget"
	"tripplanner/internal/cli"
	"tripplanner/internal/costs"

	"github.com/spf13/cobra"
)

var (
	flagDays        int
	flagComfort     string
	flagCategorized bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate DESTINATION...",
	Short: "Estimate a trip budget",
	Long: "Estimate a trip budget for one or more destinations. A destination may carry\n" +
		"a country and explicit days as NAME[@COUNTRY][:DAYS], e.g. Paris@France:3.",
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().IntVarP(&flagDays, "days", "n", 3, "Trip length in days")
	estimateCmd.Flags().StringVarP(&flagComfort, "comfort", "c", budget.ComfortMedium, "Comfort level: budget, medium or luxury")
	estimateCmd.Flags().BoolVar(&flagCategorized, "categorized", false, "Break the estimate down by category")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	src, closeFn, err := openSource()
	if err != nil {
		return err
	}
	defer closeFn()

	est := budget.NewEstimator(src, src.Catalog().Fallback.Components, costs.SystemClock{})
	ctx := cmd.Context()

	if !flagCategorized && !cmd.Flags().Changed("comfort") {
		names := make([]string, 0, len(args))
		for _, a := range args {
			names = append(names, parseDestination(a).Name)
		}
		res, err := est.Simple(ctx, names, flagDays)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("TRIP ESTIMATE  %d days", res.DurationDays)))
		fmt.Print(cli.RenderKV([][2]string{
			{"Destinations", strings.Join(res.Destinations, ", ")},
			{"Matched", strings.Join(res.CitiesResolved, ", ")},
			{"Base daily", inr(res.BaseDaily)},
			{"Multi-city", fmt.Sprintf("x%.1f", res.MultiCityFactor)},
			{"Season", fmt.Sprintf("%s x%.1f", res.Season, res.SeasonalFactor)},
			{"Per day", inr(res.PerDay)},
			{"Total", cli.Cost(inr(res.TotalCost))},
		}))
		return nil
	}

	req := budget.Request{DurationDays: flagDays, ComfortLevel: flagComfort}
	for _, a := range args {
		req.Destinations = append(req.Destinations, parseDestination(a))
	}
	res, err := est.Categorized(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRIP ESTIMATE  %d days  %s", res.DurationDays, res.ComfortLevel)))
	fmt.Println()

	stops := make([][]string, 0, len(res.Stops))
	for _, s := range res.Stops {
		matched := s.ResolvedCity
		if matched == "" {
			matched = "-"
		}
		stops = append(stops, []string{s.Name, matched, fmt.Sprint(s.Days), inr(s.DailyCost), inr(s.Subtotal)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Stops",
		Headers: []string{"Destination", "Matched", "Days", "Daily", "Subtotal"},
		Rows:    stops,
	}))

	b := res.CostBreakdown
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Accommodation", inr(b.Accommodation)},
			{"Food", inr(b.Food)},
			{"Transport", inr(b.Transport)},
			{"Activities", inr(b.Activities)},
			{"Misc", inr(b.Misc)},
			{"---"},
			{"TOTAL", inr(res.TotalBudget)},
			{"Daily average", inr(res.DailyAverage)},
		},
	}))
	return nil
}

// parseDestination reads NAME[@COUNTRY][:DAYS].
func parseDestination(arg string) budget.Destination {
	var d budget.Destination
	rest := strings.TrimSpace(arg)
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(rest[i+1:])); err == nil {
			d.Days = n
			rest = rest[:i]
		}
	}
	name, country, _ := strings.Cut(rest, "@")
	d.Name = strings.TrimSpace(name)
	d.Country = strings.TrimSpace(country)
	return d
}
