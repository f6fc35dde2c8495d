package main

import (
	"fmt"
	"slices"
	"strings"

	"tripplanner/internal/cli"

	"github.com/spf13/cobra"
)

var flagSymbols []string

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Exchange rates from the home currency",
	RunE:  runRates,
}

func init() {
	ratesCmd.Flags().StringSliceVarP(&flagSymbols, "symbols", "s", []string{"USD", "EUR", "GBP"}, "Currencies to show; empty shows all")
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, _ []string) error {
	src, closeFn, err := openSource()
	if err != nil {
		return err
	}
	defer closeFn()

	rates := src.ExchangeRates(cmd.Context())
	codes := make([]string, 0, len(rates))
	if len(flagSymbols) == 0 {
		for code := range rates {
			codes = append(codes, code)
		}
		slices.Sort(codes)
	} else {
		for _, s := range flagSymbols {
			codes = append(codes, strings.ToUpper(strings.TrimSpace(s)))
		}
	}

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rate, ok := rates[code]
		if !ok {
			rows = append(rows, []string{code, "n/a", ""})
			continue
		}
		inverse := ""
		if rate > 0 {
			inverse = fmt.Sprintf("%.2f", 1/rate)
		}
		rows = append(rows, []string{code, fmt.Sprintf("%.6f", rate), inverse})
	}

	base := src.Catalog().Currency
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "1 " + base,
		Headers: []string{"Currency", "Rate", base + " per unit"},
		Rows:    rows,
	}))
	return nil
}
