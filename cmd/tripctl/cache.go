package main

import (
	"fmt"
	"time"

	"tripplanner/internal/cli"
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/costs"
	"tripplanner/internal/store"

	"github.com/spf13/cobra"
)

var flagClear bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show or clear the persisted cost snapshot",
	RunE:  runCache,
}

func init() {
	cacheCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored snapshot")
	rootCmd.AddCommand(cacheCmd)
}

func runCache(_ *cobra.Command, _ []string) error {
	env := intconfig.LoadEnv()
	if env.Costs.CachePath == "" {
		fmt.Println("\n  No cache path configured.")
		return nil
	}
	snaps, err := store.Open(env.Costs.CachePath)
	if err != nil {
		return err
	}
	defer snaps.Close()

	if flagClear {
		if err := snaps.Clear(); err != nil {
			return err
		}
		fmt.Println("\n  Cost snapshots cleared.")
		return nil
	}

	catalog, err := costs.DefaultCatalog()
	if err != nil {
		return err
	}
	key := catalog.CountryCode
	pairs := [][2]string{{"Path", env.Costs.CachePath}, {"Key", key}, {"TTL", env.Costs.CacheTTL.String()}}

	at, ok, err := snaps.UpdatedAt(key)
	switch {
	case err != nil:
		return err
	case !ok:
		pairs = append(pairs, [2]string{"Saved", "never"})
	default:
		age := time.Since(at).Round(time.Second)
		state := "fresh"
		if costs.IsExpired(at, time.Now(), env.Costs.CacheTTL) {
			state = cli.Warn("expired")
		}
		pairs = append(pairs, [2]string{"Saved", fmt.Sprintf("%s (%s ago, %s)", at.Local().Format(time.DateTime), age, state)})
	}

	fmt.Println()
	fmt.Print(cli.RenderKV(pairs))
	return nil
}
