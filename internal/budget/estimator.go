// Package budget turns destinations and a trip length into cost estimates.
//
// Two strategies are offered. Simple applies the multi-city surcharge and the
// seasonal factor to an averaged daily baseline. Categorized derives per-city
// price components and scales them by comfort level into five categories.
package budget

import (
	"context"
	"strings"

	"tripplanner/internal/costs"
	"tripplanner/internal/domain"
	"tripplanner/internal/matcher"
	"tripplanner/internal/utils"
)

// MultiCityFactor covers transport between cities when a trip has more than
// one distinct destination.
const MultiCityFactor = 1.2

// CostSource is the part of costs.Source the estimator reads.
type CostSource interface {
	CityCosts(ctx context.Context) []costs.CityCost
	DailyCost(ctx context.Context, city, country string) float64
}

// DefaultRatios are the reference component prices whose proportions are used
// to split a daily baseline into categories.
var DefaultRatios = costs.CostComponents{HotelCost: 2500, MealCost: 300, TransportCost: 100, CoffeeCost: 150}

type Estimator struct {
	Costs  CostSource
	Clock  costs.Clock
	Ratios costs.CostComponents
}

func NewEstimator(src CostSource, ratios costs.CostComponents, clock costs.Clock) *Estimator {
	if clock == nil {
		clock = costs.SystemClock{}
	}
	if ratios.Daily() <= 0 {
		ratios = DefaultRatios
	}
	return &Estimator{Costs: src, Clock: clock, Ratios: ratios}
}

type Estimate struct {
	TotalCost       float64  `json:"total_cost"`
	PerDay          float64  `json:"per_day"`
	DurationDays    int      `json:"duration_days"`
	Destinations    []string `json:"destinations"`
	CitiesResolved  []string `json:"cities_resolved"`
	BaseDaily       float64  `json:"base_daily"`
	MultiCityFactor float64  `json:"multi_city_factor"`
	Season          string   `json:"season"`
	SeasonalFactor  float64  `json:"seasonal_factor"`
	Currency        string   `json:"currency"`
}

// Simple estimates a trip from destination names and length alone.
func (e *Estimator) Simple(ctx context.Context, destinations []string, durationDays int) (Estimate, error) {
	names := cleanNames(destinations)
	if len(names) == 0 {
		return Estimate{}, domain.ValidationError{Field: "destinations", Msg: "at least one destination is required"}
	}
	if durationDays <= 0 {
		return Estimate{}, domain.ValidationError{Field: "duration_days", Msg: "must be positive"}
	}

	table := e.Costs.CityCosts(ctx)
	mean := costs.MeanDailyCost(table)

	sum := 0.0
	resolved := []string{}
	for _, name := range names {
		if c, ok := lookup(table, name); ok {
			sum += c.DailyCost
			resolved = append(resolved, c.Name)
			continue
		}
		sum += mean
	}
	base := sum / float64(len(names))

	multi := 1.0
	if distinctCount(names) > 1 {
		multi = MultiCityFactor
	}
	season := SeasonFor(e.Clock.Now().Month())
	daily := base * multi * season.Factor

	return Estimate{
		TotalCost:       utils.RoundHalfEven(daily*float64(durationDays), 0),
		PerDay:          utils.RoundHalfEven(daily, 0),
		DurationDays:    durationDays,
		Destinations:    names,
		CitiesResolved:  resolved,
		BaseDaily:       utils.RoundHalfEven(base, 2),
		MultiCityFactor: multi,
		Season:          season.Label,
		SeasonalFactor:  season.Factor,
		Currency:        domain.Currency,
	}, nil
}

// lookup resolves a free-text name to a table row through the fuzzy matcher.
func lookup(table []costs.CityCost, name string) (costs.CityCost, bool) {
	known := make([]string, len(table))
	for i, c := range table {
		known[i] = c.Name
	}
	city, ok := matcher.Match(name, known)
	if !ok {
		return costs.CityCost{}, false
	}
	for _, c := range table {
		if c.Name == city {
			return c, true
		}
	}
	return costs.CityCost{}, false
}

func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func distinctCount(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[strings.ToLower(n)] = struct{}{}
	}
	return len(seen)
}
