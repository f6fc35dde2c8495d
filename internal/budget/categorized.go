package budget

import (
	"context"
	"strings"

	"tripplanner/internal/costs"
	"tripplanner/internal/domain"
	"tripplanner/internal/utils"
)

// Destination is one stop of a categorized request. Country is optional and
// only consulted when the name is not a known city. Days of zero means the
// stop takes its share of the remaining trip length.
type Destination struct {
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Days    int    `json:"days,omitempty"`
}

type Request struct {
	Destinations []Destination `json:"destinations"`
	DurationDays int           `json:"duration_days"`
	ComfortLevel string        `json:"comfort_level"`
}

type Breakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
	Misc          float64 `json:"misc"`
}

// Total sums the five categories.
func (b Breakdown) Total() float64 {
	return b.Accommodation + b.Food + b.Transport + b.Activities + b.Misc
}

func (b Breakdown) add(o Breakdown) Breakdown {
	return Breakdown{
		Accommodation: b.Accommodation + o.Accommodation,
		Food:          b.Food + o.Food,
		Transport:     b.Transport + o.Transport,
		Activities:    b.Activities + o.Activities,
		Misc:          b.Misc + o.Misc,
	}
}

func (b Breakdown) scale(f float64) Breakdown {
	return Breakdown{
		Accommodation: b.Accommodation * f,
		Food:          b.Food * f,
		Transport:     b.Transport * f,
		Activities:    b.Activities * f,
		Misc:          b.Misc * f,
	}
}

func (b Breakdown) rounded() Breakdown {
	return Breakdown{
		Accommodation: utils.RoundHalfEven(b.Accommodation, 0),
		Food:          utils.RoundHalfEven(b.Food, 0),
		Transport:     utils.RoundHalfEven(b.Transport, 0),
		Activities:    utils.RoundHalfEven(b.Activities, 0),
		Misc:          utils.RoundHalfEven(b.Misc, 0),
	}
}

// perDay splits a day at one city into categories.
func perDay(c costs.CostComponents) Breakdown {
	return Breakdown{
		Accommodation: c.HotelCost,
		Food:          c.MealCost * 3,
		Transport:     c.TransportCost / 30,
		Activities:    c.HotelCost * 0.3,
		Misc:          c.CoffeeCost * 2,
	}
}

// StopEstimate is the share of a categorized estimate spent at one destination.
type StopEstimate struct {
	Name         string  `json:"name"`
	ResolvedCity string  `json:"resolved_city,omitempty"`
	Days         int     `json:"days"`
	DailyCost    float64 `json:"daily_cost"`
	Subtotal     float64 `json:"subtotal"`
}

type CategorizedEstimate struct {
	TotalBudget    float64        `json:"total_budget"`
	CostBreakdown  Breakdown      `json:"cost_breakdown"`
	DailyAverage   float64        `json:"daily_average"`
	DurationDays   int            `json:"duration_days"`
	Currency       string         `json:"currency"`
	ComfortLevel   string         `json:"comfort_level"`
	CitiesResolved []string       `json:"cities_resolved"`
	Stops          []StopEstimate `json:"stops"`
}

// Categorized estimates a trip per category. Category amounts are rounded to
// whole rupees and the total is their sum. Explicit stop lengths may cover
// fewer days than the trip; the daily average still spreads the total over
// the whole trip.
func (e *Estimator) Categorized(ctx context.Context, req Request) (CategorizedEstimate, error) {
	stops := make([]Destination, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		d.Name = strings.TrimSpace(d.Name)
		d.Country = strings.TrimSpace(d.Country)
		if d.Name == "" {
			continue
		}
		if d.Days < 0 {
			return CategorizedEstimate{}, domain.ValidationError{Field: "destinations.days", Msg: "must not be negative"}
		}
		stops = append(stops, d)
	}
	if len(stops) == 0 {
		return CategorizedEstimate{}, domain.ValidationError{Field: "destinations", Msg: "at least one destination is required"}
	}
	if req.DurationDays <= 0 {
		return CategorizedEstimate{}, domain.ValidationError{Field: "duration_days", Msg: "must be positive"}
	}
	explicit := 0
	for _, d := range stops {
		explicit += d.Days
	}
	if explicit > req.DurationDays {
		return CategorizedEstimate{}, domain.ValidationError{Field: "destinations.days", Msg: "must not add up to more than duration_days"}
	}

	level, multiplier, err := ComfortMultiplier(req.ComfortLevel)
	if err != nil {
		return CategorizedEstimate{}, err
	}

	days := AllocateDays(stops, req.DurationDays)
	table := e.Costs.CityCosts(ctx)
	mean := costs.MeanDailyCost(table)

	var total Breakdown
	out := CategorizedEstimate{
		DurationDays:   req.DurationDays,
		Currency:       domain.Currency,
		ComfortLevel:   level,
		CitiesResolved: []string{},
		Stops:          make([]StopEstimate, 0, len(stops)),
	}
	for i, d := range stops {
		stop := StopEstimate{Name: d.Name, Days: days[i]}
		switch c, ok := lookup(table, d.Name); {
		case ok:
			stop.ResolvedCity = c.Name
			stop.DailyCost = c.DailyCost
			out.CitiesResolved = append(out.CitiesResolved, c.Name)
		case d.Country != "":
			stop.DailyCost = e.Costs.DailyCost(ctx, d.Name, d.Country)
		default:
			stop.DailyCost = mean
		}

		day := perDay(e.Ratios.ScaledTo(stop.DailyCost)).scale(multiplier)
		spent := day.scale(float64(stop.Days))
		stop.Subtotal = utils.RoundHalfEven(spent.Total(), 0)
		stop.DailyCost = utils.RoundHalfEven(stop.DailyCost, 0)
		total = total.add(spent)
		out.Stops = append(out.Stops, stop)
	}

	out.CostBreakdown = total.rounded()
	out.TotalBudget = out.CostBreakdown.Total()
	out.DailyAverage = utils.RoundHalfEven(out.TotalBudget/float64(req.DurationDays), 0)
	return out, nil
}

// AllocateDays assigns a length of stay to every stop. Explicit days are kept;
// the rest of the trip is split evenly between the other stops, with the
// remainder going to the earliest of them.
func AllocateDays(stops []Destination, durationDays int) []int {
	out := make([]int, len(stops))
	remaining := durationDays
	open := 0
	for i, s := range stops {
		if s.Days > 0 {
			out[i] = s.Days
			remaining -= s.Days
			continue
		}
		open++
	}
	if open == 0 {
		return out
	}
	if remaining < 0 {
		remaining = 0
	}

	share, extra := remaining/open, remaining%open
	for i, s := range stops {
		if s.Days > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}
