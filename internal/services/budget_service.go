package services

import (
	"context"
	"fmt"

	"tripplanner/internal/budget"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/expenses"
	"tripplanner/internal/utils"
)

type BudgetService struct {
	Estimator *budget.Estimator
	Trips     TripStore
	Expenses  ExpenseStore
	RequestID string
}

func (s BudgetService) Simple(ctx context.Context, destinations []string, days int) (budget.Estimate, error) {
	est, err := s.Estimator.Simple(ctx, destinations, days)
	if err != nil {
		return budget.Estimate{}, err
	}
	utils.LogEvent(s.RequestID, "budget", "estimate_simple", fmt.Sprintf("destinations=%d days=%d total=%.0f", len(destinations), days, est.TotalCost))
	return est, nil
}

func (s BudgetService) Categorized(ctx context.Context, req budget.Request) (budget.CategorizedEstimate, error) {
	est, err := s.Estimator.Categorized(ctx, req)
	if err != nil {
		return budget.CategorizedEstimate{}, err
	}
	utils.LogEvent(s.RequestID, "budget", "estimate_categorized", fmt.Sprintf("destinations=%d days=%d comfort=%s total=%.0f",
		len(req.Destinations), req.DurationDays, est.ComfortLevel, est.TotalBudget))
	return est, nil
}

// CategoryVariance compares the estimate for one expense category with what
// was spent. Variance is estimated minus spent.
type CategoryVariance struct {
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
	Spent     float64 `json:"spent"`
	Variance  float64 `json:"variance"`
}

type TripBudgetReport struct {
	TripID             int64                       `json:"trip_id"`
	Title              string                      `json:"title"`
	StartDate          *string                     `json:"start_date"`
	EndDate            *string                     `json:"end_date"`
	DurationDays       int                         `json:"duration_days"`
	TripBudget         float64                     `json:"trip_budget"`
	DestinationBudgets float64                     `json:"destination_budgets"`
	PlannedBudget      float64                     `json:"planned_budget"`
	Estimate           *budget.CategorizedEstimate `json:"estimate"`
	Spent              expenses.Summary            `json:"spent"`
	Remaining          float64                     `json:"remaining"`
	Categories         []CategoryVariance          `json:"categories"`
}

// TripReport reconciles a trip's budgets with an estimate for its
// destinations and with logged expenses.
func (s BudgetService) TripReport(ctx context.Context, userID, tripID int64) (TripBudgetReport, error) {
	trip, err := s.Trips.Get(userID, tripID)
	if err != nil {
		return TripBudgetReport{}, err
	}
	list, err := s.Expenses.ListByTrip(tripID)
	if err != nil {
		return TripBudgetReport{}, err
	}
	spent, err := expenses.Summarize(list)
	if err != nil {
		return TripBudgetReport{}, err
	}

	rep := TripBudgetReport{
		TripID:     trip.ID,
		Title:      trip.Title,
		StartDate:  utils.FormatDatePtr(trip.StartDate),
		EndDate:    utils.FormatDatePtr(trip.EndDate),
		TripBudget: trip.Budget,
		Spent:      spent,
	}
	for _, d := range trip.Destinations {
		rep.DestinationBudgets += d.Budget
	}

	req := tripEstimateRequest(trip)
	rep.DurationDays = req.DurationDays
	if len(req.Destinations) > 0 {
		est, err := s.Estimator.Categorized(ctx, req)
		if err != nil {
			return TripBudgetReport{}, err
		}
		rep.Estimate = &est
	}

	switch {
	case trip.Budget > 0:
		rep.PlannedBudget = trip.Budget
	case rep.DestinationBudgets > 0:
		rep.PlannedBudget = rep.DestinationBudgets
	case rep.Estimate != nil:
		rep.PlannedBudget = rep.Estimate.TotalBudget
	}
	rep.Remaining = utils.RoundHalfEven(rep.PlannedBudget-spent.TotalAmount, 2)
	rep.Categories = categoryVariances(rep.Estimate, spent)

	utils.LogEvent(s.RequestID, "budget", "trip_report", fmt.Sprintf("trip_id=%d", tripID))
	return rep, nil
}

// tripEstimateRequest derives the trip length from its dates, falling back to
// the destinations' own ranges and finally one day per destination.
func tripEstimateRequest(t models.Trip) budget.Request {
	req := budget.Request{ComfortLevel: budget.ComfortMedium}
	explicit := 0
	for _, d := range t.Destinations {
		days := d.Days()
		explicit += days
		req.Destinations = append(req.Destinations, budget.Destination{
			Name:    d.Label(),
			Country: d.Country,
			Days:    days,
		})
	}

	// destination ranges may run past the trip dates
	req.DurationDays = max(t.DurationDays(), explicit)
	if req.DurationDays == 0 {
		req.DurationDays = max(len(t.Destinations), 1)
	}
	return req
}

// categoryVariances lines estimate categories up with expense categories.
// The estimate's misc bucket covers shopping and other.
func categoryVariances(est *budget.CategorizedEstimate, spent expenses.Summary) []CategoryVariance {
	var b budget.Breakdown
	if est != nil {
		b = est.CostBreakdown
	}
	rows := []CategoryVariance{
		{Category: models.CategoryAccommodation, Estimated: b.Accommodation, Spent: spent.CategoryBreakdown[models.CategoryAccommodation]},
		{Category: models.CategoryMeals, Estimated: b.Food, Spent: spent.CategoryBreakdown[models.CategoryMeals]},
		{Category: models.CategoryTransport, Estimated: b.Transport, Spent: spent.CategoryBreakdown[models.CategoryTransport]},
		{Category: models.CategoryActivities, Estimated: b.Activities, Spent: spent.CategoryBreakdown[models.CategoryActivities]},
		{Category: "misc", Estimated: b.Misc, Spent: spent.CategoryBreakdown[models.CategoryShopping] + spent.CategoryBreakdown[models.CategoryOther]},
	}
	for i := range rows {
		rows[i].Variance = utils.RoundHalfEven(rows[i].Estimated-rows[i].Spent, 2)
	}
	return rows
}
