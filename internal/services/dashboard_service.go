package services

import (
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

type DashboardService struct {
	Trips TripStore
	Now   func() time.Time
}

type DashboardStats struct {
	TotalTrips     int     `json:"total_trips"`
	CompletedTrips int     `json:"completed_trips"`
	UpcomingTrips  int     `json:"upcoming_trips"`
	PlacesVisited  int     `json:"places_visited"`
	TotalBudget    float64 `json:"total_budget"`
	AvgBudget      float64 `json:"avg_budget"`
}

// Stats counts over all of the user's trips. A trip is upcoming when it has
// a start date of today or later; places are distinct name/city/country triples.
func (s DashboardService) Stats(userID int64) (DashboardStats, error) {
	trips, err := s.Trips.ListByUser(userID)
	if err != nil {
		return DashboardStats{}, err
	}

	today := utils.StartOfDay(nowOr(s.Now))
	places := map[[3]string]struct{}{}
	var out DashboardStats
	for _, t := range trips {
		out.TotalTrips++
		out.TotalBudget += t.Budget
		if t.Status == domain.StatusCompleted {
			out.CompletedTrips++
		}
		if t.StartDate != nil && !t.StartDate.Before(today) {
			out.UpcomingTrips++
		}
		for _, d := range t.Destinations {
			places[[3]string{d.Name, d.City, d.Country}] = struct{}{}
		}
	}
	out.PlacesVisited = len(places)
	out.AvgBudget = utils.RoundHalfEven(out.TotalBudget/float64(max(out.TotalTrips, 1)), 2)
	return out, nil
}

func (s DashboardService) RecentTrips(userID int64, limit int) ([]models.Trip, error) {
	return s.Trips.Recent(userID, limit)
}
