package services

import (
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	trips := new(MockTripStore)
	svc := DashboardService{Trips: trips, Now: fixedNow}
	trips.On("ListByUser", int64(7)).Return([]models.Trip{
		{ID: 1, Status: domain.StatusCompleted, Budget: 1000, StartDate: datePtr("2024-01-05"),
			Destinations: []models.TripDestination{{Name: "Goa", Country: "India"}}},
		{ID: 2, Status: domain.StatusPlanned, Budget: 2000, StartDate: datePtr("2024-03-15"),
			Destinations: []models.TripDestination{{Name: "Goa", Country: "India"}, {City: "Delhi", Country: "India"}}},
		{ID: 3, Status: domain.StatusPlanned, Budget: 333.333},
	}, nil)

	got, err := svc.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalTrips)
	assert.Equal(t, 1, got.CompletedTrips)
	assert.Equal(t, 1, got.UpcomingTrips)
	assert.Equal(t, 2, got.PlacesVisited)
	assert.InDelta(t, 3333.333, got.TotalBudget, 1e-9)
	assert.Equal(t, 1111.11, got.AvgBudget)
}

func TestDashboardStatsEmpty(t *testing.T) {
	trips := new(MockTripStore)
	svc := DashboardService{Trips: trips, Now: fixedNow}
	trips.On("ListByUser", int64(7)).Return([]models.Trip{}, nil)

	got, err := svc.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{}, got)
}
