package models

import (
	"math"
	"time"
)

// Trip is a user-owned itinerary.
type Trip struct {
	ID           int64
	UserID       int64
	Title        string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       string
	Budget       float64
	Priority     int
	CreatedAt    time.Time
	Destinations []TripDestination
}

// DurationDays counts calendar days between start and end, inclusive.
// Returns 0 when either date is missing.
func (t Trip) DurationDays() int {
	if t.StartDate == nil || t.EndDate == nil {
		return 0
	}
	days := int(math.Round(t.EndDate.Sub(*t.StartDate).Hours()/24)) + 1
	if days < 0 {
		return 0
	}
	return days
}

// TripDestination is one leg of a trip; Budget is the user-entered section budget.
type TripDestination struct {
	ID         int64
	TripID     int64
	Name       string
	City       string
	Country    string
	OrderIndex int
	Budget     float64
	StartDate  *time.Time
	EndDate    *time.Time
}

// Label prefers the city, then the free-text name.
func (d TripDestination) Label() string {
	if d.City != "" {
		return d.City
	}
	return d.Name
}

// Days is the inclusive length of the destination's date range, 0 when unset.
func (d TripDestination) Days() int {
	if d.StartDate == nil || d.EndDate == nil || d.EndDate.Before(*d.StartDate) {
		return 0
	}
	return int(math.Round(d.EndDate.Sub(*d.StartDate).Hours()/24)) + 1
}
