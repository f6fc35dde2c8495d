package models

import "time"

// Expense categories accepted on creation.
const (
	CategoryAccommodation = "accommodation"
	CategoryMeals         = "meals"
	CategoryTransport     = "transport"
	CategoryActivities    = "activities"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// ExpenseCategories lists the closed category set in display order.
var ExpenseCategories = []string{
	CategoryAccommodation,
	CategoryMeals,
	CategoryTransport,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// Expense is a logged spend for a trip.
type Expense struct {
	ID            int64
	TripID        int64
	Category      string
	Amount        float64
	Description   string
	ExpenseDate   time.Time
	CreatedAt     time.Time
	DestinationID *int64
}
