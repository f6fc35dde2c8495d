package services

import (
	"time"

	"tripplanner/internal/domain/models"
)

// TripStore is the trip persistence the services depend on.
type TripStore interface {
	ListByUser(userID int64) ([]models.Trip, error)
	Recent(userID int64, limit int) ([]models.Trip, error)
	GetByIDs(userID int64, ids []int64) ([]models.Trip, error)
	Get(userID, id int64) (models.Trip, error)
	Create(t models.Trip) (int64, error)
	Update(t models.Trip, replaceDestinations bool) error
	Delete(userID, id int64) error
	Owns(userID, id int64) (bool, error)
}

type ExpenseStore interface {
	ListByTrip(tripID int64) ([]models.Expense, error)
	Create(e models.Expense) (int64, error)
	Delete(tripID, id int64) error
}

type WishlistStore interface {
	ListByUser(userID int64) ([]models.WishlistItem, error)
	Create(w models.WishlistItem) (int64, error)
	Rate(userID, id int64, rating float64, at time.Time) error
}

type UserStore interface {
	GetByEmail(email string) (models.User, error)
	Create(u models.User) (int64, error)
}

func nowOr(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}
