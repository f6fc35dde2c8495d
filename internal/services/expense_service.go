package services

import (
	"fmt"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/expenses"
	"tripplanner/internal/utils"
)

type ExpenseService struct {
	Trips     TripStore
	Expenses  ExpenseStore
	Now       func() time.Time
	RequestID string
}

// List returns a trip's expenses and their summary.
func (s ExpenseService) List(userID, tripID int64) ([]models.Expense, expenses.Summary, error) {
	if err := s.checkOwner(userID, tripID); err != nil {
		return nil, expenses.Summary{}, err
	}
	list, err := s.Expenses.ListByTrip(tripID)
	if err != nil {
		return nil, expenses.Summary{}, err
	}
	summary, err := expenses.Summarize(list)
	if err != nil {
		return nil, expenses.Summary{}, err
	}
	return list, summary, nil
}

func (s ExpenseService) Create(userID, tripID int64, in expenses.Input) (models.Expense, error) {
	if err := s.checkOwner(userID, tripID); err != nil {
		return models.Expense{}, err
	}
	in.TripID = tripID
	e, err := expenses.Validate(in)
	if err != nil {
		return models.Expense{}, err
	}
	e.CreatedAt = nowOr(s.Now)

	id, err := s.Expenses.Create(e)
	if err != nil {
		return models.Expense{}, err
	}
	e.ID = id
	utils.LogEvent(s.RequestID, "expense", "create", fmt.Sprintf("trip_id=%d expense_id=%d category=%s", tripID, id, e.Category))
	return e, nil
}

func (s ExpenseService) Delete(userID, tripID, expenseID int64) error {
	if err := s.checkOwner(userID, tripID); err != nil {
		return err
	}
	if err := s.Expenses.Delete(tripID, expenseID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "expense", "delete", fmt.Sprintf("trip_id=%d expense_id=%d", tripID, expenseID))
	return nil
}

func (s ExpenseService) checkOwner(userID, tripID int64) error {
	ok, err := s.Trips.Owns(userID, tripID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
