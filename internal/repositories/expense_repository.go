package repositories

import (
	"database/sql"
	"fmt"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/Masterminds/squirrel"
)

type ExpenseRepository struct {
	DB *sql.DB
}

func (r ExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByTrip returns a trip's expenses, latest expense date first.
func (r ExpenseRepository) ListByTrip(tripID int64) ([]models.Expense, error) {
	query, args, err := sq.Select("id", "trip_id", "category", "amount", "COALESCE(description,'')",
		"expense_date", "created_at", "destination_id").
		From("trip_expenses").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("expense_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var dest sql.NullInt64
		if err := rows.Scan(&e.ID, &e.TripID, &e.Category, &e.Amount, &e.Description,
			&e.ExpenseDate, &e.CreatedAt, &dest); err != nil {
			return nil, err
		}
		e.DestinationID = int64Ptr(dest)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExpenseRepository) Create(e models.Expense) (int64, error) {
	res, err := execBuilder(r.db(), sq.Insert("trip_expenses").
		Columns("trip_id", "category", "amount", "description", "expense_date", "created_at", "destination_id").
		Values(e.TripID, e.Category, e.Amount, e.Description, e.ExpenseDate, e.CreatedAt, nullInt64(e.DestinationID)))
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	return res.LastInsertId()
}

func (r ExpenseRepository) Delete(tripID, id int64) error {
	res, err := execBuilder(r.db(), sq.Delete("trip_expenses").
		Where(squirrel.Eq{"id": id, "trip_id": tripID}))
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "expense"}
	}
	return nil
}
