package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/Masterminds/squirrel"
)

var tripColumns = []string{
	"id", "user_id", "title", "COALESCE(description,'')", "start_date", "end_date",
	"status", "COALESCE(budget,0)", "COALESCE(priority,0)", "created_at",
}

var destinationColumns = []string{
	"id", "trip_id", "COALESCE(name,'')", "COALESCE(city,'')", "COALESCE(country,'')",
	"COALESCE(order_index,0)", "COALESCE(budget,0)", "start_date", "end_date",
}

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByUser returns the user's trips, newest first, with destinations loaded.
func (r TripRepository) ListByUser(userID int64) ([]models.Trip, error) {
	return r.list(sq.Select(tripColumns...).From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"))
}

// Recent returns at most limit trips, newest first.
func (r TripRepository) Recent(userID int64, limit int) ([]models.Trip, error) {
	if limit <= 0 {
		limit = 3
	}
	return r.list(sq.Select(tripColumns...).From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)))
}

// GetByIDs returns the user's trips among ids in database order.
func (r TripRepository) GetByIDs(userID int64, ids []int64) ([]models.Trip, error) {
	if len(ids) == 0 {
		return []models.Trip{}, nil
	}
	return r.list(sq.Select(tripColumns...).From("trips").
		Where(squirrel.Eq{"user_id": userID, "id": ids}).
		OrderBy("id ASC"))
}

func (r TripRepository) Get(userID, id int64) (models.Trip, error) {
	query, args, err := sq.Select(tripColumns...).From("trips").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Trip{}, err
	}

	t, err := scanTrip(r.db().QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
	}
	if err != nil {
		return models.Trip{}, fmt.Errorf("get trip %d: %w", id, err)
	}

	dests, err := r.destinations([]int64{t.ID})
	if err != nil {
		return models.Trip{}, err
	}
	t.Destinations = dests[t.ID]
	return t, nil
}

// Create inserts the trip and its destinations in one transaction.
func (r TripRepository) Create(t models.Trip) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := execBuilder(tx, sq.Insert("trips").
		Columns("user_id", "title", "description", "start_date", "end_date", "status", "budget", "priority", "created_at").
		Values(t.UserID, t.Title, t.Description, nullTime(t.StartDate), nullTime(t.EndDate), t.Status, t.Budget, t.Priority, t.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := insertDestinations(tx, id, t.Destinations); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the trip row. When replaceDestinations is set the
// destination list is replaced as a whole.
func (r TripRepository) Update(t models.Trip, replaceDestinations bool) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := execBuilder(tx, sq.Update("trips").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("start_date", nullTime(t.StartDate)).
		Set("end_date", nullTime(t.EndDate)).
		Set("status", t.Status).
		Set("budget", t.Budget).
		Set("priority", t.Priority).
		Where(squirrel.Eq{"id": t.ID, "user_id": t.UserID}))
	if err != nil {
		return fmt.Errorf("update trip %d: %w", t.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports 0 for unchanged rows too; confirm ownership
		if !r.exists(tx, t.UserID, t.ID) {
			return domain.NotFoundError{Resource: "trip"}
		}
	}

	if replaceDestinations {
		if _, err := execBuilder(tx, sq.Delete("trip_destinations").Where(squirrel.Eq{"trip_id": t.ID})); err != nil {
			return fmt.Errorf("clear destinations: %w", err)
		}
		if err := insertDestinations(tx, t.ID, t.Destinations); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the trip with its destinations and expenses.
func (r TripRepository) Delete(userID, id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if !r.exists(tx, userID, id) {
		return domain.NotFoundError{Resource: "trip"}
	}
	for _, table := range []string{"trip_expenses", "trip_destinations"} {
		if _, err := execBuilder(tx, sq.Delete(table).Where(squirrel.Eq{"trip_id": id})); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	if _, err := execBuilder(tx, sq.Delete("trips").Where(squirrel.Eq{"id": id, "user_id": userID})); err != nil {
		return fmt.Errorf("delete trip %d: %w", id, err)
	}
	return tx.Commit()
}

// Owns reports whether the trip exists and belongs to the user.
func (r TripRepository) Owns(userID, id int64) (bool, error) {
	query, args, err := sq.Select("1").From("trips").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.db().QueryRow(query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r TripRepository) exists(tx *sql.Tx, userID, id int64) bool {
	query, args, err := sq.Select("1").From("trips").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false
	}
	var one int
	return tx.QueryRow(query, args...).Scan(&one) == nil
}

func (r TripRepository) list(b squirrel.SelectBuilder) ([]models.Trip, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	out := []models.Trip{}
	ids := []int64{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	dests, err := r.destinations(ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Destinations = dests[out[i].ID]
	}
	return out, nil
}

func (r TripRepository) destinations(tripIDs []int64) (map[int64][]models.TripDestination, error) {
	query, args, err := sq.Select(destinationColumns...).From("trip_destinations").
		Where(squirrel.Eq{"trip_id": tripIDs}).
		OrderBy("trip_id", "order_index", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	out := map[int64][]models.TripDestination{}
	for rows.Next() {
		var d models.TripDestination
		var start, end sql.NullTime
		if err := rows.Scan(&d.ID, &d.TripID, &d.Name, &d.City, &d.Country, &d.OrderIndex, &d.Budget, &start, &end); err != nil {
			return nil, err
		}
		d.StartDate, d.EndDate = timePtr(start), timePtr(end)
		out[d.TripID] = append(out[d.TripID], d)
	}
	return out, rows.Err()
}

func insertDestinations(tx *sql.Tx, tripID int64, dests []models.TripDestination) error {
	if len(dests) == 0 {
		return nil
	}
	b := sq.Insert("trip_destinations").
		Columns("trip_id", "name", "city", "country", "order_index", "budget", "start_date", "end_date")
	for i, d := range dests {
		b = b.Values(tripID, d.Name, d.City, d.Country, i, d.Budget, nullTime(d.StartDate), nullTime(d.EndDate))
	}
	if _, err := execBuilder(tx, b); err != nil {
		return fmt.Errorf("insert destinations: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	var start, end sql.NullTime
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &start, &end,
		&t.Status, &t.Budget, &t.Priority, &t.CreatedAt)
	if err != nil {
		return models.Trip{}, err
	}
	t.StartDate, t.EndDate = timePtr(start), timePtr(end)
	return t, nil
}
