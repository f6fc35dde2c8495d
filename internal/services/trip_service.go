package services

import (
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/search"
	"tripplanner/internal/utils"
)

// TripService owns trip CRUD, search and ordering for one user at a time.
type TripService struct {
	Trips     TripStore
	Now       func() time.Time
	RequestID string
}

type DestinationInput struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Budget    float64 `json:"budget"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

type TripInput struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Status       string             `json:"status"`
	Budget       float64            `json:"budget"`
	Priority     int                `json:"priority"`
	Destinations []DestinationInput `json:"destinations"`
}

type TripSearch struct {
	Query  string
	Status string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

func (s TripService) List(userID int64) ([]models.Trip, error) {
	return s.Trips.ListByUser(userID)
}

func (s TripService) Get(userID, id int64) (models.Trip, error) {
	return s.Trips.Get(userID, id)
}

func (s TripService) Create(userID int64, in TripInput) (models.Trip, error) {
	t, err := buildTrip(in)
	if err != nil {
		return models.Trip{}, err
	}
	t.UserID = userID
	t.CreatedAt = nowOr(s.Now)

	id, err := s.Trips.Create(t)
	if err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d destinations=%d", id, len(t.Destinations)))
	return s.Trips.Get(userID, id)
}

// Update replaces the editable fields. Destinations are replaced only when the
// input carries any.
func (s TripService) Update(userID, id int64, in TripInput) (models.Trip, error) {
	existing, err := s.Trips.Get(userID, id)
	if err != nil {
		return models.Trip{}, err
	}
	t, err := buildTrip(in)
	if err != nil {
		return models.Trip{}, err
	}
	t.ID, t.UserID, t.CreatedAt = existing.ID, userID, existing.CreatedAt

	if err := s.Trips.Update(t, len(in.Destinations) > 0); err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "update", fmt.Sprintf("trip_id=%d", id))
	return s.Trips.Get(userID, id)
}

func (s TripService) Delete(userID, id int64) error {
	if err := s.Trips.Delete(userID, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

// Search filters the user's trips by fuzzy query and status, orders them and
// returns the requested page.
func (s TripService) Search(userID int64, q TripSearch) (search.Page[models.Trip], error) {
	trips, err := s.Trips.ListByUser(userID)
	if err != nil {
		return search.Page[models.Trip]{}, err
	}
	matched := search.FilterTrips(trips, q.Query, q.Status)
	sorted := search.SortTrips(matched, q.Sort, domain.Sort{Direction: q.Order}.Desc())
	return search.Paginate(sorted, q.Page, q.Limit), nil
}

// SortIDs orders the given trips and returns their ids. Ids the user does not
// own are dropped.
func (s TripService) SortIDs(userID int64, ids []int64, sortBy string, reverse bool) ([]int64, error) {
	trips, err := s.Trips.GetByIDs(userID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Trip, len(trips))
	for _, t := range trips {
		byID[t.ID] = t
	}
	// keep request order so ties follow it
	ordered := make([]models.Trip, 0, len(trips))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
			delete(byID, id)
		}
	}

	sorted := search.SortTrips(ordered, sortBy, reverse)
	out := make([]int64, len(sorted))
	for i, t := range sorted {
		out[i] = t.ID
	}
	return out, nil
}

// Cities lists the distinct destination labels of a trip in visiting order.
func (s TripService) Cities(userID, id int64) ([]string, error) {
	t, err := s.Trips.Get(userID, id)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, d := range t.Destinations {
		label := strings.TrimSpace(d.Label())
		key := strings.ToLower(label)
		if label == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, label)
	}
	return out, nil
}

func buildTrip(in TripInput) (models.Trip, error) {
	title := utils.NormalizeSpace(in.Title)
	if title == "" {
		return models.Trip{}, domain.ValidationError{Field: "title", Msg: "is required"}
	}

	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.StatusPlanned
	}
	if !domain.ValidTripStatus(status) {
		return models.Trip{}, domain.ValidationError{Field: "status", Msg: "must be planned, in_progress or completed"}
	}
	if in.Budget < 0 {
		return models.Trip{}, domain.ValidationError{Field: "budget", Msg: "must not be negative"}
	}

	start, end, err := parseRange(in.StartDate, in.EndDate, "")
	if err != nil {
		return models.Trip{}, err
	}

	t := models.Trip{
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		StartDate:    start,
		EndDate:      end,
		Status:       status,
		Budget:       in.Budget,
		Priority:     in.Priority,
		Destinations: []models.TripDestination{},
	}
	for i, d := range in.Destinations {
		name := utils.NormalizeSpace(d.Name)
		city := utils.NormalizeSpace(d.City)
		if name == "" {
			name = city
		}
		if name == "" {
			return models.Trip{}, domain.ValidationError{Field: fmt.Sprintf("destinations[%d].name", i), Msg: "is required"}
		}
		if d.Budget < 0 {
			return models.Trip{}, domain.ValidationError{Field: fmt.Sprintf("destinations[%d].budget", i), Msg: "must not be negative"}
		}
		ds, de, err := parseRange(d.StartDate, d.EndDate, fmt.Sprintf("destinations[%d].", i))
		if err != nil {
			return models.Trip{}, err
		}
		t.Destinations = append(t.Destinations, models.TripDestination{
			Name:       name,
			City:       city,
			Country:    utils.NormalizeSpace(d.Country),
			OrderIndex: i,
			Budget:     d.Budget,
			StartDate:  ds,
			EndDate:    de,
		})
	}
	return t, nil
}

func parseRange(startRaw, endRaw, prefix string) (*time.Time, *time.Time, error) {
	start, err := utils.ParseOptionalDate(startRaw)
	if err != nil {
		return nil, nil, domain.ValidationError{Field: prefix + "start_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseOptionalDate(endRaw)
	if err != nil {
		return nil, nil, domain.ValidationError{Field: prefix + "end_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, domain.ValidationError{Field: prefix + "end_date", Msg: "must not be before start_date"}
	}
	return start, end, nil
}
