package search

import (
	"cmp"
	"slices"
	"sort"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// Sort keys understood by SortTrips. Anything else sorts by creation time.
const (
	SortByTitle     = "title"
	SortByStartDate = "start_date"
	SortByStatus    = "status"
	SortByPriority  = "priority"
	SortByCreatedAt = "created_at"
)

var statusRank = map[string]int{
	domain.StatusPlanned:    1,
	domain.StatusInProgress: 2,
	domain.StatusCompleted:  3,
}

// SortTrips returns a sorted copy of trips. Equal keys keep their input
// order in both directions.
func SortTrips(trips []models.Trip, key string, desc bool) []models.Trip {
	out := slices.Clone(trips)
	compare := tripComparator(key)
	slices.SortStableFunc(out, func(a, b models.Trip) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func tripComparator(key string) func(a, b models.Trip) int {
	switch key {
	case SortByTitle:
		return func(a, b models.Trip) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortByStartDate:
		return func(a, b models.Trip) int {
			return dateOrZero(a.StartDate).Compare(dateOrZero(b.StartDate))
		}
	case SortByStatus:
		return func(a, b models.Trip) int {
			return cmp.Compare(statusRank[a.Status], statusRank[b.Status])
		}
	case SortByPriority:
		return func(a, b models.Trip) int {
			return cmp.Compare(a.Priority, b.Priority)
		}
	default:
		return func(a, b models.Trip) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// InsertPosition is the lower-bound index at which inserting item keeps sorted in order.
func InsertPosition[T any](sorted []T, item T, less func(a, b T) bool) int {
	return sort.Search(len(sorted), func(i int) bool {
		return !less(sorted[i], item)
	})
}
