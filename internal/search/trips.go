package search

import (
	"strings"

	"tripplanner/internal/domain/models"
)

// TripScore is the best fuzzy score of query against the trip title and its
// destination names.
func TripScore(query string, t models.Trip) float64 {
	best := FuzzyScore(query, t.Title)
	for _, d := range t.Destinations {
		best = max(best, FuzzyScore(query, d.Name), FuzzyScore(query, d.City))
	}
	return best
}

// FilterTrips keeps trips matching status (when set) and query (when set),
// preserving input order.
func FilterTrips(trips []models.Trip, query, status string) []models.Trip {
	query = strings.TrimSpace(query)
	status = strings.TrimSpace(status)

	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if status != "" && t.Status != status {
			continue
		}
		if query != "" && TripScore(query, t) == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}
