package search

import (
	"testing"
	"time"

	"tripplanner/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyScore(t *testing.T) {
	assert.Equal(t, 1.0, FuzzyScore("Goa", " goa"))
	assert.Equal(t, 0.8, FuzzyScore("goa", "Goa Beach Trip"))
	assert.Equal(t, 0.0, FuzzyScore("", "goa"))
	assert.Equal(t, 0.0, FuzzyScore("goa", ""))

	// {d,e,l,h,i} vs {d,e,l,h,i,s}: 5/6
	assert.InDelta(t, 5.0/6.0, FuzzyScore("delhi", "dehlis"), 1e-9)
	assert.Equal(t, 0.0, FuzzyScore("xyz", "mumbai"))
}

func tripsFixture() []models.Trip {
	d := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Trip{
		{ID: 1, Title: "beta", Status: "completed", Priority: 2, StartDate: d("2024-05-01"), CreatedAt: created.Add(3 * time.Hour)},
		{ID: 2, Title: "Alpha", Status: "planned", Priority: 1, CreatedAt: created.Add(1 * time.Hour)},
		{ID: 3, Title: "alpha", Status: "in_progress", Priority: 2, StartDate: d("2024-02-01"), CreatedAt: created.Add(2 * time.Hour)},
		{ID: 4, Title: "Gamma", Status: "archived", Priority: 1, StartDate: d("2024-02-01"), CreatedAt: created},
	}
}

func ids(trips []models.Trip) []int64 {
	out := make([]int64, len(trips))
	for i, t := range trips {
		out[i] = t.ID
	}
	return out
}

func TestSortTrips(t *testing.T) {
	trips := tripsFixture()

	cases := []struct {
		key  string
		desc bool
		want []int64
	}{
		{SortByTitle, false, []int64{2, 3, 1, 4}},
		{SortByTitle, true, []int64{4, 1, 2, 3}},
		{SortByStartDate, false, []int64{2, 3, 4, 1}},
		{SortByStatus, false, []int64{4, 2, 3, 1}},
		{SortByPriority, false, []int64{2, 4, 1, 3}},
		{SortByPriority, true, []int64{1, 3, 2, 4}},
		{SortByCreatedAt, false, []int64{4, 2, 3, 1}},
		{"bogus", true, []int64{1, 3, 2, 4}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ids(SortTrips(trips, tc.key, tc.desc)), "%s desc=%v", tc.key, tc.desc)
	}

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(trips), "input must not be reordered")
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}

	p := Paginate(items, 2, 20)
	assert.Equal(t, 21, p.Items[0])
	assert.Len(t, p.Items, 20)
	assert.Equal(t, 45, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = Paginate(items, 3, 20)
	assert.Len(t, p.Items, 5)
	assert.False(t, p.HasNext)

	p = Paginate(items, 9, 20)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasNext)
}

func TestPaginateDefaults(t *testing.T) {
	p := Paginate([]string{"a", "b"}, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 1, p.Pages)
	assert.False(t, p.HasPrev)
	assert.Equal(t, []string{"a", "b"}, p.Items)

	empty := Paginate([]string{}, 1, 10)
	assert.Equal(t, 0, empty.Pages)
	assert.NotNil(t, empty.Items)
}

func TestInsertPosition(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	sorted := []int{1, 3, 3, 7}

	assert.Equal(t, 0, InsertPosition(sorted, 0, less))
	assert.Equal(t, 1, InsertPosition(sorted, 3, less))
	assert.Equal(t, 3, InsertPosition(sorted, 5, less))
	assert.Equal(t, 4, InsertPosition(sorted, 9, less))
	assert.Equal(t, 0, InsertPosition(nil, 9, less))
}

func TestFilterTrips(t *testing.T) {
	trips := tripsFixture()
	trips[0].Destinations = []models.TripDestination{{Name: "Goa"}}

	// "gamma" shares g and a with "goa"
	assert.Equal(t, []int64{1, 4}, ids(FilterTrips(trips, "goa", "")))
	assert.Equal(t, []int64{2, 3}, ids(FilterTrips(trips, "alpha", "")))
	assert.Equal(t, []int64{3}, ids(FilterTrips(trips, "alpha", "in_progress")))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(FilterTrips(trips, " ", "")))
}
