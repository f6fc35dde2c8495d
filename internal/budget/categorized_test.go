package budget

import (
	"context"
	"testing"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateDays(t *testing.T) {
	stops := []Destination{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	assert.Equal(t, []int{3, 2, 2}, AllocateDays(stops, 7))
	assert.Equal(t, []int{1, 1, 0}, AllocateDays(stops, 2))

	stops[0].Days = 4
	assert.Equal(t, []int{4, 2, 1}, AllocateDays(stops, 7))
	assert.Equal(t, []int{4, 0, 0}, AllocateDays(stops, 3))

	assert.Equal(t, []int{2, 5}, AllocateDays([]Destination{{Days: 2}, {Days: 5}}, 3))
}

func TestCategorizedMediumMatchesBaseline(t *testing.T) {
	e := estimatorAt(newFakeCosts(), time.December)

	got, err := e.Categorized(context.Background(), Request{
		Destinations: []Destination{{Name: "Mumbai"}},
		DurationDays: 4,
	})
	require.NoError(t, err)

	assert.InDelta(t, 12000, got.TotalBudget, 3)
	assert.Equal(t, got.CostBreakdown.Total(), got.TotalBudget)
	assert.Equal(t, "medium", got.ComfortLevel)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, []string{"Mumbai"}, got.CitiesResolved)
	assert.InDelta(t, 3000, got.DailyAverage, 1)

	b := got.CostBreakdown
	assert.InDelta(t, 2500.0/900.0, b.Accommodation/b.Food, 0.01)
	assert.InDelta(t, 0.3, b.Activities/b.Accommodation, 0.01)
}

func TestCategorizedComfortLevels(t *testing.T) {
	e := estimatorAt(newFakeCosts(), time.March)
	ctx := context.Background()
	req := Request{Destinations: []Destination{{Name: "Delhi"}, {Name: "Goa"}}, DurationDays: 6}

	req.ComfortLevel = "budget"
	low, err := e.Categorized(ctx, req)
	require.NoError(t, err)

	req.ComfortLevel = " LUXURY "
	high, err := e.Categorized(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "luxury", high.ComfortLevel)

	assert.InDelta(t, 1.8/0.7, high.TotalBudget/low.TotalBudget, 0.01)
	// 3 days in Delhi and 3 in Goa at 0.7
	assert.InDelta(t, 6300, low.TotalBudget, 3)
}

func TestCategorizedResolvesByCountry(t *testing.T) {
	src := newFakeCosts()
	e := estimatorAt(src, time.March)

	got, err := e.Categorized(context.Background(), Request{
		Destinations: []Destination{
			{Name: "Paris", Country: "France", Days: 2},
			{Name: "Atlantis"},
		},
		DurationDays: 3,
		ComfortLevel: "medium",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Paris|France"}, src.asked)
	require.Len(t, got.Stops, 2)
	assert.Equal(t, 5000.0, got.Stops[0].DailyCost)
	assert.Equal(t, 2, got.Stops[0].Days)
	assert.Equal(t, 2000.0, got.Stops[1].DailyCost)
	assert.Equal(t, 1, got.Stops[1].Days)
	assert.InDelta(t, 12000, got.TotalBudget, 3)
	assert.Empty(t, got.CitiesResolved)
}

func TestCategorizedValidation(t *testing.T) {
	e := estimatorAt(newFakeCosts(), time.March)
	ctx := context.Background()

	_, err := e.Categorized(ctx, Request{DurationDays: 3})
	assert.True(t, domain.IsValidation(err))

	_, err = e.Categorized(ctx, Request{Destinations: []Destination{{Name: "  "}}, DurationDays: 3})
	assert.True(t, domain.IsValidation(err))

	_, err = e.Categorized(ctx, Request{Destinations: []Destination{{Name: "Goa"}}})
	assert.True(t, domain.IsValidation(err))

	_, err = e.Categorized(ctx, Request{Destinations: []Destination{{Name: "Goa", Days: -1}}, DurationDays: 2})
	assert.True(t, domain.IsValidation(err))

	_, err = e.Categorized(ctx, Request{Destinations: []Destination{{Name: "Goa"}}, DurationDays: 2, ComfortLevel: "backpacker"})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comfort_level", verr.Field)
}

func TestCategorizedExplicitDaysAgainstDuration(t *testing.T) {
	e := estimatorAt(newFakeCosts(), time.March)
	ctx := context.Background()

	_, err := e.Categorized(ctx, Request{
		Destinations: []Destination{{Name: "Goa", Days: 2}, {Name: "Delhi", Days: 3}},
		DurationDays: 4,
	})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "destinations.days", verr.Field)

	// 2 explicit days in Goa on a 4 day trip
	got, err := e.Categorized(ctx, Request{
		Destinations: []Destination{{Name: "Goa", Days: 2}},
		DurationDays: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stops[0].Days)
	assert.InDelta(t, 2000, got.TotalBudget, 3)
	assert.Equal(t, utils.RoundHalfEven(got.TotalBudget/4, 0), got.DailyAverage)
}
