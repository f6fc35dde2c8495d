package expenses

import (
	"encoding/json"
	"testing"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateAccepts(t *testing.T) {
	destID := int64(9)
	got, err := Validate(Input{
		TripID:        4,
		Category:      " Meals ",
		Amount:        "250.50",
		Description:   "  dinner ",
		ExpenseDate:   "2024-03-10",
		DestinationID: &destID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.TripID)
	assert.Equal(t, "meals", got.Category)
	assert.Equal(t, 250.5, got.Amount)
	assert.Equal(t, "dinner", got.Description)
	assert.Equal(t, day("2024-03-10"), got.ExpenseDate)
	assert.Equal(t, &destID, got.DestinationID)
}

func TestParseAmountShapes(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{100.0, 100},
		{"42", 42},
		{json.Number("12.25"), 12.25},
		{int64(7), 7},
		{0.0, 0},
		{-15.0, 0},
		{"-3.5", 0},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestValidateRejects(t *testing.T) {
	base := Input{Category: "meals", Amount: 10.0, ExpenseDate: "2024-03-10"}

	cases := map[string]struct {
		mutate func(*Input)
		field  string
	}{
		"missing category": {func(in *Input) { in.Category = "" }, "category"},
		"unknown category": {func(in *Input) { in.Category = "souvenirs" }, "category"},
		"missing amount":   {func(in *Input) { in.Amount = nil }, "amount"},
		"blank amount":     {func(in *Input) { in.Amount = "  " }, "amount"},
		"text amount":      {func(in *Input) { in.Amount = "ten" }, "amount"},
		"bool amount":      {func(in *Input) { in.Amount = true }, "amount"},
		"missing date":     {func(in *Input) { in.ExpenseDate = "" }, "expense_date"},
		"bad date":         {func(in *Input) { in.ExpenseDate = "10/03/2024" }, "expense_date"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := Validate(in)

			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSummarize(t *testing.T) {
	list := []models.Expense{
		{ID: 1, Category: "accommodation", Amount: 100, ExpenseDate: day("2024-03-10")},
		{ID: 2, Category: "meals", Amount: 50, ExpenseDate: day("2024-03-10")},
		{ID: 3, Category: "meals", Amount: 30, ExpenseDate: day("2024-03-11")},
	}

	got, err := Summarize(list)
	require.NoError(t, err)
	assert.Equal(t, 180.0, got.TotalAmount)
	assert.Equal(t, map[string]float64{"accommodation": 100, "meals": 80}, got.CategoryBreakdown)
	assert.Equal(t, map[string]float64{"2024-03-10": 150, "2024-03-11": 30}, got.DailyTotals)
	assert.Equal(t, 3, got.NumExpenses)
	assert.Equal(t, 2, got.NumDays)
	assert.Equal(t, 90.0, got.AvgDailySpend)
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.TotalAmount)
	assert.Equal(t, 1, got.NumDays)
	assert.Equal(t, 0.0, got.AvgDailySpend)
	assert.Empty(t, got.CategoryBreakdown)
}

func TestSummarizeDecimalSums(t *testing.T) {
	list := []models.Expense{
		{Category: "other", Amount: 0.1, ExpenseDate: day("2024-01-01")},
		{Category: "other", Amount: 0.2, ExpenseDate: day("2024-01-02")},
		{Category: "other", Amount: 0.1, ExpenseDate: day("2024-01-03")},
	}
	got, err := Summarize(list)
	require.NoError(t, err)
	assert.Equal(t, 0.4, got.TotalAmount)
	assert.Equal(t, 0.13, got.AvgDailySpend)
}

func TestSummarizeRejectsCorruptRecords(t *testing.T) {
	good := models.Expense{Category: "meals", Amount: 10, ExpenseDate: day("2024-01-01")}

	for name, bad := range map[string]models.Expense{
		"negative": {Category: "meals", Amount: -1, ExpenseDate: day("2024-01-01")},
		"category": {Category: "fuel", Amount: 1, ExpenseDate: day("2024-01-01")},
		"no date":  {Category: "meals", Amount: 1},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Summarize([]models.Expense{good, bad})
			assert.True(t, domain.IsInternal(err))
			assert.Equal(t, Summary{}, got)
		})
	}
}
