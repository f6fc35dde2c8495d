package expenses

import (
	"fmt"
	"slices"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalAmount       float64            `json:"total_amount"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	DailyTotals       map[string]float64 `json:"daily_totals"`
	NumExpenses       int                `json:"num_expenses"`
	NumDays           int                `json:"num_days"`
	AvgDailySpend     float64            `json:"avg_daily_spend"`
}

// Summarize aggregates expenses in one pass. Records are expected to have
// passed Validate; one that did not fails the whole summary.
func Summarize(list []models.Expense) (Summary, error) {
	total := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	byDay := map[string]decimal.Decimal{}

	for _, e := range list {
		if err := checkStored(e); err != nil {
			return Summary{}, err
		}
		amount := decimal.NewFromFloat(e.Amount)
		day := utils.FormatDate(e.ExpenseDate)

		total = total.Add(amount)
		byCategory[e.Category] = byCategory[e.Category].Add(amount)
		byDay[day] = byDay[day].Add(amount)
	}

	numDays := max(len(byDay), 1)
	avg := total.Div(decimal.NewFromInt(int64(numDays))).RoundBank(2)

	return Summary{
		TotalAmount:       total.InexactFloat64(),
		CategoryBreakdown: toFloats(byCategory),
		DailyTotals:       toFloats(byDay),
		NumExpenses:       len(list),
		NumDays:           numDays,
		AvgDailySpend:     avg.InexactFloat64(),
	}, nil
}

func checkStored(e models.Expense) error {
	switch {
	case e.Amount < 0:
		return domain.InternalError{Msg: "expense summary failed", Err: fmt.Errorf("expense %d has negative amount", e.ID)}
	case !slices.Contains(models.ExpenseCategories, e.Category):
		return domain.InternalError{Msg: "expense summary failed", Err: fmt.Errorf("expense %d has unknown category %q", e.ID, e.Category)}
	case e.ExpenseDate.IsZero():
		return domain.InternalError{Msg: "expense summary failed", Err: fmt.Errorf("expense %d has no date", e.ID)}
	}
	return nil
}

func toFloats(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}
