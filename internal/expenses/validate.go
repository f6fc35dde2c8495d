// Package expenses validates new trip expenses and aggregates logged ones.
package expenses

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/shopspring/decimal"
)

// Input is an expense as submitted by a client. Amount may be a JSON number
// or a numeric string.
type Input struct {
	TripID        int64  `json:"-"`
	Category      string `json:"category"`
	Amount        any    `json:"amount"`
	Description   string `json:"description"`
	ExpenseDate   string `json:"expense_date"`
	DestinationID *int64 `json:"destination_id"`
}

// Validate turns an Input into a storable expense. Negative amounts are
// clamped to zero.
func Validate(in Input) (models.Expense, error) {
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		return models.Expense{}, domain.ValidationError{Field: "category", Msg: "is required"}
	}
	if !slices.Contains(models.ExpenseCategories, category) {
		return models.Expense{}, domain.ValidationError{
			Field: "category",
			Msg:   "must be one of " + strings.Join(models.ExpenseCategories, ", "),
		}
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	if strings.TrimSpace(in.ExpenseDate) == "" {
		return models.Expense{}, domain.ValidationError{Field: "expense_date", Msg: "is required"}
	}
	date, err := utils.ParseDate(in.ExpenseDate)
	if err != nil {
		return models.Expense{}, domain.ValidationError{Field: "expense_date", Msg: "must be YYYY-MM-DD", Err: err}
	}

	return models.Expense{
		TripID:        in.TripID,
		Category:      category,
		Amount:        amount,
		Description:   strings.TrimSpace(in.Description),
		ExpenseDate:   date,
		DestinationID: in.DestinationID,
	}, nil
}

// ParseAmount accepts the numeric shapes a decoded JSON body can carry.
func ParseAmount(v any) (float64, error) {
	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return 0, domain.ValidationError{Field: "amount", Msg: "is required"}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, domain.ValidationError{Field: "amount", Msg: "must be a number"}
		}
		d = decimal.NewFromFloat(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	case json.Number:
		parsed, err := decimal.NewFromString(x.String())
		if err != nil {
			return 0, domain.ValidationError{Field: "amount", Msg: "must be a number", Err: err}
		}
		d = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, domain.ValidationError{Field: "amount", Msg: "is required"}
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return 0, domain.ValidationError{Field: "amount", Msg: "must be a number", Err: err}
		}
		d = parsed
	default:
		return 0, domain.ValidationError{Field: "amount", Msg: fmt.Sprintf("unsupported type %T", v)}
	}

	if d.IsNegative() {
		return 0, nil
	}
	return d.InexactFloat64(), nil
}
