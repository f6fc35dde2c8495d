package budget

import (
	"strings"

	"tripplanner/internal/domain"
)

const (
	ComfortBudget = "budget"
	ComfortMedium = "medium"
	ComfortLuxury = "luxury"
)

var comfortMultipliers = map[string]float64{
	ComfortBudget: 0.7,
	ComfortMedium: 1.0,
	ComfortLuxury: 1.8,
}

// ComfortMultiplier normalises level and returns it with its price factor.
// An empty level means medium.
func ComfortMultiplier(level string) (string, float64, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = ComfortMedium
	}
	m, ok := comfortMultipliers[level]
	if !ok {
		return "", 0, domain.ValidationError{
			Field: "comfort_level",
			Msg:   "must be one of budget, medium, luxury",
		}
	}
	return level, m, nil
}
