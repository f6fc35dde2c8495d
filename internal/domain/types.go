package domain

// Trip statuses accepted by the trips API.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidTripStatus reports whether s is one of the known trip statuses.
func ValidTripStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Currency of every amount handled by the service.
const Currency = "INR"

// Sort defines sorting preference.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc / desc
}

// Desc reports whether the direction asks for descending order.
func (s Sort) Desc() bool {
	return s.Direction == "desc"
}
