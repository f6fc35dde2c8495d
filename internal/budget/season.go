package budget

import "time"

type Season struct {
	Label  string  `json:"season"`
	Factor float64 `json:"seasonal_factor"`
}

var (
	PeakSeason    = Season{Label: "peak", Factor: 1.3}
	OffSeason     = Season{Label: "off", Factor: 0.8}
	RegularSeason = Season{Label: "regular", Factor: 1.0}
)

// SeasonFor maps a calendar month to its pricing season. Peak runs November
// through February.
func SeasonFor(m time.Month) Season {
	switch m {
	case time.November, time.December, time.January, time.February:
		return PeakSeason
	case time.June, time.July, time.August:
		return OffSeason
	default:
		return RegularSeason
	}
}
