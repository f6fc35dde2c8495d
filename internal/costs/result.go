package costs

import "errors"

// DegradedReason explains why a live cost signal could not be used.
type DegradedReason string

const (
	ReasonNone                 DegradedReason = ""
	ReasonUnknownCountry       DegradedReason = "unknown_country"
	ReasonIndicatorUnavailable DegradedReason = "indicator_unavailable"
	ReasonIndicatorMalformed   DegradedReason = "indicator_malformed"
	ReasonRateUnavailable      DegradedReason = "rate_unavailable"
	ReasonRateMalformed        DegradedReason = "rate_malformed"
)

// ErrMalformed marks a response that arrived but could not be used.
var ErrMalformed = errors.New("malformed response")

// Result is the internal outcome of computing a cost signal.
// Public Source methods collapse degraded results to fallback values.
type Result struct {
	Value  float64
	Reason DegradedReason
	Err    error
}

func (r Result) Degraded() bool {
	return r.Reason != ReasonNone
}

func degraded(reason DegradedReason, err error) Result {
	return Result{Reason: reason, Err: err}
}

// classify picks the malformed or unavailable reason for a fetch error.
func classify(err error, unavailable, malformed DegradedReason) DegradedReason {
	if errors.Is(err, ErrMalformed) {
		return malformed
	}
	return unavailable
}
