package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfEven(t *testing.T) {
	assert.Equal(t, int64(2), RoundToInt(2.5))
	assert.Equal(t, int64(4), RoundToInt(3.5))
	assert.Equal(t, int64(3), RoundToInt(2.6))
	assert.Equal(t, 90.0, RoundHalfEven(90.0, 2))
	assert.Equal(t, 33.33, RoundHalfEven(100.0/3.0, 2))
}

func TestFormatINR(t *testing.T) {
	tests := map[int64]string{
		0:        "INR 0",
		999:      "INR 999",
		1000:     "INR 1,000",
		123456:   "INR 1,23,456",
		12345678: "INR 1,23,45,678",
		-25000:   "-INR 25,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatINR(in))
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Goa", "New Delhi", "Agra"}, SplitList(" Goa, New   Delhi ;;\nAgra,"))
	assert.Empty(t, SplitList(" , ;"))
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-02-29", FormatDate(*d))

	_, err = ParseOptionalDate("29/02/2024")
	assert.Error(t, err)
}

func TestRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := Retry{MaxAttempts: 3, BaseDelay: time.Millisecond}.Do(context.Background(), "op", func() error {
		calls++
		if calls < 2 {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryGivesUp(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Retry{MaxAttempts: 3, BaseDelay: time.Millisecond}.Do(context.Background(), "op", func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	permanent := errors.New("bad payload")
	calls := 0
	r := Retry{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
	}
	err := r.Do(context.Background(), "op", func() error {
		calls++
		return permanent
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
