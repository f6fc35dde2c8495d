package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NotFoundError{}, "not found"},
		{NotFoundError{Resource: "trip"}, "trip not found"},
		{ValidationError{Field: "duration_days", Msg: "must be positive"}, "duration_days: must be positive"},
		{ValidationError{Msg: "bad range"}, "bad range"},
		{ValidationError{Field: "email"}, "invalid email"},
		{ValidationError{}, "validation error"},
		{ConflictError{Resource: "user", Msg: "email already registered"}, "user conflict: email already registered"},
		{ConflictError{Resource: "user"}, "user conflict"},
		{ConflictError{Msg: "taken"}, "taken"},
		{ConflictError{}, "conflict"},
		{UnauthorizedError{}, "unauthorized"},
		{UnauthorizedError{Msg: "token expired"}, "token expired"},
		{InternalError{}, "internal error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorKindsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading trip 7: %w", NotFoundError{Resource: "trip", Err: sql.ErrNoRows})
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", ValidationError{Field: "amount"})))
	assert.True(t, IsConflict(ConflictError{}))
	assert.True(t, IsUnauthorized(UnauthorizedError{}))
	assert.True(t, IsInternal(InternalError{Msg: "corrupt expense"}))
	assert.False(t, IsInternal(errors.New("plain")))
}
