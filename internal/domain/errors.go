package domain

import (
	"errors"
	"fmt"
)

// NotFoundError means the trip, expense, recommendation or user does not exist,
// or is not owned by the caller. Both cases read the same to the client.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return e.Resource + " not found"
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError reports rejected caller input: a bad date range, an unknown
// comfort level, a negative stop length. Field names follow the JSON payload.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return "invalid " + e.Field
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError is a uniqueness clash, e.g. registering an email twice.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	label := "conflict"
	if e.Resource != "" {
		label = e.Resource + " conflict"
	}
	switch {
	case e.Msg == "":
		return label
	case e.Resource == "":
		return e.Msg
	}
	return label + ": " + e.Msg
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnauthorizedError covers bad credentials and missing or expired tokens.
type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg == "" {
		return "unauthorized"
	}
	return e.Msg
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

// InternalError wraps failures that must reach the caller as an opaque message,
// such as a stored expense the ledger cannot read.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg == "" {
		return "internal error"
	}
	return e.Msg
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool     { return is[NotFoundError](err) }
func IsValidation(err error) bool   { return is[ValidationError](err) }
func IsConflict(err error) bool     { return is[ConflictError](err) }
func IsUnauthorized(err error) bool { return is[UnauthorizedError](err) }
func IsInternal(err error) bool     { return is[InternalError](err) }

func is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
