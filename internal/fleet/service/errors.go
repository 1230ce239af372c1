package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCrossTenant        = errors.New("cross-tenant access denied")
	ErrInvalidState       = errors.New("invalid equipment state")
	ErrSelfRoleChange     = errors.New("cannot change own role")
	ErrProtectedRole      = errors.New("role cannot be assigned")
	ErrRoleInUse          = errors.New("role is still assigned to users")
	ErrUnknownEvent       = errors.New("unknown webhook event")
)

// FieldViolation is one request-level validation failure, reported against a
// parameter where one applies.
type FieldViolation struct {
	Msg   string
	Param string
}

// ValidationError aggregates request validation failures. Handlers render it
// as a 400 with the errors array the API promises.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e.Violations[0].Msg)
}

// Invalid builds a single-field ValidationError.
func Invalid(msg, param string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Msg: msg, Param: param}}}
}
