package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrStoreError      = errors.New("store error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenRevoked       = errors.New("token revoked")

	ErrTripNotFound      = errors.New("trip not found")
	ErrSavedTripNotFound = errors.New("saved trip not found")
	ErrDayNotFound       = errors.New("day not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrNoValidTrips      = errors.New("no valid trips found in import data")
	ErrConcurrentUpdate  = errors.New("concurrent update, retry")
)

// InputError is a validation failure whose message is safe to show to the caller.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func InvalidInput(msg string) error {
	return &InputError{Msg: msg}
}
