package service

import (
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomVacant          = errors.New("room has no guest attached")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// ValidationError blocks an operation before any state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// InvalidTransitionError refuses an operation that the current state does
// not permit. The refusal is atomic: nothing was mutated.
type InvalidTransitionError struct {
	Entity string
	ID     string
	Op     string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	if e.To != "" {
		return fmt.Sprintf("cannot %s %s %s: status is %s, not %s", e.Op, e.Entity, e.ID, e.From, e.To)
	}
	return fmt.Sprintf("cannot %s %s %s in status %s", e.Op, e.Entity, e.ID, e.From)
}
