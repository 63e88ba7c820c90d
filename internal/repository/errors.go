package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInsufficientSeats is returned when a seat adjustment would drive
	// a trip's available-seat count below zero.
	ErrInsufficientSeats = errors.New("insufficient seats")
)

// InsufficientSeatsError carries the number of seats still available on
// the trip so callers can surface the count to the user.
type InsufficientSeatsError struct {
	TripID    int64
	Remaining int64
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("insufficient seats on trip %d: only %d available", e.TripID, e.Remaining)
}

// Unwrap lets errors.Is match against ErrInsufficientSeats.
func (e *InsufficientSeatsError) Unwrap() error { return ErrInsufficientSeats }
