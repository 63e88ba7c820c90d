package service

import "errors"

var (
	// ErrInvalidTripID is returned when a trip ID is not a positive integer.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidSeatCount is returned when a seat count is zero or negative.
	ErrInvalidSeatCount = errors.New("seat count must be a positive integer")

	// ErrInvalidReservationID is returned when a reservation ID is not a positive integer.
	ErrInvalidReservationID = errors.New("invalid reservation id")

	// ErrInvalidPhone is returned when a phone number fails validation.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidLanguage is returned when a language code is not supported.
	ErrInvalidLanguage = errors.New("unsupported language")

	// ErrPaymentInProgress is returned when a payment is already in flight
	// for the same reservation.
	ErrPaymentInProgress = errors.New("payment already in progress")

	// ErrPaymentDeclined is returned when the payment provider declines a charge.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrCatalogInUse is returned when a catalog sync is attempted while
	// reservations exist.
	ErrCatalogInUse = errors.New("catalog has active reservations")

	// ErrInvalidTripData is returned when a sync payload contains a malformed trip.
	ErrInvalidTripData = errors.New("invalid trip data")

	// ErrReservationUnpaid is returned when a ticket is requested for an
	// unpaid reservation.
	ErrReservationUnpaid = errors.New("reservation is not paid")
)
