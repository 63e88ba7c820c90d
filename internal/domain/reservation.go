package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending ReservationStatus = "pending"
)

// PaymentStatus represents the payment state of a reservation.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Reservation is a booking of a given seat count against a trip.
// The seat count never changes after creation; cancelling a reservation
// deletes the row and restores exactly Seats to the owning trip.
type Reservation struct {
	ID            int64
	TripID        int64
	Seats         int64
	Status        ReservationStatus
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// ReservationDetail pairs a reservation with its trip and agency for
// display on the reservation list and ticket screens.
type ReservationDetail struct {
	Reservation Reservation
	Trip        Trip
	Agency      Agency
}
