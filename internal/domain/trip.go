package domain

// Trip represents a scheduled inter-city departure operated by an agency.
// AvailableSeats is the only field the reservation flow mutates; it must
// never go negative, and its value must always reconcile with the sum of
// seat counts across active reservations.
type Trip struct {
	ID             int64
	AgencyID       int64
	Origin         string
	Destination    string
	Date           string // calendar date, ISO format: 2025-06-20
	Time           string // departure time, e.g. 08:30
	Price          int64  // integer currency units per seat
	AvailableSeats int64
}
