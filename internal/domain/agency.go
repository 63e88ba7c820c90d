package domain

// Agency represents a transport operator offering scheduled trips.
// Agencies are immutable reference data seeded once at first startup;
// the reservation flow never mutates them.
type Agency struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	City      string
	Latitude  float64
	Longitude float64
}
