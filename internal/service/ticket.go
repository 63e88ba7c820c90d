package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// Ticket is the travel document issued for a paid reservation. Its
// payload is rendered as a QR code by clients.
type Ticket struct {
	Reference     string               `json:"reference"`
	ReservationID int64                `json:"reservation_id"`
	TripID        int64                `json:"trip_id"`
	AgencyName    string               `json:"agency_name"`
	Origin        string               `json:"origin"`
	Destination   string               `json:"destination"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Seats         int64                `json:"seats"`
	Amount        int64                `json:"amount"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	IssuedAt      time.Time            `json:"issued_at"`
}

// QRPayload returns the string encoded into the ticket's QR code.
func (t *Ticket) QRPayload() string {
	return fmt.Sprintf("SOTRAMA|%s|R%d|T%d|%s->%s|%s %s|%dx|%dFCFA",
		t.Reference, t.ReservationID, t.TripID,
		t.Origin, t.Destination, t.Date, t.Time, t.Seats, t.Amount)
}

// TicketService issues tickets for paid reservations.
type TicketService struct {
	reservationRepo repository.ReservationRepository
	tripRepo        repository.TripRepository
	agencyRepo      repository.AgencyRepository
}

// NewTicketService creates a new TicketService.
func NewTicketService(
	reservationRepo repository.ReservationRepository,
	tripRepo repository.TripRepository,
	agencyRepo repository.AgencyRepository,
) *TicketService {
	return &TicketService{
		reservationRepo: reservationRepo,
		tripRepo:        tripRepo,
		agencyRepo:      agencyRepo,
	}
}

// Issue builds a ticket for a reservation. The reservation must be paid.
func (s *TicketService) Issue(ctx context.Context, reservationID int64) (*Ticket, error) {
	if reservationID <= 0 {
		return nil, ErrInvalidReservationID
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.PaymentStatus != domain.PaymentStatusPaid {
		return nil, ErrReservationUnpaid
	}

	trip, err := s.tripRepo.GetByID(ctx, reservation.TripID)
	if err != nil {
		return nil, err
	}

	agency, err := s.agencyRepo.GetByID(ctx, trip.AgencyID)
	if err != nil {
		return nil, err
	}

	return &Ticket{
		Reference:     uuid.New().String(),
		ReservationID: reservation.ID,
		TripID:        trip.ID,
		AgencyName:    agency.Name,
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		Date:          trip.Date,
		Time:          trip.Time,
		Seats:         reservation.Seats,
		Amount:        trip.Price * reservation.Seats,
		PaymentStatus: reservation.PaymentStatus,
		IssuedAt:      time.Now().UTC(),
	}, nil
}
