package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sotrama/internal/domain"
	"sotrama/internal/service"
)

// ReservationHandler handles HTTP requests for reservations.
type ReservationHandler struct {
	reservationService *service.ReservationService
	paymentService     *service.PaymentService
	ticketService      *service.TicketService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(
	reservationService *service.ReservationService,
	paymentService *service.PaymentService,
	ticketService *service.TicketService,
) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		paymentService:     paymentService,
		ticketService:      ticketService,
	}
}

// CreateReservationRequest is the HTTP request body for creating a reservation.
type CreateReservationRequest struct {
	TripID int64 `json:"trip_id"`
	Seats  int64 `json:"seats"`
}

// ReservationResponse is the HTTP response for reservation data.
type ReservationResponse struct {
	ID            int64  `json:"id"`
	TripID        int64  `json:"trip_id"`
	Seats         int64  `json:"seats"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     string `json:"created_at"`
}

func toReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		TripID:        r.TripID,
		Seats:         r.Seats,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

// Create handles POST /v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), service.CreateReservationRequest{
		TripID: req.TripID,
		Seats:  req.Seats,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toReservationResponse(reservation))
}

// GetAll handles GET /v1/reservations
func (h *ReservationHandler) GetAll(c *gin.Context) {
	if c.Query("with_trips") == "true" {
		h.getAllWithTrips(c)
		return
	}

	reservations, err := h.reservationService.ListReservations(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		response = append(response, toReservationResponse(r))
	}

	respondJSON(c, http.StatusOK, response)
}

// ReservationDetailResponse is a reservation joined with trip and agency data.
type ReservationDetailResponse struct {
	ReservationResponse
	Trip   TripResponse `json:"trip"`
	Agency string       `json:"agency"`
}

func (h *ReservationHandler) getAllWithTrips(c *gin.Context) {
	details, err := h.reservationService.ListReservationsWithTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ReservationDetailResponse, 0, len(details))
	for _, d := range details {
		response = append(response, ReservationDetailResponse{
			ReservationResponse: toReservationResponse(&d.Reservation),
			Trip:                toTripResponse(&d.Trip),
			Agency:              d.Agency.Name,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidReservationID)
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toReservationResponse(reservation))
}

// Cancel handles DELETE /v1/reservations/:id
func (h *ReservationHandler) Cancel(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidReservationID)
		return
	}

	if err := h.reservationService.CancelReservation(c.Request.Context(), reservationID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PaymentResponse is the HTTP response for a payment attempt.
type PaymentResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Amount      int64               `json:"amount"`
	AlreadyPaid bool                `json:"already_paid"`
}

// Pay handles POST /v1/reservations/:id/pay
func (h *ReservationHandler) Pay(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidReservationID)
		return
	}

	result, err := h.paymentService.Pay(c.Request.Context(), reservationID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PaymentResponse{
		Reservation: toReservationResponse(result.Reservation),
		Amount:      result.Amount,
		AlreadyPaid: result.AlreadyPaid,
	})
}

// TicketResponse is the HTTP response for an issued ticket.
type TicketResponse struct {
	Reference     string `json:"reference"`
	ReservationID int64  `json:"reservation_id"`
	TripID        int64  `json:"trip_id"`
	AgencyName    string `json:"agency_name"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Seats         int64  `json:"seats"`
	Amount        int64  `json:"amount"`
	PaymentStatus string `json:"payment_status"`
	IssuedAt      string `json:"issued_at"`
	QRPayload     string `json:"qr_payload"`
}

// Ticket handles GET /v1/reservations/:id/ticket
func (h *ReservationHandler) Ticket(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidReservationID)
		return
	}

	ticket, err := h.ticketService.Issue(c.Request.Context(), reservationID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, TicketResponse{
		Reference:     ticket.Reference,
		ReservationID: ticket.ReservationID,
		TripID:        ticket.TripID,
		AgencyName:    ticket.AgencyName,
		Origin:        ticket.Origin,
		Destination:   ticket.Destination,
		Date:          ticket.Date,
		Time:          ticket.Time,
		Seats:         ticket.Seats,
		Amount:        ticket.Amount,
		PaymentStatus: string(ticket.PaymentStatus),
		IssuedAt:      ticket.IssuedAt.Format(time.RFC3339),
		QRPayload:     ticket.QRPayload(),
	})
}
