package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sotrama/internal/domain"
	"sotrama/internal/service"
)

// TripHandler handles HTTP requests for the trip catalog.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// TripResponse is the HTTP response for trip data.
type TripResponse struct {
	ID             int64  `json:"id"`
	AgencyID       int64  `json:"agency_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          int64  `json:"price"`
	AvailableSeats int64  `json:"available_seats"`
}

func toTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:             trip.ID,
		AgencyID:       trip.AgencyID,
		Origin:         trip.Origin,
		Destination:    trip.Destination,
		Date:           trip.Date,
		Time:           trip.Time,
		Price:          trip.Price,
		AvailableSeats: trip.AvailableSeats,
	}
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	filter := service.TripFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
	}
	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
			return
		}
		filter.MinPrice = price
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
			return
		}
		filter.MaxPrice = price
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidTripID)
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// SyncRequest is the HTTP request body for a catalog sync.
type SyncRequest struct {
	Trips []SyncTrip `json:"trips"`
}

// SyncTrip is a single trip in a catalog sync payload.
type SyncTrip struct {
	ID             int64  `json:"id"`
	AgencyID       int64  `json:"agency_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Price          int64  `json:"price"`
	AvailableSeats int64  `json:"available_seats"`
}

// Sync handles POST /v1/trips/sync
func (h *TripHandler) Sync(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trips := make([]*domain.Trip, 0, len(req.Trips))
	for _, t := range req.Trips {
		trips = append(trips, &domain.Trip{
			ID:             t.ID,
			AgencyID:       t.AgencyID,
			Origin:         t.Origin,
			Destination:    t.Destination,
			Date:           t.Date,
			Time:           t.Time,
			Price:          t.Price,
			AvailableSeats: t.AvailableSeats,
		})
	}

	if err := h.tripService.SyncTrips(c.Request.Context(), trips); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"synced": len(trips)})
}
