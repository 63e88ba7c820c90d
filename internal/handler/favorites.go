package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sotrama/internal/service"
)

// FavoriteHandler handles HTTP requests for favorite trips.
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest is the HTTP request body for adding a favorite.
type AddFavoriteRequest struct {
	TripID int64 `json:"trip_id"`
}

// Add handles POST /v1/favorites/:phone
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.favoriteService.Add(c.Request.Context(), c.Param("phone"), req.TripID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /v1/favorites/:phone/:tripId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("tripId"), 10, 64)
	if err != nil {
		respondError(c, service.ErrInvalidTripID)
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), c.Param("phone"), tripID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /v1/favorites/:phone
func (h *FavoriteHandler) List(c *gin.Context) {
	trips, err := h.favoriteService.List(c.Request.Context(), c.Param("phone"))
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
