package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sotrama/internal/repository"
	"sotrama/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidSeatCount),
		errors.Is(err, service.ErrInvalidReservationID),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidLanguage),
		errors.Is(err, service.ErrInvalidTripData):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, repository.ErrInsufficientSeats),
		errors.Is(err, service.ErrPaymentInProgress),
		errors.Is(err, service.ErrCatalogInUse):
		return http.StatusConflict

	// Payment errors
	case errors.Is(err, service.ErrPaymentDeclined),
		errors.Is(err, service.ErrReservationUnpaid):
		return http.StatusPaymentRequired

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
