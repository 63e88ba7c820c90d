package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// AgencyHandler handles HTTP requests for agencies.
type AgencyHandler struct {
	agencyRepo repository.AgencyRepository
}

// NewAgencyHandler creates a new AgencyHandler.
func NewAgencyHandler(agencyRepo repository.AgencyRepository) *AgencyHandler {
	return &AgencyHandler{agencyRepo: agencyRepo}
}

// AgencyResponse is the HTTP response for agency data.
type AgencyResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toAgencyResponse(a *domain.Agency) AgencyResponse {
	return AgencyResponse{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Email:     a.Email,
		City:      a.City,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

// GetAll handles GET /v1/agencies
func (h *AgencyHandler) GetAll(c *gin.Context) {
	agencies, err := h.agencyRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]AgencyResponse, 0, len(agencies))
	for _, a := range agencies {
		response = append(response, toAgencyResponse(a))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/agencies/:id
func (h *AgencyHandler) Get(c *gin.Context) {
	agencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid agency id"})
		return
	}

	agency, err := h.agencyRepo.GetByID(c.Request.Context(), agencyID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toAgencyResponse(agency))
}
