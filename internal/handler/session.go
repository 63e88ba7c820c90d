package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sotrama/internal/domain"
	"sotrama/internal/service"
)

// SessionHandler handles HTTP requests for login sessions.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// LoginRequest is the HTTP request body for login.
type LoginRequest struct {
	Phone string `json:"phone"`
}

// SessionResponse is the HTTP response for session data.
type SessionResponse struct {
	Phone     string `json:"phone"`
	Language  string `json:"language"`
	CreatedAt string `json:"created_at"`
}

func toSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		Phone:     s.Phone,
		Language:  s.Language,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// Login handles POST /v1/sessions
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.sessionService.Login(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toSessionResponse(session))
}

// Get handles GET /v1/sessions/:phone
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSessionResponse(session))
}

// SetLanguageRequest is the HTTP request body for a language change.
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage handles PUT /v1/sessions/:phone/language
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.sessionService.SetLanguage(c.Request.Context(), c.Param("phone"), req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSessionResponse(session))
}

// Logout handles DELETE /v1/sessions/:phone
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context(), c.Param("phone")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
