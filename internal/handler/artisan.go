package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// ArtisanHandler handles HTTP requests for the artisan directory.
type ArtisanHandler struct {
	artisanRepo repository.ArtisanRepository
}

// NewArtisanHandler creates a new ArtisanHandler.
func NewArtisanHandler(artisanRepo repository.ArtisanRepository) *ArtisanHandler {
	return &ArtisanHandler{artisanRepo: artisanRepo}
}

// ArtisanResponse is the HTTP response for artisan data.
type ArtisanResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Trade    string  `json:"trade"`
	City     string  `json:"city"`
	Quarter  string  `json:"quarter"`
	Contact  string  `json:"contact"`
	WhatsApp bool    `json:"whatsapp"`
	Rating   float64 `json:"rating"`
}

func toArtisanResponse(a *domain.Artisan) ArtisanResponse {
	return ArtisanResponse{
		ID:       a.ID,
		Name:     a.Name,
		Trade:    a.Trade,
		City:     a.City,
		Quarter:  a.Quarter,
		Contact:  a.Contact,
		WhatsApp: a.WhatsApp,
		Rating:   a.Rating,
	}
}

// GetAll handles GET /v1/artisans
func (h *ArtisanHandler) GetAll(c *gin.Context) {
	filter := repository.ArtisanFilter{
		Trade: c.Query("trade"),
		City:  c.Query("city"),
	}

	artisans, err := h.artisanRepo.GetAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ArtisanResponse, 0, len(artisans))
	for _, a := range artisans {
		response = append(response, toArtisanResponse(a))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/artisans/:id
func (h *ArtisanHandler) Get(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid artisan id"})
		return
	}

	artisan, err := h.artisanRepo.GetByID(c.Request.Context(), artisanID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toArtisanResponse(artisan))
}

// AddCommentRequest is the HTTP request body for commenting on an artisan.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse is the HTTP response for comment data.
type CommentResponse struct {
	ID        int64  `json:"id"`
	ArtisanID int64  `json:"artisan_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toCommentResponse(comment *domain.ArtisanComment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ArtisanID: comment.ArtisanID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AddComment handles POST /v1/artisans/:id/comments
func (h *ArtisanHandler) AddComment(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid artisan id"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "comment content is required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.artisanRepo.GetByID(ctx, artisanID); err != nil {
		respondError(c, err)
		return
	}

	comment := &domain.ArtisanComment{
		ArtisanID: artisanID,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.artisanRepo.CreateComment(ctx, comment); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toCommentResponse(comment))
}

// Comments handles GET /v1/artisans/:id/comments
func (h *ArtisanHandler) Comments(c *gin.Context) {
	artisanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid artisan id"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.artisanRepo.GetByID(ctx, artisanID); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.artisanRepo.GetComments(ctx, artisanID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}

	respondJSON(c, http.StatusOK, response)
}
