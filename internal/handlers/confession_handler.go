package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
	"finwise/internal/services"
)

// ConfessionHandler handles the confession store and the forum view.
type ConfessionHandler struct {
	confessionService services.ConfessionServicer
}

// NewConfessionHandler creates a new ConfessionHandler.
func NewConfessionHandler(confessionService services.ConfessionServicer) *ConfessionHandler {
	return &ConfessionHandler{confessionService: confessionService}
}

// ConfessRequest represents the request payload for posting a confession.
type ConfessRequest struct {
	Conversation []models.Message `json:"conversation" binding:"required"`
	Caption      string           `json:"caption"`
}

// Confess handles posting a conversation to the forum.
// @Summary     Post a confession
// @Description Share a chatbot conversation to the anonymous forum
// @Tags        forum
// @Accept      json
// @Produce     json
// @Param       request body ConfessRequest true "Conversation and optional caption"
// @Success     201 {object} map[string]any "Posted confession"
// @Failure     400 {object} ErrorResponse "Empty conversation or blank message"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /confess [post]
func (h *ConfessionHandler) Confess(c *gin.Context) {
	var req ConfessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	post, err := h.confessionService.PostConfession(req.Conversation, req.Caption)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "confession": post})
}

// ListConfessions handles listing full confession records, sender included.
// @Summary     List confessions
// @Description Get all confession posts with full conversation records
// @Tags        forum
// @Accept      json
// @Produce     json
// @Success     200 {array} models.ConfessionPost "Confessions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /confess [get]
func (h *ConfessionHandler) ListConfessions(c *gin.Context) {
	posts, err := h.confessionService.ListConfessionsRaw()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Forum handles the anonymized public listing.
// @Summary     Browse the forum
// @Description Get all confessions with sender attribution stripped
// @Tags        forum
// @Accept      json
// @Produce     json
// @Success     200 {array} models.AnonymizedPost "Anonymized confessions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /forum [get]
func (h *ConfessionHandler) Forum(c *gin.Context) {
	posts, err := h.confessionService.ListForumView()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
