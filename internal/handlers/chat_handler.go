package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finwise/internal/errors"
	"finwise/internal/services"
)

// ChatHandler handles the chat relay.
type ChatHandler struct {
	chatService     services.ChatServicer
	settingsService services.SettingsServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer, settingsService services.SettingsServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService, settingsService: settingsService}
}

// ChatRequest represents the chat request payload.
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language" binding:"omitempty,language"`
}

// ChatResponse represents the chat response.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles relaying a single message to the advisor. Upstream failure
// is absorbed: the response is still a 200 whose reply is the apology.
// @Summary     Chat with the advisor
// @Description Relay a message to the financial-advisor persona and return its reply
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "Message"
// @Success     200 {object} ChatResponse "Advisor reply"
// @Failure     400 {object} ErrorResponse "Missing message"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	language := req.Language
	if language == "" {
		if stored, err := h.settingsService.GetSettings(); err == nil {
			language = stored.Language
		}
	}

	// Relay never surfaces its error: on failure reply already holds the
	// locale-specific apology and the chat stays a 200.
	reply, _ := h.chatService.Relay(c.Request.Context(), req.Message, language)

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
