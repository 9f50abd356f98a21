package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
	"finwise/internal/services"
)

// PlanHandler handles savings-plan generation.
type PlanHandler struct {
	planService     services.PlanServicer
	settingsService services.SettingsServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer, settingsService services.SettingsServicer) *PlanHandler {
	return &PlanHandler{planService: planService, settingsService: settingsService}
}

// GeneratePlanRequest represents the request payload for plan generation.
// The client sends its full working state; language and extra notes are
// optional and fall back to the stored settings.
type GeneratePlanRequest struct {
	Budget     *models.Budget   `json:"budget" binding:"required"`
	Expenses   []models.Expense `json:"expenses" binding:"required"`
	Goals      []models.Goal    `json:"goals" binding:"required"`
	Language   string           `json:"language" binding:"omitempty,language"`
	ExtraNotes string           `json:"extraNotes"`
}

// GeneratePlanResponse represents the plan generation response.
type GeneratePlanResponse struct {
	Plan string `json:"plan"`
}

// GeneratePlan handles assembling and submitting a plan request. On
// upstream failure the response is a 500 whose plan text is the
// locale-specific apology; the raw error is only logged.
// @Summary     Generate savings plan
// @Description Generate a personalized monthly savings plan from the submitted budget, expenses, and goals
// @Tags        plan
// @Accept      json
// @Produce     json
// @Param       request body GeneratePlanRequest true "Budget, expenses, and goals"
// @Success     200 {object} GeneratePlanResponse "Generated plan"
// @Failure     400 {object} ErrorResponse "Missing budget, expenses, or goals"
// @Failure     500 {object} GeneratePlanResponse "Apology text"
// @Router      /generate-plan [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	language := req.Language
	extraNotes := req.ExtraNotes
	if language == "" || extraNotes == "" {
		if stored, err := h.settingsService.GetSettings(); err == nil {
			if language == "" {
				language = stored.Language
			}
			if extraNotes == "" {
				extraNotes = stored.ExtraNotes
			}
		}
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), services.PlanInput{
		Budget:     *req.Budget,
		Expenses:   req.Expenses,
		Goals:      req.Goals,
		Language:   language,
		ExtraNotes: extraNotes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"plan": plan})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
