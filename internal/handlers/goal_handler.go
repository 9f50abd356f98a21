package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finwise/internal/errors"
	"finwise/internal/services"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// NonNegotiableRequest represents the request payload for adding or removing
// a non-negotiable expense.
type NonNegotiableRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddGoal handles creating a goal with the standard defaults.
// @Summary     Add goal
// @Description Create a savings goal with default type, flexibility, priority, and risk profile
// @Tags        goals
// @Accept      json
// @Produce     json
// @Success     201 {object} models.Goal "Created goal"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) AddGoal(c *gin.Context) {
	goal, err := h.goalService.AddGoal()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// ListGoals handles listing all goals in insertion order.
// @Summary     List goals
// @Description Get all savings goals
// @Tags        goals
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]any "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoal handles patching a goal's fields. Fields absent from the
// request are left as-is.
// @Summary     Update goal
// @Description Patch a goal's fields; omitted fields are unchanged
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Goal ID"
// @Param       request body services.GoalPatch true "Fields to update"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [patch]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var patch services.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete goal
// @Description Delete a goal by ID
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

// AddNonNegotiable handles appending to a goal's non-negotiables list.
// @Summary     Add non-negotiable
// @Description Add a non-negotiable expense to a goal; duplicates are ignored
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Goal ID"
// @Param       request body NonNegotiableRequest true "Item text"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/non-negotiables [post]
func (h *GoalHandler) AddNonNegotiable(c *gin.Context) {
	var req NonNegotiableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goal, err := h.goalService.AddNonNegotiable(c.Param("id"), req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// RemoveNonNegotiable handles removing an item from a goal's
// non-negotiables list. Removing an absent item is a no-op.
// @Summary     Remove non-negotiable
// @Description Remove a non-negotiable expense from a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Goal ID"
// @Param       request body NonNegotiableRequest true "Item text"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/non-negotiables [delete]
func (h *GoalHandler) RemoveNonNegotiable(c *gin.Context) {
	var req NonNegotiableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goal, err := h.goalService.RemoveNonNegotiable(c.Param("id"), req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
