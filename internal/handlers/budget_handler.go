package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finwise/internal/errors"
	"finwise/internal/services"
)

// BudgetHandler handles budget and category requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudgetRequest represents the request payload for setting monthly totals.
type UpsertBudgetRequest struct {
	TotalBudget     *decimal.Decimal `json:"total_budget"`
	IncomeAllowance *decimal.Decimal `json:"income_allowance"`
}

// CategoryRequest represents the request payload for adding or editing a category.
type CategoryRequest struct {
	Name        string          `json:"name" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// GetBudget handles retrieving the budget for a month.
// @Summary     Get monthly budget
// @Description Get the budget and its categories for a month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.budgetService.GetBudget(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpsertBudget handles setting the month's totals, creating the budget on
// first write.
// @Summary     Set monthly budget totals
// @Description Create or update the budget totals for a month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month   path string              true "Month key (YYYY-MM)"
// @Param       request body UpsertBudgetRequest true "Totals"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month} [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Param("month"), req.TotalBudget, req.IncomeAllowance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// ImportBudget handles importing a serialized budget, including the legacy
// map-shaped category payload.
// @Summary     Import a budget
// @Description Import a serialized budget, normalizing legacy shapes
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Success     200 {object} models.Budget "Imported budget"
// @Failure     400 {object} ErrorResponse "Unrecognized payload"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/import [post]
func (h *BudgetHandler) ImportBudget(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "Unreadable request body"))
		return
	}

	budget, err := h.budgetService.ImportBudget(raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// AddCategory handles adding a category to the month's budget.
// @Summary     Add category
// @Description Add a spending category to a month's budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month   path string          true "Month key (YYYY-MM)"
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} models.Budget "Budget with the new category"
// @Failure     400 {object} ErrorResponse "Invalid input or allocation exceeded"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     409 {object} ErrorResponse "Duplicate category name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/categories [post]
func (h *BudgetHandler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	budget, err := h.budgetService.AddCategory(c.Param("month"), req.Name, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// EditCategory handles editing an existing category.
// @Summary     Edit category
// @Description Edit a category's name, amount, or description
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month   path string          true "Month key (YYYY-MM)"
// @Param       id      path string          true "Category ID"
// @Param       request body CategoryRequest true "Updated category details"
// @Success     200 {object} models.Budget "Budget with the edited category"
// @Failure     400 {object} ErrorResponse "Invalid input or allocation exceeded"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     409 {object} ErrorResponse "Duplicate category name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/categories/{id} [put]
func (h *BudgetHandler) EditCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	budget, err := h.budgetService.EditCategory(c.Param("month"), c.Param("id"), req.Name, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteCategory handles deleting a category. Recorded expenses that
// reference the name stay retrievable.
// @Summary     Delete category
// @Description Delete a category from a month's budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month path string true "Month key (YYYY-MM)"
// @Param       id    path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/categories/{id} [delete]
func (h *BudgetHandler) DeleteCategory(c *gin.Context) {
	if err := h.budgetService.DeleteCategory(c.Param("month"), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// GetRemaining handles retrieving the unallocated remainder for a month.
// @Summary     Get remaining allocation
// @Description Get the month's total budget minus all category allocations
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} map[string]any "Remaining amount"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/remaining [get]
func (h *BudgetHandler) GetRemaining(c *gin.Context) {
	remaining, err := h.budgetService.Remaining(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining": remaining})
}

// GetSummaries handles retrieving per-category spending summaries.
// @Summary     Get category summaries
// @Description Get budgeted/spent/remaining figures for each category in a month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month path string true "Month key (YYYY-MM)"
// @Success     200 {object} map[string]any "Summaries"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/summaries [get]
func (h *BudgetHandler) GetSummaries(c *gin.Context) {
	summaries, err := h.budgetService.Summaries(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}
