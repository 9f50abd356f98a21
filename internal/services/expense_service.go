package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
	"finwise/internal/pagination"
)

// expenseService handles expense logic. Expenses are partitioned by the
// month derived from their own date, not by whichever month's budget the
// user happens to be looking at.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

func validateExpenseFields(amount decimal.Decimal, category, date, description string) error {
	if !amount.IsPositive() || strings.TrimSpace(category) == "" ||
		strings.TrimSpace(description) == "" || strings.TrimSpace(date) == "" {
		return apperrors.ErrValidation
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.WithMessage(apperrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	return nil
}

// AddExpense records an expense. The category is a free name; no check is
// made that it matches an existing budget category.
func (s *expenseService) AddExpense(amount decimal.Decimal, category, date, description string) (*models.Expense, error) {
	if err := validateExpenseFields(amount, category, date, description); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		Date:        date,
		Month:       models.MonthOf(date),
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetMonthExpenses returns a month's expenses newest-first.
func (s *expenseService) GetMonthExpenses(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("month = ?", month)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// CountMonthExpenses returns how many expenses the month holds. Callers
// use it for the plan-generation gate.
func (s *expenseService) CountMonthExpenses(month string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Expense{}).Where("month = ?", month).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// EditExpense updates an expense in place. Changing the date may move the
// expense to a different month partition.
func (s *expenseService) EditExpense(id string, amount decimal.Decimal, category, date, description string) (*models.Expense, error) {
	if err := validateExpenseFields(amount, category, date, description); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := s.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"amount":      amount,
		"category":    strings.TrimSpace(category),
		"description": strings.TrimSpace(description),
		"date":        date,
		"month":       models.MonthOf(date),
	}
	if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// DeleteExpense removes an expense by id.
func (s *expenseService) DeleteExpense(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Expense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
