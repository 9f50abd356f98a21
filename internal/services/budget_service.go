package services

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
	"finwise/internal/validator"
)

// budgetService owns the category-allocation invariants and the
// per-category summary computation.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// RemainingToAllocate returns max(0, totalBudget - sum of category caps).
// A total-budget decrease below current allocation floors the result at
// zero rather than signaling an error.
func RemainingToAllocate(totalBudget decimal.Decimal, categories []models.Category) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range categories {
		sum = sum.Add(c.Amount)
	}
	remaining := totalBudget.Sub(sum)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ComputeCategorySummaries derives one summary per category, in category
// order. Spent sums expenses whose category name matches exactly
// (case-sensitive); expenses referencing no current category contribute to
// no summary. A zero budgeted amount yields percentRaw 0.
func ComputeCategorySummaries(categories []models.Category, expenses []models.Expense) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		spent := decimal.Zero
		for _, e := range expenses {
			if e.Category == cat.Name {
				spent = spent.Add(e.Amount)
			}
		}

		var percentRaw float64
		if cat.Amount.IsPositive() {
			percentRaw, _ = spent.Div(cat.Amount).Mul(decimal.NewFromInt(100)).Float64()
		}
		percentBar := percentRaw
		if percentBar > 100 {
			percentBar = 100
		}
		if percentBar < 0 {
			percentBar = 0
		}

		summaries = append(summaries, CategorySummary{
			CategoryName: cat.Name,
			Budgeted:     cat.Amount,
			Spent:        spent,
			Remaining:    cat.Amount.Sub(spent),
			PercentRaw:   percentRaw,
			PercentBar:   percentBar,
		})
	}
	return summaries
}

// GetBudget returns the budget for a month with its categories in
// insertion order.
func (s *budgetService) GetBudget(month string) (*models.Budget, error) {
	if !validator.IsMonthKey(month) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "month must be YYYY-MM")
	}

	var budget models.Budget
	err := s.db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("month = ?", month).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpsertBudget creates the month's budget on first total-budget entry and
// updates the totals afterwards. Lowering the total below the current
// allocation is allowed; the remaining-to-allocate figure floors at zero
// until the user corrects it.
func (s *budgetService) UpsertBudget(month string, totalBudget, incomeAllowance *decimal.Decimal) (*models.Budget, error) {
	budget, err := s.GetBudget(month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrBudgetNotFound) {
			return nil, err
		}
		created := &models.Budget{
			Month:         month,
			SchemaVersion: models.BudgetSchemaVersion,
		}
		if totalBudget != nil {
			created.TotalBudget = *totalBudget
		}
		if incomeAllowance != nil {
			created.IncomeAllowance = *incomeAllowance
		}
		if err := s.db.Create(created).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		created.Categories = []models.Category{}
		return created, nil
	}

	updates := make(map[string]interface{})
	if totalBudget != nil {
		updates["total_budget"] = *totalBudget
	}
	if incomeAllowance != nil {
		updates["income_allowance"] = *incomeAllowance
	}
	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetBudget(month)
}

// AddCategory appends a category after validating required fields,
// case-insensitive name uniqueness, and that the amount fits within the
// remaining allocation.
func (s *budgetService) AddCategory(month, name string, amount decimal.Decimal, description string) (*models.Budget, error) {
	budget, err := s.GetBudget(month)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" || !amount.IsPositive() {
		return nil, apperrors.ErrValidation
	}

	for _, c := range budget.Categories {
		if strings.EqualFold(c.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	remaining := RemainingToAllocate(budget.TotalBudget, budget.Categories)
	if amount.GreaterThan(remaining) {
		return nil, apperrors.WithMessage(apperrors.ErrAllocationExceeded,
			"Cannot allocate more than remaining: "+remaining.StringFixed(2))
	}

	category := &models.Category{
		BudgetID:    budget.ID,
		Name:        name,
		Amount:      amount,
		Description: description,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBudget(month)
}

// EditCategory re-validates against the other categories and checks the
// full sum with the proposed amount substituted against the total budget.
// This arithmetic path intentionally differs from AddCategory's
// delta-vs-remaining check; both guard the same invariant.
func (s *budgetService) EditCategory(month, categoryID, name string, amount decimal.Decimal, description string) (*models.Budget, error) {
	budget, err := s.GetBudget(month)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" || !amount.IsPositive() {
		return nil, apperrors.ErrValidation
	}

	var target *models.Category
	for i := range budget.Categories {
		if budget.Categories[i].ID == categoryID {
			target = &budget.Categories[i]
			break
		}
	}
	if target == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	for _, c := range budget.Categories {
		if c.ID != categoryID && strings.EqualFold(c.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	totalIfSaved := decimal.Zero
	for _, c := range budget.Categories {
		if c.ID == categoryID {
			totalIfSaved = totalIfSaved.Add(amount)
		} else {
			totalIfSaved = totalIfSaved.Add(c.Amount)
		}
	}
	if totalIfSaved.GreaterThan(budget.TotalBudget) {
		return nil, apperrors.WithMessage(apperrors.ErrAllocationExceeded,
			"Total of category caps would exceed total budget ("+budget.TotalBudget.StringFixed(2)+")")
	}

	updates := map[string]interface{}{
		"name":        name,
		"amount":      amount,
		"description": description,
	}
	if err := s.db.Model(target).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBudget(month)
}

// DeleteCategory removes a category unconditionally. Expenses recorded
// against its name are left untouched; they simply stop contributing to
// any summary.
func (s *budgetService) DeleteCategory(month, categoryID string) error {
	budget, err := s.GetBudget(month)
	if err != nil {
		return err
	}

	res := s.db.Where("id = ? AND budget_id = ?", categoryID, budget.ID).Delete(&models.Category{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// Remaining returns the month's remaining-to-allocate figure.
func (s *budgetService) Remaining(month string) (decimal.Decimal, error) {
	budget, err := s.GetBudget(month)
	if err != nil {
		return decimal.Zero, err
	}
	return RemainingToAllocate(budget.TotalBudget, budget.Categories), nil
}

// Summaries computes per-category figures against the month's expenses.
func (s *budgetService) Summaries(month string) ([]CategorySummary, error) {
	budget, err := s.GetBudget(month)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := s.db.Where("month = ?", month).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return ComputeCategorySummaries(budget.Categories, expenses), nil
}

// legacyBudget is the version-1 persisted shape. Categories were stored
// either as a list or as a bare name-to-amount map.
type legacyBudget struct {
	Month           string          `json:"month"`
	IncomeAllowance decimal.Decimal `json:"incomeAllowance"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	Categories      json.RawMessage `json:"categories"`
}

type legacyCategory struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ImportBudget ingests a version-1 budget record, normalizing map-shaped
// categories into the canonical list, and upserts it under its month key.
// The stored result always carries the current schema version, so the
// migration is one-time per record.
func (s *budgetService) ImportBudget(raw []byte) (*models.Budget, error) {
	var legacy legacyBudget
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidLegacyBudget, err)
	}
	if !validator.IsMonthKey(legacy.Month) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "month must be YYYY-MM")
	}

	categories, err := normalizeLegacyCategories(legacy.Categories)
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Budget
		findErr := tx.Where("month = ?", legacy.Month).First(&existing).Error
		switch {
		case findErr == nil:
			budget = existing
			updates := map[string]interface{}{
				"income_allowance": legacy.IncomeAllowance,
				"total_budget":     legacy.TotalBudget,
				"schema_version":   models.BudgetSchemaVersion,
			}
			if err := tx.Model(&budget).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Category{}).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			budget = models.Budget{
				Month:           legacy.Month,
				IncomeAllowance: legacy.IncomeAllowance,
				TotalBudget:     legacy.TotalBudget,
				SchemaVersion:   models.BudgetSchemaVersion,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		for i := range categories {
			categories[i].BudgetID = budget.ID
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBudget(legacy.Month)
}

// normalizeLegacyCategories accepts both persisted category shapes: the
// canonical list and the version-1 name-to-amount map.
func normalizeLegacyCategories(raw json.RawMessage) ([]models.Category, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []legacyCategory
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]models.Category, 0, len(list))
		for _, c := range list {
			out = append(out, models.Category{
				Name:        c.Name,
				Amount:      c.Amount,
				Description: c.Description,
			})
		}
		return out, nil
	}

	var byName map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &byName); err == nil {
		// Map iteration order is random; sort names so imports are stable.
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]models.Category, 0, len(names))
		for _, name := range names {
			out = append(out, models.Category{Name: name, Amount: byName[name]})
		}
		return out, nil
	}

	return nil, apperrors.ErrInvalidLegacyBudget
}
