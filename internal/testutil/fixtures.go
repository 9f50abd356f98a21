package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"finwise/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBudget creates a budget for the given month with the given total.
func CreateTestBudget(t *testing.T, db *gorm.DB, month string, totalBudget int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Month:         month,
		TotalBudget:   decimal.NewFromInt(totalBudget),
		SchemaVersion: models.BudgetSchemaVersion,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestCategory creates a category under the given budget.
func CreateTestCategory(t *testing.T, db *gorm.DB, budgetID, name string, amount int64) *models.Category {
	t.Helper()

	category := &models.Category{
		BudgetID:    budgetID,
		Name:        name,
		Amount:      decimal.NewFromInt(amount),
		Description: fmt.Sprintf("Test category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense dated within the given month.
func CreateTestExpense(t *testing.T, db *gorm.DB, category, date string, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Date:        date,
		Month:       models.MonthOf(date),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGoal creates a goal with the standard defaults and the given
// target date.
func CreateTestGoal(t *testing.T, db *gorm.DB, targetDate string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Wish:           fmt.Sprintf("Test wish %d", nextID()),
		GoalType:       models.GoalTypeEmergency,
		Flexibility:    models.FlexibilityHard,
		Priority:       models.PriorityMedium,
		RiskProfile:    models.RiskBalanced,
		TargetDate:     targetDate,
		NonNegotiables: []string{},
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestConfession creates a confession post with one user message.
func CreateTestConfession(t *testing.T, db *gorm.DB, caption string) *models.ConfessionPost {
	t.Helper()

	post := &models.ConfessionPost{
		Caption: caption,
		Conversation: []models.Message{
			{Sender: "user", Text: fmt.Sprintf("confession %d", nextID())},
		},
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test confession: %v", err)
	}
	return post
}
