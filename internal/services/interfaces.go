package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finwise/internal/models"
	"finwise/internal/pagination"
)

// CategorySummary holds the derived budgeted/spent/remaining/percentage
// figures for one category in one month. It is computed, never persisted.
type CategorySummary struct {
	CategoryName string          `json:"category_name"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentRaw   float64         `json:"percent_raw"`
	PercentBar   float64         `json:"percent_bar"`
}

// BudgetServicer defines the contract for budget and category logic.
type BudgetServicer interface {
	GetBudget(month string) (*models.Budget, error)
	UpsertBudget(month string, totalBudget, incomeAllowance *decimal.Decimal) (*models.Budget, error)
	ImportBudget(raw []byte) (*models.Budget, error)
	AddCategory(month, name string, amount decimal.Decimal, description string) (*models.Budget, error)
	EditCategory(month, categoryID, name string, amount decimal.Decimal, description string) (*models.Budget, error)
	DeleteCategory(month, categoryID string) error
	Remaining(month string) (decimal.Decimal, error)
	Summaries(month string) ([]CategorySummary, error)
}

// ExpenseServicer defines the contract for expense logic.
type ExpenseServicer interface {
	AddExpense(amount decimal.Decimal, category, date, description string) (*models.Expense, error)
	GetMonthExpenses(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	CountMonthExpenses(month string) (int64, error)
	EditExpense(id string, amount decimal.Decimal, category, date, description string) (*models.Expense, error)
	DeleteExpense(id string) error
}

// GoalPatch carries the fields of a goal update. Nil fields are left as-is.
type GoalPatch struct {
	Wish                *string                 `json:"wish"`
	GoalType            *models.GoalType        `json:"goal_type" binding:"omitempty,goal_type"`
	GoalTypeOther       *string                 `json:"goal_type_other"`
	TargetAmount        *decimal.Decimal        `json:"target_amount"`
	TargetAmountUnknown *bool                   `json:"target_amount_unknown"`
	StartDate           *string                 `json:"start_date"`
	TargetDate          *string                 `json:"target_date"`
	Flexibility         *models.GoalFlexibility `json:"flexibility" binding:"omitempty,flexibility"`
	CurrentSavings      *decimal.Decimal        `json:"current_savings"`
	Priority            *models.GoalPriority    `json:"priority" binding:"omitempty,priority"`
	RiskProfile         *models.RiskProfile     `json:"risk_profile" binding:"omitempty,risk_profile"`
	Motivation          *string                 `json:"motivation"`
}

// GoalServicer defines the contract for goal tracking.
type GoalServicer interface {
	AddGoal() (*models.Goal, error)
	ListGoals() ([]models.Goal, error)
	UpdateGoal(id string, patch GoalPatch) (*models.Goal, error)
	DeleteGoal(id string) error
	AddNonNegotiable(id, text string) (*models.Goal, error)
	RemoveNonNegotiable(id, text string) (*models.Goal, error)
}

// ChatCompleter is the outbound text-generation call. Satisfied by
// *sealion.Client; tests substitute a stub.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// PlanInput is everything the plan assembler needs: the caller's budget,
// expenses, goals, locale, and free-text notes.
type PlanInput struct {
	Budget     models.Budget
	Expenses   []models.Expense
	Goals      []models.Goal
	Language   string
	ExtraNotes string
}

// PlanRequest is an assembled, ready-to-send plan request.
type PlanRequest struct {
	SystemPrompt string
	UserPrompt   string
	Language     string
}

// PlanServicer defines the contract for plan assembly and submission.
type PlanServicer interface {
	BuildPlanRequest(in PlanInput, now time.Time) PlanRequest
	GeneratePlan(ctx context.Context, in PlanInput) (string, error)
	Apology(language string) string
}

// ChatServicer defines the contract for the chat relay.
type ChatServicer interface {
	Relay(ctx context.Context, message, language string) (string, error)
}

// ConfessionServicer defines the contract for the confession/forum store.
type ConfessionServicer interface {
	PostConfession(conversation []models.Message, caption string) (*models.ConfessionPost, error)
	ListConfessionsRaw() ([]models.ConfessionPost, error)
	ListForumView() ([]models.AnonymizedPost, error)
}

// Settings is the single-user preference record.
type Settings struct {
	Language   string `json:"language"`
	ExtraNotes string `json:"extra_notes"`
}

// SettingsServicer defines the contract for language and notes persistence.
type SettingsServicer interface {
	GetSettings() (*Settings, error)
	UpdateSettings(language, extraNotes *string) (*Settings, error)
}
