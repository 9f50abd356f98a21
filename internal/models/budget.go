package models

import "github.com/shopspring/decimal"

// BudgetSchemaVersion is stamped on every budget written by this version
// of the service. Version 1 budgets stored categories as a name-to-amount
// map; they are normalized to the category list on import.
const BudgetSchemaVersion = 2

// Budget represents one month's budget. There is at most one budget per
// month key and budgets are never auto-deleted.
type Budget struct {
	Base
	Month           string          `gorm:"uniqueIndex;not null" json:"month"` // YYYY-MM
	IncomeAllowance decimal.Decimal `gorm:"type:decimal(20,2)" json:"income_allowance"`
	TotalBudget     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_budget"`
	SchemaVersion   int             `gorm:"not null;default:2" json:"schema_version"`

	// Relationships. Categories come back in insertion order (UUIDv7
	// primary keys are time-ordered).
	Categories []Category `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"categories"`
}

// Category is a named allocation bucket within one month's budget.
type Category struct {
	Base
	BudgetID    string          `gorm:"type:uuid;not null;index" json:"budget_id"`
	Name        string          `gorm:"not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
}
