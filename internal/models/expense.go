package models

import "github.com/shopspring/decimal"

// Expense is a single recorded expenditure. The category field is a free
// name: it is expected to match a budget category but nothing enforces
// that, and deleting or renaming the category leaves the expense intact.
type Expense struct {
	Base
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Date        string          `gorm:"not null" json:"date"`              // YYYY-MM-DD
	Month       string          `gorm:"not null;index" json:"month"`       // derived from Date, not the active screen
}

// MonthOf derives the month partition key from a YYYY-MM-DD date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
