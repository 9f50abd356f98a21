package models

import "github.com/shopspring/decimal"

// GoalType classifies what the user is saving for.
type GoalType string

const (
	GoalTypeEmergency GoalType = "emergency"
	GoalTypeDebt      GoalType = "debt"
	GoalTypeDevice    GoalType = "device"
	GoalTypeTravel    GoalType = "travel"
	GoalTypeTuition   GoalType = "tuition"
	GoalTypeMove      GoalType = "move"
	GoalTypeBuild     GoalType = "build"
	GoalTypeOther     GoalType = "other"
)

// GoalFlexibility says whether the target date is hard or may slip.
type GoalFlexibility string

const (
	FlexibilityHard GoalFlexibility = "hard"
	FlexibilitySoft GoalFlexibility = "soft"
)

// GoalPriority ranks a goal against the user's other goals.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// RiskProfile captures the user's appetite for risk on this goal.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// Goal is a user-defined savings target. None of its fields are strictly
// validated: the target date may be in the past and the amount unknown.
type Goal struct {
	Base
	Wish                string          `json:"wish"`
	GoalType            GoalType        `gorm:"not null;default:emergency" json:"goal_type"`
	GoalTypeOther       string          `json:"goal_type_other"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(20,2)" json:"target_amount"`
	TargetAmountUnknown bool            `json:"target_amount_unknown"`
	StartDate           string          `json:"start_date"`  // YYYY-MM-DD, may be empty
	TargetDate          string          `json:"target_date"` // YYYY-MM-DD, may be empty or past
	Flexibility         GoalFlexibility `gorm:"not null;default:hard" json:"flexibility"`
	CurrentSavings      decimal.Decimal `gorm:"type:decimal(20,2)" json:"current_savings"`
	Priority            GoalPriority    `gorm:"not null;default:medium" json:"priority"`
	RiskProfile         RiskProfile     `gorm:"not null;default:balanced" json:"risk_profile"`
	NonNegotiables      []string        `gorm:"serializer:json" json:"non_negotiables"`
	Motivation          string          `json:"motivation"`
}

// FlaggedGoal is a goal plus its computed expiry flag. It is what the
// plan assembler sends upstream; the stored goal is never mutated.
type FlaggedGoal struct {
	Goal
	Expired bool `json:"expired"`
}
