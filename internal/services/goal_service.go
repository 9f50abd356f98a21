package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// goalService handles goal tracking.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// FlagExpired reports whether a goal's target date has passed. Goals with
// no target date are never expired. A past target date means expired; the
// comparison direction is pinned by a regression test.
func FlagExpired(goal models.Goal, now time.Time) bool {
	if goal.TargetDate == "" {
		return false
	}
	target, err := time.Parse("2006-01-02", goal.TargetDate)
	if err != nil {
		return false
	}
	return target.Before(now)
}

// FlagGoals clones goals with computed expired flags. Stored goals are
// never mutated.
func FlagGoals(goals []models.Goal, now time.Time) []models.FlaggedGoal {
	flagged := make([]models.FlaggedGoal, len(goals))
	for i, g := range goals {
		flagged[i] = models.FlaggedGoal{Goal: g, Expired: FlagExpired(g, now)}
	}
	return flagged
}

// AddGoal creates a goal with the standard defaults and appends it.
func (s *goalService) AddGoal() (*models.Goal, error) {
	goal := &models.Goal{
		GoalType:       models.GoalTypeEmergency,
		Flexibility:    models.FlexibilityHard,
		Priority:       models.PriorityMedium,
		RiskProfile:    models.RiskBalanced,
		NonNegotiables: []string{},
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// ListGoals returns all goals in insertion order.
func (s *goalService) ListGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalService) getGoal(id string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal shallow-merges the patch into the stored goal. A missing id
// is an error, not a silent no-op.
func (s *goalService) UpdateGoal(id string, patch GoalPatch) (*models.Goal, error) {
	goal, err := s.getGoal(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Wish != nil {
		updates["wish"] = *patch.Wish
	}
	if patch.GoalType != nil {
		updates["goal_type"] = *patch.GoalType
	}
	if patch.GoalTypeOther != nil {
		updates["goal_type_other"] = *patch.GoalTypeOther
	}
	if patch.TargetAmount != nil {
		updates["target_amount"] = *patch.TargetAmount
	}
	if patch.TargetAmountUnknown != nil {
		updates["target_amount_unknown"] = *patch.TargetAmountUnknown
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.TargetDate != nil {
		updates["target_date"] = *patch.TargetDate
	}
	if patch.Flexibility != nil {
		updates["flexibility"] = *patch.Flexibility
	}
	if patch.CurrentSavings != nil {
		updates["current_savings"] = *patch.CurrentSavings
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.RiskProfile != nil {
		updates["risk_profile"] = *patch.RiskProfile
	}
	if patch.Motivation != nil {
		updates["motivation"] = *patch.Motivation
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return goal, nil
}

// DeleteGoal removes a goal by id.
func (s *goalService) DeleteGoal(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Goal{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// AddNonNegotiable appends to the goal's de-duplicated non-negotiables
// list. Blank or whitespace-only text is a no-op; so is a duplicate.
func (s *goalService) AddNonNegotiable(id, text string) (*models.Goal, error) {
	goal, err := s.getGoal(id)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return goal, nil
	}
	for _, existing := range goal.NonNegotiables {
		if existing == text {
			return goal, nil
		}
	}

	goal.NonNegotiables = append(goal.NonNegotiables, text)
	if err := s.db.Model(goal).Update("non_negotiables", goal.NonNegotiables).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// RemoveNonNegotiable drops an item from the list, preserving the order
// of the rest. Removing an absent item is a no-op.
func (s *goalService) RemoveNonNegotiable(id, text string) (*models.Goal, error) {
	goal, err := s.getGoal(id)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(goal.NonNegotiables))
	for _, existing := range goal.NonNegotiables {
		if existing != text {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(goal.NonNegotiables) {
		return goal, nil
	}

	goal.NonNegotiables = kept
	if err := s.db.Model(goal).Update("non_negotiables", kept).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}
