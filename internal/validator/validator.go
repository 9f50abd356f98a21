// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", validateMonth)
		_ = v.RegisterValidation("goal_type", validateGoalType)
		_ = v.RegisterValidation("flexibility", validateFlexibility)
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("risk_profile", validateRiskProfile)
		_ = v.RegisterValidation("language", validateLanguage)
	}
}

// IsMonthKey reports whether s is a YYYY-MM month key.
func IsMonthKey(s string) bool {
	return monthKeyRegex.MatchString(s)
}

func validateMonth(fl validator.FieldLevel) bool {
	return IsMonthKey(fl.Field().String())
}

func validateGoalType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "emergency", "debt", "device", "travel", "tuition", "move", "build", "other":
		return true
	}
	return false
}

func validateFlexibility(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "hard", "soft":
		return true
	}
	return false
}

func validatePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "high", "medium", "low":
		return true
	}
	return false
}

func validateRiskProfile(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "conservative", "balanced", "aggressive":
		return true
	}
	return false
}

func validateLanguage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "en", "id":
		return true
	}
	return false
}
