package validation

import (
	"strings"
)

const (
	// DefaultNameMinLength is the minimum length of a trimmed project name
	DefaultNameMinLength = 1
	// DefaultNameMaxLength is the maximum length of a trimmed project name
	DefaultNameMaxLength = 255
	// DefaultSummaryMaxLength is the maximum length of a project summary
	DefaultSummaryMaxLength = 1000
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a trimmed string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidID checks if an ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}
