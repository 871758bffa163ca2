package validation

import (
	"strings"
	"time"

	"timebot/internal/timecalc"
)

// Validator provides common validation utilities for entry fields.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidClock checks if a time string satisfies the HH:mm format contract
func (v *Validator) IsValidClock(clock string) bool {
	return timecalc.IsValidClockFormat(clock)
}

// IsValidDate checks if a date string is a well-formed YYYY-MM-DD calendar date
func (v *Validator) IsValidDate(date string) bool {
	if !timecalc.IsValidDateFormat(date) {
		return false
	}
	// The pattern only guards the shape; reject impossible dates like month 13.
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsValidHours checks if an hour count lies within a single day
func (v *Validator) IsValidHours(hours float64) bool {
	return hours >= 0 && hours <= 24
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
