package domain

import (
	"timebot/internal/timecalc"
)

// TimeEntry represents a single logged work interval for one calendar date.
// This is a pure domain model without transport or storage concerns.
// Dates are fixed-width ISO YYYY-MM-DD strings and times are HH:mm strings,
// both naive local wall-clock values.
type TimeEntry struct {
	ID          int64
	EmployeeID  int64
	Date        string
	StartTime   string
	EndTime     string
	Project     string
	Description string
	Status      EntryStatus
	CreatedAt   string
	UpdatedAt   string
}

// Hours returns the elapsed hours for the entry, always re-derived from the
// start and end times using the overnight-wrap rule. It is never stored, so
// it can never drift from the base fields.
func (e TimeEntry) Hours() float64 {
	hours, err := timecalc.HoursBetween(e.StartTime, e.EndTime)
	if err != nil {
		return 0
	}
	return hours
}

// IsValid checks if the entry has well-formed base data.
func (e TimeEntry) IsValid() bool {
	if !timecalc.IsValidDateFormat(e.Date) {
		return false
	}
	if !timecalc.IsValidClockFormat(e.StartTime) || !timecalc.IsValidClockFormat(e.EndTime) {
		return false
	}
	return e.Status.IsValid()
}

// EntryData carries the user-supplied fields for creating or updating a time
// entry. Project and Description are optional; empty means unset.
type EntryData struct {
	Date        string
	StartTime   string
	EndTime     string
	Project     string
	Description string
}
