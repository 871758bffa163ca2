package domain

import (
	"timebot/internal/week"
)

// TimeCard represents the weekly aggregate of time entries with its approval
// status. StartDate and EndDate are the inclusive Monday-Sunday bounds of the
// week.
type TimeCard struct {
	ID          int64
	EmployeeID  int64
	StartDate   string
	EndDate     string
	Entries     []TimeEntry
	Status      TimecardStatus
	SubmittedAt string
	ApprovedAt  string
	CreatedAt   string
	UpdatedAt   string
}

// TotalHours returns the rounded sum of hours across all entries on the card.
// Always derived, never set directly.
func (tc TimeCard) TotalHours() float64 {
	return SumHours(tc.Entries)
}

// RegularHours returns the hours at or below the weekly overtime threshold.
func (tc TimeCard) RegularHours() float64 {
	return week.SplitOvertime(tc.TotalHours(), week.DefaultOvertimeThreshold).Regular
}

// OvertimeHours returns the hours above the weekly overtime threshold.
// RegularHours plus OvertimeHours always equals TotalHours.
func (tc TimeCard) OvertimeHours() float64 {
	return week.SplitOvertime(tc.TotalHours(), week.DefaultOvertimeThreshold).Overtime
}

// Contains reports whether a date falls within the card's inclusive bounds.
func (tc TimeCard) Contains(date string) bool {
	return date >= tc.StartDate && date <= tc.EndDate
}

// IsSubmittable returns true when the card is still a draft and may be
// submitted for approval.
func (tc TimeCard) IsSubmittable() bool {
	return tc.Status == TimecardStatusDraft
}
