package validation

import (
	"timebot/internal/domain"
	"timebot/internal/timecalc"
)

// EntryValidator provides validation for time entry submissions.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryData validates user-supplied entry data before it is sent to
// the remote service. All orderings of start and end are accepted through the
// overnight-wrap rule; only a zero duration (start == end) is rejected.
func (ev *EntryValidator) ValidateEntryData(data domain.EntryData) error {
	validationError := NewValidationError()

	// Required fields
	if !ev.validator.IsNonEmptyString(data.Date) {
		validationError.AddRequiredError("date")
	} else if !ev.validator.IsValidDate(data.Date) {
		validationError.AddInvalidFormatError("date", data.Date, "YYYY-MM-DD")
	}

	if !ev.validator.IsNonEmptyString(data.StartTime) {
		validationError.AddRequiredError("start time")
	} else if !ev.validator.IsValidClock(data.StartTime) {
		validationError.AddInvalidFormatError("start time", data.StartTime, "HH:mm")
	}

	if !ev.validator.IsNonEmptyString(data.EndTime) {
		validationError.AddRequiredError("end time")
	} else if !ev.validator.IsValidClock(data.EndTime) {
		validationError.AddInvalidFormatError("end time", data.EndTime, "HH:mm")
	}

	if validationError.HasErrors() {
		return validationError
	}

	// Duration checks only make sense once both times are well-formed
	hours, err := timecalc.HoursBetween(data.StartTime, data.EndTime)
	if err != nil {
		validationError.AddInvalidValueError("duration", data, "end time must be after start time: duration is zero")
		return validationError
	}

	if !ev.validator.IsValidHours(hours) {
		validationError.AddInvalidRangeError("duration", hours, "must be between 0 and 24 hours")
		return validationError
	}

	return nil
}

// ValidateEntryID validates a server-assigned time entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
