package domain

// EntryStatus represents the approval state of a single time entry.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

// IsValid checks whether the status is one of the known entry statuses.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusApproved, EntryStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true once an entry has been approved or rejected.
// Terminal statuses are owned by the administrative side; the client only
// reflects them.
func (s EntryStatus) IsTerminal() bool {
	return s == EntryStatusApproved || s == EntryStatusRejected
}

// CanTransitionTo reports whether the entry approval lifecycle allows moving
// from this status to the target status. Only pending entries move, and only
// to a terminal status.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	if s != EntryStatusPending {
		return false
	}
	return target == EntryStatusApproved || target == EntryStatusRejected
}

// TimecardStatus represents the submission lifecycle of a weekly timecard.
type TimecardStatus string

const (
	TimecardStatusDraft     TimecardStatus = "draft"
	TimecardStatusSubmitted TimecardStatus = "submitted"
	TimecardStatusApproved  TimecardStatus = "approved"
	TimecardStatusPaid      TimecardStatus = "paid"
)

// timecardOrder defines the strictly forward progression of timecard statuses.
var timecardOrder = map[TimecardStatus]int{
	TimecardStatusDraft:     0,
	TimecardStatusSubmitted: 1,
	TimecardStatusApproved:  2,
	TimecardStatusPaid:      3,
}

// IsValid checks whether the status is one of the known timecard statuses.
func (s TimecardStatus) IsValid() bool {
	_, ok := timecardOrder[s]
	return ok
}

// Next returns the status that follows this one in the lifecycle.
// The second return value is false when the status is terminal or unknown.
func (s TimecardStatus) Next() (TimecardStatus, bool) {
	switch s {
	case TimecardStatusDraft:
		return TimecardStatusSubmitted, true
	case TimecardStatusSubmitted:
		return TimecardStatusApproved, true
	case TimecardStatusApproved:
		return TimecardStatusPaid, true
	}
	return s, false
}

// CanTransitionTo reports whether a timecard may move from this status to the
// target. Only single forward steps are allowed; no backward transitions are
// exposed to the client.
func (s TimecardStatus) CanTransitionTo(target TimecardStatus) bool {
	from, ok := timecardOrder[s]
	if !ok {
		return false
	}
	to, ok := timecardOrder[target]
	if !ok {
		return false
	}
	return to == from+1
}
