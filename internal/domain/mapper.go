package domain

import (
	"timebot/internal/remote"
)

// EntryMapper handles conversion between domain and wire TimeEntry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// FromPayload converts a wire time entry to a domain TimeEntry. The wire
// hours field is intentionally dropped: hours are always re-derived from the
// start and end times.
func (m *EntryMapper) FromPayload(payload remote.TimeEntryPayload) TimeEntry {
	return TimeEntry{
		ID:          payload.ID,
		EmployeeID:  payload.EmployeeID,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Project:     payload.Project,
		Description: payload.Description,
		Status:      EntryStatus(payload.Status),
		CreatedAt:   payload.CreatedAt,
		UpdatedAt:   payload.UpdatedAt,
	}
}

// FromPayloadSlice converts a slice of wire time entries to domain entries.
func (m *EntryMapper) FromPayloadSlice(payloads []remote.TimeEntryPayload) []TimeEntry {
	entries := make([]TimeEntry, len(payloads))
	for i, payload := range payloads {
		entries[i] = m.FromPayload(payload)
	}
	return entries
}

// ToRequest converts user-supplied entry data to a wire request.
func (m *EntryMapper) ToRequest(data EntryData) remote.EntryRequest {
	return remote.EntryRequest{
		Date:        data.Date,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Project:     data.Project,
		Description: data.Description,
	}
}

// CardMapper handles conversion between domain and wire TimeCard models.
type CardMapper struct {
	entries *EntryMapper
}

// NewCardMapper creates a new CardMapper instance.
func NewCardMapper() *CardMapper {
	return &CardMapper{entries: NewEntryMapper()}
}

// FromPayload converts a wire timecard to a domain TimeCard. The wire total
// is dropped; totals are always re-derived from the contained entries.
func (m *CardMapper) FromPayload(payload remote.TimecardPayload) TimeCard {
	return TimeCard{
		ID:          payload.ID,
		EmployeeID:  payload.EmployeeID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Entries:     m.entries.FromPayloadSlice(payload.Entries),
		Status:      TimecardStatus(payload.Status),
		SubmittedAt: payload.SubmittedAt,
		ApprovedAt:  payload.ApprovedAt,
		CreatedAt:   payload.CreatedAt,
		UpdatedAt:   payload.UpdatedAt,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry *EntryMapper
	Card  *CardMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry: NewEntryMapper(),
		Card:  NewCardMapper(),
	}
}
