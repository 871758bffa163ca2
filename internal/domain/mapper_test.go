package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timebot/internal/remote"
)

func TestEntryMapper_FromPayload(t *testing.T) {
	mapper := NewEntryMapper()

	payload := remote.TimeEntryPayload{
		ID:          42,
		EmployeeID:  7,
		Date:        "2024-01-08",
		StartTime:   "08:00",
		EndTime:     "17:00",
		Hours:       99, // wire value is untrusted and must be dropped
		Project:     "platform",
		Description: "sprint work",
		Status:      "pending",
		CreatedAt:   "2024-01-08T17:01:00Z",
		UpdatedAt:   "2024-01-08T17:01:00Z",
	}

	entry := mapper.FromPayload(payload)

	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, int64(7), entry.EmployeeID)
	assert.Equal(t, "2024-01-08", entry.Date)
	assert.Equal(t, EntryStatusPending, entry.Status)
	assert.Equal(t, "platform", entry.Project)
	// Hours come from the clock times, never from the wire field
	assert.Equal(t, 9.0, entry.Hours())
}

func TestEntryMapper_FromPayloadSlice(t *testing.T) {
	mapper := NewEntryMapper()

	entries := mapper.FromPayloadSlice([]remote.TimeEntryPayload{
		{ID: 1, Date: "2024-01-08", StartTime: "08:00", EndTime: "16:00", Status: "pending"},
		{ID: 2, Date: "2024-01-09", StartTime: "09:00", EndTime: "17:00", Status: "approved"},
	})

	assert.Len(t, entries, 2)
	assert.Equal(t, EntryStatusApproved, entries[1].Status)

	assert.Empty(t, mapper.FromPayloadSlice(nil))
}

func TestEntryMapper_ToRequest(t *testing.T) {
	mapper := NewEntryMapper()

	request := mapper.ToRequest(EntryData{
		Date:        "2024-01-08",
		StartTime:   "08:00",
		EndTime:     "17:00",
		Project:     "platform",
		Description: "sprint work",
	})

	assert.Equal(t, "2024-01-08", request.Date)
	assert.Equal(t, "08:00", request.StartTime)
	assert.Equal(t, "17:00", request.EndTime)
	assert.Equal(t, "platform", request.Project)
	assert.Equal(t, "sprint work", request.Description)
}

func TestCardMapper_FromPayload(t *testing.T) {
	mapper := NewCardMapper()

	payload := remote.TimecardPayload{
		ID:         7,
		EmployeeID: 3,
		StartDate:  "2024-01-08",
		EndDate:    "2024-01-14",
		Status:     "draft",
		TotalHours: 123, // wire total is untrusted and must be dropped
		Entries: []remote.TimeEntryPayload{
			{ID: 1, Date: "2024-01-08", StartTime: "08:00", EndTime: "17:00", Status: "pending"},
			{ID: 2, Date: "2024-01-09", StartTime: "08:00", EndTime: "17:00", Status: "pending"},
		},
	}

	card := mapper.FromPayload(payload)

	assert.Equal(t, int64(7), card.ID)
	assert.Equal(t, TimecardStatusDraft, card.Status)
	assert.Len(t, card.Entries, 2)
	// The total is re-derived from the entries, not taken from the wire
	assert.Equal(t, 18.0, card.TotalHours())
}
