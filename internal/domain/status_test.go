package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    EntryStatus
		to      EntryStatus
		allowed bool
	}{
		{
			name:    "should allow pending to approved",
			from:    EntryStatusPending,
			to:      EntryStatusApproved,
			allowed: true,
		},
		{
			name:    "should allow pending to rejected",
			from:    EntryStatusPending,
			to:      EntryStatusRejected,
			allowed: true,
		},
		{
			name:    "should not allow pending to pending",
			from:    EntryStatusPending,
			to:      EntryStatusPending,
			allowed: false,
		},
		{
			name:    "should not allow approved to move anywhere",
			from:    EntryStatusApproved,
			to:      EntryStatusRejected,
			allowed: false,
		},
		{
			name:    "should not allow rejected to move anywhere",
			from:    EntryStatusRejected,
			to:      EntryStatusApproved,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEntryStatus_IsTerminal(t *testing.T) {
	assert.False(t, EntryStatusPending.IsTerminal())
	assert.True(t, EntryStatusApproved.IsTerminal())
	assert.True(t, EntryStatusRejected.IsTerminal())
}

func TestEntryStatus_IsValid(t *testing.T) {
	assert.True(t, EntryStatusPending.IsValid())
	assert.True(t, EntryStatusApproved.IsValid())
	assert.True(t, EntryStatusRejected.IsValid())
	assert.False(t, EntryStatus("draft").IsValid())
	assert.False(t, EntryStatus("").IsValid())
}

func TestTimecardStatus_Next(t *testing.T) {
	tests := []struct {
		name     string
		status   TimecardStatus
		expected TimecardStatus
		ok       bool
	}{
		{
			name:     "should advance draft to submitted",
			status:   TimecardStatusDraft,
			expected: TimecardStatusSubmitted,
			ok:       true,
		},
		{
			name:     "should advance submitted to approved",
			status:   TimecardStatusSubmitted,
			expected: TimecardStatusApproved,
			ok:       true,
		},
		{
			name:     "should advance approved to paid",
			status:   TimecardStatusApproved,
			expected: TimecardStatusPaid,
			ok:       true,
		},
		{
			name:     "should not advance past paid",
			status:   TimecardStatusPaid,
			expected: TimecardStatusPaid,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.status.Next()

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestTimecardStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    TimecardStatus
		to      TimecardStatus
		allowed bool
	}{
		{
			name:    "should allow draft to submitted",
			from:    TimecardStatusDraft,
			to:      TimecardStatusSubmitted,
			allowed: true,
		},
		{
			name:    "should not allow skipping from draft to approved",
			from:    TimecardStatusDraft,
			to:      TimecardStatusApproved,
			allowed: false,
		},
		{
			name:    "should not allow moving backward from submitted to draft",
			from:    TimecardStatusSubmitted,
			to:      TimecardStatusDraft,
			allowed: false,
		},
		{
			name:    "should not allow leaving paid",
			from:    TimecardStatusPaid,
			to:      TimecardStatusDraft,
			allowed: false,
		},
		{
			name:    "should reject an unknown status",
			from:    TimecardStatus("archived"),
			to:      TimecardStatusDraft,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
