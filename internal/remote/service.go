package remote

import (
	"context"
)

// Service defines the typed operations the engine consumes from the remote
// time-tracking service. Implementations convert transport and envelope
// failures into remote errors; a nil payload with a nil error means the
// service answered success with no data.
type Service interface {
	// Time entry operations
	GetTimeEntries(ctx context.Context, params ListParams) (*PaginatedEntries, error)
	CreateTimeEntry(ctx context.Context, request EntryRequest) (*TimeEntryPayload, error)
	UpdateTimeEntry(ctx context.Context, id int64, request EntryRequest) (*TimeEntryPayload, error)
	DeleteTimeEntry(ctx context.Context, id int64) error

	// Timecard operations
	GetCurrentWeekTimecard(ctx context.Context) (*TimecardPayload, error)
	SubmitTimecard(ctx context.Context, id int64) (*TimecardPayload, error)
	EmailTimecard(ctx context.Context, id int64) error

	// Reporting operations
	GetEntryStats(ctx context.Context, startDate, endDate string) (*EntryStats, error)

	// Utility
	HealthCheck(ctx context.Context) (*HealthStatus, error)
}

// TokenProvider supplies the bearer token attached to every request. Token
// storage and refresh are owned by an external authentication collaborator.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider returning a fixed token, typically loaded
// from configuration.
type StaticToken string

// Token returns the fixed token value.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}
