package store

import (
	"context"

	"timebot/internal/domain"
	"timebot/internal/errors"
	"timebot/internal/repository/sqlite"
)

// Snapshot is the persisted mirror of the cache store's state.
type Snapshot struct {
	Entries             []domain.TimeEntry
	CurrentWeekTimecard *domain.TimeCard
	LastFetchDate       string
}

// Persister is the save-on-commit hook invoked by the cache store after each
// successful reconciliation. It is injected so the engine is testable without
// a real storage backend.
type Persister interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Clear(ctx context.Context) error
}

// NoopPersister discards snapshots. Used when no local persistence is wanted.
type NoopPersister struct{}

// Save discards the snapshot.
func (NoopPersister) Save(ctx context.Context, snapshot Snapshot) error { return nil }

// Load reports that no snapshot exists.
func (NoopPersister) Load(ctx context.Context) (*Snapshot, error) { return nil, nil }

// Clear does nothing.
func (NoopPersister) Clear(ctx context.Context) error { return nil }

// SnapshotPersister stores snapshots in the local sqlite database under a
// named store identifier.
type SnapshotPersister struct {
	repo      sqlite.Repository
	storeName string
}

// NewSnapshotPersister creates a persister backed by the given repository.
func NewSnapshotPersister(repo sqlite.Repository, storeName string) *SnapshotPersister {
	return &SnapshotPersister{
		repo:      repo,
		storeName: storeName,
	}
}

// Save writes the full snapshot: entry collection, current-week timecard, and
// the last-fetch-date marker.
func (p *SnapshotPersister) Save(ctx context.Context, snapshot Snapshot) error {
	records := make([]sqlite.EntryRecord, len(snapshot.Entries))
	for i, entry := range snapshot.Entries {
		records[i] = entryToRecord(entry, i)
	}

	if err := p.repo.ReplaceEntries(ctx, records); err != nil {
		return err
	}

	if snapshot.CurrentWeekTimecard != nil {
		if err := p.repo.SaveTimecard(ctx, p.storeName, cardToRecord(*snapshot.CurrentWeekTimecard)); err != nil {
			return err
		}
	}

	return p.repo.SetLastFetchDate(ctx, p.storeName, snapshot.LastFetchDate)
}

// Load reads the stored snapshot. A store that was never saved yields a nil
// snapshot, not an error.
func (p *SnapshotPersister) Load(ctx context.Context) (*Snapshot, error) {
	records, err := p.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	lastFetchDate, err := p.repo.GetLastFetchDate(ctx, p.storeName)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Entries:       make([]domain.TimeEntry, len(records)),
		LastFetchDate: lastFetchDate,
	}
	for i, record := range records {
		snapshot.Entries[i] = recordToEntry(*record)
	}

	card, err := p.repo.GetTimecard(ctx, p.storeName)
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}
	if card != nil {
		domainCard := recordToCard(*card)
		// The card's entries are reconstructed from the cached collection
		domainCard.Entries = domain.FilterInRange(snapshot.Entries, domainCard.StartDate, domainCard.EndDate)
		snapshot.CurrentWeekTimecard = &domainCard
	}

	if len(snapshot.Entries) == 0 && snapshot.CurrentWeekTimecard == nil && lastFetchDate == "" {
		return nil, nil
	}
	return snapshot, nil
}

// Clear wipes everything stored under the store identifier.
func (p *SnapshotPersister) Clear(ctx context.Context) error {
	return p.repo.Wipe(ctx, p.storeName)
}

// entryToRecord converts a domain entry to its stored form, tagging it with
// its display position.
func entryToRecord(entry domain.TimeEntry, position int) sqlite.EntryRecord {
	return sqlite.EntryRecord{
		ID:          entry.ID,
		EmployeeID:  entry.EmployeeID,
		Date:        entry.Date,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Project:     entry.Project,
		Description: entry.Description,
		Status:      string(entry.Status),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		Position:    position,
	}
}

// recordToEntry converts a stored entry back to its domain form.
func recordToEntry(record sqlite.EntryRecord) domain.TimeEntry {
	return domain.TimeEntry{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		Date:        record.Date,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		Project:     record.Project,
		Description: record.Description,
		Status:      domain.EntryStatus(record.Status),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// cardToRecord converts a domain timecard to its stored form. Entries are not
// stored with the card; they are reconstructed from the cached collection.
func cardToRecord(card domain.TimeCard) sqlite.CardRecord {
	return sqlite.CardRecord{
		ID:          card.ID,
		EmployeeID:  card.EmployeeID,
		StartDate:   card.StartDate,
		EndDate:     card.EndDate,
		Status:      string(card.Status),
		SubmittedAt: card.SubmittedAt,
		ApprovedAt:  card.ApprovedAt,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}

// recordToCard converts a stored timecard back to its domain form.
func recordToCard(record sqlite.CardRecord) domain.TimeCard {
	return domain.TimeCard{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		StartDate:   record.StartDate,
		EndDate:     record.EndDate,
		Status:      domain.TimecardStatus(record.Status),
		SubmittedAt: record.SubmittedAt,
		ApprovedAt:  record.ApprovedAt,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
