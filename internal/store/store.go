// Package store implements the offline-first cache for time entries and the
// current-week timecard. Reads are served instantly from the last-known
// cache; mutations are committed locally only after the remote service
// confirms them, so the cache is authoritative-or-absent at every point.
package store

import (
	"context"
	"sync"
	"time"

	"timebot/internal/domain"
	"timebot/internal/errors"
	"timebot/internal/logging"
	"timebot/internal/remote"
	"timebot/internal/validation"
	"timebot/internal/week"
)

const dateLayout = "2006-01-02"

// FetchParams narrows a time entry fetch. ForceRefresh bypasses the
// daily-granularity staleness policy.
type FetchParams struct {
	StartDate    string
	EndDate      string
	Page         int
	PageSize     int
	ForceRefresh bool
}

// TimecardStore mediates between the in-process cache, the remote service,
// and the injected persistence hook. Construct one at process start and pass
// it by reference to whatever needs it. It assumes a single logical writer;
// overlapping mutations race benignly as last-write-wins.
type TimecardStore struct {
	mu                  sync.Mutex
	entries             []domain.TimeEntry
	currentWeekTimecard *domain.TimeCard
	lastFetchDate       string
	lastError           string
	isLoading           bool
	isSubmitting        bool

	service        remote.Service
	persister      Persister
	mapper         *domain.Mapper
	entryValidator *validation.EntryValidator
	now            func() time.Time
}

// NewTimecardStore creates a new cache store. The persister may be a
// NoopPersister when no local persistence is wanted.
func NewTimecardStore(service remote.Service, persister Persister) *TimecardStore {
	return &TimecardStore{
		service:        service,
		persister:      persister,
		mapper:         domain.NewMapper(),
		entryValidator: validation.NewEntryValidator(),
		now:            time.Now,
	}
}

// LoadSnapshot hydrates the cache from the persisted snapshot so previously
// fetched data is available offline. A missing snapshot is not an error.
func (s *TimecardStore) LoadSnapshot(ctx context.Context) error {
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = snapshot.Entries
	s.currentWeekTimecard = snapshot.CurrentWeekTimecard
	s.lastFetchDate = snapshot.LastFetchDate
	return nil
}

// FetchTimeEntries refreshes the cached entry collection from the remote
// service. It is a no-op when the cache was already refreshed on the current
// calendar day, unless ForceRefresh is set. Returns false and records an
// error message when the remote call fails.
func (s *TimecardStore) FetchTimeEntries(ctx context.Context, params FetchParams) bool {
	s.mu.Lock()
	if !params.ForceRefresh && s.lastFetchDate == s.today() {
		s.mu.Unlock()
		return true // Already fetched today
	}
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	page, err := s.service.GetTimeEntries(ctx, remote.ListParams{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Page:      params.Page,
		PageSize:  params.PageSize,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}
	if page == nil {
		return false
	}

	s.entries = s.mapper.Entry.FromPayloadSlice(page.Data)
	s.lastFetchDate = s.today()
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// FetchCurrentWeekTimecard refreshes the cached current-week timecard.
func (s *TimecardStore) FetchCurrentWeekTimecard(ctx context.Context) bool {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()

	payload, err := s.service.GetCurrentWeekTimecard(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}
	if payload == nil {
		return false
	}

	card := s.mapper.Card.FromPayload(*payload)
	s.currentWeekTimecard = &card
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// CreateTimeEntry validates the entry data, persists it remotely, and only on
// a successful data-bearing response prepends the confirmed entry to the
// cache. No local placeholder is shown while the request is in flight. A
// success response without data silently no-ops.
func (s *TimecardStore) CreateTimeEntry(ctx context.Context, data domain.EntryData) bool {
	s.beginMutation()

	if err := s.entryValidator.ValidateEntryData(data); err != nil {
		s.failMutation(err)
		return false
	}

	payload, err := s.service.CreateTimeEntry(ctx, s.mapper.Entry.ToRequest(data))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}
	if payload == nil {
		return false
	}

	entry := s.mapper.Entry.FromPayload(*payload)
	s.entries = append([]domain.TimeEntry{entry}, s.entries...)
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// UpdateTimeEntry persists an update remotely and, once confirmed, replaces
// the cached entry at its position by id.
func (s *TimecardStore) UpdateTimeEntry(ctx context.Context, id int64, data domain.EntryData) bool {
	s.beginMutation()

	if err := s.entryValidator.ValidateEntryID(id); err != nil {
		s.failMutation(err)
		return false
	}
	if err := s.entryValidator.ValidateEntryData(data); err != nil {
		s.failMutation(err)
		return false
	}

	payload, err := s.service.UpdateTimeEntry(ctx, id, s.mapper.Entry.ToRequest(data))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}
	if payload == nil {
		return false
	}

	updated := s.mapper.Entry.FromPayload(*payload)
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries[i] = updated
			break
		}
	}
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// DeleteTimeEntry deletes an entry remotely and, once confirmed, removes it
// from the cache.
func (s *TimecardStore) DeleteTimeEntry(ctx context.Context, id int64) bool {
	s.beginMutation()

	if err := s.entryValidator.ValidateEntryID(id); err != nil {
		s.failMutation(err)
		return false
	}

	err := s.service.DeleteTimeEntry(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}

	filtered := make([]domain.TimeEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	s.entries = filtered
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// SubmitTimecard submits the timecard for approval. On success every cached
// entry dated within the current week's bounds flips to pending; that flip is
// a local reflection only, the authoritative transition is owned by the
// remote service. Callers must ensure the current-week timecard is loaded and
// still a draft before invoking; the engine does not re-validate the card's
// state.
func (s *TimecardStore) SubmitTimecard(ctx context.Context, timecardID int64) bool {
	s.mu.Lock()
	card := s.currentWeekTimecard
	s.mu.Unlock()

	if card == nil {
		s.failMutation(errors.NewContractError("submit timecard", "current week timecard is not loaded"))
		return false
	}

	s.beginMutation()

	_, err := s.service.SubmitTimecard(ctx, timecardID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false

	if err != nil {
		s.lastError = errors.GetUserMessage(err)
		return false
	}

	for i, entry := range s.entries {
		if week.InRange(entry.Date, card.StartDate, card.EndDate) {
			s.entries[i].Status = domain.EntryStatusPending
		}
	}
	s.lastError = ""
	s.persistLocked(ctx)
	return true
}

// Reset wipes the cache and its persisted snapshot. Invoked on logout.
func (s *TimecardStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.entries = nil
	s.currentWeekTimecard = nil
	s.lastFetchDate = ""
	s.lastError = ""
	s.mu.Unlock()

	return s.persister.Clear(ctx)
}

// Entries returns a copy of the cached entries, newest first.
func (s *TimecardStore) Entries() []domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]domain.TimeEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// CurrentWeekTimecard returns the cached current-week timecard, or nil when
// it has not been fetched yet.
func (s *TimecardStore) CurrentWeekTimecard() *domain.TimeCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentWeekTimecard == nil {
		return nil
	}
	card := *s.currentWeekTimecard
	return &card
}

// CurrentWeekEntries returns the cached entries dated within the current
// calendar week.
func (s *TimecardStore) CurrentWeekEntries() []domain.TimeEntry {
	start, end := week.Range(s.now())
	return domain.FilterInRange(s.Entries(), start, end)
}

// CurrentWeekTotalHours returns the rounded hour total for the current week.
func (s *TimecardStore) CurrentWeekTotalHours() float64 {
	return domain.SumHours(s.CurrentWeekEntries())
}

// PendingEntries returns the cached entries awaiting approval.
func (s *TimecardStore) PendingEntries() []domain.TimeEntry {
	return domain.FilterByStatus(s.Entries(), domain.EntryStatusPending)
}

// ApprovedEntries returns the cached entries that have been approved.
func (s *TimecardStore) ApprovedEntries() []domain.TimeEntry {
	return domain.FilterByStatus(s.Entries(), domain.EntryStatusApproved)
}

// TodayEntries returns the cached entries dated today.
func (s *TimecardStore) TodayEntries() []domain.TimeEntry {
	today := s.today()
	return domain.FilterInRange(s.Entries(), today, today)
}

// Err returns the message recorded by the last failed operation, or an empty
// string. It is cleared at the start of every new attempt.
func (s *TimecardStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// ClearError clears the recorded error message.
func (s *TimecardStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// IsLoading reports whether a fetch is in flight.
func (s *TimecardStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// IsSubmitting reports whether a mutation is in flight.
func (s *TimecardStore) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSubmitting
}

// LastFetchDate returns the calendar date of the last successful fetch, or an
// empty string when the cache has never been filled.
func (s *TimecardStore) LastFetchDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFetchDate
}

// beginMutation marks a mutation in flight and clears the error slot.
func (s *TimecardStore) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = true
	s.lastError = ""
}

// failMutation records a failure message and clears the in-flight flag.
func (s *TimecardStore) failMutation(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false
	if validationErr, ok := err.(*validation.ValidationError); ok {
		s.lastError = validationErr.GetUserFriendlyMessage()
		return
	}
	s.lastError = errors.GetUserMessage(err)
}

// persistLocked writes the current snapshot through the save-on-commit hook.
// Persistence failures do not fail the mutation; the in-memory cache remains
// the source of truth for the session.
func (s *TimecardStore) persistLocked(ctx context.Context) {
	entries := make([]domain.TimeEntry, len(s.entries))
	copy(entries, s.entries)

	var card *domain.TimeCard
	if s.currentWeekTimecard != nil {
		copied := *s.currentWeekTimecard
		card = &copied
	}

	err := s.persister.Save(ctx, Snapshot{
		Entries:             entries,
		CurrentWeekTimecard: card,
		LastFetchDate:       s.lastFetchDate,
	})
	if err != nil {
		logging.Debugf("store: snapshot save failed: %v\n", err)
	}
}

// today returns the current calendar date used by the staleness policy.
func (s *TimecardStore) today() string {
	return s.now().Format(dateLayout)
}

