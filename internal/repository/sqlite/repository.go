// Package sqlite persists the engine's cache snapshot between sessions so
// cached data survives restarts for offline access.
package sqlite

import (
	"context"
	"database/sql"

	"timebot/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for snapshot storage operations. The
// snapshot mirrors the cache store's state: the entry collection in display
// order, the current-week timecard, and the last-fetch-date marker, keyed
// under a named store identifier.
type Repository interface {
	// Entry collection
	ReplaceEntries(ctx context.Context, records []EntryRecord) error
	ListEntries(ctx context.Context) ([]*EntryRecord, error)

	// Current-week timecard
	SaveTimecard(ctx context.Context, storeName string, record CardRecord) error
	GetTimecard(ctx context.Context, storeName string) (*CardRecord, error)

	// Staleness marker
	SetLastFetchDate(ctx context.Context, storeName string, date string) error
	GetLastFetchDate(ctx context.Context, storeName string) (string, error)

	// Wipe removes every stored row for the named store
	Wipe(ctx context.Context, storeName string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleStorageError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandleStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// ReplaceEntries replaces the whole stored entry collection with the given
// records. The snapshot always reflects a complete, committed cache state, so
// partial updates are never written.
func (r *SQLiteRepository) ReplaceEntries(ctx context.Context, records []EntryRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleStorageError("begin entry replace", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM cached_entries"); err != nil {
		tx.Rollback()
		return HandleStorageError("clear cached entries", err)
	}

	query := `
	INSERT INTO cached_entries (id, employee_id, date, start_time, end_time, project, description, status, created_at, updated_at, position)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, record := range records {
		_, err := tx.ExecContext(ctx, query,
			record.ID,
			record.EmployeeID,
			record.Date,
			record.StartTime,
			record.EndTime,
			record.Project,
			record.Description,
			record.Status,
			record.CreatedAt,
			record.UpdatedAt,
			record.Position,
		)
		if err != nil {
			tx.Rollback()
			return HandleStorageError("insert cached entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit entry replace", err)
	}
	return nil
}

// ListEntries retrieves all cached entries in display order
func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]*EntryRecord, error) {
	query := `
	SELECT id, employee_id, date, start_time, end_time, project, description, status, created_at, updated_at, position
	FROM cached_entries
	ORDER BY position ASC`

	return QueryMultiple(ctx, r.db, query, ScanEntryRecords, "cached entries")
}

// SaveTimecard stores the current-week timecard for the named store
func (r *SQLiteRepository) SaveTimecard(ctx context.Context, storeName string, record CardRecord) error {
	query := `
	INSERT INTO current_timecard (store_name, id, employee_id, start_date, end_date, status, submitted_at, approved_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (store_name) DO UPDATE SET
		id = excluded.id,
		employee_id = excluded.employee_id,
		start_date = excluded.start_date,
		end_date = excluded.end_date,
		status = excluded.status,
		submitted_at = excluded.submitted_at,
		approved_at = excluded.approved_at,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		storeName,
		record.ID,
		record.EmployeeID,
		record.StartDate,
		record.EndDate,
		record.Status,
		record.SubmittedAt,
		record.ApprovedAt,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return HandleStorageError("save timecard", err)
	}
	return nil
}

// GetTimecard retrieves the stored current-week timecard for the named store
func (r *SQLiteRepository) GetTimecard(ctx context.Context, storeName string) (*CardRecord, error) {
	query := `
	SELECT id, employee_id, start_date, end_date, status, submitted_at, approved_at, created_at, updated_at
	FROM current_timecard
	WHERE store_name = ?`

	return QuerySingle(ctx, r.db, query, ScanCardRecord, "timecard", storeName)
}

// SetLastFetchDate stores the staleness marker for the named store
func (r *SQLiteRepository) SetLastFetchDate(ctx context.Context, storeName string, date string) error {
	query := `
	INSERT INTO store_meta (store_name, last_fetch_date)
	VALUES (?, ?)
	ON CONFLICT (store_name) DO UPDATE SET last_fetch_date = excluded.last_fetch_date`

	_, err := r.db.ExecContext(ctx, query, storeName, date)
	if err != nil {
		return HandleStorageError("set last fetch date", err)
	}
	return nil
}

// GetLastFetchDate retrieves the staleness marker for the named store.
// An absent row yields an empty string, meaning never fetched.
func (r *SQLiteRepository) GetLastFetchDate(ctx context.Context, storeName string) (string, error) {
	query := `SELECT last_fetch_date FROM store_meta WHERE store_name = ?`

	var date string
	err := r.db.QueryRowContext(ctx, query, storeName).Scan(&date)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", HandleStorageError("get last fetch date", err)
	}
	return date, nil
}

// Wipe removes every stored row for the named store. Used on logout.
func (r *SQLiteRepository) Wipe(ctx context.Context, storeName string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleStorageError("begin wipe", err)
	}

	statements := []struct {
		query string
		args  []interface{}
	}{
		{"DELETE FROM cached_entries", nil},
		{"DELETE FROM current_timecard WHERE store_name = ?", []interface{}{storeName}},
		{"DELETE FROM store_meta WHERE store_name = ?", []interface{}{storeName}},
	}

	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement.query, statement.args...); err != nil {
			tx.Rollback()
			return HandleStorageError("wipe store", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit wipe", err)
	}
	return nil
}
