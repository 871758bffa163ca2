package sqlite

// EntryRecord is the stored form of a cached time entry. Position preserves
// the newest-first display order of the in-memory cache across restarts.
type EntryRecord struct {
	ID          int64
	EmployeeID  int64
	Date        string
	StartTime   string
	EndTime     string
	Project     string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
	Position    int
}

// CardRecord is the stored form of the current-week timecard.
type CardRecord struct {
	ID          int64
	EmployeeID  int64
	StartDate   string
	EndDate     string
	Status      string
	SubmittedAt string
	ApprovedAt  string
	CreatedAt   string
	UpdatedAt   string
}
