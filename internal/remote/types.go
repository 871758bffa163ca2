package remote

// Envelope is the wrapper every remote service response arrives in.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`
	Message string  `json:"message,omitempty"`
}

// TimeEntryPayload is the wire representation of a single time entry.
type TimeEntryPayload struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employeeId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Hours       float64 `json:"hours"`
	Project     string  `json:"project,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// TimecardPayload is the wire representation of a weekly timecard.
type TimecardPayload struct {
	ID          int64              `json:"id"`
	EmployeeID  int64              `json:"employeeId"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Entries     []TimeEntryPayload `json:"entries"`
	TotalHours  float64            `json:"totalHours"`
	Status      string             `json:"status"`
	SubmittedAt string             `json:"submittedAt,omitempty"`
	ApprovedAt  string             `json:"approvedAt,omitempty"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

// Pagination describes the page window of a paginated response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedEntries is a page of time entries with its pagination window.
type PaginatedEntries struct {
	Data       []TimeEntryPayload `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// EntryRequest carries the fields sent when creating or updating an entry.
type EntryRequest struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Project     string `json:"project,omitempty"`
	Description string `json:"description,omitempty"`
}

// EntryStats summarises entries over a date range.
type EntryStats struct {
	TotalHours         float64 `json:"totalHours"`
	RegularHours       float64 `json:"regularHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	TotalEntries       int     `json:"totalEntries"`
	AverageHoursPerDay float64 `json:"averageHoursPerDay"`
}

// HealthStatus is the remote service health check payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ListParams narrows and pages a time entry listing. Zero values are omitted
// from the request.
type ListParams struct {
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}
