// Package submission turns user-entered form data into validated time entry
// creation requests.
package submission

import (
	"context"
	"sync"
	"time"

	"timebot/internal/domain"
	"timebot/internal/store"
	"timebot/internal/timecalc"
)

const dateLayout = "2006-01-02"

// Form holds the transient time submission fields. It is never persisted
// across sessions.
type Form struct {
	Date        string
	StartTime   string
	EndTime     string
	Project     string
	Description string
}

// Workflow owns the submission form and drives validated entry creation
// through the cache store.
type Workflow struct {
	mu    sync.Mutex
	form  Form
	store *store.TimecardStore

	defaultStart string
	defaultEnd   string
	now          func() time.Time
}

// NewWorkflow creates a submission workflow with the given default start and
// end times. The form starts at its defaults.
func NewWorkflow(timecards *store.TimecardStore, defaultStart, defaultEnd string) *Workflow {
	w := &Workflow{
		store:        timecards,
		defaultStart: defaultStart,
		defaultEnd:   defaultEnd,
		now:          time.Now,
	}
	w.form = w.defaults()
	return w
}

// Form returns a copy of the current form state.
func (w *Workflow) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// SetDate updates the form's calendar date.
func (w *Workflow) SetDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Date = date
}

// SetStartTime updates the form's start time.
func (w *Workflow) SetStartTime(start string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.StartTime = start
}

// SetEndTime updates the form's end time.
func (w *Workflow) SetEndTime(end string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.EndTime = end
}

// SetProject updates the form's optional project label.
func (w *Workflow) SetProject(project string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Project = project
}

// SetDescription updates the form's optional description.
func (w *Workflow) SetDescription(description string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Description = description
}

// CalculatedHours re-derives the elapsed hours from the form's current start
// and end times. It is computed on every call, never stored, so it cannot
// drift from the form fields. Malformed or zero-duration input previews as 0.
func (w *Workflow) CalculatedHours() float64 {
	form := w.Form()
	hours, err := timecalc.HoursBetween(form.StartTime, form.EndTime)
	if err != nil {
		return 0
	}
	return hours
}

// HasUnsavedChanges reports whether the form has been modified away from its
// defaults.
func (w *Workflow) HasUnsavedChanges() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form != w.defaults()
}

// Submit validates the form (or the override payload when one is supplied)
// and delegates to the cache store's commit-after-confirm create. On success
// the form resets to its defaults, but only when no override was supplied.
// Failures leave their message in the store's error slot.
func (w *Workflow) Submit(ctx context.Context, override *domain.EntryData) bool {
	var data domain.EntryData
	if override != nil {
		data = *override
	} else {
		form := w.Form()
		data = domain.EntryData{
			Date:        form.Date,
			StartTime:   form.StartTime,
			EndTime:     form.EndTime,
			Project:     form.Project,
			Description: form.Description,
		}
	}

	if !w.store.CreateTimeEntry(ctx, data) {
		return false
	}

	if override == nil {
		w.Reset()
	}
	return true
}

// Reset restores the form to its defaults: today's date, the configured
// default shift times, and empty project and description.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = w.defaults()
}

// defaults builds the default form state. Callers must hold the lock or be
// constructing the workflow.
func (w *Workflow) defaults() Form {
	return Form{
		Date:      w.now().Format(dateLayout),
		StartTime: w.defaultStart,
		EndTime:   w.defaultEnd,
	}
}
