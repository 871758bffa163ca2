package domain

import (
	"timebot/internal/week"
)

// FilterInRange selects the entries whose date lies within [start, end]
// inclusive.
func FilterInRange(entries []TimeEntry, start, end string) []TimeEntry {
	filtered := make([]TimeEntry, 0, len(entries))
	for _, entry := range entries {
		if week.InRange(entry.Date, start, end) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// SumHours returns the total hours across the given entries, rounded once
// after summation to the 2-decimal display precision.
func SumHours(entries []TimeEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Hours()
	}
	return week.Round2(total)
}

// FilterByStatus selects the entries with the given approval status.
func FilterByStatus(entries []TimeEntry, status EntryStatus) []TimeEntry {
	filtered := make([]TimeEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == status {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
