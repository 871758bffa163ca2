package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name          string
		reference     time.Time
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "should return the surrounding week for a Wednesday",
			reference:     time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			expectedStart: "2024-01-08",
			expectedEnd:   "2024-01-14",
		},
		{
			name:          "should start the week on the reference Monday",
			reference:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			expectedStart: "2024-01-08",
			expectedEnd:   "2024-01-14",
		},
		{
			name:          "should end the week on the reference Sunday",
			reference:     time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC),
			expectedStart: "2024-01-08",
			expectedEnd:   "2024-01-14",
		},
		{
			name:          "should cross a month boundary",
			reference:     time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			expectedStart: "2024-01-29",
			expectedEnd:   "2024-02-04",
		},
		{
			name:          "should cross a year boundary",
			reference:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			expectedStart: "2024-12-30",
			expectedEnd:   "2025-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Range(tt.reference)

			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestRange_AlwaysMondayToSunday(t *testing.T) {
	// Walk every day of a few weeks; the range must always span Monday to
	// the following Sunday regardless of the reference weekday.
	reference := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 21; i++ {
		day := reference.AddDate(0, 0, i)
		start, end := Range(day)

		monday, err := time.Parse("2006-01-02", start)
		assert.NoError(t, err)
		sunday, err := time.Parse("2006-01-02", end)
		assert.NoError(t, err)

		assert.Equal(t, time.Monday, monday.Weekday())
		assert.Equal(t, time.Sunday, sunday.Weekday())
		assert.Equal(t, 6, int(sunday.Sub(monday).Hours()/24))
		assert.True(t, InRange(day.Format("2006-01-02"), start, end))
	}
}

func TestSplitOvertime(t *testing.T) {
	tests := []struct {
		name             string
		totalHours       float64
		threshold        float64
		expectedRegular  float64
		expectedOvertime float64
	}{
		{
			name:             "should split hours above the threshold",
			totalHours:       45,
			threshold:        40,
			expectedRegular:  40,
			expectedOvertime: 5,
		},
		{
			name:             "should report zero overtime exactly at the threshold",
			totalHours:       40,
			threshold:        40,
			expectedRegular:  40,
			expectedOvertime: 0,
		},
		{
			name:             "should report zero overtime below the threshold",
			totalHours:       32,
			threshold:        40,
			expectedRegular:  32,
			expectedOvertime: 0,
		},
		{
			name:             "should handle a zero total",
			totalHours:       0,
			threshold:        40,
			expectedRegular:  0,
			expectedOvertime: 0,
		},
		{
			name:             "should respect a non-default threshold",
			totalHours:       40,
			threshold:        35,
			expectedRegular:  35,
			expectedOvertime: 5,
		},
		{
			name:             "should split fractional totals",
			totalHours:       42.5,
			threshold:        40,
			expectedRegular:  40,
			expectedOvertime: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitOvertime(tt.totalHours, tt.threshold)

			assert.Equal(t, tt.expectedRegular, split.Regular)
			assert.Equal(t, tt.expectedOvertime, split.Overtime)
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2024-01-10", "2024-01-08", "2024-01-14"))
	assert.True(t, InRange("2024-01-08", "2024-01-08", "2024-01-14"))
	assert.True(t, InRange("2024-01-14", "2024-01-08", "2024-01-14"))
	assert.False(t, InRange("2024-01-07", "2024-01-08", "2024-01-14"))
	assert.False(t, InRange("2024-01-15", "2024-01-08", "2024-01-14"))
}

func TestDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{
			name:  "should expand a full week",
			start: "2024-01-08",
			end:   "2024-01-14",
			expected: []string{
				"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11",
				"2024-01-12", "2024-01-13", "2024-01-14",
			},
		},
		{
			name:     "should expand a single day",
			start:    "2024-01-08",
			end:      "2024-01-08",
			expected: []string{"2024-01-08"},
		},
		{
			name:     "should return nothing for an inverted range",
			start:    "2024-01-14",
			end:      "2024-01-08",
			expected: nil,
		},
		{
			name:     "should return nothing for malformed bounds",
			start:    "not-a-date",
			end:      "2024-01-08",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Days(tt.start, tt.end))
		})
	}
}
