// Package week computes ISO week boundaries and weekly hour aggregates.
package week

import (
	"math"
	"time"
)

// DefaultOvertimeThreshold is the weekly hour count above which hours are
// overtime. This is a payroll policy constant, not a legal computation.
const DefaultOvertimeThreshold = 40.0

// dateLayout is the fixed-width ISO date format used on the wire and in the
// cache. The fixed width makes lexicographic comparison of dates valid.
const dateLayout = "2006-01-02"

// Split holds the regular/overtime division of a weekly hour total.
type Split struct {
	Regular  float64
	Overtime float64
}

// Range returns the inclusive Monday-Sunday bounds of the ISO week containing
// the reference time, as YYYY-MM-DD date strings.
func Range(reference time.Time) (start, end string) {
	// time.Weekday puts Sunday at 0; shift so Monday is day 0.
	daysSinceMonday := (int(reference.Weekday()) + 6) % 7
	monday := reference.AddDate(0, 0, -daysSinceMonday)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// SplitOvertime divides a weekly total into regular and overtime hours.
// Regular is capped at the threshold; anything above it is overtime. When the
// total is at or below the threshold the overtime is exactly 0, never a
// rounding artifact.
func SplitOvertime(totalHours, threshold float64) Split {
	if totalHours <= threshold {
		return Split{
			Regular:  Round2(totalHours),
			Overtime: 0,
		}
	}
	return Split{
		Regular:  Round2(threshold),
		Overtime: Round2(totalHours - threshold),
	}
}

// InRange reports whether a date lies within [start, end] inclusive.
// Lexicographic comparison is valid because dates are fixed-width
// YYYY-MM-DD strings.
func InRange(date, start, end string) bool {
	return date >= start && date <= end
}

// Days expands an inclusive date range into the list of dates it contains.
// Malformed bounds yield an empty list.
func Days(start, end string) []string {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}

	var days []string
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		days = append(days, current.Format(dateLayout))
	}
	return days
}

// Round2 rounds a value to the 2-decimal display precision used for hours.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
