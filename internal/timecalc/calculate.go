// Package timecalc converts wall-clock time pairs into elapsed hours.
// All functions are pure; times are minute-of-day values or HH:mm strings
// treated as naive local wall-clock times.
package timecalc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"timebot/internal/errors"
)

const minutesPerDay = 24 * 60

// clockPattern is the wire contract for HH:mm 24-hour time strings.
var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// datePattern is the wire contract for fixed-width ISO YYYY-MM-DD dates.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidClockFormat reports whether a time string satisfies the HH:mm
// 24-hour format contract.
func IsValidClockFormat(clock string) bool {
	return clockPattern.MatchString(clock)
}

// IsValidDateFormat reports whether a date string satisfies the fixed-width
// YYYY-MM-DD format contract.
func IsValidDateFormat(date string) bool {
	return datePattern.MatchString(date)
}

// ParseClock converts an HH:mm string into a minute-of-day value.
func ParseClock(clock string) (int, error) {
	if !IsValidClockFormat(clock) {
		return 0, errors.NewValidationError(fmt.Sprintf("time %q is not in HH:mm format", clock), nil)
	}

	parts := strings.SplitN(clock, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("time %q has an invalid hour", clock), err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("time %q has invalid minutes", clock), err)
	}

	return hours*60 + minutes, nil
}

// ComputeHours returns the elapsed hours between two minute-of-day values,
// rounded to 2 decimals. A negative raw difference is treated as an overnight
// shift and wrapped forward by 24 hours. Equal inputs yield 0, never a full
// 24-hour day.
func ComputeHours(start, end int) float64 {
	totalMinutes := end - start
	if totalMinutes < 0 {
		totalMinutes += minutesPerDay
	}
	return Round2(float64(totalMinutes) / 60)
}

// HoursBetween parses two HH:mm strings and computes the elapsed hours
// between them. It fails with a validation error when either value breaks
// the format contract or when the computed duration is zero.
func HoursBetween(start, end string) (float64, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	hours := ComputeHours(startMinutes, endMinutes)
	if hours == 0 {
		return 0, errors.NewValidationError("end time must be after start time: duration is zero", nil)
	}

	return hours, nil
}

// Round2 rounds a value to 2 decimal places, the display precision used for
// hours everywhere in the engine.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatHours renders an hour count for display, e.g. "8.5 hrs".
func FormatHours(hours float64) string {
	if hours == 0 {
		return "0 hrs"
	}
	if hours == 1 {
		return "1 hr"
	}
	return fmt.Sprintf("%g hrs", hours)
}

// HoursToClock converts decimal hours to an "Xh Ym" display string.
func HoursToClock(decimalHours float64) string {
	hours := int(decimalHours)
	minutes := int(math.Round((decimalHours - float64(hours)) * 60))

	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
