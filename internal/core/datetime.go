// Package core contains the business logic for Tasklist: date/time
// normalization, priority parsing, urgency classification, and configuration.
package core

import (
	"fmt"
	"regexp"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^\d{1,4}-\d{1,2}-\d{1,2}$`)
	timePattern = regexp.MustCompile(`^\d{1,2}:\d{1,2}$`)
)

// NormalizeDate parses a user-entered date of the form Y-M-D (year 1-4 digits,
// month/day 1-2 digits), zero-pads month and day, and validates the result
// against the calendar. It returns the canonical "YYYY-MM-DD" form.
func NormalizeDate(input string) (string, error) {
	if !datePattern.MatchString(input) {
		return "", fmt.Errorf("%w: %q does not match Y-M-D", ErrInvalidDate, input)
	}

	var year, month, day int
	if _, err := fmt.Sscanf(input, "%d-%d-%d", &year, &month, &day); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, input, err)
	}

	canonical := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	// Compose an instant purely to let the time package reject impossible
	// calendar values (month 13, day 32, ...).
	if _, err := time.Parse(time.RFC3339, canonical+"T00:00:00Z"); err != nil {
		return "", fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, input)
	}
	return canonical, nil
}

// NormalizeTime parses a user-entered time of the form H:M (1-2 digits each),
// zero-pads both fields, and validates them as a clock time. It returns the
// canonical "HH:MM" form.
func NormalizeTime(input string) (string, error) {
	if !timePattern.MatchString(input) {
		return "", fmt.Errorf("%w: %q does not match H:M", ErrInvalidTime, input)
	}

	var hour, minute int
	if _, err := fmt.Sscanf(input, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidTime, input, err)
	}

	canonical := fmt.Sprintf("%02d:%02d", hour, minute)
	if _, err := time.Parse(time.RFC3339, "2000-01-01T"+canonical+":00Z"); err != nil {
		return "", fmt.Errorf("%w: %q is not a clock time", ErrInvalidTime, input)
	}
	return canonical, nil
}

// DueInstant composes canonical date and time strings into the UTC instant
// they denote.
func DueInstant(dueDate, dueTime string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, dueDate+"T"+dueTime+":00Z")
	if err != nil {
		return time.Time{}, fmt.Errorf("composing due instant from %q %q: %w", dueDate, dueTime, err)
	}
	return t, nil
}
