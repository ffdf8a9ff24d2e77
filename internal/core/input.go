package core

import (
	"fmt"
	"strconv"
	"strings"
)

// EditField names the single task field an edit replaces.
type EditField string

const (
	FieldPriority EditField = "priority"
	FieldDate     EditField = "date"
	FieldTime     EditField = "time"
	FieldTask     EditField = "task"
)

// ParseSelection converts a 1-based task number entered by the user into a
// 0-based store index. size is the number of tasks currently held.
func ParseSelection(raw string, size int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || num < 1 || num > size {
		return 0, fmt.Errorf("%w: %q: want a number between 1 and %d", ErrInvalidSelection, raw, size)
	}
	return num - 1, nil
}

// ParseEditField maps the user's answer to the field-to-change question onto
// one of the four editable fields.
func ParseEditField(raw string) (EditField, error) {
	field := EditField(strings.ToLower(strings.TrimSpace(raw)))
	switch field {
	case FieldPriority, FieldDate, FieldTime, FieldTask:
		return field, nil
	}
	return "", fmt.Errorf("%w: %q: want priority, date, time, or task", ErrInvalidField, raw)
}

// ValidateDescription rejects descriptions that are empty or all whitespace.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
