package core

import "errors"

// Sentinel errors for user input that the session re-prompts on. Callers
// branch with errors.Is; the wrapped message carries the offending input.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidField     = errors.New("invalid field")
	ErrEmptyDescription = errors.New("empty description")
)
