// Package models defines the task record shared by the storage, rendering,
// and CLI layers.
package models

// Priority is the canonical one-letter priority code of a task. The raw code
// is what gets stored and persisted; display tokens are rendered only at the
// presentation layer.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// Label returns the human-readable name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the four recognized priority codes.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Urgency buckets a task's due instant relative to the current wall clock.
// It is always recomputed at render time, never stored on the task.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyUpcoming Urgency = "upcoming"
)

// Task represents one to-do entry. DueDate and DueTime hold the canonical
// zero-padded forms ("YYYY-MM-DD", "HH:MM"), UTC-implied. Description may
// span multiple lines, joined with "\n".
type Task struct {
	Description string   `json:"description" yaml:"description"`
	DueDate     string   `json:"dueDate" yaml:"dueDate"`
	DueTime     string   `json:"dueTime" yaml:"dueTime"`
	Priority    Priority `json:"priority" yaml:"priority"`
}
