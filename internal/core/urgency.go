package core

import (
	"time"

	"github.com/drapaimern/tasklist/pkg/models"
)

// ClassifyUrgency buckets a task's due instant relative to now using
// whole-calendar-day granularity at UTC: a task due any time yesterday is
// overdue, any time today is due today, any time tomorrow is upcoming.
// Malformed date/time strings classify as upcoming; they cannot occur for
// tasks that went through normalization.
func ClassifyUrgency(dueDate, dueTime string, now time.Time) models.Urgency {
	due, err := DueInstant(dueDate, dueTime)
	if err != nil {
		return models.UrgencyUpcoming
	}

	delta := wholeDaysBetween(now.UTC(), due)
	switch {
	case delta < 0:
		return models.UrgencyOverdue
	case delta > 0:
		return models.UrgencyUpcoming
	default:
		return models.UrgencyDueToday
	}
}

// wholeDaysBetween returns the number of calendar days from a to b at UTC,
// ignoring the sub-day remainder.
func wholeDaysBetween(a, b time.Time) int {
	return int(midnightUTC(b).Sub(midnightUTC(a)).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
