// Package render formats the task list as a fixed-width bordered text table.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/drapaimern/tasklist/internal/core"
	"github.com/drapaimern/tasklist/pkg/models"
)

// taskLimit is the width of the description column; longer lines hard-wrap
// onto continuation rows.
const taskLimit = 44

// NoTasksMessage is printed whenever a render or selection is attempted on an
// empty store.
const NoTasksMessage = "No tasks have been input"

var separator = "+----+------------+-------+---+---+" + strings.Repeat("-", taskLimit+2) + "+"

// Style definitions for the one-character priority and urgency cells.
var (
	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.PriorityNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		models.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	urgencyStyles = map[models.Urgency]lipgloss.Style{
		models.UrgencyOverdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		models.UrgencyDueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		models.UrgencyUpcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}

	urgencyMarks = map[models.Urgency]string{
		models.UrgencyOverdue:  "!",
		models.UrgencyDueToday: "*",
		models.UrgencyUpcoming: "+",
	}

	urgencyLetters = map[models.Urgency]string{
		models.UrgencyOverdue:  "O",
		models.UrgencyDueToday: "T",
		models.UrgencyUpcoming: "U",
	}
)

// Renderer turns a task sequence into display lines. With color enabled the
// priority and urgency cells are colored one-character blocks; otherwise they
// fall back to bare letter tags of the same width.
type Renderer struct {
	color bool
}

// New creates a Renderer. color selects colored cells over letter tags.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Lines renders the task table. Urgency is classified against now on every
// call; it is never cached on the task. An empty task list renders as the
// single line "No tasks have been input".
func (r *Renderer) Lines(tasks []models.Task, now time.Time) []string {
	if len(tasks) == 0 {
		return []string{NoTasksMessage}
	}

	lines := []string{
		separator,
		fmt.Sprintf("| %-2s | %-10s | %-5s | %s | %s | %-*s |", "No", "Date", "Time", "P", "U", taskLimit, "Description"),
		separator,
	}

	for i, t := range tasks {
		urgency := core.ClassifyUrgency(t.DueDate, t.DueTime, now)
		chunks := wrapDescription(t.Description)

		lines = append(lines, fmt.Sprintf("| %2d | %-10s | %-5s | %s | %s | %s |",
			i+1, t.DueDate, t.DueTime, r.priorityCell(t.Priority), r.urgencyCell(urgency), padRight(chunks[0], taskLimit)))
		for _, chunk := range chunks[1:] {
			lines = append(lines, fmt.Sprintf("|    | %-10s | %-5s | %s | %s | %s |",
				"", "", " ", " ", padRight(chunk, taskLimit)))
		}
		lines = append(lines, separator)
	}

	return lines
}

// priorityCell renders the one-character priority cell.
func (r *Renderer) priorityCell(p models.Priority) string {
	if !r.color {
		return string(p)
	}
	return priorityStyles[p].Render("█")
}

// urgencyCell renders the one-character urgency cell.
func (r *Renderer) urgencyCell(u models.Urgency) string {
	if !r.color {
		return urgencyLetters[u]
	}
	return urgencyStyles[u].Render(urgencyMarks[u])
}

// wrapDescription splits a description on embedded newlines, then hard-wraps
// each resulting line into chunks of at most taskLimit characters. Wrapping
// counts runes, not bytes, so multi-byte characters are never split. The
// result always has at least one chunk.
func wrapDescription(description string) []string {
	var chunks []string
	for _, line := range strings.Split(description, "\n") {
		runes := []rune(line)
		for len(runes) > taskLimit {
			chunks = append(chunks, string(runes[:taskLimit]))
			runes = runes[taskLimit:]
		}
		chunks = append(chunks, string(runes))
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}

// padRight pads s with spaces to width characters. Padding counts runes so
// rows keep a constant width for non-ASCII descriptions, where %-*s would
// count bytes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
