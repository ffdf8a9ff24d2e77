package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/drapaimern/tasklist/internal/core"
	"github.com/drapaimern/tasklist/internal/observability"
	"github.com/drapaimern/tasklist/pkg/models"
)

// Style definitions.
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	summaryPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 2)

	summaryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				MarginBottom(1)

	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dueTodayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	summaryHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type summaryModel struct {
	width  int
	height int

	priorityCounts map[models.Priority]int
	urgencyCounts  map[models.Urgency]int
	total          int
	eventCounts    map[string]int
	eventTotal     int

	loading bool
	err     error
}

// summaryLoadedMsg carries loaded counts back to the model.
type summaryLoadedMsg struct {
	priorityCounts map[models.Priority]int
	urgencyCounts  map[models.Urgency]int
	total          int
	eventCounts    map[string]int
	eventTotal     int
	err            error
}

func newSummaryModel() summaryModel {
	return summaryModel{
		loading:        true,
		priorityCounts: make(map[models.Priority]int),
		urgencyCounts:  make(map[models.Urgency]int),
	}
}

func (m summaryModel) Init() tea.Cmd {
	return loadSummary
}

func (m summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadSummary
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case summaryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.priorityCounts = msg.priorityCounts
		m.urgencyCounts = msg.urgencyCounts
		m.total = msg.total
		m.eventCounts = msg.eventCounts
		m.eventTotal = msg.eventTotal
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m summaryModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := summaryTitleStyle.Render(" Tasklist Summary ")
	help := summaryHelpStyle.Render("r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	panelWidth := m.width/2 - 6
	if panelWidth < 24 {
		panelWidth = 24
	}
	priorities := summaryPanelStyle.Width(panelWidth).Render(m.renderPriorityPanel())
	urgencies := summaryPanelStyle.Width(panelWidth).Render(m.renderUrgencyPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, priorities, urgencies)
	activity := summaryPanelStyle.Width(2*panelWidth + 4).Render(m.renderActivityPanel())

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s", title, body, activity, help)
}

func (m summaryModel) renderPriorityPanel() string {
	var b strings.Builder
	b.WriteString(summaryHeaderStyle.Render("By priority"))
	b.WriteString("\n")

	if m.total == 0 {
		b.WriteString("  No tasks found.")
		return b.String()
	}

	order := []models.Priority{
		models.PriorityCritical,
		models.PriorityHigh,
		models.PriorityNormal,
		models.PriorityLow,
	}
	for _, p := range order {
		count, ok := m.priorityCounts[p]
		if !ok || count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-10s %d\n", p.Label(), count))
	}
	b.WriteString(fmt.Sprintf("\n  Total: %d", m.total))

	return b.String()
}

func (m summaryModel) renderUrgencyPanel() string {
	var b strings.Builder
	b.WriteString(summaryHeaderStyle.Render("By urgency"))
	b.WriteString("\n")

	if m.total == 0 {
		b.WriteString("  No tasks found.")
		return b.String()
	}

	lines := []struct {
		label   string
		urgency models.Urgency
		style   lipgloss.Style
	}{
		{"Overdue", models.UrgencyOverdue, overdueStyle},
		{"DueToday", models.UrgencyDueToday, dueTodayStyle},
		{"Upcoming", models.UrgencyUpcoming, upcomingStyle},
	}
	for _, l := range lines {
		count := m.urgencyCounts[l.urgency]
		if count == 0 {
			continue
		}
		b.WriteString(l.style.Render(fmt.Sprintf("  %-10s %d", l.label, count)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m summaryModel) renderActivityPanel() string {
	var b strings.Builder
	b.WriteString(summaryHeaderStyle.Render("Activity (7d)"))
	b.WriteString("\n")

	if m.eventTotal == 0 {
		b.WriteString("  No recorded activity.")
		return b.String()
	}

	order := []struct {
		label     string
		eventType string
	}{
		{"Added", observability.EventTaskAdded},
		{"Edited", observability.EventTaskEdited},
		{"Deleted", observability.EventTaskDeleted},
		{"Saves", observability.EventListSaved},
	}
	for _, l := range order {
		count := m.eventCounts[l.eventType]
		if count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-10s %d\n", l.label, count))
	}
	b.WriteString(fmt.Sprintf("\n  Events: %d", m.eventTotal))

	return b.String()
}

// recentActivity tallies event-log entries by type since the given instant.
// A nil log or a read failure yields an empty tally: activity is decoration,
// never a reason for the summary to fail.
func recentActivity(log observability.EventLog, since time.Time) (map[string]int, int) {
	counts := make(map[string]int)
	if log == nil {
		return counts, 0
	}
	events, err := log.Read(observability.EventFilter{Since: &since})
	if err != nil {
		return counts, 0
	}
	for _, e := range events {
		counts[e.Type]++
	}
	return counts, len(events)
}

func loadSummary() tea.Msg {
	result := summaryLoadedMsg{
		priorityCounts: make(map[models.Priority]int),
		urgencyCounts:  make(map[models.Urgency]int),
	}

	tasks, err := DataFile.Load()
	if err != nil {
		result.err = err
		return result
	}

	now := time.Now()
	for _, t := range tasks {
		result.priorityCounts[t.Priority]++
		result.urgencyCounts[core.ClassifyUrgency(t.DueDate, t.DueTime, now)]++
	}
	result.total = len(tasks)
	result.eventCounts, result.eventTotal = recentActivity(EventLog, now.AddDate(0, 0, -7))

	return result
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Read-only TUI overview of the persisted task list",
	Long: `Launch a terminal panel showing how many persisted tasks fall into each
priority and urgency bucket, plus a tally of the last week's recorded
session activity. The list itself is never modified.

Refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newSummaryModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
