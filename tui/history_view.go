package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/stats"
)

// historyFilters cycles All -> Missed Calls -> each status.
func historyFilters() []string {
	filters := []string{models.FilterAll, models.FilterMissed}
	for _, status := range models.AllStatuses {
		filters = append(filters, string(status))
	}
	return filters
}

func (m Model) renderHistoryView() string {
	var s strings.Builder

	filters := historyFilters()
	filter := filters[m.historyFilter%len(filters)]

	s.WriteString(titleStyle.Render("CALL HISTORY"))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf("Filter: %s", filter)))
	s.WriteString("\n\n")

	entries, err := db.ListAllHistory(m.db)
	if err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return s.String()
	}
	entries = stats.FilterHistory(entries, filter)

	if len(entries) == 0 {
		s.WriteString(dimStyle.Render("No calls match"))
	} else {
		columns := []table.Column{
			{Title: "Date", Width: 17},
			{Title: "Contact", Width: 25},
			{Title: "Status", Width: 18},
			{Title: "Notes", Width: 30},
		}

		var rows []table.Row
		for _, entry := range entries {
			rows = append(rows, table.Row{
				entry.Date.Format("2006-01-02 15:04"),
				entry.ContactName,
				string(entry.Status),
				entry.Notes,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(m.height-12),
		)
		if m.historyRow < len(rows) {
			t.SetCursor(m.historyRow)
		}
		s.WriteString(t.View())
	}

	s.WriteString("\n\n")

	summary := stats.Summarize(entries)
	s.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d calls • %d answered • %d ordered • %.1f%% conversion",
		summary.Total, summary.Answered, summary.Ordered, summary.ConversionRate)))
	s.WriteString("\n")

	help := []string{
		"↑/↓: Navigate",
		"f: Cycle filter",
		"esc: Back",
		"q: Quit",
	}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.historyRow > 0 {
			m.historyRow--
		}
	case "down", "j":
		m.historyRow++
	case "f":
		m.historyFilter = (m.historyFilter + 1) % len(historyFilters())
		m.historyRow = 0
	case "esc":
		m.viewMode = ViewProfiles
	}

	return m, nil
}
