package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/coldcall/db"
)

func (m Model) renderProfilesView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("COLDCALL"))
	s.WriteString("\n\n")

	s.WriteString(m.renderProfilesTable())
	s.WriteString("\n\n")

	if m.notice != "" {
		s.WriteString(m.notice)
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	help := []string{
		"↑/↓: Navigate",
		"Enter: Start calling",
		"h: History",
		"d: Delete",
		"q: Quit",
	}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) renderProfilesTable() string {
	profiles, err := db.ListProfiles(m.db)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	if len(profiles) == 0 {
		return dimStyle.Render("No profiles yet. Import one with 'coldcall profiles import <file.vcf>'")
	}

	activeID, _ := db.GetActiveProfile(m.db)

	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Contacts", Width: 10},
		{Title: "Active", Width: 8},
	}

	var rows []table.Row
	for _, profile := range profiles {
		active := ""
		if profile.ID == activeID {
			active = "✓"
		}
		rows = append(rows, table.Row{
			profile.Name,
			fmt.Sprintf("%d", profile.ContactsCount),
			active,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) handleProfilesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profiles, err := db.ListProfiles(m.db)
	if err != nil {
		m.err = err
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(profiles)-1 {
			m.selectedRow++
		}
	case "enter":
		if m.selectedRow < len(profiles) {
			// Switching profiles restarts the queue at the top.
			if err := db.SetActiveProfile(m.db, profiles[m.selectedRow].ID); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.notice = ""
			m.viewMode = ViewQueue
		}
	case "h":
		m.historyRow = 0
		m.viewMode = ViewHistory
	case "d":
		if m.selectedRow < len(profiles) {
			m.deleteTargetID = profiles[m.selectedRow].ID.String()
			m.deleteTargetName = profiles[m.selectedRow].Name
			m.viewMode = ViewConfirmDelete
		}
	}

	return m, nil
}
