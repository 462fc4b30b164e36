package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
)

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DELETE PROFILE"))
	s.WriteString("\n\n")

	s.WriteString(cardStyle.Render(fmt.Sprintf(
		"Delete %q?\n\nIts contacts and call history go with it.", m.deleteTargetName)))
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("y: Delete • n/esc: Keep it"))

	return s.String()
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		profileID, err := uuid.Parse(m.deleteTargetID)
		if err != nil {
			m.err = err
			return m, nil
		}
		if err := db.DeleteProfile(m.db, profileID); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.notice = fmt.Sprintf("✓ Deleted %s", m.deleteTargetName)
		m.selectedRow = 0
		m.viewMode = ViewProfiles

	case "n", "esc":
		m.viewMode = ViewProfiles
	}

	return m, nil
}
