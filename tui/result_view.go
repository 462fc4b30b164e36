package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/coldcall/models"
)

// resultStatuses is the outcome vocabulary offered after a call.
// To Call is a queue state, not an outcome, so it is not selectable.
func resultStatuses() []models.Status {
	statuses := make([]models.Status, 0, len(models.AllStatuses)-1)
	for _, status := range models.AllStatuses {
		if status != models.StatusToCall {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

// enterResultView primes the result form from the lifecycle draft.
func (m *Model) enterResultView() {
	draft := m.lifecycle.Draft()

	m.statusIndex = 0
	for i, status := range resultStatuses() {
		if status == draft.Status {
			m.statusIndex = i
			break
		}
	}

	m.notesInput.SetValue(draft.Notes)
	m.notesInput.Focus()
	m.viewMode = ViewResult
}

func (m Model) renderResultView() string {
	var s strings.Builder

	draft := m.lifecycle.Draft()

	s.WriteString(titleStyle.Render("LOG CALL RESULT"))
	s.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(selectedStyle.Render(draft.ShopName))
	card.WriteString("\n")
	card.WriteString(dimStyle.Render(draft.Phone))
	card.WriteString("\n\n")

	card.WriteString("Outcome:\n")
	for i, status := range resultStatuses() {
		if i == m.statusIndex {
			card.WriteString(selectedStyle.Render(fmt.Sprintf("  ▸ %s\n", status)))
		} else {
			card.WriteString(fmt.Sprintf("    %s\n", status))
		}
	}

	card.WriteString("\nNotes:\n")
	card.WriteString(m.notesInput.View())

	s.WriteString(cardStyle.Render(card.String()))
	s.WriteString("\n\n")

	if m.lifecycle.CommitErr() != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.lifecycle.CommitErr())))
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	help := []string{
		"↑/↓: Outcome",
		"Enter: Save",
		"esc: Cancel (nothing logged)",
	}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := resultStatuses()

	switch msg.String() {
	case "up":
		if m.statusIndex > 0 {
			m.statusIndex--
		}
		return m, nil

	case "down":
		if m.statusIndex < len(statuses)-1 {
			m.statusIndex++
		}
		return m, nil

	case "enter":
		entry, err := m.lifecycle.Commit(statuses[m.statusIndex], m.notesInput.Value())
		if err != nil {
			// Commit errors keep the form open for another try.
			return m, nil
		}
		m.err = nil
		m.notice = fmt.Sprintf("✓ Logged %s for %s", entry.Status, entry.ContactName)
		m.notesInput.Blur()
		m.viewMode = ViewQueue
		return m, nil

	case "esc":
		if err := m.lifecycle.Cancel(); err != nil {
			m.err = err
			return m, nil
		}
		m.notice = "Call cancelled, nothing logged"
		m.notesInput.Blur()
		m.viewMode = ViewQueue
		return m, nil
	}

	// Everything else feeds the notes input.
	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}
