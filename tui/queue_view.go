package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/queue"
)

func (m Model) renderQueueView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CALL QUEUE"))
	s.WriteString("\n\n")

	contacts, cursor, err := m.loadQueue()
	if err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return s.String()
	}

	contact, corrected, ok := queue.FindCurrent(contacts, cursor)
	if !ok {
		s.WriteString(cardStyle.Render("Queue exhausted 🎉\n\nNo contacts left to call in this profile."))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("esc: Back to profiles • q: Quit"))
		return s.String()
	}

	var card strings.Builder
	card.WriteString(selectedStyle.Render(contact.ShopName))
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("Contact: %s\n", contact.Nickname))
	card.WriteString(fmt.Sprintf("Type:    %s\n", contact.TypeOfShop))
	card.WriteString(fmt.Sprintf("Phone:   %s\n", contact.Phone))
	card.WriteString(fmt.Sprintf("Status:  %s\n", contact.Status))
	if contact.Notes != "" {
		card.WriteString(fmt.Sprintf("\nNotes: %s\n", contact.Notes))
	}

	s.WriteString(cardStyle.Render(card.String()))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf("Contact %d of %d", corrected+1, len(contacts))))
	s.WriteString("\n")

	if m.notice != "" {
		s.WriteString(m.notice)
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	var help []string
	if queue.HasPrevious(contacts, corrected) {
		help = append(help, "←: Previous")
	}
	help = append(help, "c/Enter: Call")
	if queue.HasNext(contacts, corrected) {
		help = append(help, "→: Next")
	}
	help = append(help, "esc: Profiles", "q: Quit")
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) handleQueueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contacts, cursor, err := m.loadQueue()
	if err != nil {
		m.err = err
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.viewMode = ViewProfiles
		m.err = nil
		m.notice = ""

	case "left":
		if index, ok := queue.Previous(contacts, cursor); ok {
			if err := db.SetCursor(m.db, index); err != nil {
				m.err = err
			}
		}

	case "right":
		if index, ok := queue.Next(contacts, cursor); ok {
			if err := db.SetCursor(m.db, index); err != nil {
				m.err = err
			}
		}

	case "c", "enter":
		contact, corrected, ok := queue.FindCurrent(contacts, cursor)
		if !ok {
			return m, nil
		}
		if corrected != cursor {
			if err := db.SetCursor(m.db, corrected); err != nil {
				m.err = err
				return m, nil
			}
		}

		if err := m.lifecycle.Dial(contact.ID); err != nil {
			m.err = err
			return m, nil
		}
		if _, err := m.lifecycle.Resume(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.notice = ""
		m.enterResultView()
	}

	return m, nil
}

// loadQueue returns the active profile's contacts and cursor.
func (m Model) loadQueue() ([]models.Contact, int, error) {
	activeID, err := db.GetActiveProfile(m.db)
	if err != nil {
		return nil, 0, err
	}
	contacts, err := db.ListContactsForProfile(m.db, activeID)
	if err != nil {
		return nil, 0, err
	}
	cursor, err := db.GetCursor(m.db)
	if err != nil {
		return nil, 0, err
	}
	return contacts, cursor, nil
}
