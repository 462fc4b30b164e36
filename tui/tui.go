// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive full-screen flow through profiles, the call queue, and history
package tui

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/coldcall/call"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewProfiles ViewMode = iota
	ViewQueue
	ViewResult
	ViewHistory
	ViewConfirmDelete
)

// Model is the main bubbletea model
type Model struct {
	db        *sql.DB
	identity  call.Identity
	lifecycle *call.Lifecycle
	viewMode  ViewMode

	// Profiles view state
	selectedRow int

	// Result view state
	statusIndex int
	notesInput  textinput.Model

	// History view state
	historyFilter int
	historyRow    int

	// Delete confirmation state
	deleteTargetID   string
	deleteTargetName string

	// UI state
	width  int
	height int
	err    error
	notice string
}

// NewModel creates a new TUI model
func NewModel(db *sql.DB, identity call.Identity) Model {
	notes := textinput.New()
	notes.Placeholder = "Notes from the call..."
	notes.CharLimit = 500

	return Model{
		db:         db,
		identity:   identity,
		lifecycle:  call.NewLifecycle(db, call.TelDialer{}, identity),
		viewMode:   ViewProfiles,
		notesInput: notes,
		width:      80,
		height:     24,
	}
}

// Run starts the interactive interface. A pending call left over from a
// previous session reopens the result form immediately.
func Run(db *sql.DB, identity call.Identity) error {
	m := NewModel(db, identity)

	awaiting, err := m.lifecycle.Resume()
	if err != nil {
		return err
	}
	if awaiting {
		m.enterResultView()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewProfiles:
		return m.renderProfilesView()
	case ViewQueue:
		return m.renderQueueView()
	case ViewResult:
		return m.renderResultView()
	case ViewHistory:
		return m.renderHistoryView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The result form owns its keys completely: a pending call must be
	// committed or cancelled, not quit around.
	if m.viewMode == ViewResult {
		return m.handleResultKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewProfiles:
		return m.handleProfilesKeys(msg)
	case ViewQueue:
		return m.handleQueueKeys(msg)
	case ViewHistory:
		return m.handleHistoryKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1, 3)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
