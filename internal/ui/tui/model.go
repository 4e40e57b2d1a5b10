package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval paces the spinner.
const tickInterval = 120 * time.Millisecond

// Model is the Bubble Tea model of a single running operation.
type Model struct {
	Title     string
	StartTime time.Time

	// Animation
	SpinnerFrame int

	// Outcome
	Err         error
	Done        bool
	Interrupted bool
}

// NewModel creates a model for an operation titled title.
func NewModel(title string) Model {
	return Model{
		Title:     title,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Interrupted = true
			return m, tea.Quit
		}

	case TickMsg:
		if m.Done || m.Err != nil {
			return m, nil
		}
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m, time.Since(m.StartTime))
}
