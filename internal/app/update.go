package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songbook/internal/ui/frame"
)

// Compile-time check that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// Init loads every song and sets the terminal title.
func (m *Model) Init() tea.Cmd {
	m.refreshAll()
	return tea.SetWindowTitle(frame.AppTitle)
}

// Update handles messages and returns updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}
