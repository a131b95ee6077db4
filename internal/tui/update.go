package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload snapshot"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Update handles messages (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotLoadedMsg:
		m.snapshot = msg.Snapshot
		m.err = nil
		return m, computeCmd(m.snapshot)

	case ResultsMsg:
		m.summary = msg.Summary
		m.milestones = msg.Milestones
		m.next = msg.Next
		m.comparison = msg.Comparison
		m.destiny = msg.Destiny
		m.loading = false
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextTab):
			m.currentTab = (m.currentTab + 1) % 3
			return m, nil
		case key.Matches(msg, keys.PrevTab):
			m.currentTab = (m.currentTab + 2) % 3
			return m, nil
		case key.Matches(msg, keys.Reload):
			m.loading = true
			return m, loadSnapshotCmd(m.snapshotPath)
		}
	}
	return m, nil
}
