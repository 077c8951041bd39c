package ui

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) Init() tea.Cmd {
	return m.pollCmd()
}

// Close releases the node. Safe to call after the program has exited.
func (m *Model) Close() {
	if m.node != nil {
		_ = m.node.Close()
	}
}
