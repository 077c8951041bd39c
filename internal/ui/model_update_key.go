package ui

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	m.status = ""
	switch m.view {
	case viewBoards:
		return m.handleGridKeys(msg)
	case viewBoard:
		return m.handleDetailKeys(msg)
	case viewDMs:
		return m.handleDMKeys(msg)
	}
	return m, nil
}
