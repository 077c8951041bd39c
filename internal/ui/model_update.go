package ui

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case pollMsg:
		return m.handlePollMsg(msg)
	case convoPollMsg:
		return m.handleConvoPollMsg(msg)
	case scrollBottomMsg:
		return m.handleScrollBottomMsg(msg)
	case errMsg:
		return m.handleErrMsg(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return m, nil
}

func (m *Model) handleErrMsg(msg errMsg) (tea.Model, tea.Cmd) {
	m.status = msg.err.Error()
	return m, m.pollCmd()
}
