package ui

import "github.com/charmbracelet/lipgloss"

// bubblezone id prefixes
const (
	zoneRailBoards = "rail-boards"
	zoneRailDMs    = "rail-dms"
	zoneCard       = "card-"
	zoneTab        = "tab-"
	zoneCell       = "cell-"
	zonePeer       = "peer-"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	switch m.view {
	case viewBoards:
		content = m.renderGrid()
	case viewBoard:
		content = m.renderDetail()
	case viewDMs:
		content = m.renderDMs()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderRail(), content)
	output := lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderBottomBar())
	return m.zoneManager.Scan(output)
}
