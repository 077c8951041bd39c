package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRail draws the fixed navigation strip on the left edge.
func (m *Model) renderRail() string {
	activeStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	idleStyle := lipgloss.NewStyle().Foreground(dimColor)
	hoverStyle := lipgloss.NewStyle().Foreground(textColor)
	badgeStyle := lipgloss.NewStyle().Foreground(unreadColor).Bold(true)

	boardsStyle := idleStyle
	if m.view == viewBoards || m.view == viewBoard {
		boardsStyle = activeStyle
	} else if m.hoverID == zoneRailBoards {
		boardsStyle = hoverStyle
	}
	dmsStyle := idleStyle
	if m.view == viewDMs {
		dmsStyle = activeStyle
	} else if m.hoverID == zoneRailDMs {
		dmsStyle = hoverStyle
	}

	boards := m.zoneManager.Mark(zoneRailBoards, boardsStyle.Render(" ▦ boards"))
	dms := dmsStyle.Render(" ✉ dms")
	if unread := m.totalUnread(); unread > 0 {
		dms += " " + badgeStyle.Render(fmt.Sprintf("%d", unread))
	}
	dms = m.zoneManager.Mark(zoneRailDMs, dms)

	lines := []string{"", boards, dms}
	for len(lines) < m.contentHeight() {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(railWidth).Render(strings.Join(lines, "\n"))
}
