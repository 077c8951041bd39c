package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/types"
)

func (m *Model) renderTopBar() string {
	style := lipgloss.NewStyle().
		Background(barBg).
		Foreground(textColor).
		Width(m.width).
		Padding(0, 1)
	return style.Render(m.breadcrumb())
}

func (m *Model) breadcrumb() string {
	switch m.view {
	case viewBoard:
		if card := m.openCard(); card != nil {
			return "cyan ❯ " + card.GroupName + " ❯ " + card.WorkspaceName + " ❯ " + card.Name
		}
		if m.board != nil {
			return "cyan ❯ " + m.board.Name
		}
		return "cyan ❯ board"
	case viewDMs:
		if m.peerName != "" {
			return "cyan ❯ dms ❯ " + m.peerName
		}
		return "cyan ❯ dms"
	default:
		return "cyan ❯ boards"
	}
}

// openCard finds the open board's joined card for breadcrumb labels.
func (m *Model) openCard() *types.BoardCard {
	if m.boardID == "" {
		return nil
	}
	for i := range m.cards {
		if m.cards[i].ID == m.boardID {
			return &m.cards[i]
		}
	}
	return nil
}

func (m *Model) renderBottomBar() string {
	left := m.status
	if left == "" {
		left = m.keyHints()
	}
	line := alignStatusLine(" "+left, m.counterSummary()+" ", m.width)
	return lipgloss.NewStyle().Foreground(statusColor).Background(barBg).Width(m.width).Render(line)
}

func (m *Model) counterSummary() string {
	dot := lipgloss.NewStyle().Foreground(offlineColor).Render("●")
	if m.counters.Ready {
		dot = lipgloss.NewStyle().Foreground(onlineColor).Render("●")
	}
	return fmt.Sprintf("%s %s · %d objects · %d peers · %s",
		dot,
		core.ShortID(m.counters.NodeID, 8),
		m.counters.Objects,
		m.counters.Peers,
		shortAge(m.lastRefresh))
}

func (m *Model) keyHints() string {
	switch m.view {
	case viewBoards:
		if m.filterActive {
			return "enter keep · esc clear"
		}
		return "j/k move · enter open · / filter · s sort · m dms · q quit"
	case viewBoard:
		if m.editing {
			return "ctrl+s save · esc cancel"
		}
		switch m.face {
		case types.FaceNotebook:
			return "j/k select · enter edit · a add · d delete · J/K reorder · y copy · 1/2/3 face · esc back"
		case types.FaceNotes:
			if m.notes.Focused() {
				return "ctrl+s save · esc blur"
			}
			return "enter edit · 1/2/3 face · esc back"
		default:
			return "j/k scroll · 1/2/3 face · esc back"
		}
	case viewDMs:
		if m.peerID != "" {
			return "enter send · ctrl+j newline · esc close"
		}
		return "j/k move · enter open · esc boards"
	}
	return ""
}

func alignStatusLine(left, right string, width int) string {
	if width <= 0 || right == "" {
		return left
	}
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		return left
	}
	spaces := width - leftWidth - rightWidth
	return left + strings.Repeat(" ", spaces) + right
}

func shortAge(t time.Time) string {
	seconds := int(time.Since(t).Seconds())
	switch {
	case seconds < 2:
		return "now"
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	default:
		return fmt.Sprintf("%dm ago", seconds/60)
	}
}
