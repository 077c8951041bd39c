package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/block-xaero/cyan/internal/markdown"
	"github.com/block-xaero/cyan/internal/types"
)

func (m *Model) openDMs() {
	if m.view == viewBoard {
		m.closeBoard()
	}
	m.view = viewDMs
}

func (m *Model) handleDMKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.peerID != "" && m.composer.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.closeConversation()
			return m, nil
		case tea.KeyEnter:
			return m, m.sendCurrentMessage()
		case tea.KeyCtrlJ:
			m.composer.InsertString("\n")
			m.resize()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.convo, cmd = m.convo.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		m.resize()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.view = viewBoards
		return m, nil
	case "j", "down":
		m.movePeerSelection(1)
	case "k", "up":
		m.movePeerSelection(-1)
	case "enter":
		if peer := m.selectedPeer(); peer != nil {
			return m, m.openConversation(*peer)
		}
	}
	return m, nil
}

func (m *Model) movePeerSelection(delta int) {
	if len(m.peers) == 0 {
		return
	}
	m.peerIndex += delta
	if m.peerIndex < 0 {
		m.peerIndex = 0
	}
	if m.peerIndex >= len(m.peers) {
		m.peerIndex = len(m.peers) - 1
	}
}

// openConversation loads a peer's messages and focuses the composer.
// Opening clears the peer's unread count.
func (m *Model) openConversation(peer types.Peer) tea.Cmd {
	messages, err := m.node.Messages(peer.ID)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	if err := m.node.MarkRead(peer.ID); err != nil {
		m.status = err.Error()
	}
	m.peerID = peer.ID
	m.peerName = peer.DisplayName
	m.messages = messages
	m.lastMsgID = ""
	if len(messages) > 0 {
		m.lastMsgID = messages[len(messages)-1].ID
	}
	m.convoGen++
	m.resize()
	m.refreshConvo()
	m.convo.GotoBottom()
	return tea.Batch(m.composer.Focus(), m.convoPollCmd())
}

func (m *Model) closeConversation() {
	m.convoGen++ // drop in-flight conversation ticks
	m.peerID = ""
	m.peerName = ""
	m.messages = nil
	m.lastMsgID = ""
	m.composer.Reset()
	m.composer.Blur()
}

func (m *Model) sendCurrentMessage() tea.Cmd {
	body := strings.TrimSpace(m.composer.Value())
	if body == "" {
		return nil
	}
	sent, err := m.node.SendDM(m.peerID, body)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.composer.Reset()
	m.messages = append(m.messages, sent)
	m.lastMsgID = sent.ID
	m.resize()
	m.refreshConvo()
	m.scrollGen++
	return m.scrollBottomCmd()
}

func (m *Model) refreshConvo() {
	m.convo.SetContent(m.renderConvo())
}

func (m *Model) renderDMs() string {
	width := m.contentWidth()
	list := m.renderPeerList()

	rightWidth := width - peerListWidth
	if rightWidth < 1 {
		rightWidth = 1
	}
	var right string
	if m.peerID == "" {
		right = lipgloss.NewStyle().
			Foreground(dimColor).
			Width(rightWidth).
			Height(m.contentHeight()).
			Render("\n  select a peer — enter opens the conversation")
	} else {
		right = lipgloss.JoinVertical(lipgloss.Left,
			m.convo.View(),
			"",
			m.composer.View(),
		)
	}
	return lipgloss.NewStyle().Width(width).Height(m.contentHeight()).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, list, right))
}

func (m *Model) renderPeerList() string {
	headerStyle := lipgloss.NewStyle().Foreground(textColor).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(dimColor)
	selectedStyle := lipgloss.NewStyle().Foreground(textColor).Background(selectedBg).Bold(true)
	hoverStyle := lipgloss.NewStyle().Foreground(textColor)
	badgeStyle := lipgloss.NewStyle().Foreground(unreadColor).Bold(true)

	lines := []string{headerStyle.Render(" Peers "), ""}
	if len(m.peers) == 0 {
		lines = append(lines, itemStyle.Render(" (none)"))
	}
	for i, peer := range m.peers {
		dot := lipgloss.NewStyle().Foreground(offlineColor).Render("○")
		if peer.Online {
			dot = lipgloss.NewStyle().Foreground(onlineColor).Render("●")
		}
		label := truncateLine(peer.DisplayName, peerListWidth-10)
		badge := ""
		if peer.Unread > 0 {
			badge = badgeStyle.Render(humanize.Comma(int64(peer.Unread)))
		}
		seen := ""
		if peer.LastSeen > 0 {
			seen = shortDuration(time.Since(time.UnixMilli(peer.LastSeen)))
		}

		style := itemStyle
		if i == m.peerIndex {
			style = selectedStyle
		} else if m.hoverID == zonePeer+peer.ID {
			style = hoverStyle
		}
		row := " " + dot + " " + style.Render(label)
		if badge != "" {
			row += " " + badge
		}
		if seen != "" {
			row += " " + lipgloss.NewStyle().Foreground(metaColor).Render(seen)
		}
		lines = append(lines, m.zoneManager.Mark(zonePeer+peer.ID, row))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(peerListWidth).Height(m.contentHeight()).Render(content)
}

// renderConvo renders the open conversation with the chat dialect:
// checkboxes and links stay plain text.
func (m *Model) renderConvo() string {
	width := m.convo.Width - 2
	if width < 1 {
		width = 1
	}
	nameStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	selfStyle := lipgloss.NewStyle().Foreground(dimColor).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor)

	var lines []string
	for _, msg := range m.messages {
		author := nameStyle.Render(m.peerName)
		if msg.Direction == types.DMOut {
			author = selfStyle.Render("me")
		}
		when := metaStyle.Render(humanize.Time(time.UnixMilli(msg.CreatedAt)))
		lines = append(lines, author+" "+when)
		lines = append(lines, renderMarkdown(msg.Body, width, markdown.ChatDialect()))
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(dimColor).Render(" (no messages yet)")
	}
	return strings.Join(lines, "\n")
}

func shortDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}
