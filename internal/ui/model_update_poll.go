package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/block-xaero/cyan/internal/types"
)

func (m *Model) handlePollMsg(msg pollMsg) (tea.Model, tea.Cmd) {
	m.cards = msg.cards
	m.peers = msg.peers
	m.counters = msg.counters
	m.lastRefresh = time.Now()
	m.applyBoardOrder()
	if m.peerIndex >= len(m.peers) {
		m.peerIndex = len(m.peers) - 1
	}
	if m.peerIndex < 0 {
		m.peerIndex = 0
	}
	if msg.dirty {
		m.reloadOpenBoard()
	}
	return m, m.pollCmd()
}

// reloadOpenBoard re-reads the open board after an external process wrote
// the data directory. Active editors keep their buffers; only passive
// panes refresh.
func (m *Model) reloadOpenBoard() {
	if m.view != viewBoard || m.boardID == "" || m.editing {
		return
	}
	board, err := m.node.Board(m.boardID)
	if err != nil {
		m.status = err.Error()
		return
	}
	if board == nil {
		m.closeBoard()
		return
	}
	m.board = board
	m.face = board.Face
	if m.face != types.FaceNotes {
		cells, err := m.node.Cells(m.boardID)
		if err == nil {
			m.cells = cells
			if m.cellIndex >= len(m.cells) {
				m.cellIndex = len(m.cells) - 1
			}
			if m.cellIndex < 0 {
				m.cellIndex = 0
			}
		}
	}
	m.refreshDetail()
}

func (m *Model) handleConvoPollMsg(msg convoPollMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.convoGen || msg.peerID != m.peerID || m.peerID == "" {
		return m, nil // conversation closed or reopened since this tick armed
	}
	if !msg.ok {
		return m, m.convoPollCmd()
	}

	newest := ""
	if len(msg.messages) > 0 {
		newest = msg.messages[len(msg.messages)-1].ID
	}
	arrived := newest != "" && newest != m.lastMsgID &&
		msg.messages[len(msg.messages)-1].Direction == types.DMIn

	m.messages = msg.messages
	m.lastMsgID = newest

	cmds := []tea.Cmd{m.convoPollCmd()}
	if arrived {
		m.refreshConvo()
		if m.view == viewDMs {
			if err := m.node.MarkRead(m.peerID); err != nil {
				m.status = err.Error()
			}
			m.scrollGen++
			cmds = append(cmds, m.scrollBottomCmd())
		} else {
			notifyDM(m.peerName, msg.messages[len(msg.messages)-1].Body)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleScrollBottomMsg(msg scrollBottomMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.scrollGen {
		return m, nil
	}
	m.convo.GotoBottom()
	return m, nil
}
