package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/block-xaero/cyan/internal/types"
)

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Shift {
		return m, nil
	}
	if msg.Action == tea.MouseActionMotion {
		m.updateHover(msg)
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if handled, cmd := m.handleMouseClick(msg); handled {
			return m, cmd
		}
	}
	if msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.view {
	case viewBoards:
		m.gridView, cmd = m.gridView.Update(msg)
	case viewBoard:
		if m.face == types.FaceNotes {
			m.preview, cmd = m.preview.Update(msg)
		} else if !m.editing {
			m.detailView, cmd = m.detailView.Update(msg)
		}
	case viewDMs:
		if m.peerID != "" {
			m.convo, cmd = m.convo.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) handleMouseClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	debugLog(fmt.Sprintf("click x=%d y=%d view=%d", msg.X, msg.Y, m.view))

	if m.zoneManager.Get(zoneRailBoards).InBounds(msg) {
		m.openGrid()
		return true, nil
	}
	if m.zoneManager.Get(zoneRailDMs).InBounds(msg) {
		m.openDMs()
		return true, nil
	}

	switch m.view {
	case viewBoards:
		for i := range m.visible {
			if m.zoneManager.Get(zoneCard + m.visible[i].ID).InBounds(msg) {
				m.gridIndex = i
				return true, m.openBoard(m.visible[i].ID)
			}
		}
	case viewBoard:
		for _, face := range []types.Face{types.FaceCanvas, types.FaceNotebook, types.FaceNotes} {
			if m.zoneManager.Get(zoneTab + string(face)).InBounds(msg) {
				return true, m.switchFace(face)
			}
		}
		if m.face == types.FaceNotebook && !m.editing {
			for i := range m.cells {
				if m.zoneManager.Get(zoneCell + m.cells[i].ID).InBounds(msg) {
					m.cellIndex = i
					m.refreshDetail()
					m.ensureCellVisible()
					return true, nil
				}
			}
		}
	case viewDMs:
		for i := range m.peers {
			if m.zoneManager.Get(zonePeer + m.peers[i].ID).InBounds(msg) {
				m.peerIndex = i
				return true, m.openConversation(m.peers[i])
			}
		}
	}
	return false, nil
}

// updateHover tracks which zone the cursor is over so the view can
// highlight it. Only list-like zones participate.
func (m *Model) updateHover(msg tea.MouseMsg) {
	hover := ""
	switch m.view {
	case viewBoards:
		for i := range m.visible {
			id := zoneCard + m.visible[i].ID
			if m.zoneManager.Get(id).InBounds(msg) {
				hover = id
				break
			}
		}
	case viewBoard:
		for _, face := range []types.Face{types.FaceCanvas, types.FaceNotebook, types.FaceNotes} {
			id := zoneTab + string(face)
			if m.zoneManager.Get(id).InBounds(msg) {
				hover = id
				break
			}
		}
	case viewDMs:
		for i := range m.peers {
			id := zonePeer + m.peers[i].ID
			if m.zoneManager.Get(id).InBounds(msg) {
				hover = id
				break
			}
		}
	}
	if hover == m.hoverID {
		return
	}
	m.hoverID = hover
	if m.view == viewBoards {
		// Cards live inside the grid viewport, so hover changes need a re-render.
		m.refreshGrid()
	}
}
