package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/block-xaero/cyan/internal/types"
)

// openBoard loads a board and enters the detail view on its persisted face.
func (m *Model) openBoard(id string) tea.Cmd {
	board, err := m.node.Board(id)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	if board == nil {
		m.status = "board not found"
		return nil
	}
	cells, err := m.node.Cells(id)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	note, err := m.node.Note(id)
	if err != nil {
		m.status = err.Error()
		return nil
	}

	m.view = viewBoard
	m.boardID = id
	m.board = board
	m.face = board.Face
	m.cells = cells
	m.cellIndex = 0
	m.editing = false
	m.notes.SetValue(note.Content)
	m.notesDirty = false
	m.detailView.SetYOffset(0)
	m.resize()
	if m.face == types.FaceNotes {
		return m.notes.Focus()
	}
	return nil
}

func (m *Model) closeBoard() {
	m.view = viewBoards
	m.boardID = ""
	m.board = nil
	m.cells = nil
	m.editing = false
	m.editor.Blur()
	m.notes.Blur()
	m.notesDirty = false
}

// switchFace persists the face immediately, the way the original UI
// pushed mode changes straight through its native boundary.
func (m *Model) switchFace(face types.Face) tea.Cmd {
	if m.boardID == "" || face == m.face {
		return nil
	}
	if err := m.node.SetFace(m.boardID, face); err != nil {
		m.status = err.Error()
		return nil
	}
	m.face = face
	if m.board != nil {
		m.board.Face = face
	}
	m.editing = false
	m.editor.Blur()
	m.detailView.SetYOffset(0)
	m.resize()
	if face == types.FaceNotes {
		return m.notes.Focus()
	}
	m.notes.Blur()
	return nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleCellEditorKeys(msg)
	}
	if m.face == types.FaceNotes && m.notes.Focused() {
		return m.handleNotesKeys(msg)
	}

	switch msg.String() {
	case "esc":
		m.closeBoard()
		return m, nil
	case "q":
		return m, tea.Quit
	case "1":
		return m, m.switchFace(types.FaceCanvas)
	case "2":
		return m, m.switchFace(types.FaceNotebook)
	case "3":
		return m, m.switchFace(types.FaceNotes)
	case "m":
		m.openDMs()
		return m, nil
	}

	switch m.face {
	case types.FaceCanvas:
		return m.handleCanvasKeys(msg)
	case types.FaceNotebook:
		return m.handleNotebookKeys(msg)
	case types.FaceNotes:
		// notes blurred: enter or i resumes editing
		if msg.String() == "enter" || msg.String() == "i" {
			return m, m.notes.Focus()
		}
	}
	return m, nil
}

// refreshDetail re-renders the open board's passive panes.
func (m *Model) refreshDetail() {
	if m.boardID == "" {
		return
	}
	switch m.face {
	case types.FaceCanvas:
		m.detailView.SetContent(m.renderOverview())
	case types.FaceNotebook:
		m.detailView.SetContent(m.renderCellList())
	case types.FaceNotes:
		m.refreshPreview()
	}
}

func (m *Model) renderDetail() string {
	width := m.contentWidth()
	tabs := m.renderFaceTabs()

	var body string
	switch {
	case m.editing:
		body = m.renderCellEditor()
	case m.face == types.FaceNotes:
		body = m.renderNotesSplit()
	default:
		body = m.detailView.View()
	}

	return lipgloss.NewStyle().Width(width).Height(m.contentHeight()).Render(
		lipgloss.JoinVertical(lipgloss.Left, tabs, body))
}

func (m *Model) renderFaceTabs() string {
	activeStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true).Underline(true)
	idleStyle := lipgloss.NewStyle().Foreground(dimColor)
	hoverStyle := lipgloss.NewStyle().Foreground(textColor)

	tabs := make([]string, 0, 3)
	for _, face := range []types.Face{types.FaceCanvas, types.FaceNotebook, types.FaceNotes} {
		label := faceGlyph(face) + " " + string(face)
		style := idleStyle
		if face == m.face {
			style = activeStyle
		} else if m.hoverID == zoneTab+string(face) {
			style = hoverStyle
		}
		tabs = append(tabs, m.zoneManager.Mark(zoneTab+string(face), style.Render(label)))
	}
	return " " + tabs[0] + "  " + tabs[1] + "  " + tabs[2]
}
