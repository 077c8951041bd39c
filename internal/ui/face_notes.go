package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/block-xaero/cyan/internal/markdown"
)

// handleNotesKeys runs while the notes buffer is focused. esc drops focus
// so the face tabs become reachable again; ctrl+s persists.
func (m *Model) handleNotesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.notes.Blur()
		return m, nil
	case tea.KeyCtrlS:
		m.saveNotes()
		return m, nil
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	m.notesDirty = true
	m.refreshPreview()
	return m, cmd
}

func (m *Model) saveNotes() {
	if m.boardID == "" {
		return
	}
	if _, err := m.node.SaveNote(m.boardID, m.notes.Value()); err != nil {
		m.status = err.Error()
		return
	}
	m.notesDirty = false
	m.status = "notes saved"
}

// refreshPreview re-renders the right pane from the editor buffer. The
// preview uses the full dialect: checkboxes and links enabled.
func (m *Model) refreshPreview() {
	width := m.preview.Width - 2
	if width < 1 {
		width = 1
	}
	m.preview.SetContent(renderMarkdown(m.notes.Value(), width, markdown.PreviewDialect()))
}

func (m *Model) renderNotesSplit() string {
	editorStyle := lipgloss.NewStyle().Width(m.notes.Width() + 1)
	previewStyle := lipgloss.NewStyle().
		Width(m.preview.Width).
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(metaColor).
		PaddingLeft(1)

	editor := editorStyle.Render(m.notes.View())
	preview := previewStyle.Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
}
