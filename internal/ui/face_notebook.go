package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/block-xaero/cyan/internal/markdown"
	"github.com/block-xaero/cyan/internal/types"
)

func (m *Model) handleNotebookKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCellSelection(1)
	case "k", "up":
		m.moveCellSelection(-1)
	case "enter":
		return m, m.startCellEdit()
	case "a":
		m.appendCell()
	case "d":
		m.deleteSelectedCell()
	case "J":
		m.moveSelectedCell(1)
	case "K":
		m.moveSelectedCell(-1)
	case "y":
		m.copySelectedCell()
	}
	return m, nil
}

func (m *Model) handleCellEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.editor.Blur()
		m.refreshDetail()
		return m, nil
	case tea.KeyCtrlS:
		m.saveEditedCell()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) moveCellSelection(delta int) {
	if len(m.cells) == 0 {
		return
	}
	m.cellIndex += delta
	if m.cellIndex < 0 {
		m.cellIndex = 0
	}
	if m.cellIndex >= len(m.cells) {
		m.cellIndex = len(m.cells) - 1
	}
	m.refreshDetail()
	m.ensureCellVisible()
}

func (m *Model) startCellEdit() tea.Cmd {
	if m.cellIndex < 0 || m.cellIndex >= len(m.cells) {
		return nil
	}
	m.editor.SetValue(m.cells[m.cellIndex].Content)
	m.editor.CursorEnd()
	m.editing = true
	return m.editor.Focus()
}

// saveEditedCell writes the editor buffer back through the facade,
// re-detecting the cell type from the new content.
func (m *Model) saveEditedCell() {
	if m.cellIndex < 0 || m.cellIndex >= len(m.cells) {
		return
	}
	cell := m.cells[m.cellIndex]
	cell.Content = m.editor.Value()
	cell.CellType = types.CellType(markdown.CellTypeFor(markdown.Detect(cell.Content)))
	m.cells[m.cellIndex] = cell
	if err := m.node.SaveCells(m.boardID, m.cells); err != nil {
		m.status = err.Error()
		return
	}
	m.editing = false
	m.editor.Blur()
	m.status = "saved"
	m.refreshDetail()
}

func (m *Model) appendCell() {
	cell, err := m.node.AppendCell(m.boardID, types.CellTypeMarkdown, "")
	if err != nil {
		m.status = err.Error()
		return
	}
	m.cells = append(m.cells, cell)
	m.cellIndex = len(m.cells) - 1
	m.refreshDetail()
	m.ensureCellVisible()
}

func (m *Model) deleteSelectedCell() {
	if m.cellIndex < 0 || m.cellIndex >= len(m.cells) {
		return
	}
	if err := m.node.DeleteCell(m.boardID, m.cells[m.cellIndex].ID); err != nil {
		m.status = err.Error()
		return
	}
	m.cells = append(m.cells[:m.cellIndex], m.cells[m.cellIndex+1:]...)
	if m.cellIndex >= len(m.cells) {
		m.cellIndex = len(m.cells) - 1
	}
	if m.cellIndex < 0 {
		m.cellIndex = 0
	}
	m.refreshDetail()
}

func (m *Model) moveSelectedCell(delta int) {
	from := m.cellIndex
	to := from + delta
	if from < 0 || from >= len(m.cells) || to < 0 || to >= len(m.cells) {
		return
	}
	if err := m.node.ReorderCells(m.boardID, from, to); err != nil {
		m.status = err.Error()
		return
	}
	m.cells[from], m.cells[to] = m.cells[to], m.cells[from]
	m.cellIndex = to
	m.refreshDetail()
	m.ensureCellVisible()
}

func (m *Model) copySelectedCell() {
	if m.cellIndex < 0 || m.cellIndex >= len(m.cells) {
		return
	}
	if err := copyToClipboard(m.cells[m.cellIndex].Content); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "copied"
}

// renderCellList renders the notebook face and records per-cell line
// offsets so selection changes can scroll the list into view.
func (m *Model) renderCellList() string {
	width := m.detailView.Width
	m.cellOffsets = m.cellOffsets[:0]
	m.cellHeights = m.cellHeights[:0]

	if len(m.cells) == 0 {
		return lipgloss.NewStyle().Foreground(dimColor).Render(" (no cells — a to add)")
	}

	headerStyle := lipgloss.NewStyle().Foreground(metaColor)
	selectedHeader := lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	var parts []string
	offset := 0
	for i, cell := range m.cells {
		style := headerStyle
		marker := " "
		if i == m.cellIndex {
			style = selectedHeader
			marker = "▌"
		}
		header := style.Render(fmt.Sprintf("%s %d · %s", marker, i+1, cell.CellType))
		body := m.renderCellBody(cell, width-2)
		block := m.zoneManager.Mark(zoneCell+cell.ID, header+"\n"+body)

		height := lipgloss.Height(block) + 1 // trailing blank line
		m.cellOffsets = append(m.cellOffsets, offset)
		m.cellHeights = append(m.cellHeights, height)
		offset += height

		parts = append(parts, block, "")
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderCellBody(cell types.Cell, width int) string {
	content := cell.Content
	if strings.TrimSpace(content) == "" {
		return lipgloss.NewStyle().Foreground(dimColor).Render("  (empty)")
	}
	switch cell.CellType {
	case types.CellTypeMarkdown:
		return indentLines(renderMarkdown(content, width, markdown.PreviewDialect()), "  ")
	case types.CellTypeSQL:
		return indentLines(highlightCode(content, "sql"), "  ")
	default:
		return indentLines(highlightCode(content, markdown.Detect(content)), "  ")
	}
}

func (m *Model) ensureCellVisible() {
	if m.cellIndex < 0 || m.cellIndex >= len(m.cellOffsets) {
		return
	}
	top := m.cellOffsets[m.cellIndex]
	bottom := top + m.cellHeights[m.cellIndex]
	if top < m.detailView.YOffset {
		m.detailView.SetYOffset(top)
	} else if bottom > m.detailView.YOffset+m.detailView.Height {
		m.detailView.SetYOffset(bottom - m.detailView.Height)
	}
}

func (m *Model) renderCellEditor() string {
	hint := lipgloss.NewStyle().Foreground(metaColor).Render(" ctrl+s save · esc cancel")
	return lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), hint)
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
