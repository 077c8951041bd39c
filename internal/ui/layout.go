package ui

const railWidth = 14
const peerListWidth = 26
const cardWidth = 26
const maxGridColumns = 4
const composerMaxHeight = 6

func (m *Model) contentWidth() int {
	width := m.width - railWidth
	if width < 1 {
		width = 1
	}
	return width
}

// contentHeight is the rows between the top and bottom bars.
func (m *Model) contentHeight() int {
	height := m.height - 2
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	width := m.contentWidth()
	height := m.contentHeight()

	m.filter.Width = width - 4

	// Grid viewport sits under the filter line.
	gridHeight := height - 1
	if gridHeight < 1 {
		gridHeight = 1
	}
	m.gridView.Width = width
	m.gridView.Height = gridHeight

	// Detail panes share the area under the face tab strip.
	detailHeight := height - 1
	if detailHeight < 1 {
		detailHeight = 1
	}
	m.detailView.Width = width
	m.detailView.Height = detailHeight

	notesWidth := width / 2
	if notesWidth < 1 {
		notesWidth = 1
	}
	m.notes.SetWidth(notesWidth - 1)
	m.notes.SetHeight(detailHeight)
	previewWidth := width - notesWidth - 3 // border and padding
	if previewWidth < 1 {
		previewWidth = 1
	}
	m.preview.Width = previewWidth
	m.preview.Height = detailHeight

	// Cell editor replaces the notebook list, minus a hint line.
	m.editor.SetWidth(width - 2)
	editorHeight := detailHeight - 1
	if editorHeight < 1 {
		editorHeight = 1
	}
	m.editor.SetHeight(editorHeight)

	// Conversation pane: composer grows with its content.
	convoWidth := width - peerListWidth
	if convoWidth < 1 {
		convoWidth = 1
	}
	m.composer.SetWidth(convoWidth - 1)
	lineCount := m.composer.LineCount()
	if lineCount < 1 {
		lineCount = 1
	}
	if lineCount > composerMaxHeight {
		lineCount = composerMaxHeight
	}
	m.composer.SetHeight(lineCount)
	m.convo.Width = convoWidth
	convoHeight := height - m.composer.Height() - 1
	if convoHeight < 1 {
		convoHeight = 1
	}
	m.convo.Height = convoHeight

	m.refreshGrid()
	m.refreshDetail()
	if m.peerID != "" {
		m.refreshConvo()
	}
}
