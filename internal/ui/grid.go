package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/block-xaero/cyan/internal/core"
)

// gridColumns derives the masonry column count from the available width.
func gridColumns(width int) int {
	columns := width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}
	if columns > maxGridColumns {
		columns = maxGridColumns
	}
	return columns
}

// masonryLayout assigns each card, in input order, to the column with the
// smallest accumulated height. Ties go to the leftmost column, which makes
// placement deterministic.
func masonryLayout(heights []int, columns int) [][]int {
	if columns < 1 {
		columns = 1
	}
	colHeights := make([]int, columns)
	layout := make([][]int, columns)
	for i, h := range heights {
		col := 0
		for c := 1; c < columns; c++ {
			if colHeights[c] < colHeights[col] {
				col = c
			}
		}
		layout[col] = append(layout[col], i)
		colHeights[col] += h
	}
	return layout
}

func (m *Model) openGrid() {
	if m.view == viewBoard {
		m.closeBoard()
	}
	m.view = viewBoards
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterActive {
		switch msg.Type {
		case tea.KeyEsc:
			m.filterActive = false
			m.filter.Reset()
			m.filter.Blur()
			m.applyBoardOrder()
			return m, nil
		case tea.KeyEnter:
			m.filterActive = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyBoardOrder()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.filterActive = true
		return m, m.filter.Focus()
	case "s":
		m.sortKey = core.NextSortKey(m.sortKey)
		m.status = "sort: " + core.SortKeyLabel(m.sortKey)
		m.applyBoardOrder()
	case "j", "down":
		m.moveGridSelection(1)
	case "k", "up":
		m.moveGridSelection(-1)
	case "g", "home":
		m.gridIndex = 0
		m.refreshGrid()
		m.gridView.GotoTop()
	case "G", "end":
		m.gridIndex = len(m.visible) - 1
		if m.gridIndex < 0 {
			m.gridIndex = 0
		}
		m.refreshGrid()
		m.gridView.GotoBottom()
	case "m":
		m.openDMs()
	case "enter":
		if card := m.selectedCard(); card != nil {
			return m, m.openBoard(card.ID)
		}
	}
	return m, nil
}

func (m *Model) moveGridSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.gridIndex += delta
	if m.gridIndex < 0 {
		m.gridIndex = 0
	}
	if m.gridIndex >= len(m.visible) {
		m.gridIndex = len(m.visible) - 1
	}
	m.refreshGrid()
	m.ensureCardVisible()
}

// refreshGrid re-renders the masonry layout into the grid viewport and
// records per-card line offsets for scroll-into-view.
func (m *Model) refreshGrid() {
	width := m.gridView.Width
	if width <= 0 {
		width = m.contentWidth()
	}
	m.cardOffsets = m.cardOffsets[:0]
	m.cardHeights = m.cardHeights[:0]

	if len(m.visible) == 0 {
		empty := " (no boards)"
		if m.filter.Value() != "" {
			empty = " (no matches)"
		}
		m.gridView.SetContent(lipgloss.NewStyle().Foreground(dimColor).Render(empty))
		return
	}

	rendered := make([]string, len(m.visible))
	heights := make([]int, len(m.visible))
	for i := range m.visible {
		rendered[i] = m.renderCard(i)
		heights[i] = lipgloss.Height(rendered[i])
	}

	layout := masonryLayout(heights, gridColumns(width))
	m.cardOffsets = make([]int, len(m.visible))
	m.cardHeights = heights

	columnViews := make([]string, 0, len(layout))
	for _, indices := range layout {
		running := 0
		cards := make([]string, 0, len(indices))
		for _, idx := range indices {
			m.cardOffsets[idx] = running
			running += heights[idx]
			cards = append(cards, rendered[idx])
		}
		columnViews = append(columnViews, lipgloss.JoinVertical(lipgloss.Left, cards...))
	}
	m.gridView.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, columnViews...))
}

func (m *Model) ensureCardVisible() {
	if m.gridIndex < 0 || m.gridIndex >= len(m.cardOffsets) {
		return
	}
	top := m.cardOffsets[m.gridIndex]
	bottom := top + m.cardHeights[m.gridIndex]
	if top < m.gridView.YOffset {
		m.gridView.SetYOffset(top)
	} else if bottom > m.gridView.YOffset+m.gridView.Height {
		m.gridView.SetYOffset(bottom - m.gridView.Height)
	}
}

func (m *Model) renderGrid() string {
	return lipgloss.NewStyle().Width(m.contentWidth()).Height(m.contentHeight()).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.renderFilterLine(), m.gridView.View()))
}

func (m *Model) renderFilterLine() string {
	if m.filterActive || m.filter.Value() != "" {
		return m.filter.View()
	}
	hint := " / filter · s sort: " + core.SortKeyLabel(m.sortKey)
	return lipgloss.NewStyle().Foreground(metaColor).Render(hint)
}

func (m *Model) renderCard(index int) string {
	card := m.visible[index]
	selected := index == m.gridIndex
	hovered := m.hoverID == zoneCard+card.ID
	color := groupColor(card.GroupName, card.GroupColor)

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(textColor)
	pathStyle := lipgloss.NewStyle().Foreground(color)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor)

	inner := cardWidth - 4
	if inner < 1 {
		inner = 1
	}
	name := truncateLine(card.Name, inner)
	path := truncateLine(card.GroupName+" • "+card.WorkspaceName, inner)
	when := humanize.Time(time.UnixMilli(card.UpdatedAt))
	meta := truncateLine(faceGlyph(card.Face)+" "+string(card.Face)+" · "+when, inner)

	body := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(name),
		pathStyle.Render(path),
		metaStyle.Render(meta),
	)

	border := lipgloss.RoundedBorder()
	borderColor := metaColor
	if selected {
		border = lipgloss.ThickBorder()
		borderColor = color
	} else if hovered {
		borderColor = color
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth - 2).
		Render(body)

	return m.zoneManager.Mark(zoneCard+card.ID, box)
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
