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

const overviewNoteLines = 12

func (m *Model) handleCanvasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.detailView.SetYOffset(m.detailView.YOffset + 1)
	case "k", "up":
		m.detailView.SetYOffset(m.detailView.YOffset - 1)
	case "pgdown":
		m.detailView.SetYOffset(m.detailView.YOffset + m.detailView.Height)
	case "pgup":
		m.detailView.SetYOffset(m.detailView.YOffset - m.detailView.Height)
	case "g", "home":
		m.detailView.GotoTop()
	case "G", "end":
		m.detailView.GotoBottom()
	}
	return m, nil
}

// renderOverview is the canvas face: a read-only summary of the board in
// place of the original's freeform drawing surface.
func (m *Model) renderOverview() string {
	if m.board == nil {
		return ""
	}
	width := m.detailView.Width
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(textColor)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor)
	headStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, " "+titleStyle.Render(m.board.Name))
	lines = append(lines, " "+metaStyle.Render(fmt.Sprintf("created %s · updated %s",
		humanize.Time(time.UnixMilli(m.board.CreatedAt)),
		humanize.Time(time.UnixMilli(m.board.UpdatedAt)))))
	lines = append(lines, " "+metaStyle.Render(m.board.ID))
	lines = append(lines, "")

	lines = append(lines, " "+headStyle.Render(fmt.Sprintf("cells (%d)", len(m.cells))))
	if len(m.cells) == 0 {
		lines = append(lines, metaStyle.Render("  (none)"))
	}
	for _, cell := range m.cells {
		first := firstLine(cell.Content)
		entry := fmt.Sprintf("  %s %s", cellBadge(cell.CellType), first)
		lines = append(lines, truncateLine(entry, width-1))
	}
	lines = append(lines, "")

	note := strings.TrimSpace(m.notes.Value())
	lines = append(lines, " "+headStyle.Render("notes"))
	if note == "" {
		lines = append(lines, metaStyle.Render("  (empty)"))
	} else {
		preview := clipLines(note, overviewNoteLines)
		rendered := renderMarkdown(preview, width-2, markdown.PreviewDialect())
		for _, line := range strings.Split(rendered, "\n") {
			lines = append(lines, "  "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func cellBadge(cellType types.CellType) string {
	switch cellType {
	case types.CellTypeCode:
		return "[code]"
	case types.CellTypeSQL:
		return "[sql] "
	default:
		return "[md]  "
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "(empty)"
	}
	return s
}

func clipLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n") + "\n…"
}
