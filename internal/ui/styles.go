package ui

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/block-xaero/cyan/internal/types"
)

const (
	textColor    = lipgloss.Color("252")
	dimColor     = lipgloss.Color("245")
	metaColor    = lipgloss.Color("243")
	statusColor  = lipgloss.Color("245")
	selectedBg   = lipgloss.Color("236")
	barBg        = lipgloss.Color("235")
	onlineColor  = lipgloss.Color("78")
	offlineColor = lipgloss.Color("241")
	unreadColor  = lipgloss.Color("216")
	quoteColor   = lipgloss.Color("109")
	codeFg       = lipgloss.Color("216")
	codeBg       = lipgloss.Color("237")
	linkColor    = lipgloss.Color("111")
)

// themes maps a config theme name to the accent used by the rail, face
// tabs, and headings.
var themes = map[string]lipgloss.Color{
	"cyan":   lipgloss.Color("37"),
	"violet": lipgloss.Color("135"),
	"ember":  lipgloss.Color("203"),
	"moss":   lipgloss.Color("71"),
}

var accentColor = themes["cyan"]

// applyTheme switches the accent. Unknown names keep the default so a
// hand-edited config cannot produce an unstyled UI.
func applyTheme(name string) {
	if color, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		accentColor = color
	}
}

var groupPalette = []lipgloss.Color{
	lipgloss.Color("111"),
	lipgloss.Color("157"),
	lipgloss.Color("216"),
	lipgloss.Color("36"),
	lipgloss.Color("183"),
	lipgloss.Color("230"),
}

// groupColor prefers the group's stored color; groups without one hash
// into the palette so they keep the same color across runs.
func groupColor(name, stored string) lipgloss.Color {
	if trimmed := strings.TrimSpace(stored); trimmed != "" {
		return lipgloss.Color(trimmed)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	idx := h.Sum32() % uint32(len(groupPalette))
	return groupPalette[idx]
}

func headingStyle(level int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	if level == 1 {
		style = style.Underline(true)
	}
	return style
}

var (
	inlineCodeStyle = lipgloss.NewStyle().Foreground(codeFg).Background(codeBg)
	boldStyle       = lipgloss.NewStyle().Bold(true)
	italicStyle     = lipgloss.NewStyle().Italic(true)
	linkStyle       = lipgloss.NewStyle().Foreground(linkColor).Underline(true)
	quoteStyle      = lipgloss.NewStyle().Foreground(quoteColor)
)

func faceGlyph(face types.Face) string {
	switch face {
	case types.FaceNotebook:
		return "▤"
	case types.FaceNotes:
		return "✎"
	default:
		return "▦"
	}
}
