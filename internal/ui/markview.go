package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/block-xaero/cyan/internal/markdown"
)

// renderMarkdown renders src at the given width through the shared
// block/inline parser. The dialect decides checkbox and link handling,
// so the conversation and the notes preview stay on one code path.
func renderMarkdown(src string, width int, d markdown.Dialect) string {
	blocks := markdown.Parse(src, d)
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines = append(lines, renderBlock(block, width, d))
	}
	return strings.Join(lines, "\n")
}

func renderBlock(block markdown.Block, width int, d markdown.Dialect) string {
	switch block.Kind {
	case markdown.BlockSpacer:
		return ""
	case markdown.BlockCode:
		return renderCodeBlock(block.Text, block.Lang)
	case markdown.BlockHeading:
		return headingStyle(block.Level).Render(renderSpans(markdown.ParseInline(block.Text, d)))
	case markdown.BlockBullet:
		return wrapTo("• "+renderSpans(markdown.ParseInline(block.Text, d)), width)
	case markdown.BlockCheckbox:
		box := "☐"
		if block.Checked {
			box = "☑"
		}
		return wrapTo(box+" "+renderSpans(markdown.ParseInline(block.Text, d)), width)
	case markdown.BlockQuote:
		return quoteStyle.Render("│ ") + quoteStyle.Render(renderSpans(markdown.ParseInline(block.Text, d)))
	default:
		return wrapTo(renderSpans(markdown.ParseInline(block.Text, d)), width)
	}
}

func renderSpans(spans []markdown.Span) string {
	var out strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case markdown.SpanCode:
			out.WriteString(inlineCodeStyle.Render(span.Text))
		case markdown.SpanBold:
			out.WriteString(boldStyle.Render(span.Text))
		case markdown.SpanItalic:
			out.WriteString(italicStyle.Render(span.Text))
		case markdown.SpanLink:
			// URL stays on the span but is not activated
			out.WriteString(linkStyle.Render(span.Text))
		default:
			out.WriteString(span.Text)
		}
	}
	return out.String()
}

// renderCodeBlock highlights fenced code behind a left border. Untagged
// fences run through content detection for a lexer hint.
func renderCodeBlock(code, lang string) string {
	if lang == "" {
		lang = markdown.Detect(code)
	}
	body := highlightCode(code, lang)
	label := lipgloss.NewStyle().Foreground(metaColor).Render(lang)
	borderStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(metaColor).
		PaddingLeft(1)
	return borderStyle.Render(label + "\n" + body)
}

func wrapTo(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}
