package ui

import (
	"strings"
	"testing"

	"github.com/block-xaero/cyan/internal/markdown"
)

func TestRenderMarkdownCheckboxDialects(t *testing.T) {
	src := "- [x] done\n- [ ] todo"

	preview := renderMarkdown(src, 60, markdown.PreviewDialect())
	if !strings.Contains(preview, "☑ done") {
		t.Errorf("preview missing checked box:\n%s", preview)
	}
	if !strings.Contains(preview, "☐ todo") {
		t.Errorf("preview missing unchecked box:\n%s", preview)
	}

	chat := renderMarkdown(src, 60, markdown.ChatDialect())
	if !strings.Contains(chat, "• [x] done") {
		t.Errorf("chat should render checkbox lines as plain bullets:\n%s", chat)
	}
	if strings.Contains(chat, "☑") {
		t.Errorf("chat rendered a checkbox glyph:\n%s", chat)
	}
}

func TestRenderMarkdownLinkDialects(t *testing.T) {
	src := "see [docs](https://example.com) now"

	preview := renderMarkdown(src, 60, markdown.PreviewDialect())
	if !strings.Contains(preview, "docs") {
		t.Errorf("preview missing link text:\n%s", preview)
	}
	if strings.Contains(preview, "](https://") {
		t.Errorf("preview left link syntax literal:\n%s", preview)
	}

	chat := renderMarkdown(src, 60, markdown.ChatDialect())
	if !strings.Contains(chat, "[docs](https://example.com)") {
		t.Errorf("chat should leave link syntax literal:\n%s", chat)
	}
}

func TestRenderMarkdownHeadingAndQuote(t *testing.T) {
	out := renderMarkdown("# Title\n> quoted line", 60, markdown.PreviewDialect())
	if !strings.Contains(out, "Title") {
		t.Errorf("missing heading text:\n%s", out)
	}
	if strings.Contains(out, "# Title") {
		t.Errorf("heading marker leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "│") || !strings.Contains(out, "quoted line") {
		t.Errorf("missing quote gutter:\n%s", out)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := renderMarkdown("```go\nfmt.Println(\"hi\")\n```", 60, markdown.ChatDialect())
	if !strings.Contains(out, `fmt.Println("hi")`) {
		t.Errorf("missing code body:\n%s", out)
	}
	if !strings.Contains(out, "go") {
		t.Errorf("missing language label:\n%s", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("fence markers leaked into output:\n%s", out)
	}
}

func TestRenderMarkdownDetectsUntaggedFence(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := renderMarkdown("```\nSELECT id FROM boards;\n```", 60, markdown.ChatDialect())
	if !strings.Contains(out, "sql") {
		t.Errorf("untagged fence should carry a detected label:\n%s", out)
	}
	if !strings.Contains(out, "SELECT id FROM boards;") {
		t.Errorf("missing code body:\n%s", out)
	}
}

func TestRenderMarkdownInlineSpansConsumeMarkers(t *testing.T) {
	out := renderMarkdown("**bold** and `code` and *lean*", 60, markdown.ChatDialect())
	for _, marker := range []string{"**", "`", "*"} {
		if strings.Contains(out, marker) {
			t.Errorf("marker %q leaked into output:\n%s", marker, out)
		}
	}
	for _, word := range []string{"bold", "code", "lean", " and "} {
		if !strings.Contains(out, word) {
			t.Errorf("missing %q:\n%s", word, out)
		}
	}
}

func TestRenderMarkdownWrapsParagraphs(t *testing.T) {
	out := renderMarkdown("one two three four five six seven", 12, markdown.ChatDialect())
	if got := len(strings.Split(out, "\n")); got < 2 {
		t.Errorf("paragraph did not wrap at width 12:\n%s", out)
	}
}

func TestRenderMarkdownKeepsBlankLines(t *testing.T) {
	out := renderMarkdown("alpha\n\nbeta", 60, markdown.ChatDialect())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[1] != "" {
		t.Errorf("middle line should be blank, got %q", lines[1])
	}
}
