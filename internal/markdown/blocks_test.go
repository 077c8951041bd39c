package markdown

import "testing"

func TestParseSingleFence(t *testing.T) {
	blocks := Parse("```lang\ncode\n```", ChatDialect())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockCode {
		t.Fatalf("kind: got %v", blocks[0].Kind)
	}
	if blocks[0].Lang != "lang" {
		t.Fatalf("lang: got %q", blocks[0].Lang)
	}
	if blocks[0].Text != "code" {
		t.Fatalf("text: got %q", blocks[0].Text)
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	blocks := Parse("```\nfoo", ChatDialect())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != BlockCode || blocks[0].Text != "foo" {
		t.Fatalf("expected flushed code block with %q, got kind=%v text=%q", "foo", blocks[0].Kind, blocks[0].Text)
	}
}

// TestParseAccountsForEveryLine verifies no line is silently dropped: each
// non-code line maps to exactly one block and blank lines become spacers.
func TestParseAccountsForEveryLine(t *testing.T) {
	src := "# Title\n\nfirst paragraph\n- one\n* two\n> quoted\n\nlast"
	blocks := Parse(src, ChatDialect())

	expected := []Block{
		{Kind: BlockHeading, Level: 1, Text: "Title"},
		{Kind: BlockSpacer},
		{Kind: BlockParagraph, Text: "first paragraph"},
		{Kind: BlockBullet, Text: "one"},
		{Kind: BlockBullet, Text: "two"},
		{Kind: BlockQuote, Text: "quoted"},
		{Kind: BlockSpacer},
		{Kind: BlockParagraph, Text: "last"},
	}

	if len(blocks) != len(expected) {
		t.Fatalf("expected %d blocks, got %d", len(expected), len(blocks))
	}
	for i, exp := range expected {
		if blocks[i] != exp {
			t.Errorf("block %d: expected %+v, got %+v", i, exp, blocks[i])
		}
	}
}

func TestParseHeadingLevels(t *testing.T) {
	blocks := Parse("### three\n## two\n# one", ChatDialect())
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	levels := []int{3, 2, 1}
	texts := []string{"three", "two", "one"}
	for i, b := range blocks {
		if b.Kind != BlockHeading || b.Level != levels[i] || b.Text != texts[i] {
			t.Errorf("block %d: expected heading level %d %q, got %+v", i, levels[i], texts[i], b)
		}
	}
}

// TestParseCheckboxDialects verifies the deliberate divergence between the
// two consumers: preview sees checkbox blocks, chat sees plain bullets.
func TestParseCheckboxDialects(t *testing.T) {
	src := "- [ ] open\n- [x] done"

	preview := Parse(src, PreviewDialect())
	if len(preview) != 2 {
		t.Fatalf("preview: expected 2 blocks, got %d", len(preview))
	}
	if preview[0].Kind != BlockCheckbox || preview[0].Checked || preview[0].Text != "open" {
		t.Errorf("preview block 0: got %+v", preview[0])
	}
	if preview[1].Kind != BlockCheckbox || !preview[1].Checked || preview[1].Text != "done" {
		t.Errorf("preview block 1: got %+v", preview[1])
	}

	chat := Parse(src, ChatDialect())
	if chat[0].Kind != BlockBullet || chat[0].Text != "[ ] open" {
		t.Errorf("chat block 0: expected bullet with literal marker, got %+v", chat[0])
	}
	if chat[1].Kind != BlockBullet || chat[1].Text != "[x] done" {
		t.Errorf("chat block 1: got %+v", chat[1])
	}
}

func TestParseFenceLanguageTag(t *testing.T) {
	blocks := Parse("``` go extra\nx := 1\n```", ChatDialect())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Lang != "go" {
		t.Fatalf("lang: got %q", blocks[0].Lang)
	}
}

func TestParseFenceBuffersVerbatim(t *testing.T) {
	// Markup inside a fence must not be classified.
	blocks := Parse("```\n# not a heading\n- not a bullet\n```", ChatDialect())
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "# not a heading\n- not a bullet" {
		t.Fatalf("text: got %q", blocks[0].Text)
	}
}

func TestParseEmptyInput(t *testing.T) {
	blocks := Parse("", ChatDialect())
	if len(blocks) != 1 || blocks[0].Kind != BlockSpacer {
		t.Fatalf("expected a single spacer for empty input, got %+v", blocks)
	}
}
