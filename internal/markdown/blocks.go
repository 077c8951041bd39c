package markdown

import "strings"

// BlockKind classifies a parsed block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockCheckbox
	BlockQuote
	BlockSpacer
	BlockCode
)

// Block is one parsed unit of a document. Level is set for headings (1-3),
// Checked for checkbox blocks, Lang for code blocks.
type Block struct {
	Kind    BlockKind
	Level   int
	Checked bool
	Lang    string
	Text    string
}

// Parse splits src into typed blocks in one forward pass. Every line is
// accounted for: blank lines become spacer blocks, and an unterminated fence
// is flushed as a trailing code block with whatever was buffered.
func Parse(src string, d Dialect) []Block {
	lines := strings.Split(src, "\n")
	blocks := make([]Block, 0, len(lines))

	inFence := false
	fenceLang := ""
	var fenceBuf []string

	for _, line := range lines {
		if lang, ok := parseFence(line); ok {
			if inFence {
				blocks = append(blocks, Block{
					Kind: BlockCode,
					Lang: fenceLang,
					Text: strings.Join(fenceBuf, "\n"),
				})
				inFence = false
				fenceBuf = nil
				continue
			}
			inFence = true
			fenceLang = lang
			continue
		}

		if inFence {
			fenceBuf = append(fenceBuf, line)
			continue
		}

		blocks = append(blocks, classifyLine(line, d))
	}

	if inFence {
		blocks = append(blocks, Block{
			Kind: BlockCode,
			Lang: fenceLang,
			Text: strings.Join(fenceBuf, "\n"),
		})
	}

	return blocks
}

func classifyLine(line string, d Dialect) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: BlockHeading, Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: BlockHeading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: BlockHeading, Level: 1, Text: line[2:]}
	}

	if d.Checkboxes {
		if text, checked, ok := parseCheckbox(line); ok {
			return Block{Kind: BlockCheckbox, Checked: checked, Text: text}
		}
	}

	switch {
	case strings.HasPrefix(line, "- "):
		return Block{Kind: BlockBullet, Text: line[2:]}
	case strings.HasPrefix(line, "* "):
		return Block{Kind: BlockBullet, Text: line[2:]}
	case strings.HasPrefix(line, "> "):
		return Block{Kind: BlockQuote, Text: line[2:]}
	case strings.TrimSpace(line) == "":
		return Block{Kind: BlockSpacer}
	}

	return Block{Kind: BlockParagraph, Text: line}
}

// parseFence reports whether line is a code fence and returns its language
// tag. Any trailing text after the backticks is the tag; closing fences
// carry no tag worth keeping, the caller discards it.
func parseFence(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "```") {
		return "", false
	}

	rest := strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
	if rest == "" {
		return "", true
	}

	parts := strings.Fields(rest)
	return parts[0], true
}

func parseCheckbox(line string) (string, bool, bool) {
	for _, marker := range []string{"- [ ] ", "- [x] ", "- [X] "} {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):], marker != "- [ ] ", true
		}
	}
	// A bare checkbox with no trailing text still counts.
	switch line {
	case "- [ ]":
		return "", false, true
	case "- [x]", "- [X]":
		return "", true, true
	}
	return "", false, false
}
