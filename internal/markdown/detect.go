package markdown

import (
	"regexp"
	"strings"
)

// File types returned by Detect. The names double as chroma lexer hints.
const (
	TypeJSON     = "json"
	TypeYAML     = "yaml"
	TypeMarkdown = "markdown"
	TypeRust     = "rust"
	TypeGo       = "go"
	TypePython   = "python"
	TypeSQL      = "sql"
	TypePlain    = "plain"
)

var (
	yamlKeyRe   = regexp.MustCompile(`(?m)^[ \t]*[\w-]+:(\s|$)`)
	mdHeadingRe = regexp.MustCompile(`(?m)^#{1,3} `)
	mdLinkRe    = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
	sqlRe       = regexp.MustCompile(`(?i)\b(select\s+[\s\S]+?\s+from\s|create\s+table\s|insert\s+into\s|update\s+\w+\s+set\s|delete\s+from\s|alter\s+table\s)`)
)

// Detect guesses the content type of a text blob using ordered heuristics;
// the first match wins and empty input is plain text.
func Detect(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return TypePlain
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return TypeJSON
	}

	if strings.HasPrefix(trimmed, "---") {
		return TypeYAML
	}
	if (strings.Contains(content, "apiVersion:") || strings.Contains(content, "kind:")) &&
		yamlKeyRe.MatchString(content) {
		return TypeYAML
	}

	if isMarkdown(content) {
		return TypeMarkdown
	}

	if strings.Contains(content, "fn ") && strings.Contains(content, "->") {
		return TypeRust
	}
	if strings.Contains(content, "func ") || strings.Contains(content, "package main") {
		return TypeGo
	}
	if strings.Contains(content, "def ") || strings.Contains(content, "import ") {
		return TypePython
	}

	if sqlRe.MatchString(content) {
		return TypeSQL
	}

	return TypePlain
}

func isMarkdown(content string) bool {
	if strings.Contains(content, "```") {
		return true
	}
	if mdHeadingRe.MatchString(content) {
		return true
	}
	if strings.Contains(content, "- [ ]") || strings.Contains(content, "- [x]") {
		return true
	}
	if strings.Contains(content, "**") {
		return true
	}
	return mdLinkRe.MatchString(content)
}

// CellTypeFor maps a detected file type to the notebook cell type that best
// presents it.
func CellTypeFor(detected string) string {
	switch detected {
	case TypeSQL:
		return "sql"
	case TypeMarkdown, TypePlain:
		return "markdown"
	default:
		return "code"
	}
}
