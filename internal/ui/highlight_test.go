package ui

import (
	"testing"
)

func TestHighlightCodeNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	code := "package main\n\nfunc main() {}"
	if got := highlightCode(code, "go"); got != code {
		t.Errorf("NO_COLOR should return input unchanged, got %q", got)
	}
}

func TestHighlightCodeEmpty(t *testing.T) {
	if got := highlightCode("", "go"); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}

func TestResolveLexerKnownLanguage(t *testing.T) {
	lexer := resolveLexer("package main", "go")
	if lexer == nil {
		t.Fatal("nil lexer for known language")
	}
}

func TestResolveLexerFallsBack(t *testing.T) {
	for _, lang := range []string{"", "plain", "no-such-language-xyz"} {
		if lexer := resolveLexer("some plain text", lang); lexer == nil {
			t.Errorf("lang %q: nil lexer, want fallback", lang)
		}
	}
}

func TestHighlightCodePreservesLineCount(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	code := "SELECT id,\n       name\nFROM boards;"
	got := highlightCode(code, "sql")
	if got != code {
		t.Errorf("multiline input changed: %q", got)
	}
}
