package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateGUIDShape(t *testing.T) {
	guid, err := GenerateGUID("brd-")
	if err != nil {
		t.Fatalf("GenerateGUID: %v", err)
	}
	if !strings.HasPrefix(guid, "brd-") {
		t.Fatalf("expected brd- prefix, got %q", guid)
	}
	suffix := strings.TrimPrefix(guid, "brd-")
	if len(suffix) != 8 {
		t.Fatalf("expected 8-char suffix, got %q", suffix)
	}
	for _, c := range suffix {
		if !strings.ContainsRune(guidAlphabet, c) {
			t.Fatalf("suffix char %q outside alphabet", c)
		}
	}
}

func TestGenerateGUIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		guid, err := GenerateGUID("cel")
		if err != nil {
			t.Fatalf("GenerateGUID: %v", err)
		}
		if seen[guid] {
			t.Fatalf("duplicate guid %q", guid)
		}
		seen[guid] = true
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdef-123456", 6); got != "abcdef" {
		t.Errorf("got %q", got)
	}
	if got := ShortID("ab", 8); got != "ab" {
		t.Errorf("short input should pass through, got %q", got)
	}
	if got := ShortID("abc", 0); got != "" {
		t.Errorf("zero length should be empty, got %q", got)
	}
}

func TestResolveDataDirRequiresInit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CYAN_DIR", dir)

	if _, err := ResolveDataDir(""); err == nil {
		t.Fatal("expected error before init")
	}

	if _, err := InitDataDir("", false); err != nil {
		t.Fatalf("InitDataDir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DBFileName), []byte{}, 0o644); err != nil {
		t.Fatalf("seed db file: %v", err)
	}

	resolved, err := ResolveDataDir("")
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if resolved != dir {
		t.Fatalf("expected %q, got %q", dir, resolved)
	}
}
