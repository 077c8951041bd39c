package ui

import "testing"

func TestApplyThemeKnownAndUnknown(t *testing.T) {
	t.Cleanup(func() { accentColor = themes["cyan"] })

	applyTheme("violet")
	if accentColor != themes["violet"] {
		t.Fatalf("expected violet accent, got %v", accentColor)
	}

	applyTheme("no-such-theme")
	if accentColor != themes["violet"] {
		t.Fatal("unknown theme must keep the current accent")
	}

	applyTheme("  Moss ")
	if accentColor != themes["moss"] {
		t.Fatal("theme names should match case-insensitively")
	}
}

func TestGroupColorStable(t *testing.T) {
	first := groupColor("personal", "")
	for i := 0; i < 5; i++ {
		if groupColor("personal", "") != first {
			t.Fatal("hashed group color must be stable")
		}
	}
	if got := groupColor("ignored", "#ff00ff"); got != "#ff00ff" {
		t.Fatalf("stored color must win, got %v", got)
	}
}
