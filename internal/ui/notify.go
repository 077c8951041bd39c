package ui

import (
	"strings"

	"github.com/gen2brain/beeep"
)

// notifyDM sends a desktop notification for an incoming message when the
// conversation is not on screen. Failures are ignored; notification
// support varies too much across desktops to be worth surfacing.
func notifyDM(peerName, body string) {
	title := "cyan · " + peerName
	_ = beeep.Notify(title, truncateNotification(body, 100), "")
}

func truncateNotification(s string, maxLen int) string {
	// Collapse whitespace for notification
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
