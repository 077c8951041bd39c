package ui

import (
	"os"
	"time"
)

// debugLog appends interaction traces to /tmp/cyan-debug.log when
// CYAN_DEBUG is set. For chasing mouse and layout issues that only
// reproduce inside a live terminal.
func debugLog(msg string) {
	if os.Getenv("CYAN_DEBUG") == "" {
		return
	}
	f, err := os.OpenFile("/tmp/cyan-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString(time.Now().Format("15:04:05.000") + " " + msg + "\n")
}
