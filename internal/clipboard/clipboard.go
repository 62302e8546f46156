// Package clipboard wraps system clipboard access. Failures are logged and
// never fatal: a launcher that cannot reach the clipboard still shows the
// command.
package clipboard

import (
	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"
)

// Copy places text on the system clipboard and reports success.
func Copy(text string) bool {
	if err := clipboard.WriteAll(text); err != nil {
		log.WithError(err).Warn("clipboard copy failed")
		return false
	}
	return true
}

// Paste returns the current clipboard text, or "" when unavailable.
func Paste() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		log.WithError(err).Warn("clipboard paste failed")
		return ""
	}
	return text
}
