// Package trace provides optional debug logging for the layout engine.
//
// When the REFLOW_DEBUG environment variable is set to a file path (or the
// literal "stderr"), messages are written there at debug level. Otherwise
// logging is a no-op.
package trace

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func init() {
	dest := os.Getenv("REFLOW_DEBUG")
	if dest == "" {
		return
	}
	w := os.Stderr
	if dest != "stderr" {
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		w = f
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
		Prefix:          "reflow",
	})
}

// Logf writes a formatted debug message when logging is enabled.
func Logf(format string, args ...any) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}
