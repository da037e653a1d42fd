// Package cli implements the reflowtrace command-line tool.
//
// reflowtrace loads a YAML scene description, builds the node tree with
// trace components attached, runs the rebuild engine, and prints the
// resolved layout roots and the ordered four-pass invocation trace. It is a
// debugging aid for authors of layout components: it shows exactly which
// subtree a dirty mark rebuilds and in what order the engine calls into the
// capability contracts.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// CLI holds the shared state for all commands.
type CLI struct {
	logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing human output to out and logs to logw.
func New(out, logw io.Writer) *CLI {
	return &CLI{
		out: out,
		logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

// SetVerbose switches the logger to debug level.
func (c *CLI) SetVerbose(verbose bool) {
	if verbose {
		c.logger.SetLevel(log.DebugLevel)
	} else {
		c.logger.SetLevel(log.InfoLevel)
	}
}
