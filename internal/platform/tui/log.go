package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped stderr logger tagged with prefix.
func NewLogger(prefix string) *log.Logger {
	return newLogger(os.Stderr, prefix)
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
