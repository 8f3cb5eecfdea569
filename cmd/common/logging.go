package common

import (
	"io"
	"log/slog"
)

// SetupLogging installs a text slog handler on w. Verbose enables debug
// output, otherwise only warnings and errors are shown.
func SetupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
