// Package logging configures the default slog logger.
package logging

import (
	"io"
	"log/slog"
)

// Init installs the default logger. With debug set, debug-level text logs
// go to w; otherwise logs are discarded.
func Init(w io.Writer, debug bool) *slog.Logger {
	var handler slog.Handler = slog.DiscardHandler
	if debug {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
