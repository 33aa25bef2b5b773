package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog.Logger tagged with the application name.
func New(app string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", app)
}
