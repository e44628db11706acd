package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON logger tagged with the service name and installs it as
// the slog default.
func New(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(handler).With("service", service)
	slog.SetDefault(log)
	return log
}
