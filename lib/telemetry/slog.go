package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs a text handler writing to stderr as the default
// logger. stdout is left alone since it may carry program output.
func InitSlog(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
