package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the process logger: JSON in production, text otherwise.
func NewLogger(env string, w io.Writer) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// SetupFileLogging points the default logger at path and returns the file to close.
// With an empty path logging is discarded, since the terminal belongs to the widget.
func SetupFileLogging(env, path string) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(NewLogger(env, f))
	return f, nil
}
