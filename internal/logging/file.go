package logging

import (
	"log/slog"
	"os"

	"github.com/thoreinstein/ado/internal/errors"
)

// FileHandler writes redacted JSON records to an append-only log file.
type FileHandler struct {
	slog.Handler
	file *os.File
}

// OpenFile opens path for appending, creating it with mode 0600, and returns
// a handler writing records at or above level.
func OpenFile(path string, level slog.Leveler) (*FileHandler, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: RedactAttr}
	return &FileHandler{Handler: slog.NewJSONHandler(f, opts), file: f}, nil
}

// Close closes the log file.
func (h *FileHandler) Close() error {
	return errors.Wrap(h.file.Close(), "closing log file")
}
