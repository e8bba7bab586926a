package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer persists artifacts into a single output directory, creating it on
// first use. Each write is independent; a failure surfaces immediately and
// never cascades into the other artifacts.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer for the given output directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// WriteAll creates the output directory if needed and writes every artifact.
func (w *Writer) WriteAll(artifacts []Artifact) error {
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return fmt.Errorf("create output directory %s: %w", w.dir, err)
	}

	for _, a := range artifacts {
		path := filepath.Join(w.dir, a.Name)
		if err := os.WriteFile(path, a.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.Name, err)
		}
		w.logger.Info("artifact written", "name", a.Name, "bytes", len(a.Body))
	}
	return nil
}
