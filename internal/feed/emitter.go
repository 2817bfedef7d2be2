package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gorilla/feeds"

	"github.com/underoot/maksugr.com/internal/domain"
)

// Emitter writes every registered format under the feeds directory.
type Emitter struct {
	registry *Registry
	dir      string
	logger   *slog.Logger
}

// NewEmitter wires the format registry with the destination directory.
func NewEmitter(registry *Registry, dir string, logger *slog.Logger) *Emitter {
	return &Emitter{registry: registry, dir: dir, logger: logger}
}

// Write serializes all formats first and only then touches the
// filesystem, so a serialization failure leaves no partial output.
// The destination directory is created when missing and existing
// files are overwritten.
func (e *Emitter) Write(f *feeds.Feed, meta domain.FeedMeta) error {
	if e.registry == nil {
		return fmt.Errorf("format registry is not configured")
	}

	type document struct {
		name string
		path string
		data string
	}

	documents := make([]document, 0, len(e.registry.All()))
	for _, format := range e.registry.All() {
		data, err := format.Encode(f, meta)
		if err != nil {
			return fmt.Errorf("encode %s: %w", format.Name(), err)
		}
		documents = append(documents, document{
			name: format.Name(),
			path: filepath.Join(e.dir, format.Filename()),
			data: data,
		})
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create feeds directory: %w", err)
	}

	for _, doc := range documents {
		if err := os.WriteFile(doc.path, []byte(doc.data), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", doc.path, err)
		}
		e.debug("feed written", "format", doc.name, "path", doc.path)
	}

	return nil
}

func (e *Emitter) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
