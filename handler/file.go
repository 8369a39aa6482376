package handler

import (
	"io"
	"os"
	"sync"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/formatter"
	"github.com/depp/later-darker/textbuf"
)

// FileHandler writes log records to a file, one record per line, in
// either plain line form (without color or emoji) or JSON form.
type FileHandler struct {
	mu      sync.Mutex
	writer  io.Writer
	closer  io.Closer
	json    bool
	stats   *Stats
	buf     textbuf.Buffer
	storage [LogBufferSize]byte
}

// FileConfig holds configuration for the file handler.
type FileConfig struct {
	// Path of the log file. The file is created if absent and
	// appended to otherwise. Ignored when Writer is set.
	Path string
	// Writer overrides the destination, mainly for tests.
	Writer io.Writer
	// JSON selects the JSON record form instead of plain lines.
	JSON bool
}

// NewFileHandler creates a new file handler.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	h := &FileHandler{
		writer: cfg.Writer,
		json:   cfg.JSON,
		stats:  NewStats(),
	}
	if h.writer == nil {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		h.writer = f
		h.closer = f
	}
	h.buf = textbuf.New(h.storage[:])
	return h, nil
}

// Handle renders the record and writes it. Write errors are
// discarded.
func (h *FileHandler) Handle(record *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Clear()
	if h.json {
		formatter.WriteJSON(&h.buf, record)
	} else {
		formatter.WriteLine(&h.buf, record, false, false)
	}
	if _, err := h.writer.Write(h.buf.Bytes()); err == nil {
		h.stats.IncrementProcessed()
	}
	return nil
}

// Stats returns the handler's statistics tracker.
func (h *FileHandler) Stats() *Stats { return h.stats }

// Close closes the underlying file, if the handler opened one.
func (h *FileHandler) Close() error {
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}
