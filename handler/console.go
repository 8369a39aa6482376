package handler

import (
	"io"
	"sync"

	"github.com/mattn/go-colorable"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/formatter"
	"github.com/depp/later-darker/textbuf"
)

// LogBufferSize is the inline buffer size for constructing log
// messages. Lines shorter than this never allocate after the handler
// is constructed.
const LogBufferSize = 256

// ConsoleHandler writes log records to the console as single lines.
type ConsoleHandler struct {
	mu      sync.Mutex // serializes buf and writer
	writer  io.Writer
	color   bool
	emoji   bool
	stats   *Stats
	buf     textbuf.Buffer
	storage [LogBufferSize]byte
}

// ConsoleConfig holds configuration for the console handler.
type ConsoleConfig struct {
	// Writer to write to. Default: stderr, through an ANSI-capable
	// wrapper on Windows, with color auto-detected from the
	// environment ($NO_COLOR, $TERM, and whether stderr is a tty).
	Writer io.Writer
	// Color forces escape-sequence colors on or off when Writer is
	// set. Ignored when Writer is nil.
	Color bool
	// DisableEmoji turns off the emoji level markers.
	DisableEmoji bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	h := &ConsoleHandler{
		writer: cfg.Writer,
		color:  cfg.Color,
		emoji:  !cfg.DisableEmoji,
		stats:  NewStats(),
	}
	if h.writer == nil {
		h.writer = colorable.NewColorableStderr()
		h.color = shouldEnableColor()
	}
	h.buf = textbuf.New(h.storage[:])
	return h
}

// Handle renders the record in line form and writes it. Write errors
// are discarded; log output is best-effort.
func (h *ConsoleHandler) Handle(record *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Clear()
	formatter.WriteLine(&h.buf, record, h.color, h.emoji)
	if _, err := h.writer.Write(h.buf.Bytes()); err == nil {
		h.stats.IncrementProcessed()
	}
	return nil
}

// Fail renders the record for a fatal error: the line form followed
// by a banner, plus a native error dialog on platforms that have one.
// The caller terminates the process afterwards.
func (h *ConsoleHandler) Fail(record *core.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Clear()
	formatter.WriteLine(&h.buf, record, h.color, h.emoji)
	if h.color {
		h.buf.AppendString("\x1b[31m")
	}
	h.buf.AppendString("===== Fatal Error =====")
	if h.color {
		h.buf.AppendString("\x1b[0m")
	}
	h.buf.AppendChar('\n')
	_, _ = h.writer.Write(h.buf.Bytes())

	h.buf.Clear()
	formatter.WriteBlock(&h.buf, record)
	showErrorDialog(h.buf.String())
}

// Stats returns the handler's statistics tracker.
func (h *ConsoleHandler) Stats() *Stats { return h.stats }

// Close closes the handler. The console itself stays open.
func (h *ConsoleHandler) Close() error { return nil }
