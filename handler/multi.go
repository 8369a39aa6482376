package handler

import "github.com/depp/later-darker/core"

// MultiHandler sends log records to multiple handlers.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle delivers the record to every child handler. The last error,
// if any, is returned; the logger ignores it either way.
func (h *MultiHandler) Handle(record *core.Record) error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Handle(record); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Fail forwards the fatal record to the first child that supports
// fatal output, and delivers it normally to the rest.
func (h *MultiHandler) Fail(record *core.Record) {
	failed := false
	for _, child := range h.handlers {
		if fh, ok := child.(FailHandler); ok && !failed {
			fh.Fail(record)
			failed = true
			continue
		}
		_ = child.Handle(record)
	}
}

// Close closes all child handlers, returning the last error.
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
