package handler

import (
	"sync/atomic"

	"github.com/depp/later-darker/core"
)

// Handler defines the interface for log handlers.
type Handler interface {
	// Handle renders and delivers one log record. Errors are advisory;
	// the logger ignores them.
	Handle(record *core.Record) error

	// Close closes the handler and releases resources.
	Close() error
}

// FailHandler is an optional interface for handlers that take over
// fatal output. Fail renders the record in its most visible form and
// returns; the caller terminates the process afterwards.
type FailHandler interface {
	Fail(record *core.Record)
}

// Stats tracks handler statistics.
type Stats struct {
	processed atomic.Uint64
}

// NewStats creates a new statistics tracker.
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed records one successfully delivered record.
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Processed returns the number of successfully delivered records.
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}
