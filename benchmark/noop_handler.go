package benchmark

import (
	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
