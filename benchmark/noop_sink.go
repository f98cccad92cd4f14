package benchmark

import (
	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/sink"
)

type noopSink struct{}

func newNoopSink() sink.Sink {
	return &noopSink{}
}

func (s *noopSink) Handle(e *core.Event) error {
	_ = len(e.Message)
	return nil
}

func (s *noopSink) CanRecycleEvent() bool {
	return true
}

func (s *noopSink) Close() error {
	return nil
}
