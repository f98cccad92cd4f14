package sink

import (
	"go.uber.org/multierr"

	"github.com/gejohann/lazylog/core"
)

// MultiSink fans a single log event out to multiple sinks
type MultiSink struct {
	sinks        []Sink
	recycleEvent bool // true when every child supports event recycling
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{
		sinks:        sinks,
		recycleEvent: true,
	}
	for _, s := range sinks {
		if rc, ok := s.(Recycler); ok {
			if !rc.CanRecycleEvent() {
				m.recycleEvent = false
			}
		} else {
			m.recycleEvent = false
		}
	}
	return m
}

// Handle processes a log event by sending it to all sinks. Every sink
// sees the event even when an earlier one fails; the failures are
// combined into the returned error.
func (m *MultiSink) Handle(e *core.Event) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Handle(e))
	}
	return err
}

// CanRecycleEvent returns true if the caller can recycle the event after
// Handle returns. This is safe when all child sinks consume events
// synchronously.
func (m *MultiSink) CanRecycleEvent() bool {
	return m.recycleEvent
}

// Close closes all sinks
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
