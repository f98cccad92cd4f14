package sink

import (
	"time"

	"github.com/gejohann/lazylog/core"
)

// Sink accepts finished log events and is responsible for writing them
type Sink interface {
	// Handle processes a log event
	Handle(e *core.Event) error

	// Close closes the sink and releases resources
	Close() error
}

// Recycler is an optional interface sinks implement to tell the caller
// whether the event may be returned to the pool once Handle returns.
// Synchronous sinks consume the event before returning; asynchronous
// sinks keep a reference past Handle and recycle events themselves.
type Recycler interface {
	CanRecycleEvent() bool
}

// NewStoppedTimer returns a timer that is ready for Reset without a
// pending tick.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}
