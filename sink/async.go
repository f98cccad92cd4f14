package sink

import (
	"sync"
	"time"

	"github.com/gejohann/lazylog/core"
)

// AsyncConfig holds configuration for the async wrapper
type AsyncConfig struct {
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-severity overflow behavior
	// (default: DefaultSeverityPolicy)
	OverflowPolicy map[core.Severity]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy
	// (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close
	// (default: 5s)
	DrainTimeout time.Duration
}

// AsyncSink decouples callers from a slow inner sink with a bounded
// queue and a single background goroutine. When the queue is full, the
// per-severity OverflowPolicy decides whether the event is dropped or
// the caller blocks (bounded by BlockTimeout, after which the event is
// written synchronously so errors are never lost).
type AsyncSink struct {
	inner         Sink
	innerRecycles bool
	queue         chan *core.Event
	policy        map[core.Severity]OverflowPolicy
	blockTimeout  time.Duration
	drainTimeout  time.Duration
	stats         *Stats
	wg            sync.WaitGroup
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewAsyncSink wraps a sink with a bounded async queue.
func NewAsyncSink(inner Sink, cfg AsyncConfig) *AsyncSink {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultSeverityPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	s := &AsyncSink{
		inner:        inner,
		queue:        make(chan *core.Event, cfg.BufferSize),
		policy:       cfg.OverflowPolicy,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
		stats:        NewStats(),
		closed:       make(chan struct{}),
	}
	if rc, ok := inner.(Recycler); ok {
		s.innerRecycles = rc.CanRecycleEvent()
	}

	s.wg.Add(1)
	go s.process()

	return s
}

// Handle sends a log event to the async queue with overflow policy handling.
func (s *AsyncSink) Handle(e *core.Event) error {
	policy, ok := s.policy[e.Severity]
	if !ok {
		policy = DropNewest
	}

	select {
	case s.queue <- e:
		return nil
	default:
	}

	// Queue full
	switch policy {
	case Block:
		timer := time.NewTimer(s.blockTimeout)
		defer timer.Stop()
		select {
		case s.queue <- e:
			return nil
		case <-timer.C:
			// Timeout - fall back to synchronous write
			s.stats.IncrementBlocked()
			return s.write(e)
		case <-s.closed:
			// Sink is closing, write synchronously
			return s.write(e)
		}

	case DropOldest:
		select {
		case old := <-s.queue:
			s.stats.IncrementDropped(old.Severity)
			core.PutEvent(old)
		default:
		}
		select {
		case s.queue <- e:
			return nil
		default:
			// Lost the race for the freed slot; drop the new event.
			s.stats.IncrementDropped(e.Severity)
			core.PutEvent(e)
			return nil
		}

	default: // DropNewest
		s.stats.IncrementDropped(e.Severity)
		core.PutEvent(e)
		return nil
	}
}

// write delivers an event to the inner sink and recycles it. Dropped
// events never reach the inner sink and are pooled directly by Handle.
func (s *AsyncSink) write(e *core.Event) error {
	err := s.inner.Handle(e)
	if err == nil {
		s.stats.IncrementProcessed()
	}
	if s.innerRecycles {
		core.PutEvent(e)
	}
	return err
}

// process is the single consumer goroutine draining the queue.
func (s *AsyncSink) process() {
	defer s.wg.Done()
	for {
		select {
		case e := <-s.queue:
			_ = s.write(e)
		case <-s.closed:
			// Drain whatever is still queued, then stop.
			for {
				select {
				case e := <-s.queue:
					_ = s.write(e)
				default:
					return
				}
			}
		}
	}
}

// CanRecycleEvent returns false: the sink keeps a reference to the event
// past Handle and recycles it after processing.
func (s *AsyncSink) CanRecycleEvent() bool {
	return false
}

// Stats returns a snapshot of the current statistics
func (s *AsyncSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close drains the queue (bounded by DrainTimeout) and closes the inner
// sink.
func (s *AsyncSink) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.drainTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	}

	return s.inner.Close()
}
