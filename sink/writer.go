package sink

import (
	"io"
	"os"
	"sync"

	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/encoder"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Encoders prepare data in their own pooled buffers and
// call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to sink's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe
// for concurrent Write calls, allowing the sink to skip write-level
// locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Encoder to use (default: TextEncoder)
	Encoder encoder.Encoder
	// ConcurrentWriter indicates the Writer supports concurrent Write
	// calls. Automatically detected for io.Discard and *os.File; set
	// true for other goroutine-safe writers.
	ConcurrentWriter bool
}

// WriterSink writes encoded events synchronously to an io.Writer. It is
// the console sink when pointed at stdout or stderr.
type WriterSink struct {
	writer         io.Writer
	enc            encoder.Encoder
	writerEnc      encoder.WriterEncoder
	concurrentSafe bool
	stats          *Stats
	mu             sync.Mutex
	lw             lockedWriter
}

// NewWriterSink creates a new synchronous writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Encoder == nil {
		cfg.Encoder = encoder.NewTextEncoder(encoder.Config{})
	}

	s := &WriterSink{
		writer:         cfg.Writer,
		enc:            cfg.Encoder,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          NewStats(),
	}

	// Cache WriterEncoder for the single-allocation path
	s.writerEnc, _ = cfg.Encoder.(encoder.WriterEncoder)

	// Pre-allocate lockedWriter for lock-minimal write path
	s.lw = lockedWriter{mu: &s.mu, w: s.writer}

	return s
}

// Handle encodes and writes a log event synchronously.
func (s *WriterSink) Handle(e *core.Event) error {
	if s.writerEnc != nil {
		var err error
		if s.concurrentSafe {
			err = s.writerEnc.EncodeTo(e, s.writer)
		} else {
			err = s.writerEnc.EncodeTo(e, &s.lw)
		}
		if err == nil {
			s.stats.IncrementProcessed()
		}
		return err
	}

	data, err := s.enc.Encode(e)
	if err != nil {
		return err
	}

	if s.concurrentSafe {
		_, writeErr := s.writer.Write(data)
		if writeErr == nil {
			s.stats.IncrementProcessed()
		}
		return writeErr
	}

	s.mu.Lock()
	_, writeErr := s.writer.Write(data)
	s.mu.Unlock()

	if writeErr == nil {
		s.stats.IncrementProcessed()
	}

	return writeErr
}

// CanRecycleEvent returns true because the sink consumes events before returning.
func (s *WriterSink) CanRecycleEvent() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close closes the sink. The underlying writer is not closed; it is
// owned by the caller.
func (s *WriterSink) Close() error {
	return nil
}
