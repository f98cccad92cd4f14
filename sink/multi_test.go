package sink

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/encoder"
)

// memorySink records handled events for assertions.
type memorySink struct {
	mu      sync.Mutex
	events  []core.Event
	err     error
	closed  bool
	recycle bool
}

func (m *memorySink) Handle(e *core.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *e)
	return m.err
}

func (m *memorySink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.err
}

func (m *memorySink) CanRecycleEvent() bool { return m.recycle }

func (m *memorySink) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func TestMultiSink_FanOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	s1 := NewWriterSink(WriterConfig{Writer: &buf1, Encoder: encoder.NewTextEncoder(encoder.Config{})})
	s2 := NewWriterSink(WriterConfig{Writer: &buf2, Encoder: encoder.NewTextEncoder(encoder.Config{})})

	m := NewMultiSink(s1, s2)
	defer m.Close()

	if err := m.Handle(testEvent(core.InfoLevel, "fan out")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf1.String(), "fan out") {
		t.Errorf("first sink missing message: %s", buf1.String())
	}
	if !strings.Contains(buf2.String(), "fan out") {
		t.Errorf("second sink missing message: %s", buf2.String())
	}
}

func TestMultiSink_AllSinksSeeEventDespiteError(t *testing.T) {
	failing := &memorySink{err: errors.New("sink one broke"), recycle: true}
	healthy := &memorySink{recycle: true}

	m := NewMultiSink(failing, healthy)

	err := m.Handle(testEvent(core.ErrorLevel, "keep going"))
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !strings.Contains(err.Error(), "sink one broke") {
		t.Errorf("error = %v, want to contain sink failure", err)
	}
	if healthy.count() != 1 {
		t.Errorf("healthy sink got %d events, want 1", healthy.count())
	}
}

func TestMultiSink_CloseCombinesErrors(t *testing.T) {
	s1 := &memorySink{err: errors.New("close one")}
	s2 := &memorySink{err: errors.New("close two")}

	m := NewMultiSink(s1, s2)

	err := m.Close()
	if err == nil {
		t.Fatal("expected combined close error")
	}
	if !strings.Contains(err.Error(), "close one") || !strings.Contains(err.Error(), "close two") {
		t.Errorf("error = %v, want both close failures", err)
	}
	if !s1.closed || !s2.closed {
		t.Error("expected both sinks closed")
	}
}

func TestMultiSink_RecyclePropagation(t *testing.T) {
	all := NewMultiSink(&memorySink{recycle: true}, &memorySink{recycle: true})
	if !all.CanRecycleEvent() {
		t.Error("all-sync children should allow recycling")
	}

	mixed := NewMultiSink(&memorySink{recycle: true}, &memorySink{recycle: false})
	if mixed.CanRecycleEvent() {
		t.Error("one non-recycling child must disable recycling")
	}
}
