package logger

import (
	"sync"

	"github.com/gejohann/lazylog/config"
	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/sink"
)

// Factory creates named loggers that share one sink and one severity
// registry. Loggers are cached per name, so call sites asking for the
// same name get the same instance.
type Factory struct {
	registry      *config.Registry
	out           sink.Sink
	recycleEvent  bool
	includeCaller bool
	callerSkip    int

	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Builder provides a fluent API for building Factory instances
type Builder struct {
	registry      *config.Registry
	out           sink.Sink
	recycleEvent  bool
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new factory builder
func NewBuilder() *Builder {
	return &Builder{
		registry:   config.NewRegistry(core.InfoLevel, nil),
		callerSkip: 3, // Default skip for GetCaller from Logger.log
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.out = s
	// Pre-compute recycleEvent to avoid interface assertion per call
	if rc, ok := s.(sink.Recycler); ok {
		b.recycleEvent = rc.CanRecycleEvent()
	} else {
		b.recycleEvent = false
	}
	return b
}

// WithRegistry sets the severity registry
func (b *Builder) WithRegistry(r *config.Registry) *Builder {
	b.registry = r
	return b
}

// WithLevel sets a flat default severity (shorthand for a registry with
// no per-logger overrides)
func (b *Builder) WithLevel(sev core.Severity) *Builder {
	b.registry = config.NewRegistry(sev, nil)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Factory instance
func (b *Builder) Build() *Factory {
	return &Factory{
		registry:      b.registry,
		out:           b.out,
		recycleEvent:  b.recycleEvent,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		loggers:       make(map[string]*Logger),
	}
}

// GetLogger returns the logger for a name, creating it on first use.
// The logger's threshold is resolved from the registry once, here.
func (f *Factory) GetLogger(name string) *Logger {
	f.mu.RLock()
	l, ok := f.loggers[name]
	f.mu.RUnlock()
	if ok {
		return l
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok = f.loggers[name]; ok {
		return l
	}
	l = &Logger{
		name:          name,
		threshold:     f.registry.SeverityFor(name),
		out:           f.out,
		recycleEvent:  f.recycleEvent,
		includeCaller: f.includeCaller,
		callerSkip:    f.callerSkip,
	}
	f.loggers[name] = l
	return l
}

// Close closes the shared sink
func (f *Factory) Close() error {
	if f.out != nil {
		return f.out.Close()
	}
	return nil
}
