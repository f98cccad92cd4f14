package logger

import (
	"sync"

	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/sink"
)

var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

func init() {
	// Initialize default factory with an async console sink
	out := sink.NewAsyncSink(sink.NewWriterSink(sink.WriterConfig{}), sink.AsyncConfig{})

	defaultFactory = NewBuilder().
		WithSink(out).
		WithLevel(core.InfoLevel).
		Build()
}

// DefaultFactory returns the default factory
func DefaultFactory() *Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefaultFactory sets the default factory
func SetDefaultFactory(f *Factory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// GetLogger returns a named logger from the default factory
func GetLogger(name string) *Logger {
	return DefaultFactory().GetLogger(name)
}

// Default returns the default factory's unnamed logger
func Default() *Logger {
	return DefaultFactory().GetLogger("")
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(template string, args ...core.Arg) {
	Default().Trace(template, args...)
}

// Debug logs a debug message using the default logger
func Debug(template string, args ...core.Arg) {
	Default().Debug(template, args...)
}

// Info logs an info message using the default logger
func Info(template string, args ...core.Arg) {
	Default().Info(template, args...)
}

// Warn logs a warning message using the default logger
func Warn(template string, args ...core.Arg) {
	Default().Warn(template, args...)
}

// Error logs an error message using the default logger
func Error(template string, args ...core.Arg) {
	Default().Error(template, args...)
}
