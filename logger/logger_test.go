package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gejohann/lazylog/config"
	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/encoder"
	"github.com/gejohann/lazylog/randtext"
	"github.com/gejohann/lazylog/sink"
)

func newBufferFactory(t *testing.T, threshold core.Severity) (*Factory, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	out := sink.NewWriterSink(sink.WriterConfig{
		Writer:  &buf,
		Encoder: encoder.NewTextEncoder(encoder.Config{}),
	})
	f := NewBuilder().
		WithSink(out).
		WithLevel(threshold).
		Build()
	return f, &buf
}

func TestLogger_SeverityGate(t *testing.T) {
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("gate")

	// Trace and Debug are below the threshold
	log.Trace("trace message")
	log.Debug("debug message")
	if buf.Len() > 0 {
		t.Errorf("suppressed call produced output: %s", buf.String())
	}

	log.Info("info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("Expected 'info message' in output, got: %s", buf.String())
	}

	buf.Reset()
	log.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Expected 'warn message' in output, got: %s", buf.String())
	}

	buf.Reset()
	log.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("Expected 'error message' in output, got: %s", buf.String())
	}
}

func TestLogger_SuppressedCallNeverRenders(t *testing.T) {
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("lazy")

	gen, err := randtext.NewAlphanumeric(10)
	if err != nil {
		t.Fatalf("NewAlphanumeric() error = %v", err)
	}
	payload := randtext.NewPayload(50, gen)

	lazyCalls := 0

	log.Trace("payload: {}, extra: {}",
		Stringer(payload),
		Lazy(func() string {
			lazyCalls++
			return "extra"
		}),
	)

	if buf.Len() > 0 {
		t.Errorf("suppressed call produced output: %s", buf.String())
	}
	if payload.RenderCount() != 0 {
		t.Errorf("payload rendered %d times on suppressed call, want 0", payload.RenderCount())
	}
	if lazyCalls != 0 {
		t.Errorf("lazy arg rendered %d times on suppressed call, want 0", lazyCalls)
	}

	// The same call above the threshold renders each argument exactly once.
	log.Info("payload: {}, extra: {}",
		Stringer(payload),
		Lazy(func() string {
			lazyCalls++
			return "extra"
		}),
	)

	if payload.RenderCount() != 1 {
		t.Errorf("payload rendered %d times on emitted call, want 1", payload.RenderCount())
	}
	if lazyCalls != 1 {
		t.Errorf("lazy arg rendered %d times on emitted call, want 1", lazyCalls)
	}
	if !strings.Contains(buf.String(), "extra: extra") {
		t.Errorf("Expected rendered lazy arg in output, got: %s", buf.String())
	}
}

func TestLogger_EagerStringDefeatsLaziness(t *testing.T) {
	// The contract only protects callers who pass the value itself.
	// Pre-rendering it into a String arg runs the expensive conversion
	// whether or not the call is emitted.
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("eager")

	gen, err := randtext.NewAlphanumeric(10)
	if err != nil {
		t.Fatalf("NewAlphanumeric() error = %v", err)
	}
	payload := randtext.NewPayload(10, gen)

	log.Trace("payload: {}", String(payload.String()))

	if buf.Len() > 0 {
		t.Errorf("suppressed call produced output: %s", buf.String())
	}
	if payload.RenderCount() != 1 {
		t.Errorf("eager argument construction should have rendered once, got %d", payload.RenderCount())
	}
}

func TestLogger_TrailingErrorOutput(t *testing.T) {
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("errors")

	boom := errors.New("connection reset")
	log.Error("fetch {} failed", String("/index"), Err(boom))

	output := buf.String()
	if !strings.Contains(output, "fetch /index failed") {
		t.Errorf("Expected substituted message, got: %s", output)
	}
	if !strings.Contains(output, `error="connection reset"`) {
		t.Errorf("Expected detached error, got: %s", output)
	}
	if strings.Contains(output, "failed connection reset") {
		t.Errorf("Trailing error was substituted into the template: %s", output)
	}
}

func TestLogger_TrailingErrorKeepsUnmatchedMarker(t *testing.T) {
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("errors")

	boom := errors.New("boom")
	log.Error("msg {} {}", String("x"), Err(boom))

	output := buf.String()
	if !strings.Contains(output, "msg x {}") {
		t.Errorf("Expected unmatched marker kept literal, got: %s", output)
	}
	if !strings.Contains(output, `error="boom"`) {
		t.Errorf("Expected detached error, got: %s", output)
	}
}

func TestLogger_EnabledAccessors(t *testing.T) {
	f, _ := newBufferFactory(t, WarnLevel)
	log := f.GetLogger("enabled")

	if log.TraceEnabled() || log.DebugEnabled() || log.InfoEnabled() {
		t.Error("severities below warn should be disabled")
	}
	if !log.WarnEnabled() || !log.ErrorEnabled() {
		t.Error("warn and error should be enabled")
	}
	if !log.Enabled(ErrorLevel) {
		t.Error("Enabled(ErrorLevel) should be true")
	}
}

func TestFactory_CachesByName(t *testing.T) {
	f, _ := newBufferFactory(t, InfoLevel)

	first := f.GetLogger("store.cache")
	second := f.GetLogger("store.cache")
	if first != second {
		t.Error("expected the same logger instance for the same name")
	}
	if first.Name() != "store.cache" {
		t.Errorf("Name() = %q, want store.cache", first.Name())
	}
}

func TestFactory_RegistryThresholds(t *testing.T) {
	var buf bytes.Buffer
	out := sink.NewWriterSink(sink.WriterConfig{
		Writer:  &buf,
		Encoder: encoder.NewTextEncoder(encoder.Config{}),
	})
	reg := config.NewRegistry(core.WarnLevel, map[string]core.Severity{
		"store.cache": core.TraceLevel,
	})
	f := NewBuilder().WithSink(out).WithRegistry(reg).Build()

	cacheLog := f.GetLogger("store.cache.lru")
	httpLog := f.GetLogger("http.server")

	if cacheLog.Threshold() != core.TraceLevel {
		t.Errorf("cache threshold = %v, want TraceLevel", cacheLog.Threshold())
	}
	if httpLog.Threshold() != core.WarnLevel {
		t.Errorf("http threshold = %v, want WarnLevel", httpLog.Threshold())
	}

	cacheLog.Trace("cache detail")
	if !strings.Contains(buf.String(), "cache detail") {
		t.Errorf("Expected trace from store.cache.lru, got: %s", buf.String())
	}

	buf.Reset()
	httpLog.Info("request served")
	if buf.Len() > 0 {
		t.Errorf("info below warn threshold leaked: %s", buf.String())
	}
}

func TestLogger_MultipleArgumentTypes(t *testing.T) {
	f, buf := newBufferFactory(t, InfoLevel)
	log := f.GetLogger("types")

	log.Info("{} items, {} ratio, active: {}", Int(3), Float64(0.5), Bool(true))

	output := buf.String()
	if !strings.Contains(output, "3 items, 0.5 ratio, active: true") {
		t.Errorf("Unexpected substitution result: %s", output)
	}
}
