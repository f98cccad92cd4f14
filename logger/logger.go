package logger

import (
	"time"

	"github.com/gejohann/lazylog/core"
	"github.com/gejohann/lazylog/message"
	"github.com/gejohann/lazylog/sink"
)

// Logger is a named logging handle (immutable). Its threshold is fixed
// at construction; a call below the threshold returns after a single
// integer comparison, before any argument is rendered.
type Logger struct {
	name          string
	threshold     core.Severity
	out           sink.Sink
	recycleEvent  bool
	includeCaller bool
	callerSkip    int
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Threshold returns the logger's minimum severity.
func (l *Logger) Threshold() core.Severity {
	return l.threshold
}

// Enabled reports whether a call at the given severity would be emitted.
// Callers doing work beyond argument construction (building a slice,
// formatting outside a template) should gate on this first.
func (l *Logger) Enabled(sev core.Severity) bool {
	return sev.Enabled(l.threshold)
}

// TraceEnabled reports whether trace calls would be emitted
func (l *Logger) TraceEnabled() bool { return l.Enabled(core.TraceLevel) }

// DebugEnabled reports whether debug calls would be emitted
func (l *Logger) DebugEnabled() bool { return l.Enabled(core.DebugLevel) }

// InfoEnabled reports whether info calls would be emitted
func (l *Logger) InfoEnabled() bool { return l.Enabled(core.InfoLevel) }

// WarnEnabled reports whether warn calls would be emitted
func (l *Logger) WarnEnabled() bool { return l.Enabled(core.WarnLevel) }

// ErrorEnabled reports whether error calls would be emitted
func (l *Logger) ErrorEnabled() bool { return l.Enabled(core.ErrorLevel) }

// Log logs a message at the specified severity
func (l *Logger) Log(sev core.Severity, template string, args ...core.Arg) {
	// Severity check - exit early BEFORE any rendering
	if !sev.Enabled(l.threshold) {
		return
	}
	l.log(sev, template, args)
}

// log expands the template and hands the event to the sink. Only
// reached after the severity gate passed, so this is the first point
// where deferred arguments are rendered.
func (l *Logger) log(sev core.Severity, template string, args []core.Arg) {
	if l.out == nil {
		return
	}

	msg := message.Format(template, args...)

	e := core.GetEvent()
	e.Time = time.Now()
	e.Severity = sev
	e.Logger = l.name
	e.Message = msg.Text
	e.Err = msg.Err

	if l.includeCaller {
		e.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.out.Handle(e); err != nil {
		return
	}

	// Return the event to the pool if the sink is done with it
	if l.recycleEvent {
		core.PutEvent(e)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(template string, args ...core.Arg) {
	if !core.TraceLevel.Enabled(l.threshold) {
		return
	}
	l.log(core.TraceLevel, template, args)
}

// Debug logs a debug message
func (l *Logger) Debug(template string, args ...core.Arg) {
	if !core.DebugLevel.Enabled(l.threshold) {
		return
	}
	l.log(core.DebugLevel, template, args)
}

// Info logs an info message
func (l *Logger) Info(template string, args ...core.Arg) {
	if !core.InfoLevel.Enabled(l.threshold) {
		return
	}
	l.log(core.InfoLevel, template, args)
}

// Warn logs a warning message
func (l *Logger) Warn(template string, args ...core.Arg) {
	if !core.WarnLevel.Enabled(l.threshold) {
		return
	}
	l.log(core.WarnLevel, template, args)
}

// Error logs an error message
func (l *Logger) Error(template string, args ...core.Arg) {
	if !core.ErrorLevel.Enabled(l.threshold) {
		return
	}
	l.log(core.ErrorLevel, template, args)
}

// Close closes the logger's sink
func (l *Logger) Close() error {
	if l.out != nil {
		return l.out.Close()
	}
	return nil
}
