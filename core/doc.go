// Package core defines the shared types used across the lazylog framework.
//
// It provides the Severity type for level gating, the Arg type for
// positional template arguments, and the Event type that represents a
// single log event on its way to a sink.
//
// Severity is a five-value ordered enum (TRACE < DEBUG < INFO < WARN <
// ERROR). The Enabled method is the whole emission gate: a call is
// emitted iff its severity is at or above the logger's threshold, and
// no argument rendering happens before that check passes.
//
// Arg encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never allocate. Deferred types (StringerArg, LazyArg, AnyArg) hold the
// value itself and render it only when Text is called, which happens
// strictly after the gate.
//
// Event objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Event with GetEvent and must return
// it with PutEvent once the sink has consumed it.
package core
