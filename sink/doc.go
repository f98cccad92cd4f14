// Package sink provides the Sink interface and its built-in
// implementations for dispatching log events to various outputs.
//
// Built-in sinks:
//
//   - WriterSink writes encoded events to any io.Writer (default: stdout).
//   - FileSink writes to a file with size-based rotation and backup
//     pruning via lumberjack.
//   - MultiSink fans out a single event to multiple child sinks,
//     combining their errors.
//   - AsyncSink wraps any sink with a bounded queue and a background
//     goroutine, which keeps the caller's hot path fast even under slow
//     I/O.
//
// When the async queue is full, AsyncSink applies a per-severity
// OverflowPolicy: DropNewest (default for Trace through Warn),
// DropOldest, or Block with a configurable timeout (default for Error).
// This ensures that low-priority logs never stall the application while
// errors are never silently dropped.
//
// Sinks track dropped, blocked, and processed counts via the Stats
// type, which can be queried at runtime through StatsProvider.
//
// Events are pooled: sinks that consume the event before Handle returns
// report CanRecycleEvent true so the logger can return it to the pool;
// AsyncSink reports false and recycles events itself once the consumer
// goroutine has written them.
package sink
