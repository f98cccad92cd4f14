// Package encoder defines how log events are serialized into bytes.
//
// It exposes two interfaces: Encoder, which returns a []byte, and
// WriterEncoder, which writes directly to an io.Writer. Sinks check for
// WriterEncoder at construction time and prefer it when available,
// eliminating the intermediate byte slice allocation on the write path.
//
// Both built-in encoders (TextEncoder and JSONEncoder) implement both
// interfaces. They use a pooled bytes.Buffer internally and rely on Go's
// Append-style functions (time.AppendFormat, strconv append variants) to
// avoid per-call allocations. The TextEncoder additionally pre-computes
// severity bracket strings (" [INFO] ", etc.) so that the most common
// path is a single WriteString call.
//
// An event's detached error is rendered apart from the message text:
// as an error="..." suffix in text output and as a top-level "error"
// member in JSON output.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package encoder
