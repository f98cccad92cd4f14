package encoder

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/gejohann/lazylog/core"
)

// ErrNilEvent is returned when an encoder is handed a nil event. A nil
// event is a caller bug and is rejected instead of silently producing an
// empty record.
var ErrNilEvent = errors.New("encoder: nil event")

// Encoder serializes a finished log event into bytes
type Encoder interface {
	// Encode encodes a log event into bytes
	Encode(e *core.Event) ([]byte, error)
}

// WriterEncoder is an optional interface that encoders can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterEncoder interface {
	// EncodeTo encodes a log event and writes it directly to the writer
	EncodeTo(e *core.Event, w io.Writer) error
}

// Config holds common encoder configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
