package encoder

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/gejohann/lazylog/core"
)

// TextEncoder encodes log events as human-readable text
type TextEncoder struct {
	Config
}

// NewTextEncoder creates a new text encoder
func NewTextEncoder(cfg Config) *TextEncoder {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextEncoder{Config: cfg}
}

// Encode encodes an event as text
func (e *TextEncoder) Encode(ev *core.Event) ([]byte, error) {
	if ev == nil {
		return nil, ErrNilEvent
	}

	buf := getBuffer()
	defer putBuffer(buf)

	e.encodeToBuffer(ev, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// EncodeTo encodes an event and writes it directly to the writer
func (e *TextEncoder) EncodeTo(ev *core.Event, w io.Writer) error {
	if ev == nil {
		return ErrNilEvent
	}

	buf := getBuffer()

	e.encodeToBuffer(ev, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted severity strings to avoid multiple WriteString calls
var severityBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// encodeToBuffer writes the encoded event into the given buffer
func (e *TextEncoder) encodeToBuffer(ev *core.Event, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(ev.Time.AppendFormat(buf.AvailableBuffer(), e.TimestampFormat))

	// Severity - use pre-formatted string
	if int(ev.Severity) >= 0 && int(ev.Severity) < len(severityBrackets) {
		buf.WriteString(severityBrackets[ev.Severity])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Logger name
	if ev.Logger != "" {
		buf.WriteString(ev.Logger)
		buf.WriteString(" - ")
	}

	// Caller info if enabled
	if e.IncludeCaller && ev.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(ev.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(ev.Caller.Line))
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(ev.Message)

	// Detached error, rendered apart from the message text
	if ev.Err != nil {
		buf.WriteString(` error="`)
		buf.WriteString(ev.Err.Error())
		buf.WriteByte('"')
	}

	buf.WriteByte('\n')
}
