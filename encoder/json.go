package encoder

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/gejohann/lazylog/core"
)

// JSONEncoder encodes log events as JSON
type JSONEncoder struct {
	Config
}

// NewJSONEncoder creates a new JSON encoder
func NewJSONEncoder(cfg Config) *JSONEncoder {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONEncoder{Config: cfg}
}

// Encode encodes an event as JSON
func (e *JSONEncoder) Encode(ev *core.Event) ([]byte, error) {
	if ev == nil {
		return nil, ErrNilEvent
	}

	buf := getBuffer()
	defer putBuffer(buf)

	e.encodeJSONToBuffer(ev, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// EncodeTo encodes an event as JSON and writes it directly to the writer
func (e *JSONEncoder) EncodeTo(ev *core.Event, w io.Writer) error {
	if ev == nil {
		return ErrNilEvent
	}

	buf := getBuffer()

	e.encodeJSONToBuffer(ev, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// encodeJSONToBuffer builds JSON manually into the buffer without allocations
func (e *JSONEncoder) encodeJSONToBuffer(ev *core.Event, buf *bytes.Buffer) {
	buf.WriteByte('{')

	// Time field
	buf.WriteString(`"time":"`)
	buf.Write(ev.Time.AppendFormat(buf.AvailableBuffer(), e.TimestampFormat))
	buf.WriteByte('"')

	// Severity field
	buf.WriteString(`,"severity":"`)
	buf.WriteString(ev.Severity.String())
	buf.WriteByte('"')

	// Logger name
	if ev.Logger != "" {
		buf.WriteString(`,"logger":"`)
		appendJSONString(buf, ev.Logger)
		buf.WriteByte('"')
	}

	// Message field
	buf.WriteString(`,"message":"`)
	appendJSONString(buf, ev.Message)
	buf.WriteByte('"')

	// Detached error
	if ev.Err != nil {
		buf.WriteString(`,"error":"`)
		appendJSONString(buf, ev.Err.Error())
		buf.WriteByte('"')
	}

	// Caller info if enabled
	if e.IncludeCaller && ev.Caller.Defined {
		buf.WriteString(`,"caller":{"file":"`)
		appendJSONString(buf, ev.Caller.ShortFile)
		buf.WriteString(`","line":`)
		buf.WriteString(strconv.Itoa(ev.Caller.Line))
		if ev.Caller.Function != "" {
			buf.WriteString(`,"function":"`)
			appendJSONString(buf, ev.Caller.Function)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
