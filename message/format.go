package message

import (
	"bytes"
	"strings"
	"sync"

	"github.com/gejohann/lazylog/core"
)

// Formatted is a fully expanded message ready for a sink, plus the
// detached trailing error, if one was supplied.
type Formatted struct {
	Text string
	Err  error
}

const (
	marker     = "{}"
	escapeChar = '\\'
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
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

// Format expands a template's "{}" markers with the given arguments in
// order. It must only be called for events that already passed the
// severity gate: this is where deferred arguments are rendered.
//
// Substitution rules:
//
//   - Each unescaped "{}" consumes the next argument. Markers beyond the
//     argument count stay literal; arguments beyond the marker count are
//     ignored.
//   - "\{}" renders a literal "{}" without consuming an argument;
//     "\\{}" renders a single backslash followed by a substitution.
//   - A trailing lone '{' or trailing '\' is plain text, never an error.
//   - A final ErrorArg is detached to Formatted.Err and never
//     substituted, even when enough markers remain to absorb it. An
//     ErrorArg in any earlier position substitutes as its Error() text.
func Format(template string, args ...core.Arg) Formatted {
	var trailing error
	if n := len(args); n > 0 && args[n-1].Type == core.ErrorArg {
		trailing = args[n-1].Err
		args = args[:n-1]
	}

	// Fast path: nothing to substitute and nothing to unescape.
	if !strings.ContainsRune(template, '{') && !strings.ContainsRune(template, escapeChar) {
		return Formatted{Text: template, Err: trailing}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	argIdx := 0
	rest := template
	for {
		j := strings.Index(rest, marker)
		if j < 0 {
			buf.WriteString(rest)
			break
		}

		switch {
		case j > 0 && rest[j-1] == escapeChar && j > 1 && rest[j-2] == escapeChar:
			// Escaped escape: keep one backslash, substitute normally.
			buf.WriteString(rest[:j-2])
			buf.WriteByte(escapeChar)
			argIdx = substitute(buf, args, argIdx)
		case j > 0 && rest[j-1] == escapeChar:
			// Escaped marker: literal "{}", no argument consumed.
			buf.WriteString(rest[:j-1])
			buf.WriteString(marker)
		default:
			buf.WriteString(rest[:j])
			argIdx = substitute(buf, args, argIdx)
		}
		rest = rest[j+len(marker):]
	}

	return Formatted{Text: buf.String(), Err: trailing}
}

// substitute writes the next argument's rendering, or the literal marker
// when the arguments are exhausted.
func substitute(buf *bytes.Buffer, args []core.Arg, argIdx int) int {
	if argIdx < len(args) {
		buf.WriteString(args[argIdx].Text())
		return argIdx + 1
	}
	buf.WriteString(marker)
	return argIdx
}
