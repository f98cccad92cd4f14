package core

import (
	"fmt"
	"strconv"
	"time"
)

// ArgType represents the type of a template argument
type ArgType uint8

const (
	StringArg ArgType = iota
	IntArg
	Int64Arg
	Float64Arg
	BoolArg
	TimeArg
	DurationArg
	StringerArg
	LazyArg
	ErrorArg
	AnyArg
)

// Arg is a single positional argument for a message template. Values are
// encoded into fixed-size numeric fields wherever possible so that common
// types like int and bool never escape to the heap on the suppressed path.
//
// StringerArg, LazyArg, and AnyArg carry a deferred representation: their
// display string is produced by Text, which the formatter calls only for
// events that passed the severity gate. Constructing an Arg must never
// render the value.
type Arg struct {
	Type    ArgType
	Int64   int64
	Float64 float64
	Str     string
	Err     error
	Render  func() string
	Any     interface{}
}

// Text renders the argument as its display string. For deferred argument
// types this is the point where the value's own rendering runs; a panic
// from a caller-supplied Render function or String method propagates
// unchanged.
func (a Arg) Text() string {
	switch a.Type {
	case StringArg:
		return a.Str
	case IntArg, Int64Arg:
		return strconv.FormatInt(a.Int64, 10)
	case Float64Arg:
		return strconv.FormatFloat(a.Float64, 'f', -1, 64)
	case BoolArg:
		return strconv.FormatBool(a.Int64 == 1)
	case TimeArg:
		return time.Unix(0, a.Int64).Format(time.RFC3339)
	case DurationArg:
		return time.Duration(a.Int64).String()
	case StringerArg:
		if s, ok := a.Any.(fmt.Stringer); ok {
			return s.String()
		}
		return "<nil>"
	case LazyArg:
		if a.Render == nil {
			return "<nil>"
		}
		return a.Render()
	case ErrorArg:
		if a.Err == nil {
			return "<nil>"
		}
		return a.Err.Error()
	case AnyArg:
		return fmt.Sprintf("%v", a.Any)
	default:
		return ""
	}
}
