package logger

import (
	"fmt"
	"time"

	"github.com/gejohann/lazylog/core"
)

// Arg constructor functions for convenience. Constructing an Arg never
// renders the value; deferred types are rendered only when the call
// passes the severity gate.

// String creates a string argument
func String(val string) core.Arg {
	return core.Arg{Type: core.StringArg, Str: val}
}

// Int creates an int argument
func Int(val int) core.Arg {
	return core.Arg{Type: core.IntArg, Int64: int64(val)}
}

// Int64 creates an int64 argument
func Int64(val int64) core.Arg {
	return core.Arg{Type: core.Int64Arg, Int64: val}
}

// Float64 creates a float64 argument
func Float64(val float64) core.Arg {
	return core.Arg{Type: core.Float64Arg, Float64: val}
}

// Bool creates a bool argument
func Bool(val bool) core.Arg {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return core.Arg{Type: core.BoolArg, Int64: int64Val}
}

// Time creates a time argument
func Time(val time.Time) core.Arg {
	return core.Arg{Type: core.TimeArg, Int64: val.UnixNano()}
}

// Duration creates a duration argument
func Duration(val time.Duration) core.Arg {
	return core.Arg{Type: core.DurationArg, Int64: int64(val)}
}

// Stringer creates an argument whose String method runs only on the
// emit path. Prefer this over passing val.String() directly, which
// renders the value whether or not the call is filtered out.
func Stringer(val fmt.Stringer) core.Arg {
	return core.Arg{Type: core.StringerArg, Any: val}
}

// Lazy creates an argument from a render function that runs only on
// the emit path.
func Lazy(render func() string) core.Arg {
	return core.Arg{Type: core.LazyArg, Render: render}
}

// Err creates an error argument. In the final position it is detached
// from placeholder substitution and carried on the event separately.
func Err(err error) core.Arg {
	return core.Arg{Type: core.ErrorArg, Err: err}
}

// Any creates an argument from an arbitrary value, rendered with %v on
// the emit path
func Any(val interface{}) core.Arg {
	return core.Arg{Type: core.AnyArg, Any: val}
}
