package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Event represents a single log event after template expansion. It carries
// the final message text plus the detached trailing error, if any. Events
// are transient: they are filled at the call site, handed to a sink, and
// recycled; nothing may retain an Event past the call.
type Event struct {
	Time     time.Time
	Severity Severity
	Logger   string
	Message  string
	Err      error
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// eventPool is a pool of Event objects to reduce allocations
var eventPool = sync.Pool{
	New: func() interface{} {
		return &Event{}
	},
}

// GetEvent retrieves an Event from the pool
func GetEvent() *Event {
	e := eventPool.Get().(*Event)
	e.Time = time.Now()
	e.Caller = CallerInfo{}
	return e
}

// PutEvent returns an Event to the pool
func PutEvent(e *Event) {
	if e == nil {
		return
	}
	e.Logger = ""
	e.Message = ""
	e.Err = nil
	e.Caller = CallerInfo{}
	eventPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
