package logger

import "github.com/gejohann/lazylog/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)
