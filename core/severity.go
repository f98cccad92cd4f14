package core

import (
	"fmt"
	"strings"
)

// Severity represents the importance of a log event
type Severity int8

const (
	// TraceLevel for the most verbose diagnostic output
	TraceLevel Severity = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a call at severity s passes the given minimum
// threshold. This is the gate evaluated before any formatting work: when
// it returns false no argument is ever rendered.
func (s Severity) Enabled(threshold Severity) bool {
	return s >= threshold
}

// ParseSeverity converts a string to a Severity. Matching is
// case-insensitive; "warning" is accepted as an alias for "warn".
func ParseSeverity(text string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown severity %q", text)
	}
}
