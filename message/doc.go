// Package message implements lazy placeholder expansion for log
// templates.
//
// A template is plain text with "{}" markers; Format replaces each
// marker with the next argument's rendering, in order. The contract that
// makes this worthwhile is laziness: Format runs only after the call's
// severity passed the logger's gate, so an expensive argument (a
// StringerArg over a large value, a LazyArg closure) costs nothing when
// the call is filtered out. Callers who concatenate the message
// themselves before logging give that guarantee away, since the
// concatenation renders every operand regardless of the gate.
//
// Degraded inputs never fail: marker/argument count mismatches, escapes
// at the end of the template, and unknown argument types all produce a
// best-effort string. A final ErrorArg is detached from substitution and
// carried on Formatted.Err so the sink can render it separately from the
// message line.
package message
