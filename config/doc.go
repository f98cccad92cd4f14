// Package config is the severity configuration source for the framework.
//
// Config is loaded once at startup from a YAML file and/or environment
// variables via cleanenv and is not reloaded. BuildRegistry turns it
// into an immutable Registry that answers "what is the minimum severity
// for this logger name" with longest-dotted-prefix matching, so a rule
// for "store" covers "store.cache" unless a more specific rule exists.
//
// The registry is passed explicitly to the logger factory rather than
// living in package-global mutable state; every logger reads its
// threshold from it exactly once, at construction.
package config
