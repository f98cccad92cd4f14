package config

import (
	"fmt"
	"strings"

	"github.com/gejohann/lazylog/core"
)

// Registry maps logger names to minimum severities. Names are
// dot-separated hierarchies; SeverityFor picks the longest configured
// prefix, falling back to the default severity. A Registry is immutable
// after construction and safe for concurrent readers.
type Registry struct {
	def   core.Severity
	rules map[string]core.Severity
}

// NewRegistry builds a registry from a default severity and per-prefix
// overrides. The overrides map is copied; later changes to it do not
// affect the registry.
func NewRegistry(def core.Severity, overrides map[string]core.Severity) *Registry {
	rules := make(map[string]core.Severity, len(overrides))
	for name, sev := range overrides {
		rules[name] = sev
	}
	return &Registry{def: def, rules: rules}
}

// BuildRegistry parses the severity strings of a Config into a Registry.
func BuildRegistry(cfg *Config) (*Registry, error) {
	def, err := core.ParseSeverity(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("default level: %w", err)
	}

	rules := make(map[string]core.Severity, len(cfg.Loggers))
	for name, text := range cfg.Loggers {
		sev, err := core.ParseSeverity(text)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", name, err)
		}
		rules[name] = sev
	}

	return &Registry{def: def, rules: rules}, nil
}

// Default returns the registry's default severity.
func (r *Registry) Default() core.Severity {
	return r.def
}

// SeverityFor returns the minimum severity for a logger name. The name
// and each of its dot-separated ancestors are tried from most to least
// specific: "store.cache.lru" matches a rule for "store.cache.lru",
// then "store.cache", then "store", then the default.
func (r *Registry) SeverityFor(name string) core.Severity {
	for name != "" {
		if sev, ok := r.rules[name]; ok {
			return sev
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return r.def
}
