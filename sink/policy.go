package sink

import (
	"sync/atomic"

	"github.com/gejohann/lazylog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log event when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log event when the queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultSeverityPolicy returns the default severity-based overflow
// policies: low-severity events are droppable, errors block with a
// timeout so they are never silently lost.
func DefaultSeverityPolicy() map[core.Severity]OverflowPolicy {
	return map[core.Severity]OverflowPolicy{
		core.TraceLevel: DropNewest,
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: Block,
	}
}

// Stats tracks sink statistics
type Stats struct {
	// dropped counters indexed by severity
	dropped [core.ErrorLevel + 1]atomic.Uint64
	// blocked counts times logging blocked due to a full queue
	blocked atomic.Uint64
	// processed counts total processed events
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a severity
func (s *Stats) IncrementDropped(sev core.Severity) {
	if sev >= 0 && int(sev) < len(s.dropped) {
		s.dropped[sev].Add(1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a severity
func (s *Stats) Dropped(sev core.Severity) uint64 {
	if sev < 0 || int(sev) >= len(s.dropped) {
		return 0
	}
	return s.dropped[sev].Load()
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return s.blocked.Load()
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// TotalDropped returns the total dropped across all severities
func (s *Stats) TotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped   map[core.Severity]uint64
	Blocked   uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Severity]uint64, len(s.dropped))
	for i := range s.dropped {
		dropped[core.Severity(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		Dropped:   dropped,
		Blocked:   s.blocked.Load(),
		Processed: s.processed.Load(),
	}
}

// StatsProvider is implemented by sinks that expose runtime statistics
type StatsProvider interface {
	Stats() Snapshot
}
