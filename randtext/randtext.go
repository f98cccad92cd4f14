// Package randtext generates random strings and deliberately
// expensive-to-render payloads. It exists for tests and benchmarks that
// exercise the lazy rendering contract: a Payload's String method is
// costly, so whether it ran is observable in timings and via RenderCount.
package randtext

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mrand "math/rand/v2"
	"sort"
	"strings"
	"sync/atomic"
)

// Symbol sets for the generator
const (
	Upper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower    = "abcdefghijklmnopqrstuvwxyz"
	Digits   = "0123456789"
	Alphanum = Upper + Lower + Digits
)

// Generator produces fixed-length random strings from a symbol set.
// It is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng     *mrand.Rand
	symbols string
	length  int
}

// NewGenerator creates a generator for strings of the given length
// drawn from the given symbols. The length must be at least 1 and the
// symbol set must contain at least two characters.
func NewGenerator(length int, rng *mrand.Rand, symbols string) (*Generator, error) {
	if length < 1 {
		return nil, errors.New("randtext: length must be at least 1")
	}
	if len(symbols) < 2 {
		return nil, errors.New("randtext: need at least two symbols")
	}
	if rng == nil {
		rng = newSeededRand()
	}
	return &Generator{rng: rng, symbols: symbols, length: length}, nil
}

// NewAlphanumeric creates an alphanumeric generator with a
// crypto-seeded source.
func NewAlphanumeric(length int) (*Generator, error) {
	return NewGenerator(length, nil, Alphanum)
}

// Next returns the next random string.
func (g *Generator) Next() string {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		b.WriteByte(g.symbols[g.rng.IntN(len(g.symbols))])
	}
	return b.String()
}

func newSeededRand() *mrand.Rand {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// Fall back to a fixed-ish seed; randomness quality does not
		// matter for test data.
		binary.LittleEndian.PutUint64(seed[:], 0x6c617a796c6f67)
	}
	return mrand.New(mrand.NewChaCha8(seed))
}

// Payload is an object that does little more than produce an ugly,
// expensive log message. String walks and formats a large random map,
// and RenderCount exposes how many times that happened.
type Payload struct {
	entries map[string]string
	renders atomic.Int64
}

// NewPayload builds a payload of n random key/value pairs.
func NewPayload(n int, g *Generator) *Payload {
	entries := make(map[string]string, n)
	for i := 0; i < n; i++ {
		entries[g.Next()] = g.Next()
	}
	return &Payload{entries: entries}
}

// String renders every entry in sorted order. This is the expensive
// operation the laziness contract is supposed to avoid on suppressed
// calls.
func (p *Payload) String() string {
	p.renders.Add(1)

	keys := make([]string, 0, len(p.entries))
	for k := range p.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p.entries[k])
	}
	b.WriteByte('}')
	return b.String()
}

// RenderCount returns how many times String has run.
func (p *Payload) RenderCount() int64 {
	return p.renders.Load()
}

// Describe returns a longer message around the rendered payload.
func (p *Payload) Describe() string {
	return "payload contents, rendered the long way: " + p.String()
}
