// Package randx wraps math/rand behind a seedable source so every
// synthesized payload is reproducible given a fixed seed. The source is
// safe for concurrent use; draws are serialized internally.
package randx

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source seeded with the given value. A zero seed derives
// the seed from the wall clock, which is the demo-mode default.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform value in [min, max).
func (s *Source) Float(min, max float64) float64 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()
	return min + v*(max-min)
}

// Int returns a uniform integer in [min, max].
func (s *Source) Int(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	v := s.rng.Intn(max - min + 1)
	s.mu.Unlock()
	return min + v
}

// Intn returns a uniform integer in [0, n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	v := s.rng.Intn(n)
	s.mu.Unlock()
	return v
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()
	return v < p
}

// Duration returns a uniform duration in [min, max].
func (s *Source) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.Intn(int(max-min)+1))
}

// Choice picks one element uniformly. The slice must be non-empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// ID returns a short lowercase alphanumeric identifier.
func (s *Source) ID(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = idAlphabet[s.Intn(len(idAlphabet))]
	}
	return string(out)
}

// Round truncates x to the given number of decimal places using
// half-up rounding, so JSON payloads carry tidy price-like numbers.
func Round(x float64, places int32) float64 {
	v, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return v
}
