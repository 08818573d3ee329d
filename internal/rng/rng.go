// Package rng provides the reproducible pseudo-random stream used for
// cosmetic placement. It is not suitable for anything security related.
package rng

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"
)

const golden = 0x9e3779b97f4a7c15

// Next advances a splitmix64 state and returns the new state together with
// a value in [0,1).
func Next(state uint64) (uint64, float64) {
	state += golden
	z := state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	// Top 53 bits fill the float64 mantissa exactly.
	return state, float64(z>>11) / (1 << 53)
}

// Stream is a stateful wrapper around Next.
type Stream struct {
	state uint64
	draws int
}

// New creates a stream from a seed.
func New(seed uint64) *Stream {
	return &Stream{state: seed}
}

// Float returns the next value in [0,1).
func (s *Stream) Float() float64 {
	var v float64
	s.state, v = Next(s.state)
	s.draws++
	return v
}

// Range returns the next value in [lo,hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.Float()*(hi-lo)
}

// Centered returns the next value in [-half,half).
func (s *Stream) Centered(half float64) float64 {
	return (s.Float() - 0.5) * 2 * half
}

// Intn returns the next value in [0,n). n <= 0 returns 0 but still
// consumes a draw so callers keep a fixed draw order.
func (s *Stream) Intn(n int) int {
	v := s.Float()
	if n <= 0 {
		return 0
	}
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Draws reports how many values the stream has produced.
func (s *Stream) Draws() int {
	return s.draws
}

// State returns the current internal state.
func (s *Stream) State() uint64 {
	return s.state
}

// SeedFromPosition hashes the exact bit pattern of a world position. Any
// change in any coordinate yields an unrelated seed.
func SeedFromPosition(p mgl64.Vec3) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(p.X()))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y()))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.Z()))
	return xxh3.Hash(buf[:])
}

// Mix folds extra salt into a seed, e.g. to separate layouts by theme.
func Mix(seed uint64, salt string) uint64 {
	if salt == "" {
		return seed
	}
	return seed ^ xxh3.HashString(salt)
}
