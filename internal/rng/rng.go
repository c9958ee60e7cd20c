package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields the next value of a stream, always in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it directly.
type RandomSource interface {
	Float64() float64
}

// cryptoSource draws 53 random bits per value from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// DefaultRNG returns a non-reproducible source for callers that do not care
// about replay.
func DefaultRNG() RandomSource { return cryptoSource{} }

// NewSeededRNG returns a reproducible PCG-backed source, an alternative to
// the LCG when a longer period is wanted.
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}
