package helix

import "math/rand/v2"

// RandomSource supplies uniform values in [0, 1) to the level generator.
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// rngStream separates generator streams from other PCG users of the same seed.
const rngStream = 0x68656c6978 // "helix"

// NewSeededSource returns a reproducible source for the given seed.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), rngStream))
}
