package scene

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness the scene needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Uint32() uint32
}

// NewRand returns a seeded generator. Seed 0 uses a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}
