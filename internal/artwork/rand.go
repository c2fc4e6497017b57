package artwork

import (
	"math/rand"
	"time"
)

// Rand is the random source the generator draws jitter and scatter from.
// Production code seeds it from the clock; tests pass a fixed seed so a
// "random" layout reproduces exactly. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewEntropyRand returns a clock-seeded source for production use.
func NewEntropyRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
