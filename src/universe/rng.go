package universe

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the collaborator deciding the cell states on reseed
type RandomSource interface {
	Bool() bool
}

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding
type RNG struct {
	r *rand.Rand
}

// NewRNG creates the RNG, zero seed is replaced with the current time
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
