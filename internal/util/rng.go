package util

import "math/rand"

// New returns a generator for seed. Seed 0 is treated as 1 so that an unset
// seed still gives a reproducible stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Jitter moves v by a uniform offset in [-spread, spread], never below floor.
func Jitter(r *rand.Rand, v, spread, floor int) int {
	if spread > 0 {
		v += r.Intn(2*spread+1) - spread
	}
	return max(v, floor)
}
