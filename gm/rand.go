package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Float](min, max S) S {
	return RandomInWith(rand.Float64, min, max)
}

// RandomInWith is like RandomIn, but draws from the given source of
// uniform values in [0, 1). Use it with a seeded *rand.Rand to get
// reproducible samples.
func RandomInWith[S Float](next func() float64, min, max S) S {
	value := S(next()*(float64(max)-float64(min))) + min

	// narrowing to S can round up onto the excluded bound
	if value >= max {
		return min
	}

	return value
}
