package rules

import (
	"math"
	"math/rand"
)

// Between returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Jitter returns base shifted by a uniform integer in [-spread, spread],
// clamped so the result is never negative.
func Jitter(rng *rand.Rand, base, spread int) int {
	v := base + Between(rng, -spread, spread)
	if v < 0 {
		return 0
	}
	return v
}

// Chance returns true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Round rounds to the nearest integer, half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
