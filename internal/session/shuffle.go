package session

import "math/rand/v2"

// Shuffle permutes items in place with a Fisher–Yates walk, giving every
// permutation equal probability. A nil rng falls back to the shared
// process-wide source.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy, leaving the input untouched.
func Shuffled[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(out, rng)
	return out
}

// Sample returns up to count elements drawn without replacement, in random
// order.
func Sample[T any](items []T, count int, rng *rand.Rand) []T {
	if count <= 0 {
		return nil
	}
	out := Shuffled(items, rng)
	if count < len(out) {
		out = out[:count]
	}
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
