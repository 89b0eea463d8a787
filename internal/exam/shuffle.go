package exam

import "math/rand"

// Shuffle returns a uniformly random permutation of items. The input slice is
// left untouched.
func Shuffle[T any](items []T) []T {
	return shuffleWith(items, rand.Intn)
}

// shuffleWith is Fisher-Yates over a copy; intn(n) must return a value in [0,n).
func shuffleWith[T any](items []T, intn func(int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
