package exam

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffleIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 50} {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 5 // duplicates on purpose
		}
		orig := append([]int(nil), in...)

		out := Shuffle(in)

		assert.Len(t, out, n)
		assert.Equal(t, orig, in, "input must not be mutated")
		sortedOut := append([]int(nil), out...)
		sort.Ints(sortedOut)
		sortedIn := append([]int(nil), in...)
		sort.Ints(sortedIn)
		assert.Equal(t, sortedIn, sortedOut)
	}
}

func TestShuffleWithDeterministicSource(t *testing.T) {
	// intn always 0: each position i swaps with 0, which rotates left by one.
	out := shuffleWith([]string{"a", "b", "c", "d"}, func(int) int { return 0 })
	assert.Equal(t, []string{"b", "c", "d", "a"}, out)

	// intn returning n-1 never moves anything.
	out = shuffleWith([]string{"a", "b", "c"}, func(n int) int { return n - 1 })
	assert.Equal(t, []string{"a", "b", "c"}, out)
}

func TestShuffleUsesFullRange(t *testing.T) {
	var bounds []int
	shuffleWith(make([]int, 5), func(n int) int {
		bounds = append(bounds, n)
		return 0
	})
	assert.Equal(t, []int{5, 4, 3, 2}, bounds)
}
