package quiz

import "math/rand"

// shuffleOptions returns a shuffled copy of options using a
// Fisher-Yates pass over the given source of randomness. The input
// slice is never mutated.
func shuffleOptions(rng *rand.Rand, options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// containsOnce reports whether target occurs exactly once in options.
func containsOnce(options []string, target string) bool {
	n := 0
	for _, o := range options {
		if o == target {
			n++
		}
	}
	return n == 1
}
