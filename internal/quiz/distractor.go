package quiz

import (
	"math/rand"
	"strconv"
)

// integerDistractors produces count wrong options for a numeric answer.
// Distractors are pairwise distinct, never equal to the correct value,
// and never negative unless allowNegative is set. Candidates are drawn
// from small perturbations of the answer first, then widening offsets,
// so the options stay plausible.
func integerDistractors(rng *rand.Rand, correct int64, count int, allowNegative bool) []string {
	used := map[int64]bool{correct: true}
	out := make([]string, 0, count)

	offsets := []int64{1, -1, 2, -2, 10, -10, correct / 2, correct * 2}
	for _, off := range offsets {
		if len(out) == count {
			return out
		}
		c := correct + off
		if off == correct/2 || off == correct*2 {
			c = off // halving/doubling, not offsetting
		}
		if used[c] || (!allowNegative && c < 0) {
			continue
		}
		used[c] = true
		out = append(out, strconv.FormatInt(c, 10))
	}

	// Widening random offsets until enough distractors exist.
	for spread := int64(3); len(out) < count; spread++ {
		c := correct + rng.Int63n(2*spread+1) - spread
		if used[c] || (!allowNegative && c < 0) {
			continue
		}
		used[c] = true
		out = append(out, strconv.FormatInt(c, 10))
	}
	return out
}

// buildChoices assembles the shuffled option list for a multiple-choice
// question: the correct answer plus the given distractors in random
// order. The correct answer appears exactly once.
func buildChoices(rng *rand.Rand, correct string, distractors []string) []string {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	for _, d := range distractors {
		if d != correct {
			options = append(options, d)
		}
	}
	return shuffleOptions(rng, options)
}
