package practice

// Outstanding returns the question indices still needing attention at
// finalization time: those with no committed record or committed as
// skipped, in ascending order. An empty result means the run can be
// finalized without a review screen.
func Outstanding(store *AnswerStore, total int) []int {
	var out []int
	for i := 0; i < total; i++ {
		rec, ok := store.Get(i)
		if !ok || rec.IsSkipped {
			out = append(out, i)
		}
	}
	return out
}
