package practice

// Selection is the transient, pre-submit view state for the current
// question: what the learner is pointing at or has typed, and the
// feedback shown after checking. It is rebuilt on every navigation;
// committed answers live exclusively in AnswerStore.
type Selection struct {
	// Value is the highlighted option or the typed text.
	Value string

	// Submitted is true once the current question has been checked or
	// skipped, locking further input at this index.
	Submitted bool

	// Correct mirrors the grading result for feedback rendering.
	Correct bool

	// Skipped mirrors whether the committed record was a skip.
	Skipped bool
}

// HydrateSelection builds the Selection for a question index from the
// answer store: answered indices restore their exact committed state,
// unanswered indices get the initial empty form. Navigating back and
// forth therefore reproduces identical displayed state.
func HydrateSelection(store *AnswerStore, index int) Selection {
	rec, ok := store.Get(index)
	if !ok {
		return Selection{}
	}
	return Selection{
		Value:     rec.SelectedValue,
		Submitted: true,
		Correct:   rec.IsCorrect,
		Skipped:   rec.IsSkipped,
	}
}
