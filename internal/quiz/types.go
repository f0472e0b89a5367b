package quiz

// QuestionSpec is one question ready for display. Immutable once
// generated: option order is fixed at generation time so that
// navigating back to an answered question reproduces the exact view.
type QuestionSpec struct {
	// Prompt is the question text shown to the learner. May embed
	// LaTeX-style notation, e.g. "Convert $\\frac{3}{10}$ to a decimal."
	Prompt string

	// Kind indicates how the learner answers this question.
	Kind Kind

	// Options is populated only when Kind is KindMultipleChoice.
	// Shuffled at generation; contains the correct answer exactly once.
	Options []string

	// Answer is the canonical correct answer as a string.
	Answer string

	// AnswerType drives free-text normalization during matching.
	AnswerType AnswerType

	// Explanation is a short worked solution shown after checking.
	Explanation string

	// Hint is an optional scaffolding hint. Empty if none.
	Hint string

	// Difficulty is an optional label ("Easy", "Medium", "Hard", "Mixed").
	Difficulty string

	// TemplateID identifies the pool template this question came from,
	// when it came from a static pool. Empty for generated questions.
	TemplateID string

	// Key is the session dedupe key derived from the question's
	// defining parameters.
	Key string
}

// Kind describes how the learner provides their answer.
type Kind string

const (
	// KindMultipleChoice means the learner picks one of the options.
	KindMultipleChoice Kind = "multiple_choice"

	// KindFreeText means the learner types the answer.
	KindFreeText Kind = "free_text"
)

// AnswerType describes the representation of a free-text answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // "3/4", "7/2"
	AnswerTypeText     AnswerType = "text"     // anything else, compared case-insensitively
)

// Supply produces the fixed-size, non-repeating question sequence for
// one run. Question is idempotent per index: asking for the same index
// twice returns the same spec.
type Supply interface {
	// Question returns the question at index, generating it on first
	// access. Index must be in [0, Count()).
	Question(index int) (*QuestionSpec, error)

	// Count returns the fixed number of questions in the sequence.
	Count() int
}
