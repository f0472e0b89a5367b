// Package practice implements the practice session engine: committed
// answer state, the session lifecycle against the backend, attempt
// recording, the review/skip flow, and scoring.
package practice

import "sort"

// AnswerRecord is the committed result for one question index. Created
// the moment a question is first checked or skipped. A graded record
// never changes afterwards; a skip may later be replaced by a graded
// answer. Records are deleted only by a full retry reset.
type AnswerRecord struct {
	// SelectedValue is the chosen option or typed text. Empty for skips.
	SelectedValue string

	// IsCorrect is the grading result. Always false when skipped.
	IsCorrect bool

	// IsSkipped marks a question the learner skipped instead of answering.
	IsSkipped bool

	// TimeSpentSeconds is the active time on the question, >= 0.
	TimeSpentSeconds int
}

// AnswerStore maps question index to its committed AnswerRecord. It
// holds domain state only; in-progress selections live in Selection.
type AnswerStore struct {
	records map[int]AnswerRecord
}

// NewAnswerStore returns an empty store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{records: make(map[int]AnswerRecord)}
}

// Check commits a graded answer at index. A graded record is returned
// unchanged with committed false: re-checking an answered question
// never alters the stored result. A committed skip is the one record
// Check may replace; the graded record keeps the active time from both
// visits.
func (s *AnswerStore) Check(index int, selected string, correct bool, seconds int) (rec AnswerRecord, committed bool) {
	prior := 0
	if existing, ok := s.records[index]; ok {
		if !existing.IsSkipped {
			return existing, false
		}
		prior = existing.TimeSpentSeconds
	}
	rec = AnswerRecord{
		SelectedValue:    selected,
		IsCorrect:        correct,
		TimeSpentSeconds: prior + clampSeconds(seconds),
	}
	s.records[index] = rec
	return rec, true
}

// Skip commits a skipped record at index. Any existing record, graded
// or skipped, stays untouched.
func (s *AnswerStore) Skip(index, seconds int) (rec AnswerRecord, committed bool) {
	if existing, ok := s.records[index]; ok {
		return existing, false
	}
	rec = AnswerRecord{
		IsSkipped:        true,
		TimeSpentSeconds: clampSeconds(seconds),
	}
	s.records[index] = rec
	return rec, true
}

// Get returns the record at index, or ok=false when unanswered.
func (s *AnswerStore) Get(index int) (AnswerRecord, bool) {
	rec, ok := s.records[index]
	return rec, ok
}

// Reset clears every record. Used only by the retry path.
func (s *AnswerStore) Reset() {
	s.records = make(map[int]AnswerRecord)
}

// Len returns the number of committed records.
func (s *AnswerStore) Len() int { return len(s.records) }

// CorrectCount counts graded-correct records; skips never count.
func (s *AnswerStore) CorrectCount() int {
	n := 0
	for _, rec := range s.records {
		if rec.IsCorrect && !rec.IsSkipped {
			n++
		}
	}
	return n
}

// SkippedCount counts records committed as skipped.
func (s *AnswerStore) SkippedCount() int {
	n := 0
	for _, rec := range s.records {
		if rec.IsSkipped {
			n++
		}
	}
	return n
}

// Indices returns the committed indices in ascending order.
func (s *AnswerStore) Indices() []int {
	out := make([]int, 0, len(s.records))
	for i := range s.records {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func clampSeconds(s int) int {
	if s < 0 {
		return 0
	}
	return s
}
