package practice

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/internal/backend"
	"github.com/mathsala/mathsala/internal/quiz"
	"github.com/mathsala/mathsala/internal/store"
)

// Recorder turns a committed answer into a backend attempt log and a
// local event mirror. The backend call is best-effort: a failure flips
// the local record's logged flag off and nothing else; the practice
// flow never blocks on it.
type Recorder struct {
	client    backend.Client
	events    store.EventRepo
	learnerID int
}

// NewRecorder creates a recorder. A zero learnerID skips the backend
// leg entirely and only the local mirror is written.
func NewRecorder(client backend.Client, events store.EventRepo, learnerID int) *Recorder {
	return &Recorder{client: client, events: events, learnerID: learnerID}
}

// Record logs one checked or skipped question. The local append is the
// source of truth; its error is the only one surfaced.
func (r *Recorder) Record(ctx context.Context, runID, sessionID, topicID string, skillID, index int, q *quiz.QuestionSpec, rec AnswerRecord) error {
	logged := false
	if r.learnerID != 0 {
		entry := backend.AttemptLogEntry{
			LearnerID:        r.learnerID,
			SessionID:        sessionID,
			SkillID:          skillID,
			TemplateID:       q.TemplateID,
			DifficultyLevel:  q.Difficulty,
			QuestionText:     q.Prompt,
			CorrectAnswer:    q.Answer,
			StudentAnswer:    rec.SelectedValue,
			IsCorrect:        rec.IsCorrect,
			SolutionText:     q.Explanation,
			TimeSpentSeconds: rec.TimeSpentSeconds,
		}
		logged = r.client.RecordAttempt(ctx, entry) == nil
	}

	err := r.events.AppendAttempt(ctx, store.AttemptEventData{
		RunID:         runID,
		TopicID:       topicID,
		QuestionIndex: index,
		QuestionText:  q.Prompt,
		CorrectAnswer: q.Answer,
		LearnerAnswer: rec.SelectedValue,
		Correct:       rec.IsCorrect,
		Skipped:       rec.IsSkipped,
		TimeSpentSecs: rec.TimeSpentSeconds,
		Kind:          string(q.Kind),
		Logged:        logged,
	})
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}
