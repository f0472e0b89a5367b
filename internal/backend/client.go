// Package backend talks to the platform API. Every call is single-shot
// and best-effort: the practice flow never waits on, retries, or fails
// because of this client.
package backend

import "context"

// Client is the platform backend contract consumed by the practice
// engine. Implementations must be safe for use from command goroutines.
type Client interface {
	// CreateSession opens a practice session and returns its id.
	CreateSession(ctx context.Context, learnerID, skillID int) (string, error)

	// RecordAttempt logs one checked or skipped question.
	RecordAttempt(ctx context.Context, entry AttemptLogEntry) error

	// FinishSession closes a session opened by CreateSession.
	FinishSession(ctx context.Context, sessionID string) error

	// CreateReport submits the end-of-run summary.
	CreateReport(ctx context.Context, report Report) error
}

// AttemptLogEntry is the backend-facing projection of one question plus
// its answer record. Field names follow the platform wire format.
type AttemptLogEntry struct {
	LearnerID        int    `json:"user_id"`
	SessionID        string `json:"session_id,omitempty"`
	SkillID          int    `json:"skill_id"`
	TemplateID       string `json:"template_id,omitempty"`
	DifficultyLevel  string `json:"difficulty_level"`
	QuestionText     string `json:"question_text"`
	CorrectAnswer    string `json:"correct_answer"`
	StudentAnswer    string `json:"student_answer"`
	IsCorrect        bool   `json:"is_correct"`
	SolutionText     string `json:"solution_text"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// Report is the end-of-run aggregate sent once per terminal state.
type Report struct {
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	Score      float64          `json:"score"` // percentage, 0-100
	Parameters ReportParameters `json:"parameters"`
	LearnerID  int              `json:"user_id"`
}

// ReportParameters carries the free-form report payload.
type ReportParameters struct {
	SkillID          int    `json:"skill_id"`
	SkillName        string `json:"skill_name"`
	TotalQuestions   int    `json:"total_questions"`
	CorrectAnswers   int    `json:"correct_answers"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// Noop is a Client that accepts everything and reports nothing. Used
// when no backend is configured so the rest of the engine needs no nil
// checks.
type Noop struct{}

func (Noop) CreateSession(context.Context, int, int) (string, error) { return "", nil }
func (Noop) RecordAttempt(context.Context, AttemptLogEntry) error    { return nil }
func (Noop) FinishSession(context.Context, string) error             { return nil }
func (Noop) CreateReport(context.Context, Report) error              { return nil }
