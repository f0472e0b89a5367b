package store

import (
	"context"
	"time"
)

// AttemptEventData captures one checked or skipped question for the
// local mirror. Logged reports whether the backend accepted the
// matching attempt log.
type AttemptEventData struct {
	RunID         string
	TopicID       string
	QuestionIndex int
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Skipped       bool
	TimeSpentSecs int
	Kind          string
	Logged        bool
}

// SessionEventData captures a run lifecycle event. The counters and
// Passed are meaningful on "finish" only.
type SessionEventData struct {
	RunID          string
	SessionID      string
	TopicID        string
	Action         string
	TotalQuestions int
	CorrectAnswers int
	Skipped        int
	ElapsedSecs    int
	Passed         bool
}

// RunSummary is one finished run as shown by the history command.
type RunSummary struct {
	RunID          string
	TopicID        string
	Timestamp      time.Time
	TotalQuestions int
	CorrectAnswers int
	Skipped        int
	ElapsedSecs    int
	Passed         bool
}

// AttemptRecord is one stored attempt, returned in question order.
type AttemptRecord struct {
	QuestionIndex int
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Skipped       bool
	TimeSpentSecs int
	Timestamp     time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a checked or skipped question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a run start or finish.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentRuns returns the most recent finished runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]RunSummary, error)

	// AttemptsForRun returns all attempts of a run in question order.
	AttemptsForRun(ctx context.Context, runID string) ([]AttemptRecord, error)

	// TopicAccuracy returns the all-time fraction of correct attempts
	// for a topic, 0 when no attempts exist. Skips count against it.
	TopicAccuracy(ctx context.Context, topicID string) (float64, error)
}

// ProgressRepo manages per-topic mastery completion flags.
type ProgressRepo interface {
	// Completed reports whether the topic has ever been passed.
	Completed(ctx context.Context, topicKey string) (bool, error)

	// SetCompleted upserts the flag for a topic.
	SetCompleted(ctx context.Context, topicKey string, completed bool) error
}
