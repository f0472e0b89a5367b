package practice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mathsala/mathsala/internal/backend"
	"github.com/mathsala/mathsala/internal/quiz"
	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
)

// Config carries the collaborators a Run needs. Client may be nil, in
// which case a no-op backend is used.
type Config struct {
	Client    backend.Client
	Events    store.EventRepo
	Progress  store.ProgressRepo
	LearnerID int
}

// Run orchestrates one pass through a topic's question sequence: the
// supply, the committed answers, the backend lifecycle and the attempt
// recorder. Screens drive it; it owns no view state.
//
// Commit methods are pure state changes safe to call from the UI event
// loop. Record, Begin, Finalize and Restart perform IO and belong in
// command goroutines.
type Run struct {
	Topic   topic.Topic
	RunID   string
	Supply  quiz.Supply
	Answers *AnswerStore

	lifecycle *Lifecycle
	recorder  *Recorder
	events    store.EventRepo
	progress  store.ProgressRepo
	client    backend.Client
	learnerID int
	finalized bool
}

// NewRun builds a run with a freshly dealt question sequence.
func NewRun(t topic.Topic, cfg Config) (*Run, error) {
	client := cfg.Client
	if client == nil {
		client = backend.Noop{}
	}

	supply, err := topic.BuildSupply(t, newRNG())
	if err != nil {
		return nil, fmt.Errorf("build supply: %w", err)
	}

	return &Run{
		Topic:     t,
		RunID:     uuid.NewString(),
		Supply:    supply,
		Answers:   NewAnswerStore(),
		lifecycle: NewLifecycle(client, cfg.LearnerID),
		recorder:  NewRecorder(client, cfg.Events, cfg.LearnerID),
		events:    cfg.Events,
		progress:  cfg.Progress,
		client:    client,
		learnerID: cfg.LearnerID,
	}, nil
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Begin records the local start event and opens the backend session.
// Either failure leaves the run usable; the first error is returned
// for surfacing only.
func (r *Run) Begin(ctx context.Context) error {
	err := r.events.AppendSessionEvent(ctx, store.SessionEventData{
		RunID:   r.RunID,
		TopicID: r.Topic.ID,
		Action:  "start",
	})
	if beginErr := r.lifecycle.Begin(ctx, r.Topic.SkillID); err == nil {
		err = beginErr
	}
	return err
}

// Question returns the question at index from the dealt sequence.
func (r *Run) Question(index int) (*quiz.QuestionSpec, error) {
	return r.Supply.Question(index)
}

// SessionID returns the backend session handle, "" when none exists.
func (r *Run) SessionID() string { return r.lifecycle.SessionID() }

// CommitAnswer grades value against q and commits the result at index.
// Committed reports false when the index already holds a graded
// record, which stays untouched; a committed skip is replaced by the
// graded answer. No IO.
func (r *Run) CommitAnswer(index int, q *quiz.QuestionSpec, value string, seconds int) (AnswerRecord, bool) {
	correct := quiz.Match(value, q)
	return r.Answers.Check(index, value, correct, seconds)
}

// CommitSkip commits a skip at index; existing records stay untouched.
func (r *Run) CommitSkip(index, seconds int) (AnswerRecord, bool) {
	return r.Answers.Skip(index, seconds)
}

// Record sends a committed record to the backend and the local mirror.
func (r *Run) Record(ctx context.Context, index int, q *quiz.QuestionSpec, rec AnswerRecord) error {
	return r.recorder.Record(ctx, r.RunID, r.lifecycle.SessionID(), r.Topic.ID, r.Topic.SkillID, index, q, rec)
}

// Outstanding returns the indices still unanswered or skipped.
func (r *Run) Outstanding() []int {
	return Outstanding(r.Answers, r.Supply.Count())
}

// ForceSkipRemaining commits a zero-time skip for every index with no
// record at all, implementing "submit anyway" from the review screen.
// It returns the indices it committed so the caller can record them;
// indices already committed as skips keep their original record.
func (r *Run) ForceSkipRemaining() []int {
	var forced []int
	for i := 0; i < r.Supply.Count(); i++ {
		if _, ok := r.Answers.Get(i); ok {
			continue
		}
		r.Answers.Skip(i, 0)
		forced = append(forced, i)
	}
	return forced
}

// Finalize scores the run and emits the terminal effects exactly once:
// the local finish event, the progress flag on a pass, the backend
// report, and the session close, in that order. Repeated calls return
// the same outcome with no further effects.
func (r *Run) Finalize(ctx context.Context, elapsedSeconds int) (Outcome, error) {
	outcome := Evaluate(r.Answers, r.Supply.Count(), r.Topic.MasteryThreshold, elapsedSeconds)
	if r.finalized {
		return outcome, nil
	}
	r.finalized = true

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	keep(r.events.AppendSessionEvent(ctx, store.SessionEventData{
		RunID:          r.RunID,
		SessionID:      r.lifecycle.SessionID(),
		TopicID:        r.Topic.ID,
		Action:         "finish",
		TotalQuestions: outcome.Total,
		CorrectAnswers: outcome.Correct,
		Skipped:        outcome.Skipped,
		ElapsedSecs:    outcome.ElapsedSeconds,
		Passed:         outcome.Passed,
	}))

	if outcome.Passed {
		keep(r.progress.SetCompleted(ctx, r.Topic.ID, true))
	}

	if r.learnerID != 0 {
		keep(r.client.CreateReport(ctx, BuildReport(outcome, r.Topic, r.learnerID)))
	}
	keep(r.lifecycle.Finish(ctx))

	return outcome, firstErr
}

// Restart resets the run for a retry: records cleared, a fresh
// question sequence dealt, a new run id, and a new backend session
// allowed. The previous run must have been finalized.
func (r *Run) Restart(ctx context.Context) error {
	supply, err := topic.BuildSupply(r.Topic, newRNG())
	if err != nil {
		return fmt.Errorf("build supply: %w", err)
	}

	r.Supply = supply
	r.Answers.Reset()
	r.RunID = uuid.NewString()
	r.lifecycle = NewLifecycle(r.client, r.learnerID)
	r.finalized = false
	return r.Begin(ctx)
}
