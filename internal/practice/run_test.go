package practice

import (
	"context"
	"errors"
	"testing"

	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
)

// memEventRepo is an in-memory store.EventRepo for tests.
type memEventRepo struct {
	attempts  []store.AttemptEventData
	sessions  []store.SessionEventData
	appendErr error
}

func (m *memEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.attempts = append(m.attempts, data)
	return nil
}

func (m *memEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *memEventRepo) RecentRuns(context.Context, int) ([]store.RunSummary, error) {
	return nil, nil
}

func (m *memEventRepo) AttemptsForRun(context.Context, string) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (m *memEventRepo) TopicAccuracy(context.Context, string) (float64, error) {
	return 0, nil
}

// memProgress is an in-memory store.ProgressRepo for tests.
type memProgress struct {
	flags map[string]bool
}

func newMemProgress() *memProgress { return &memProgress{flags: make(map[string]bool)} }

func (m *memProgress) Completed(_ context.Context, topicKey string) (bool, error) {
	return m.flags[topicKey], nil
}

func (m *memProgress) SetCompleted(_ context.Context, topicKey string, completed bool) error {
	m.flags[topicKey] = completed
	return nil
}

func testTopic() topic.Topic {
	return topic.Topic{
		ID:               "class-5/pattern-identification",
		SkillID:          2001,
		Name:             "Pattern Identification",
		Grade:            "class-5",
		QuestionCount:    5,
		MasteryThreshold: 0.6,
		Supply:           topic.SupplyConfig{Kind: topic.SupplyGenerated, Family: "number-patterns"},
	}
}

func testRun(t *testing.T, client *fakeClient, learnerID int) (*Run, *memEventRepo, *memProgress) {
	t.Helper()
	events := &memEventRepo{}
	progress := newMemProgress()
	run, err := NewRun(testTopic(), Config{
		Client:    client,
		Events:    events,
		Progress:  progress,
		LearnerID: learnerID,
	})
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	return run, events, progress
}

// answer commits and records the correct answer at index.
func answer(t *testing.T, run *Run, index, seconds int) {
	t.Helper()
	ctx := context.Background()
	q, err := run.Question(index)
	if err != nil {
		t.Fatalf("question %d: %v", index, err)
	}
	rec, committed := run.CommitAnswer(index, q, q.Answer, seconds)
	if !committed {
		t.Fatalf("index %d already committed", index)
	}
	if err := run.Record(ctx, index, q, rec); err != nil {
		t.Fatalf("record %d: %v", index, err)
	}
}

// forceSkipAndRecord mirrors the submit-anyway flow.
func forceSkipAndRecord(t *testing.T, run *Run) {
	t.Helper()
	ctx := context.Background()
	for _, i := range run.ForceSkipRemaining() {
		q, err := run.Question(i)
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		rec, _ := run.Answers.Get(i)
		if err := run.Record(ctx, i, q, rec); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
}

func TestRunBeginRecordsStartAndSession(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, events, _ := testRun(t, client, 7)
	ctx := context.Background()

	if err := run.Begin(ctx); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if run.SessionID() != "sess-1" {
		t.Errorf("session id = %q, want sess-1", run.SessionID())
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Fatalf("sessions = %+v, want one start event", events.sessions)
	}
	if events.sessions[0].RunID != run.RunID {
		t.Errorf("start run id = %q, want %q", events.sessions[0].RunID, run.RunID)
	}
}

func TestRunCheckRecordsAttempt(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, events, _ := testRun(t, client, 7)
	run.Begin(context.Background())

	answer(t, run, 0, 12)

	if len(client.attempts) != 1 {
		t.Fatalf("backend attempts = %d, want 1", len(client.attempts))
	}
	entry := client.attempts[0]
	if entry.SessionID != "sess-1" || entry.SkillID != 2001 || !entry.IsCorrect {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.TimeSpentSeconds != 12 {
		t.Errorf("TimeSpentSeconds = %d, want 12", entry.TimeSpentSeconds)
	}

	if len(events.attempts) != 1 {
		t.Fatalf("local attempts = %d, want 1", len(events.attempts))
	}
	local := events.attempts[0]
	if !local.Logged {
		t.Error("expected logged flag set when backend accepted")
	}
	if local.RunID != run.RunID || local.QuestionIndex != 0 {
		t.Errorf("unexpected local record: %+v", local)
	}
}

func TestRunBackendFailureStillMirrorsLocally(t *testing.T) {
	client := &fakeClient{attemptErr: errors.New("network")}
	run, events, _ := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)

	q, _ := run.Question(0)
	rec, committed := run.CommitAnswer(0, q, q.Answer, 5)
	if !committed {
		t.Fatal("expected commit")
	}
	if err := run.Record(ctx, 0, q, rec); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(events.attempts) != 1 {
		t.Fatalf("local attempts = %d, want 1", len(events.attempts))
	}
	if events.attempts[0].Logged {
		t.Error("expected logged flag clear on backend failure")
	}
}

func TestRunAnonymousSkipsBackend(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, events, _ := testRun(t, client, 0)
	run.Begin(context.Background())

	answer(t, run, 0, 5)

	if len(client.attempts) != 0 {
		t.Errorf("backend attempts = %d, want 0 for anonymous run", len(client.attempts))
	}
	if len(events.attempts) != 1 {
		t.Errorf("local attempts = %d, want 1", len(events.attempts))
	}
}

func TestRunRecommitRejected(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, _, _ := testRun(t, client, 7)
	run.Begin(context.Background())

	answer(t, run, 0, 5)

	q, _ := run.Question(0)
	if _, committed := run.CommitAnswer(0, q, "something else", 9); committed {
		t.Fatal("expected re-check rejected")
	}
	if _, committed := run.CommitSkip(0, 1); committed {
		t.Fatal("expected skip after check rejected")
	}
}

func TestRunForceSkipRemaining(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, _, _ := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)

	answer(t, run, 0, 5)
	q, _ := run.Question(1)
	rec, _ := run.CommitSkip(1, 3)
	run.Record(ctx, 1, q, rec)

	forced := run.ForceSkipRemaining()
	if len(forced) != run.Supply.Count()-2 {
		// Indices 0 and 1 already committed.
		t.Fatalf("forced = %v, want the %d untouched indices", forced, run.Supply.Count()-2)
	}
	for _, i := range forced {
		got, ok := run.Answers.Get(i)
		if !ok || !got.IsSkipped || got.TimeSpentSeconds != 0 {
			t.Errorf("index %d: record = %+v, want zero-time skip", i, got)
		}
	}
	// The earlier manual skip keeps its time.
	manual, _ := run.Answers.Get(1)
	if manual.TimeSpentSeconds != 3 {
		t.Errorf("manual skip time = %d, want 3", manual.TimeSpentSeconds)
	}
	if got := run.Outstanding(); len(got) != run.Supply.Count()-1 {
		// Everything but index 0 is a committed skip, still outstanding.
		t.Errorf("outstanding after force = %v", got)
	}
}

func TestRunFinalizePassPersistsProgress(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, events, progress := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)

	for i := 0; i < run.Supply.Count(); i++ {
		answer(t, run, i, 2)
	}

	outcome, err := run.Finalize(ctx, 60)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !outcome.Passed || outcome.Score != 1.0 {
		t.Fatalf("outcome = %+v, want full pass", outcome)
	}

	done, _ := progress.Completed(ctx, "class-5/pattern-identification")
	if !done {
		t.Error("expected progress flag set on pass")
	}
	if len(client.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(client.reports))
	}
	if client.reports[0].Score != 100 {
		t.Errorf("report score = %v, want 100", client.reports[0].Score)
	}
	if client.finishes != 1 {
		t.Errorf("finishes = %d, want 1", client.finishes)
	}

	var finish *store.SessionEventData
	for i := range events.sessions {
		if events.sessions[i].Action == "finish" {
			finish = &events.sessions[i]
		}
	}
	if finish == nil {
		t.Fatal("no finish event recorded")
	}
	if !finish.Passed || finish.CorrectAnswers != outcome.Correct || finish.ElapsedSecs != 60 {
		t.Errorf("finish event = %+v", finish)
	}
}

func TestRunFinalizeFailLeavesProgressUnset(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, _, progress := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)

	// Answer nothing, skip everything.
	forceSkipAndRecord(t, run)

	outcome, err := run.Finalize(ctx, 30)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if outcome.Passed {
		t.Fatal("expected fail")
	}
	done, _ := progress.Completed(ctx, "class-5/pattern-identification")
	if done {
		t.Error("progress flag set on fail")
	}
	// The report still goes out on a fail.
	if len(client.reports) != 1 {
		t.Errorf("reports = %d, want 1", len(client.reports))
	}
}

func TestRunFinalizeIdempotent(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	run, events, _ := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)
	forceSkipAndRecord(t, run)

	first, _ := run.Finalize(ctx, 30)
	second, _ := run.Finalize(ctx, 30)
	if first != second {
		t.Errorf("outcomes differ: %+v vs %+v", first, second)
	}
	if client.finishes != 1 || len(client.reports) != 1 {
		t.Errorf("finishes = %d reports = %d, want 1 each", client.finishes, len(client.reports))
	}

	finishEvents := 0
	for _, e := range events.sessions {
		if e.Action == "finish" {
			finishEvents++
		}
	}
	if finishEvents != 1 {
		t.Errorf("finish events = %d, want 1", finishEvents)
	}
}

func TestRunRestartDealsFreshSequence(t *testing.T) {
	client := &fakeClient{sessionID: "sess-2"}
	run, events, _ := testRun(t, client, 7)
	ctx := context.Background()
	run.Begin(ctx)
	forceSkipAndRecord(t, run)
	run.Finalize(ctx, 30)

	oldRunID := run.RunID
	oldSupply := run.Supply

	if err := run.Restart(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if run.RunID == oldRunID {
		t.Error("run id unchanged after restart")
	}
	if run.Supply == oldSupply {
		t.Error("supply not re-dealt after restart")
	}
	if run.Answers.Len() != 0 {
		t.Errorf("answers = %d after restart, want 0", run.Answers.Len())
	}
	// Restart opens a new backend session.
	if client.creates != 2 {
		t.Errorf("creates = %d, want 2", client.creates)
	}

	starts := 0
	for _, e := range events.sessions {
		if e.Action == "start" {
			starts++
		}
	}
	if starts != 2 {
		t.Errorf("start events = %d, want 2", starts)
	}
}
