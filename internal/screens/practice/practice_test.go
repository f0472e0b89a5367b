package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathsala/mathsala/internal/backend"
	engine "github.com/mathsala/mathsala/internal/practice"
	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
)

// mockClient implements backend.Client for testing.
type mockClient struct {
	attempts []backend.AttemptLogEntry
	reports  []backend.Report
	finishes int
}

func (m *mockClient) CreateSession(context.Context, int, int) (string, error) {
	return "sess-test", nil
}
func (m *mockClient) RecordAttempt(_ context.Context, entry backend.AttemptLogEntry) error {
	m.attempts = append(m.attempts, entry)
	return nil
}
func (m *mockClient) FinishSession(context.Context, string) error {
	m.finishes++
	return nil
}
func (m *mockClient) CreateReport(_ context.Context, report backend.Report) error {
	m.reports = append(m.reports, report)
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) RecentRuns(context.Context, int) ([]store.RunSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptsForRun(context.Context, string) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) TopicAccuracy(context.Context, string) (float64, error) {
	return 0, nil
}

// mockProgress implements store.ProgressRepo for testing.
type mockProgress struct {
	flags map[string]bool
}

func (m *mockProgress) Completed(_ context.Context, topicKey string) (bool, error) {
	return m.flags[topicKey], nil
}
func (m *mockProgress) SetCompleted(_ context.Context, topicKey string, completed bool) error {
	m.flags[topicKey] = completed
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTopic() topic.Topic {
	return topic.Topic{
		ID:               "class-5/pattern-identification",
		SkillID:          2001,
		Name:             "Pattern Identification",
		Grade:            "class-5",
		QuestionCount:    3,
		MasteryThreshold: 0.7,
		Supply:           topic.SupplyConfig{Kind: topic.SupplyGenerated, Family: "number-patterns"},
	}
}

func buildScreen(t *testing.T) (*Screen, *mockClient, *mockEventRepo, *mockProgress) {
	t.Helper()
	client := &mockClient{}
	events := &mockEventRepo{}
	progress := &mockProgress{flags: make(map[string]bool)}

	s := New(testTopic(), engine.Config{
		Client:    client,
		Events:    events,
		Progress:  progress,
		LearnerID: 7,
	})
	if s.errMsg != "" {
		t.Fatalf("screen failed to build: %s", s.errMsg)
	}
	s.startTime = time.Now()
	return s, client, events, progress
}

// testScreen builds a screen with the session create already resolved,
// so attempt logs flow straight through.
func testScreen(t *testing.T) (*Screen, *mockClient, *mockEventRepo, *mockProgress) {
	t.Helper()
	s, client, events, progress := buildScreen(t)
	s.Update(beginDoneMsg{Err: s.run.Begin(context.Background())})
	return s, client, events, progress
}

// correctKey returns the number key selecting the correct option of
// the current question.
func correctKey(t *testing.T, s *Screen) tea.KeyPressMsg {
	t.Helper()
	for i, opt := range s.q.Options {
		if opt == s.q.Answer {
			return keyPress(rune('1' + i))
		}
	}
	t.Fatalf("correct answer %q not among options %v", s.q.Answer, s.q.Options)
	return tea.KeyPressMsg{}
}

// deliver executes cmd and feeds engine messages back into the screen.
// Navigation side commands (input focus, ticks) are left unexecuted.
func deliver(s *Screen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch m := cmd().(type) {
	case attemptRecordedMsg, finalizedMsg, retryDoneMsg, beginDoneMsg:
		s.Update(m)
	}
}

func TestTitleIsTopicName(t *testing.T) {
	s, _, _, _ := testScreen(t)
	if s.Title() != "Pattern Identification" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestAnswerShowsFeedbackAndRecords(t *testing.T) {
	s, client, events, _ := testScreen(t)

	_, cmd := s.Update(correctKey(t, s))
	if !s.sel.Submitted || !s.sel.Correct {
		t.Fatalf("selection = %+v, want submitted correct", s.sel)
	}
	deliver(s, cmd)

	if len(client.attempts) != 1 {
		t.Fatalf("backend attempts = %d, want 1", len(client.attempts))
	}
	if !client.attempts[0].IsCorrect {
		t.Error("expected correct attempt")
	}
	if len(events.attempts) != 1 {
		t.Errorf("local attempts = %d, want 1", len(events.attempts))
	}
}

func TestAnswerLockedAfterSubmit(t *testing.T) {
	s, _, events, _ := testScreen(t)

	_, cmd := s.Update(correctKey(t, s))
	deliver(s, cmd)
	rec, _ := s.run.Answers.Get(0)

	// Number keys no longer re-submit.
	_, cmd = s.Update(keyPress('1'))
	deliver(s, cmd)

	after, _ := s.run.Answers.Get(0)
	if rec != after {
		t.Errorf("record changed after lock: %+v vs %+v", rec, after)
	}
	if len(events.attempts) != 1 {
		t.Errorf("local attempts = %d, want 1", len(events.attempts))
	}
}

func TestNavigationRestoresCommittedState(t *testing.T) {
	s, _, _, _ := testScreen(t)

	key := correctKey(t, s)
	_, cmd := s.Update(key)
	deliver(s, cmd)
	submitted := s.sel

	// Forward to question 2, then back.
	s.Update(specialKey(tea.KeyEnter))
	if s.index != 1 {
		t.Fatalf("index = %d, want 1", s.index)
	}
	if s.sel.Submitted {
		t.Fatal("fresh question should be unsubmitted")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.index != 0 {
		t.Fatalf("index = %d, want 0", s.index)
	}
	if s.sel != submitted {
		t.Errorf("selection not restored: %+v vs %+v", s.sel, submitted)
	}
}

func TestSkipAdvancesAndCommits(t *testing.T) {
	s, _, _, _ := testScreen(t)

	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})

	rec, ok := s.run.Answers.Get(0)
	if !ok || !rec.IsSkipped {
		t.Fatalf("record = %+v ok = %v, want committed skip", rec, ok)
	}
	if s.index != 1 {
		t.Errorf("index = %d, want 1 after skip", s.index)
	}
}

func TestUnansweredEndReachesReview(t *testing.T) {
	s, _, _, _ := testScreen(t)

	// Tab past every question without answering.
	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab))
	}

	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want review", s.phase)
	}
	if len(s.outstanding) != 3 {
		t.Errorf("outstanding = %v, want all three", s.outstanding)
	}
}

func TestReviewJumpBackAndReturn(t *testing.T) {
	s, _, _, _ := testScreen(t)

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want review", s.phase)
	}

	// Jump to the second outstanding question.
	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseQuestion || s.index != 1 {
		t.Fatalf("phase %d index %d, want question 1", s.phase, s.index)
	}

	// Answering it returns to the review list.
	_, cmd := s.Update(correctKey(t, s))
	deliver(s, cmd)
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	deliver(s, cmd)

	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want back in review", s.phase)
	}
	if len(s.outstanding) != 2 {
		t.Errorf("outstanding = %v, want two left", s.outstanding)
	}
}

func TestAnswerSkippedQuestionFromReview(t *testing.T) {
	s, client, _, _ := testScreen(t)

	// Skip the first two questions, answer the last.
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	_, cmd := s.Update(correctKey(t, s))
	deliver(s, cmd)
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	deliver(s, cmd)

	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want review", s.phase)
	}
	if len(s.outstanding) != 2 {
		t.Fatalf("outstanding = %v, want the two skips", s.outstanding)
	}

	// Jump back to the first skip; it must accept an answer.
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseQuestion || s.index != 0 {
		t.Fatalf("phase %d index %d, want question 0", s.phase, s.index)
	}
	if s.locked() {
		t.Fatal("skipped question locked on revisit")
	}

	_, cmd = s.Update(correctKey(t, s))
	deliver(s, cmd)

	rec, ok := s.run.Answers.Get(0)
	if !ok || rec.IsSkipped || !rec.IsCorrect {
		t.Fatalf("record = %+v ok = %v, want graded correct", rec, ok)
	}
	last := client.attempts[len(client.attempts)-1]
	if last.StudentAnswer == "" || !last.IsCorrect {
		t.Errorf("logged attempt = %+v, want graded correct", last)
	}

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	deliver(s, cmd)
	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want back in review", s.phase)
	}
	if len(s.outstanding) != 1 || s.outstanding[0] != 1 {
		t.Errorf("outstanding = %v, want only the second skip", s.outstanding)
	}
}

func TestAttemptLogsWaitForSessionCreate(t *testing.T) {
	s, client, _, _ := buildScreen(t)

	_, cmd := s.Update(correctKey(t, s))
	if cmd != nil {
		t.Fatal("attempt command issued before the session create resolved")
	}
	if len(client.attempts) != 0 {
		t.Fatalf("backend attempts = %d, want 0 before session create", len(client.attempts))
	}

	if err := s.run.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	_, cmd = s.Update(beginDoneMsg{})
	deliver(s, cmd)

	if len(client.attempts) != 1 {
		t.Fatalf("backend attempts = %d, want 1 after session create", len(client.attempts))
	}
}

func TestSubmitAnywayForcesSkipsAndFinalizes(t *testing.T) {
	s, client, events, _ := testScreen(t)

	_, cmd := s.Update(correctKey(t, s))
	deliver(s, cmd)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))

	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want review", s.phase)
	}

	_, cmd = s.Update(keyPress('a'))
	if s.phase != phaseFinalizing {
		t.Fatalf("phase = %d, want finalizing", s.phase)
	}
	deliver(s, cmd)

	if s.phase != phaseResults {
		t.Fatalf("phase = %d, want results", s.phase)
	}
	if s.outcome.Skipped != 2 || s.outcome.Correct != 1 {
		t.Errorf("outcome = %+v", s.outcome)
	}
	// 1 answered + 2 forced skips mirrored locally.
	if len(events.attempts) != 3 {
		t.Errorf("local attempts = %d, want 3", len(events.attempts))
	}
	if len(client.reports) != 1 {
		t.Errorf("reports = %d, want 1", len(client.reports))
	}
}

func TestFullPassMarksTopicComplete(t *testing.T) {
	s, client, _, progress := testScreen(t)

	for i := 0; i < 3; i++ {
		_, cmd := s.Update(correctKey(t, s))
		deliver(s, cmd)
		_, cmd = s.Update(specialKey(tea.KeyEnter))
		deliver(s, cmd)
	}

	if s.phase != phaseResults {
		t.Fatalf("phase = %d, want results", s.phase)
	}
	if !s.outcome.Passed {
		t.Fatalf("outcome = %+v, want pass", s.outcome)
	}
	if !progress.flags["class-5/pattern-identification"] {
		t.Error("expected progress flag set")
	}
	if len(client.reports) != 1 {
		t.Errorf("reports = %d, want 1", len(client.reports))
	}
}

func TestRetryDealsFreshRun(t *testing.T) {
	s, _, _, progress := testScreen(t)

	// Skip everything, submit anyway, fail.
	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	_, cmd := s.Update(keyPress('a'))
	deliver(s, cmd)
	if s.outcome.Passed {
		t.Fatal("expected fail")
	}
	oldRunID := s.run.RunID

	_, cmd = s.Update(keyPress('r'))
	deliver(s, cmd)

	if s.phase != phaseQuestion || s.index != 0 {
		t.Fatalf("phase %d index %d, want question 0", s.phase, s.index)
	}
	if s.run.RunID == oldRunID {
		t.Error("run id unchanged after retry")
	}
	if s.run.Answers.Len() != 0 {
		t.Errorf("answers = %d after retry, want 0", s.run.Answers.Len())
	}
	if s.sel.Submitted {
		t.Error("selection should be fresh after retry")
	}
	if progress.flags["class-5/pattern-identification"] {
		t.Error("progress flag set on failed run")
	}
}

func TestFocusLossSuspendsQuestionTimer(t *testing.T) {
	s, _, _, _ := testScreen(t)

	s.Update(tea.BlurMsg{})
	if s.tracker.Active() {
		t.Fatal("tracker still active after blur")
	}
	s.Update(tea.FocusMsg{})
	if !s.tracker.Active() {
		t.Fatal("tracker not resumed after focus")
	}
}

func TestViewRendersAllPhases(t *testing.T) {
	s, _, _, _ := testScreen(t)

	if s.View(80, 24) == "" {
		t.Error("empty question view")
	}

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	if s.View(80, 24) == "" {
		t.Error("empty review view")
	}

	_, cmd := s.Update(keyPress('a'))
	if s.View(80, 24) == "" {
		t.Error("empty finalizing view")
	}
	deliver(s, cmd)
	if s.View(80, 24) == "" {
		t.Error("empty results view")
	}
}
