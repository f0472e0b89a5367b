package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	first, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second != first+1 {
		t.Errorf("sequence not monotonic: %d then %d", first, second)
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{RunID: "run-1", TopicID: "class-5/pattern-identification", QuestionIndex: 1, QuestionText: "2, 4, 6, ?", CorrectAnswer: "8", LearnerAnswer: "8", Correct: true, TimeSpentSecs: 12, Kind: "free_text", Logged: true},
		{RunID: "run-1", TopicID: "class-5/pattern-identification", QuestionIndex: 0, QuestionText: "1, 2, 4, ?", CorrectAnswer: "8", LearnerAnswer: "6", Correct: false, TimeSpentSecs: 20, Kind: "multiple_choice"},
		{RunID: "run-2", TopicID: "class-5/fraction-to-decimal", QuestionIndex: 0, QuestionText: "3/10 = ?", CorrectAnswer: "0.3", LearnerAnswer: "", Skipped: true, Kind: "free_text"},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	got, err := repo.AttemptsForRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("attempts for run: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts = %d, want 2", len(got))
	}
	// Question order, not insertion order.
	if got[0].QuestionIndex != 0 || got[1].QuestionIndex != 1 {
		t.Errorf("order = [%d %d], want [0 1]", got[0].QuestionIndex, got[1].QuestionIndex)
	}
	if !got[1].Correct {
		t.Error("expected second attempt correct")
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.TopicAccuracy(ctx, "class-5/finding-perimeter")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0 with no attempts", acc)
	}

	data := []bool{true, true, false, true}
	for i, correct := range data {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			RunID:         "run-acc",
			TopicID:       "class-5/finding-perimeter",
			QuestionIndex: i,
			QuestionText:  "q",
			CorrectAnswer: "a",
			LearnerAnswer: "a",
			Correct:       correct,
			Kind:          "free_text",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, err = repo.TopicAccuracy(ctx, "class-5/finding-perimeter")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestSessionEventsAndRecentRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		RunID: "run-1", TopicID: "class-5/pattern-identification", Action: "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	finishes := []SessionEventData{
		{RunID: "run-1", SessionID: "sess-abc", TopicID: "class-5/pattern-identification", Action: "finish", TotalQuestions: 10, CorrectAnswers: 9, ElapsedSecs: 300, Passed: true},
		{RunID: "run-2", TopicID: "class-5/fraction-to-decimal", Action: "finish", TotalQuestions: 10, CorrectAnswers: 4, Skipped: 2, ElapsedSecs: 240},
	}
	for i, f := range finishes {
		if err := repo.AppendSessionEvent(ctx, f); err != nil {
			t.Fatalf("append finish %d: %v", i, err)
		}
	}

	runs, err := repo.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2 (start events excluded)", len(runs))
	}
	// Newest first.
	if runs[0].RunID != "run-2" {
		t.Errorf("runs[0] = %s, want run-2", runs[0].RunID)
	}
	if !runs[1].Passed {
		t.Error("expected run-1 passed")
	}

	limited, err := repo.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("recent runs limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited runs = %d, want 1", len(limited))
	}
}

func TestProgressFlagUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	done, err := repo.Completed(ctx, "class-5/pattern-identification")
	if err != nil {
		t.Fatalf("completed (missing): %v", err)
	}
	if done {
		t.Fatal("expected false for unknown topic")
	}

	if err := repo.SetCompleted(ctx, "class-5/pattern-identification", true); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	done, err = repo.Completed(ctx, "class-5/pattern-identification")
	if err != nil {
		t.Fatalf("completed: %v", err)
	}
	if !done {
		t.Fatal("expected true after set")
	}

	// Second set updates in place.
	if err := repo.SetCompleted(ctx, "class-5/pattern-identification", true); err != nil {
		t.Fatalf("set completed again: %v", err)
	}
	count, err := s.Client().ProgressFlag.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("flags = %d, want 1", count)
	}
}
