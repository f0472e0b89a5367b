package practice

import "testing"

func TestCheckCommitsOnce(t *testing.T) {
	s := NewAnswerStore()

	rec, committed := s.Check(0, "42", true, 15)
	if !committed {
		t.Fatal("expected first check to commit")
	}
	if !rec.IsCorrect || rec.SelectedValue != "42" || rec.TimeSpentSeconds != 15 {
		t.Errorf("unexpected record: %+v", rec)
	}

	// Re-check with a different answer must not alter the record.
	rec, committed = s.Check(0, "99", false, 30)
	if committed {
		t.Fatal("expected second check to be rejected")
	}
	if rec.SelectedValue != "42" || !rec.IsCorrect || rec.TimeSpentSeconds != 15 {
		t.Errorf("record changed on re-check: %+v", rec)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSkipCommitsOnce(t *testing.T) {
	s := NewAnswerStore()

	rec, committed := s.Skip(3, 8)
	if !committed {
		t.Fatal("expected skip to commit")
	}
	if !rec.IsSkipped || rec.IsCorrect || rec.SelectedValue != "" {
		t.Errorf("unexpected skip record: %+v", rec)
	}

	// Re-skipping changes nothing.
	rec, committed = s.Skip(3, 4)
	if committed {
		t.Fatal("expected second skip to be rejected")
	}
	if rec.TimeSpentSeconds != 8 {
		t.Errorf("skip record changed on re-skip: %+v", rec)
	}

	// And a skip cannot overwrite a check.
	s.Check(4, "7", true, 5)
	if _, committed := s.Skip(4, 1); committed {
		t.Fatal("expected skip after check to be rejected")
	}
}

func TestCheckReplacesSkip(t *testing.T) {
	s := NewAnswerStore()

	s.Skip(3, 8)

	// Answering a skipped question is the one permitted overwrite. The
	// graded record keeps the time from both visits.
	rec, committed := s.Check(3, "7", true, 5)
	if !committed {
		t.Fatal("expected check to replace the skip")
	}
	if rec.IsSkipped || !rec.IsCorrect || rec.SelectedValue != "7" {
		t.Errorf("unexpected record after replacing skip: %+v", rec)
	}
	if rec.TimeSpentSeconds != 13 {
		t.Errorf("TimeSpentSeconds = %d, want 13", rec.TimeSpentSeconds)
	}
	if s.SkippedCount() != 0 {
		t.Errorf("SkippedCount = %d, want 0", s.SkippedCount())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount())
	}

	// The graded record is now immutable.
	if _, committed := s.Check(3, "9", false, 2); committed {
		t.Fatal("expected re-check of graded record to be rejected")
	}
	if _, committed := s.Skip(3, 1); committed {
		t.Fatal("expected skip of graded record to be rejected")
	}
}

func TestCountsExcludeSkips(t *testing.T) {
	s := NewAnswerStore()
	s.Check(0, "a", true, 1)
	s.Check(1, "b", false, 1)
	s.Check(2, "c", true, 1)
	s.Skip(3, 1)
	s.Skip(4, 1)

	if got := s.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount = %d, want 2", got)
	}
	if got := s.SkippedCount(); got != 2 {
		t.Errorf("SkippedCount = %d, want 2", got)
	}
}

func TestNegativeSecondsClamped(t *testing.T) {
	s := NewAnswerStore()
	rec, _ := s.Check(0, "a", true, -5)
	if rec.TimeSpentSeconds != 0 {
		t.Errorf("TimeSpentSeconds = %d, want 0", rec.TimeSpentSeconds)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewAnswerStore()
	s.Check(0, "a", true, 1)
	s.Skip(1, 1)

	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len = %d after reset, want 0", s.Len())
	}

	// Indices are writable again.
	if _, committed := s.Check(0, "b", false, 2); !committed {
		t.Error("expected check to commit after reset")
	}
}

func TestIndicesSorted(t *testing.T) {
	s := NewAnswerStore()
	for _, i := range []int{4, 0, 2} {
		s.Check(i, "x", false, 1)
	}
	got := s.Indices()
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Indices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices = %v, want %v", got, want)
		}
	}
}
