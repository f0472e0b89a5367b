package practice

import (
	"testing"

	"github.com/mathsala/mathsala/internal/topic"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		wrong     int
		skipped   int
		total     int
		threshold float64
		wantScore float64
		wantPass  bool
	}{
		{"all correct", 10, 0, 0, 10, 0.8, 1.0, true},
		{"at threshold", 8, 2, 0, 10, 0.8, 0.8, true},
		{"below threshold", 7, 3, 0, 10, 0.8, 0.7, false},
		{"skips count against", 7, 0, 3, 10, 0.8, 0.7, false},
		{"low threshold topic", 4, 4, 0, 8, 0.5, 0.5, true},
		{"nothing answered", 0, 0, 10, 10, 0.8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAnswerStore()
			idx := 0
			for i := 0; i < tt.correct; i++ {
				s.Check(idx, "right", true, 1)
				idx++
			}
			for i := 0; i < tt.wrong; i++ {
				s.Check(idx, "wrong", false, 1)
				idx++
			}
			for i := 0; i < tt.skipped; i++ {
				s.Skip(idx, 1)
				idx++
			}

			o := Evaluate(s, tt.total, tt.threshold, 120)
			if o.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", o.Score, tt.wantScore)
			}
			if o.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", o.Passed, tt.wantPass)
			}
			if o.Correct != tt.correct {
				t.Errorf("Correct = %d, want %d", o.Correct, tt.correct)
			}
			if o.Skipped != tt.skipped {
				t.Errorf("Skipped = %d, want %d", o.Skipped, tt.skipped)
			}
			if o.ElapsedSeconds != 120 {
				t.Errorf("ElapsedSeconds = %d, want 120", o.ElapsedSeconds)
			}
		})
	}
}

func TestEvaluateEmptyRun(t *testing.T) {
	o := Evaluate(NewAnswerStore(), 0, 0.8, 0)
	if o.Score != 0 || o.Passed {
		t.Errorf("empty run: score %v passed %v, want 0 and false", o.Score, o.Passed)
	}
}

func TestBuildReport(t *testing.T) {
	tp := topic.Topic{
		ID:      "class-5/pattern-identification",
		SkillID: 2001,
		Name:    "Pattern Identification",
	}
	o := Outcome{Total: 10, Correct: 9, Score: 0.9, Passed: true, ElapsedSeconds: 300}

	report := BuildReport(o, tp, 42)
	if report.Score != 90 {
		t.Errorf("Score = %v, want 90 (percent)", report.Score)
	}
	if report.Type != "practice" {
		t.Errorf("Type = %q, want practice", report.Type)
	}
	if report.LearnerID != 42 {
		t.Errorf("LearnerID = %d, want 42", report.LearnerID)
	}
	if report.Parameters.SkillID != 2001 || report.Parameters.SkillName != "Pattern Identification" {
		t.Errorf("parameters skill = %d %q", report.Parameters.SkillID, report.Parameters.SkillName)
	}
	if report.Parameters.TotalQuestions != 10 || report.Parameters.CorrectAnswers != 9 {
		t.Errorf("parameters counts = %d/%d", report.Parameters.CorrectAnswers, report.Parameters.TotalQuestions)
	}
	if report.Parameters.TimeTakenSeconds != 300 {
		t.Errorf("TimeTakenSeconds = %d, want 300", report.Parameters.TimeTakenSeconds)
	}
}
