package practice

import (
	"fmt"

	"github.com/mathsala/mathsala/internal/backend"
	"github.com/mathsala/mathsala/internal/topic"
)

// Outcome is the terminal result of one run through a question set.
type Outcome struct {
	Total          int
	Correct        int
	Skipped        int
	Score          float64 // fraction in [0, 1]
	Passed         bool
	Threshold      float64
	ElapsedSeconds int
}

// Evaluate scores a finalized answer store against the topic's mastery
// threshold. Skipped questions count toward Total but never toward
// Correct.
func Evaluate(store *AnswerStore, total int, threshold float64, elapsedSeconds int) Outcome {
	o := Outcome{
		Total:          total,
		Correct:        store.CorrectCount(),
		Skipped:        store.SkippedCount(),
		Threshold:      threshold,
		ElapsedSeconds: elapsedSeconds,
	}
	if total > 0 {
		o.Score = float64(o.Correct) / float64(total)
	}
	o.Passed = o.Score >= threshold
	return o
}

// BuildReport projects an outcome onto the backend report format. The
// score is converted to a percentage for the wire.
func BuildReport(o Outcome, t topic.Topic, learnerID int) backend.Report {
	return backend.Report{
		Title:     fmt.Sprintf("%s Practice Report", t.Name),
		Type:      "practice",
		Score:     o.Score * 100,
		LearnerID: learnerID,
		Parameters: backend.ReportParameters{
			SkillID:          t.SkillID,
			SkillName:        t.Name,
			TotalQuestions:   o.Total,
			CorrectAnswers:   o.Correct,
			TimeTakenSeconds: o.ElapsedSeconds,
		},
	}
}
