package store

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/ent"
	"github.com/mathsala/mathsala/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetTopicID(data.TopicID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetKind(data.Kind).
		SetLogged(data.Logged).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptsForRun(ctx context.Context, runID string) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.RunID(runID)).
		Order(ent.Asc(attemptevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for run: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			QuestionIndex: e.QuestionIndex,
			QuestionText:  e.QuestionText,
			CorrectAnswer: e.CorrectAnswer,
			LearnerAnswer: e.LearnerAnswer,
			Correct:       e.Correct,
			Skipped:       e.Skipped,
			TimeSpentSecs: e.TimeSpentSecs,
			Timestamp:     e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.TopicID(topicID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
