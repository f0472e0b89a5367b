package store

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/ent"
	"github.com/mathsala/mathsala/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetTopicID(data.TopicID).
		SetAction(data.Action).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSkipped(data.Skipped).
		SetElapsedSecs(data.ElapsedSecs).
		SetPassed(data.Passed)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("finish")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}

	runs := make([]RunSummary, 0, len(events))
	for _, e := range events {
		runs = append(runs, RunSummary{
			RunID:          e.RunID,
			TopicID:        e.TopicID,
			Timestamp:      e.Timestamp,
			TotalQuestions: e.TotalQuestions,
			CorrectAnswers: e.CorrectAnswers,
			Skipped:        e.Skipped,
			ElapsedSecs:    e.ElapsedSecs,
			Passed:         e.Passed,
		})
	}
	return runs, nil
}
