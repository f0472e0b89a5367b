package store

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/ent"
	"github.com/mathsala/mathsala/ent/progressflag"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Completed(ctx context.Context, topicKey string) (bool, error) {
	flag, err := r.client.ProgressFlag.Query().
		Where(progressflag.TopicKey(topicKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query progress flag: %w", err)
	}
	return flag.Completed, nil
}

func (r *progressRepo) SetCompleted(ctx context.Context, topicKey string, completed bool) error {
	flag, err := r.client.ProgressFlag.Query().
		Where(progressflag.TopicKey(topicKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress flag: %w", err)
		}
		_, err = r.client.ProgressFlag.Create().
			SetTopicKey(topicKey).
			SetCompleted(completed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress flag: %w", err)
		}
		return nil
	}

	_, err = flag.Update().SetCompleted(completed).Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress flag: %w", err)
	}
	return nil
}
