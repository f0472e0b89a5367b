// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsala/mathsala/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AttemptEventCreate) SetRunID(v string) *AttemptEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *AttemptEventCreate) SetTopicID(v string) *AttemptEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *AttemptEventCreate) SetQuestionIndex(v int) *AttemptEventCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *AttemptEventCreate) SetQuestionText(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AttemptEventCreate) SetCorrectAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_c *AttemptEventCreate) SetLearnerAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetLearnerAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *AttemptEventCreate) SetSkipped(v bool) *AttemptEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *AttemptEventCreate) SetTimeSpentSecs(v int) *AttemptEventCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AttemptEventCreate) SetKind(v string) *AttemptEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLogged sets the "logged" field.
func (_c *AttemptEventCreate) SetLogged(v bool) *AttemptEventCreate {
	_c.mutation.SetLogged(v)
	return _c
}

// SetNillableLogged sets the "logged" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableLogged(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetLogged(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Logged(); !ok {
		v := attemptevent.DefaultLogged
		_c.mutation.SetLogged(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AttemptEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := attemptevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "AttemptEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "AttemptEvent.question_index"`)}
	}
	if v, ok := _c.mutation.QuestionIndex(); ok {
		if err := attemptevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "AttemptEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := attemptevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AttemptEvent.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := attemptevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		return &ValidationError{Name: "learner_answer", err: errors.New(`ent: missing required field "AttemptEvent.learner_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "AttemptEvent.skipped"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "AttemptEvent.time_spent_secs"`)}
	}
	if v, ok := _c.mutation.TimeSpentSecs(); ok {
		if err := attemptevent.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.time_spent_secs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AttemptEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Logged(); !ok {
		return &ValidationError{Name: "logged", err: errors.New(`ent: missing required field "AttemptEvent.logged"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(attemptevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptevent.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.LearnerAnswer(); ok {
		_spec.SetField(attemptevent.FieldLearnerAnswer, field.TypeString, value)
		_node.LearnerAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Logged(); ok {
		_spec.SetField(attemptevent.FieldLogged, field.TypeBool, value)
		_node.Logged = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
