// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsala/mathsala/ent/progressflag"
)

// ProgressFlagCreate is the builder for creating a ProgressFlag entity.
type ProgressFlagCreate struct {
	config
	mutation *ProgressFlagMutation
	hooks    []Hook
}

// SetTopicKey sets the "topic_key" field.
func (_c *ProgressFlagCreate) SetTopicKey(v string) *ProgressFlagCreate {
	_c.mutation.SetTopicKey(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ProgressFlagCreate) SetCompleted(v bool) *ProgressFlagCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ProgressFlagCreate) SetNillableCompleted(v *bool) *ProgressFlagCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressFlagCreate) SetUpdatedAt(v time.Time) *ProgressFlagCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressFlagCreate) SetNillableUpdatedAt(v *time.Time) *ProgressFlagCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressFlagMutation object of the builder.
func (_c *ProgressFlagCreate) Mutation() *ProgressFlagMutation {
	return _c.mutation
}

// Save creates the ProgressFlag in the database.
func (_c *ProgressFlagCreate) Save(ctx context.Context) (*ProgressFlag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressFlagCreate) SaveX(ctx context.Context) *ProgressFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressFlagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressFlagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressFlagCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := progressflag.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressflag.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressFlagCreate) check() error {
	if _, ok := _c.mutation.TopicKey(); !ok {
		return &ValidationError{Name: "topic_key", err: errors.New(`ent: missing required field "ProgressFlag.topic_key"`)}
	}
	if v, ok := _c.mutation.TopicKey(); ok {
		if err := progressflag.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "ProgressFlag.topic_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ProgressFlag.completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressFlag.updated_at"`)}
	}
	return nil
}

func (_c *ProgressFlagCreate) sqlSave(ctx context.Context) (*ProgressFlag, error) {
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

func (_c *ProgressFlagCreate) createSpec() (*ProgressFlag, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressFlag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressflag.Table, sqlgraph.NewFieldSpec(progressflag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicKey(); ok {
		_spec.SetField(progressflag.FieldTopicKey, field.TypeString, value)
		_node.TopicKey = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(progressflag.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressflag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressFlagCreateBulk is the builder for creating many ProgressFlag entities in bulk.
type ProgressFlagCreateBulk struct {
	config
	err      error
	builders []*ProgressFlagCreate
}

// Save creates the ProgressFlag entities in the database.
func (_c *ProgressFlagCreateBulk) Save(ctx context.Context) ([]*ProgressFlag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressFlag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressFlagMutation)
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
func (_c *ProgressFlagCreateBulk) SaveX(ctx context.Context) []*ProgressFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressFlagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressFlagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
