// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsala/mathsala/ent/predicate"
	"github.com/mathsala/mathsala/ent/progressflag"
)

// ProgressFlagUpdate is the builder for updating ProgressFlag entities.
type ProgressFlagUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressFlagMutation
}

// Where appends a list predicates to the ProgressFlagUpdate builder.
func (_u *ProgressFlagUpdate) Where(ps ...predicate.ProgressFlag) *ProgressFlagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *ProgressFlagUpdate) SetTopicKey(v string) *ProgressFlagUpdate {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *ProgressFlagUpdate) SetNillableTopicKey(v *string) *ProgressFlagUpdate {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressFlagUpdate) SetCompleted(v bool) *ProgressFlagUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressFlagUpdate) SetNillableCompleted(v *bool) *ProgressFlagUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressFlagUpdate) SetUpdatedAt(v time.Time) *ProgressFlagUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressFlagMutation object of the builder.
func (_u *ProgressFlagUpdate) Mutation() *ProgressFlagMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressFlagUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressFlagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressFlagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressFlagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressFlagUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressflag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressFlagUpdate) check() error {
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := progressflag.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "ProgressFlag.topic_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressFlagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressflag.Table, progressflag.Columns, sqlgraph.NewFieldSpec(progressflag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(progressflag.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressflag.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressflag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressFlagUpdateOne is the builder for updating a single ProgressFlag entity.
type ProgressFlagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressFlagMutation
}

// SetTopicKey sets the "topic_key" field.
func (_u *ProgressFlagUpdateOne) SetTopicKey(v string) *ProgressFlagUpdateOne {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *ProgressFlagUpdateOne) SetNillableTopicKey(v *string) *ProgressFlagUpdateOne {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressFlagUpdateOne) SetCompleted(v bool) *ProgressFlagUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressFlagUpdateOne) SetNillableCompleted(v *bool) *ProgressFlagUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressFlagUpdateOne) SetUpdatedAt(v time.Time) *ProgressFlagUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressFlagMutation object of the builder.
func (_u *ProgressFlagUpdateOne) Mutation() *ProgressFlagMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressFlagUpdate builder.
func (_u *ProgressFlagUpdateOne) Where(ps ...predicate.ProgressFlag) *ProgressFlagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressFlagUpdateOne) Select(field string, fields ...string) *ProgressFlagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressFlag entity.
func (_u *ProgressFlagUpdateOne) Save(ctx context.Context) (*ProgressFlag, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressFlagUpdateOne) SaveX(ctx context.Context) *ProgressFlag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressFlagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressFlagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressFlagUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressflag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressFlagUpdateOne) check() error {
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := progressflag.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "ProgressFlag.topic_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressFlagUpdateOne) sqlSave(ctx context.Context) (_node *ProgressFlag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressflag.Table, progressflag.Columns, sqlgraph.NewFieldSpec(progressflag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressFlag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressflag.FieldID)
		for _, f := range fields {
			if !progressflag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressflag.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(progressflag.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressflag.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressflag.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressFlag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
