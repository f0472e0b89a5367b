// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathsala/mathsala/ent/progressflag"
)

// ProgressFlag is the model entity for the ProgressFlag schema.
type ProgressFlag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Namespaced topic identifier, e.g. class-5/pattern-identification
	TopicKey string `json:"topic_key,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressFlag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressflag.FieldCompleted:
			values[i] = new(sql.NullBool)
		case progressflag.FieldID:
			values[i] = new(sql.NullInt64)
		case progressflag.FieldTopicKey:
			values[i] = new(sql.NullString)
		case progressflag.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressFlag fields.
func (_m *ProgressFlag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressflag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressflag.FieldTopicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_key", values[i])
			} else if value.Valid {
				_m.TopicKey = value.String
			}
		case progressflag.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case progressflag.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressFlag.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressFlag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressFlag.
// Note that you need to call ProgressFlag.Unwrap() before calling this method if this ProgressFlag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressFlag) Update() *ProgressFlagUpdateOne {
	return NewProgressFlagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressFlag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressFlag) Unwrap() *ProgressFlag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressFlag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressFlag) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressFlag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_key=")
	builder.WriteString(_m.TopicKey)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressFlags is a parsable slice of ProgressFlag.
type ProgressFlags []*ProgressFlag
