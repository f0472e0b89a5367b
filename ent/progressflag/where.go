// Code generated by ent, DO NOT EDIT.

package progressflag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathsala/mathsala/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLTE(FieldID, id))
}

// TopicKey applies equality check predicate on the "topic_key" field. It's identical to TopicKeyEQ.
func TopicKey(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldTopicKey, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldCompleted, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldUpdatedAt, v))
}

// TopicKeyEQ applies the EQ predicate on the "topic_key" field.
func TopicKeyEQ(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldTopicKey, v))
}

// TopicKeyNEQ applies the NEQ predicate on the "topic_key" field.
func TopicKeyNEQ(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNEQ(FieldTopicKey, v))
}

// TopicKeyIn applies the In predicate on the "topic_key" field.
func TopicKeyIn(vs ...string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldIn(FieldTopicKey, vs...))
}

// TopicKeyNotIn applies the NotIn predicate on the "topic_key" field.
func TopicKeyNotIn(vs ...string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNotIn(FieldTopicKey, vs...))
}

// TopicKeyGT applies the GT predicate on the "topic_key" field.
func TopicKeyGT(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGT(FieldTopicKey, v))
}

// TopicKeyGTE applies the GTE predicate on the "topic_key" field.
func TopicKeyGTE(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGTE(FieldTopicKey, v))
}

// TopicKeyLT applies the LT predicate on the "topic_key" field.
func TopicKeyLT(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLT(FieldTopicKey, v))
}

// TopicKeyLTE applies the LTE predicate on the "topic_key" field.
func TopicKeyLTE(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLTE(FieldTopicKey, v))
}

// TopicKeyContains applies the Contains predicate on the "topic_key" field.
func TopicKeyContains(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldContains(FieldTopicKey, v))
}

// TopicKeyHasPrefix applies the HasPrefix predicate on the "topic_key" field.
func TopicKeyHasPrefix(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldHasPrefix(FieldTopicKey, v))
}

// TopicKeyHasSuffix applies the HasSuffix predicate on the "topic_key" field.
func TopicKeyHasSuffix(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldHasSuffix(FieldTopicKey, v))
}

// TopicKeyEqualFold applies the EqualFold predicate on the "topic_key" field.
func TopicKeyEqualFold(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEqualFold(FieldTopicKey, v))
}

// TopicKeyContainsFold applies the ContainsFold predicate on the "topic_key" field.
func TopicKeyContainsFold(v string) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldContainsFold(FieldTopicKey, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNEQ(FieldCompleted, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressFlag) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressFlag) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressFlag) predicate.ProgressFlag {
	return predicate.ProgressFlag(sql.NotPredicates(p))
}
