// Code generated by ent, DO NOT EDIT.

package hint

import (
	"entgo.io/ent/dialect/sql"
	"github.com/rahulv/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Hint {
	return predicate.Hint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Hint {
	return predicate.Hint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Hint {
	return predicate.Hint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Hint {
	return predicate.Hint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Hint {
	return predicate.Hint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Hint {
	return predicate.Hint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Hint {
	return predicate.Hint(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldSessionID, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldHintText, v))
}

// HintOrder applies equality check predicate on the "hint_order" field. It's identical to HintOrderEQ.
func HintOrder(v int) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldHintOrder, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Hint {
	return predicate.Hint(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Hint {
	return predicate.Hint(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Hint {
	return predicate.Hint(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Hint {
	return predicate.Hint(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Hint {
	return predicate.Hint(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Hint {
	return predicate.Hint(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Hint {
	return predicate.Hint(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Hint {
	return predicate.Hint(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Hint {
	return predicate.Hint(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Hint {
	return predicate.Hint(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Hint {
	return predicate.Hint(sql.FieldContainsFold(FieldSessionID, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.Hint {
	return predicate.Hint(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.Hint {
	return predicate.Hint(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.Hint {
	return predicate.Hint(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.Hint {
	return predicate.Hint(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.Hint {
	return predicate.Hint(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.Hint {
	return predicate.Hint(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.Hint {
	return predicate.Hint(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.Hint {
	return predicate.Hint(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.Hint {
	return predicate.Hint(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.Hint {
	return predicate.Hint(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.Hint {
	return predicate.Hint(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.Hint {
	return predicate.Hint(sql.FieldContainsFold(FieldHintText, v))
}

// HintOrderEQ applies the EQ predicate on the "hint_order" field.
func HintOrderEQ(v int) predicate.Hint {
	return predicate.Hint(sql.FieldEQ(FieldHintOrder, v))
}

// HintOrderNEQ applies the NEQ predicate on the "hint_order" field.
func HintOrderNEQ(v int) predicate.Hint {
	return predicate.Hint(sql.FieldNEQ(FieldHintOrder, v))
}

// HintOrderIn applies the In predicate on the "hint_order" field.
func HintOrderIn(vs ...int) predicate.Hint {
	return predicate.Hint(sql.FieldIn(FieldHintOrder, vs...))
}

// HintOrderNotIn applies the NotIn predicate on the "hint_order" field.
func HintOrderNotIn(vs ...int) predicate.Hint {
	return predicate.Hint(sql.FieldNotIn(FieldHintOrder, vs...))
}

// HintOrderGT applies the GT predicate on the "hint_order" field.
func HintOrderGT(v int) predicate.Hint {
	return predicate.Hint(sql.FieldGT(FieldHintOrder, v))
}

// HintOrderGTE applies the GTE predicate on the "hint_order" field.
func HintOrderGTE(v int) predicate.Hint {
	return predicate.Hint(sql.FieldGTE(FieldHintOrder, v))
}

// HintOrderLT applies the LT predicate on the "hint_order" field.
func HintOrderLT(v int) predicate.Hint {
	return predicate.Hint(sql.FieldLT(FieldHintOrder, v))
}

// HintOrderLTE applies the LTE predicate on the "hint_order" field.
func HintOrderLTE(v int) predicate.Hint {
	return predicate.Hint(sql.FieldLTE(FieldHintOrder, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hint) predicate.Hint {
	return predicate.Hint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hint) predicate.Hint {
	return predicate.Hint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hint) predicate.Hint {
	return predicate.Hint(sql.NotPredicates(p))
}
