// Code generated by ent, DO NOT EDIT.

package hint

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hint type in the database.
	Label = "hint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldHintText holds the string denoting the hint_text field in the database.
	FieldHintText = "hint_text"
	// FieldHintOrder holds the string denoting the hint_order field in the database.
	FieldHintOrder = "hint_order"
	// Table holds the table name of the hint in the database.
	Table = "hints"
)

// Columns holds all SQL columns for hint fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldHintText,
	FieldHintOrder,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	HintTextValidator func(string) error
	// HintOrderValidator is a validator for the "hint_order" field. It is called by the builders before save.
	HintOrderValidator func(int) error
)

// OrderOption defines the ordering options for the Hint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByHintText orders the results by the hint_text field.
func ByHintText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintText, opts...).ToFunc()
}

// ByHintOrder orders the results by the hint_order field.
func ByHintOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintOrder, opts...).ToFunc()
}
