// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulv/mathquest/ent/hint"
)

// Hint is the model entity for the Hint schema.
type Hint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// HintText holds the value of the "hint_text" field.
	HintText string `json:"hint_text,omitempty"`
	// 1-based position within the session's batch
	HintOrder    int `json:"hint_order,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hint.FieldID, hint.FieldHintOrder:
			values[i] = new(sql.NullInt64)
		case hint.FieldSessionID, hint.FieldHintText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hint fields.
func (_m *Hint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hint.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case hint.FieldHintText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_text", values[i])
			} else if value.Valid {
				_m.HintText = value.String
			}
		case hint.FieldHintOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hint_order", values[i])
			} else if value.Valid {
				_m.HintOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hint.
// This includes values selected through modifiers, order, etc.
func (_m *Hint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Hint.
// Note that you need to call Hint.Unwrap() before calling this method if this Hint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hint) Update() *HintUpdateOne {
	return NewHintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hint) Unwrap() *Hint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hint) String() string {
	var builder strings.Builder
	builder.WriteString("Hint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("hint_text=")
	builder.WriteString(_m.HintText)
	builder.WriteString(", ")
	builder.WriteString("hint_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintOrder))
	builder.WriteByte(')')
	return builder.String()
}

// Hints is a parsable slice of Hint.
type Hints []*Hint
