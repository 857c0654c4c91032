package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Hint is one progressive hint for a problem session. Hints are written as
// a complete batch in a single transaction; ordinals are dense from 1.
type Hint struct {
	ent.Schema
}

func (Hint) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("hint_text").
			NotEmpty().
			Immutable(),
		field.Int("hint_order").
			Min(1).
			Immutable().
			Comment("1-based position within the session's batch"),
	}
}

func (Hint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "hint_order").Unique(),
	}
}
