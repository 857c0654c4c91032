package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is one graded answer attempt. A session may accumulate any
// number of submissions; each is an independent immutable record.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.Float("user_answer").
			Immutable(),
		field.Bool("is_correct").
			Immutable(),
		field.String("feedback_text").
			Immutable(),
		field.Int("points_earned").
			Immutable().
			Comment("0 unless correct, in which case the session's score"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}
