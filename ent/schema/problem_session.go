package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProblemSession is one generated math word problem. The problem text and
// correct answer are immutable after creation; solution_steps is the only
// field that ever changes, and only once (absent -> present).
type ProblemSession struct {
	ent.Schema
}

func (ProblemSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable().
			Unique(),
		field.String("problem_text").
			NotEmpty().
			Immutable(),
		field.Float("correct_answer").
			Immutable(),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Immutable(),
		field.Enum("problem_type").
			Values("addition", "subtraction", "multiplication", "division").
			Immutable(),
		field.String("solution_steps").
			Optional().
			Nillable().
			Comment("Worked solution, attached at most once on first request"),
		field.Int("score").
			Immutable().
			Comment("Point value awarded for a correct submission"),
		field.Int("hints_available").
			Default(3),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ProblemSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
