// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Hint is the predicate function for hint builders.
type Hint func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProblemSession is the predicate function for problemsession builders.
type ProblemSession func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
