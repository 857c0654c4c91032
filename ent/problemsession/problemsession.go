// Code generated by ent, DO NOT EDIT.

package problemsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the problemsession type in the database.
	Label = "problem_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProblemText holds the string denoting the problem_text field in the database.
	FieldProblemText = "problem_text"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldProblemType holds the string denoting the problem_type field in the database.
	FieldProblemType = "problem_type"
	// FieldSolutionSteps holds the string denoting the solution_steps field in the database.
	FieldSolutionSteps = "solution_steps"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldHintsAvailable holds the string denoting the hints_available field in the database.
	FieldHintsAvailable = "hints_available"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the problemsession in the database.
	Table = "problem_sessions"
)

// Columns holds all SQL columns for problemsession fields.
var Columns = []string{
	FieldID,
	FieldProblemText,
	FieldCorrectAnswer,
	FieldDifficulty,
	FieldProblemType,
	FieldSolutionSteps,
	FieldScore,
	FieldHintsAvailable,
	FieldCreatedAt,
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
	// ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	ProblemTextValidator func(string) error
	// DefaultHintsAvailable holds the default value on creation for the "hints_available" field.
	DefaultHintsAvailable int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// Difficulty defines the type for the "difficulty" enum field.
type Difficulty string

// Difficulty values.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyValidator is a validator for the "difficulty" field enum values. It is called by the builders before save.
func DifficultyValidator(d Difficulty) error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("problemsession: invalid enum value for difficulty field: %q", d)
	}
}

// ProblemType defines the type for the "problem_type" enum field.
type ProblemType string

// ProblemType values.
const (
	ProblemTypeAddition       ProblemType = "addition"
	ProblemTypeSubtraction    ProblemType = "subtraction"
	ProblemTypeMultiplication ProblemType = "multiplication"
	ProblemTypeDivision       ProblemType = "division"
)

func (pt ProblemType) String() string {
	return string(pt)
}

// ProblemTypeValidator is a validator for the "problem_type" field enum values. It is called by the builders before save.
func ProblemTypeValidator(pt ProblemType) error {
	switch pt {
	case ProblemTypeAddition, ProblemTypeSubtraction, ProblemTypeMultiplication, ProblemTypeDivision:
		return nil
	default:
		return fmt.Errorf("problemsession: invalid enum value for problem_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the ProblemSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProblemText orders the results by the problem_text field.
func ByProblemText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemText, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByProblemType orders the results by the problem_type field.
func ByProblemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemType, opts...).ToFunc()
}

// BySolutionSteps orders the results by the solution_steps field.
func BySolutionSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionSteps, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByHintsAvailable orders the results by the hints_available field.
func ByHintsAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsAvailable, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
