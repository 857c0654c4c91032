// Code generated by ent, DO NOT EDIT.

package problemsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulv/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContainsFold(FieldID, id))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldProblemText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCorrectAnswer, v))
}

// SolutionSteps applies equality check predicate on the "solution_steps" field. It's identical to SolutionStepsEQ.
func SolutionSteps(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldSolutionSteps, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldScore, v))
}

// HintsAvailable applies equality check predicate on the "hints_available" field. It's identical to HintsAvailableEQ.
func HintsAvailable(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldHintsAvailable, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContainsFold(FieldProblemText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v float64) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldCorrectAnswer, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldDifficulty, vs...))
}

// ProblemTypeEQ applies the EQ predicate on the "problem_type" field.
func ProblemTypeEQ(v ProblemType) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldProblemType, v))
}

// ProblemTypeNEQ applies the NEQ predicate on the "problem_type" field.
func ProblemTypeNEQ(v ProblemType) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldProblemType, v))
}

// ProblemTypeIn applies the In predicate on the "problem_type" field.
func ProblemTypeIn(vs ...ProblemType) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldProblemType, vs...))
}

// ProblemTypeNotIn applies the NotIn predicate on the "problem_type" field.
func ProblemTypeNotIn(vs ...ProblemType) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldProblemType, vs...))
}

// SolutionStepsEQ applies the EQ predicate on the "solution_steps" field.
func SolutionStepsEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldSolutionSteps, v))
}

// SolutionStepsNEQ applies the NEQ predicate on the "solution_steps" field.
func SolutionStepsNEQ(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldSolutionSteps, v))
}

// SolutionStepsIn applies the In predicate on the "solution_steps" field.
func SolutionStepsIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldSolutionSteps, vs...))
}

// SolutionStepsNotIn applies the NotIn predicate on the "solution_steps" field.
func SolutionStepsNotIn(vs ...string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldSolutionSteps, vs...))
}

// SolutionStepsGT applies the GT predicate on the "solution_steps" field.
func SolutionStepsGT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldSolutionSteps, v))
}

// SolutionStepsGTE applies the GTE predicate on the "solution_steps" field.
func SolutionStepsGTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldSolutionSteps, v))
}

// SolutionStepsLT applies the LT predicate on the "solution_steps" field.
func SolutionStepsLT(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldSolutionSteps, v))
}

// SolutionStepsLTE applies the LTE predicate on the "solution_steps" field.
func SolutionStepsLTE(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldSolutionSteps, v))
}

// SolutionStepsContains applies the Contains predicate on the "solution_steps" field.
func SolutionStepsContains(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContains(FieldSolutionSteps, v))
}

// SolutionStepsHasPrefix applies the HasPrefix predicate on the "solution_steps" field.
func SolutionStepsHasPrefix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasPrefix(FieldSolutionSteps, v))
}

// SolutionStepsHasSuffix applies the HasSuffix predicate on the "solution_steps" field.
func SolutionStepsHasSuffix(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldHasSuffix(FieldSolutionSteps, v))
}

// SolutionStepsIsNil applies the IsNil predicate on the "solution_steps" field.
func SolutionStepsIsNil() predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIsNull(FieldSolutionSteps))
}

// SolutionStepsNotNil applies the NotNil predicate on the "solution_steps" field.
func SolutionStepsNotNil() predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotNull(FieldSolutionSteps))
}

// SolutionStepsEqualFold applies the EqualFold predicate on the "solution_steps" field.
func SolutionStepsEqualFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEqualFold(FieldSolutionSteps, v))
}

// SolutionStepsContainsFold applies the ContainsFold predicate on the "solution_steps" field.
func SolutionStepsContainsFold(v string) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldContainsFold(FieldSolutionSteps, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldScore, v))
}

// HintsAvailableEQ applies the EQ predicate on the "hints_available" field.
func HintsAvailableEQ(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldHintsAvailable, v))
}

// HintsAvailableNEQ applies the NEQ predicate on the "hints_available" field.
func HintsAvailableNEQ(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldHintsAvailable, v))
}

// HintsAvailableIn applies the In predicate on the "hints_available" field.
func HintsAvailableIn(vs ...int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldHintsAvailable, vs...))
}

// HintsAvailableNotIn applies the NotIn predicate on the "hints_available" field.
func HintsAvailableNotIn(vs ...int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldHintsAvailable, vs...))
}

// HintsAvailableGT applies the GT predicate on the "hints_available" field.
func HintsAvailableGT(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldHintsAvailable, v))
}

// HintsAvailableGTE applies the GTE predicate on the "hints_available" field.
func HintsAvailableGTE(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldHintsAvailable, v))
}

// HintsAvailableLT applies the LT predicate on the "hints_available" field.
func HintsAvailableLT(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldHintsAvailable, v))
}

// HintsAvailableLTE applies the LTE predicate on the "hints_available" field.
func HintsAvailableLTE(v int) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldHintsAvailable, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProblemSession {
	return predicate.ProblemSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemSession) predicate.ProblemSession {
	return predicate.ProblemSession(sql.NotPredicates(p))
}
