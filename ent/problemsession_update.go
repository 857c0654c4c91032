// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulv/mathquest/ent/predicate"
	"github.com/rahulv/mathquest/ent/problemsession"
)

// ProblemSessionUpdate is the builder for updating ProblemSession entities.
type ProblemSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdate) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSolutionSteps sets the "solution_steps" field.
func (_u *ProblemSessionUpdate) SetSolutionSteps(v string) *ProblemSessionUpdate {
	_u.mutation.SetSolutionSteps(v)
	return _u
}

// SetNillableSolutionSteps sets the "solution_steps" field if the given value is not nil.
func (_u *ProblemSessionUpdate) SetNillableSolutionSteps(v *string) *ProblemSessionUpdate {
	if v != nil {
		_u.SetSolutionSteps(*v)
	}
	return _u
}

// ClearSolutionSteps clears the value of the "solution_steps" field.
func (_u *ProblemSessionUpdate) ClearSolutionSteps() *ProblemSessionUpdate {
	_u.mutation.ClearSolutionSteps()
	return _u
}

// SetHintsAvailable sets the "hints_available" field.
func (_u *ProblemSessionUpdate) SetHintsAvailable(v int) *ProblemSessionUpdate {
	_u.mutation.ResetHintsAvailable()
	_u.mutation.SetHintsAvailable(v)
	return _u
}

// SetNillableHintsAvailable sets the "hints_available" field if the given value is not nil.
func (_u *ProblemSessionUpdate) SetNillableHintsAvailable(v *int) *ProblemSessionUpdate {
	if v != nil {
		_u.SetHintsAvailable(*v)
	}
	return _u
}

// AddHintsAvailable adds value to the "hints_available" field.
func (_u *ProblemSessionUpdate) AddHintsAvailable(v int) *ProblemSessionUpdate {
	_u.mutation.AddHintsAvailable(v)
	return _u
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdate) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProblemSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SolutionSteps(); ok {
		_spec.SetField(problemsession.FieldSolutionSteps, field.TypeString, value)
	}
	if _u.mutation.SolutionStepsCleared() {
		_spec.ClearField(problemsession.FieldSolutionSteps, field.TypeString)
	}
	if value, ok := _u.mutation.HintsAvailable(); ok {
		_spec.SetField(problemsession.FieldHintsAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsAvailable(); ok {
		_spec.AddField(problemsession.FieldHintsAvailable, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemSessionUpdateOne is the builder for updating a single ProblemSession entity.
type ProblemSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// SetSolutionSteps sets the "solution_steps" field.
func (_u *ProblemSessionUpdateOne) SetSolutionSteps(v string) *ProblemSessionUpdateOne {
	_u.mutation.SetSolutionSteps(v)
	return _u
}

// SetNillableSolutionSteps sets the "solution_steps" field if the given value is not nil.
func (_u *ProblemSessionUpdateOne) SetNillableSolutionSteps(v *string) *ProblemSessionUpdateOne {
	if v != nil {
		_u.SetSolutionSteps(*v)
	}
	return _u
}

// ClearSolutionSteps clears the value of the "solution_steps" field.
func (_u *ProblemSessionUpdateOne) ClearSolutionSteps() *ProblemSessionUpdateOne {
	_u.mutation.ClearSolutionSteps()
	return _u
}

// SetHintsAvailable sets the "hints_available" field.
func (_u *ProblemSessionUpdateOne) SetHintsAvailable(v int) *ProblemSessionUpdateOne {
	_u.mutation.ResetHintsAvailable()
	_u.mutation.SetHintsAvailable(v)
	return _u
}

// SetNillableHintsAvailable sets the "hints_available" field if the given value is not nil.
func (_u *ProblemSessionUpdateOne) SetNillableHintsAvailable(v *int) *ProblemSessionUpdateOne {
	if v != nil {
		_u.SetHintsAvailable(*v)
	}
	return _u
}

// AddHintsAvailable adds value to the "hints_available" field.
func (_u *ProblemSessionUpdateOne) AddHintsAvailable(v int) *ProblemSessionUpdateOne {
	_u.mutation.AddHintsAvailable(v)
	return _u
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdateOne) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdateOne) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemSessionUpdateOne) Select(field string, fields ...string) *ProblemSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemSession entity.
func (_u *ProblemSessionUpdateOne) Save(ctx context.Context) (*ProblemSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) SaveX(ctx context.Context) *ProblemSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProblemSessionUpdateOne) sqlSave(ctx context.Context) (_node *ProblemSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemsession.FieldID)
		for _, f := range fields {
			if !problemsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SolutionSteps(); ok {
		_spec.SetField(problemsession.FieldSolutionSteps, field.TypeString, value)
	}
	if _u.mutation.SolutionStepsCleared() {
		_spec.ClearField(problemsession.FieldSolutionSteps, field.TypeString)
	}
	if value, ok := _u.mutation.HintsAvailable(); ok {
		_spec.SetField(problemsession.FieldHintsAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsAvailable(); ok {
		_spec.AddField(problemsession.FieldHintsAvailable, field.TypeInt, value)
	}
	_node = &ProblemSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
