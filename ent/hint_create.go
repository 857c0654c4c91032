// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulv/mathquest/ent/hint"
)

// HintCreate is the builder for creating a Hint entity.
type HintCreate struct {
	config
	mutation *HintMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *HintCreate) SetSessionID(v string) *HintCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetHintText sets the "hint_text" field.
func (_c *HintCreate) SetHintText(v string) *HintCreate {
	_c.mutation.SetHintText(v)
	return _c
}

// SetHintOrder sets the "hint_order" field.
func (_c *HintCreate) SetHintOrder(v int) *HintCreate {
	_c.mutation.SetHintOrder(v)
	return _c
}

// Mutation returns the HintMutation object of the builder.
func (_c *HintCreate) Mutation() *HintMutation {
	return _c.mutation
}

// Save creates the Hint in the database.
func (_c *HintCreate) Save(ctx context.Context) (*Hint, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HintCreate) SaveX(ctx context.Context) *Hint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HintCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Hint.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := hint.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Hint.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintText(); !ok {
		return &ValidationError{Name: "hint_text", err: errors.New(`ent: missing required field "Hint.hint_text"`)}
	}
	if v, ok := _c.mutation.HintText(); ok {
		if err := hint.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "Hint.hint_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintOrder(); !ok {
		return &ValidationError{Name: "hint_order", err: errors.New(`ent: missing required field "Hint.hint_order"`)}
	}
	if v, ok := _c.mutation.HintOrder(); ok {
		if err := hint.HintOrderValidator(v); err != nil {
			return &ValidationError{Name: "hint_order", err: fmt.Errorf(`ent: validator failed for field "Hint.hint_order": %w`, err)}
		}
	}
	return nil
}

func (_c *HintCreate) sqlSave(ctx context.Context) (*Hint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HintCreate) createSpec() (*Hint, *sqlgraph.CreateSpec) {
	var (
		_node = &Hint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hint.Table, sqlgraph.NewFieldSpec(hint.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(hint.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.HintText(); ok {
		_spec.SetField(hint.FieldHintText, field.TypeString, value)
		_node.HintText = value
	}
	if value, ok := _c.mutation.HintOrder(); ok {
		_spec.SetField(hint.FieldHintOrder, field.TypeInt, value)
		_node.HintOrder = value
	}
	return _node, _spec
}

// HintCreateBulk is the builder for creating many Hint entities in bulk.
type HintCreateBulk struct {
	config
	err      error
	builders []*HintCreate
}

// Save creates the Hint entities in the database.
func (_c *HintCreateBulk) Save(ctx context.Context) ([]*Hint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HintMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HintCreateBulk) SaveX(ctx context.Context) []*Hint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
