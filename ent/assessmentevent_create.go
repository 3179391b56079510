// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/ksa/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentEventCreate) SetAssessmentID(v string) *AssessmentEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *AssessmentEventCreate) SetUserName(v string) *AssessmentEventCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableUserName(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetUserName(*v)
	}
	return _c
}

// SetSector sets the "sector" field.
func (_c *AssessmentEventCreate) SetSector(v string) *AssessmentEventCreate {
	_c.mutation.SetSector(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AssessmentEventCreate) SetPhase(v string) *AssessmentEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNextPhase sets the "next_phase" field.
func (_c *AssessmentEventCreate) SetNextPhase(v string) *AssessmentEventCreate {
	_c.mutation.SetNextPhase(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentEventCreate) SetScore(v int) *AssessmentEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AssessmentEventCreate) SetCorrect(v int) *AssessmentEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableCorrect(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *AssessmentEventCreate) SetTotal(v int) *AssessmentEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTotal(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *AssessmentEventCreate) SetPassed(v bool) *AssessmentEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *AssessmentEventCreate) SetPointsAwarded(v int) *AssessmentEventCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillablePointsAwarded(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetPointsAwarded(*v)
	}
	return _c
}

// SetBadge sets the "badge" field.
func (_c *AssessmentEventCreate) SetBadge(v string) *AssessmentEventCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableBadge(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetBadge(*v)
	}
	return _c
}

// SetRemediationFallback sets the "remediation_fallback" field.
func (_c *AssessmentEventCreate) SetRemediationFallback(v bool) *AssessmentEventCreate {
	_c.mutation.SetRemediationFallback(v)
	return _c
}

// SetNillableRemediationFallback sets the "remediation_fallback" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableRemediationFallback(v *bool) *AssessmentEventCreate {
	if v != nil {
		_c.SetRemediationFallback(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserName(); !ok {
		v := assessmentevent.DefaultUserName
		_c.mutation.SetUserName(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := assessmentevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := assessmentevent.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		v := assessmentevent.DefaultPointsAwarded
		_c.mutation.SetPointsAwarded(v)
	}
	if _, ok := _c.mutation.Badge(); !ok {
		v := assessmentevent.DefaultBadge
		_c.mutation.SetBadge(v)
	}
	if _, ok := _c.mutation.RemediationFallback(); !ok {
		v := assessmentevent.DefaultRemediationFallback
		_c.mutation.SetRemediationFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AssessmentEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "AssessmentEvent.user_name"`)}
	}
	if _, ok := _c.mutation.Sector(); !ok {
		return &ValidationError{Name: "sector", err: errors.New(`ent: missing required field "AssessmentEvent.sector"`)}
	}
	if v, ok := _c.mutation.Sector(); ok {
		if err := assessmentevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.sector": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AssessmentEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextPhase(); !ok {
		return &ValidationError{Name: "next_phase", err: errors.New(`ent: missing required field "AssessmentEvent.next_phase"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AssessmentEvent.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "AssessmentEvent.total"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "AssessmentEvent.passed"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "AssessmentEvent.points_awarded"`)}
	}
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "AssessmentEvent.badge"`)}
	}
	if _, ok := _c.mutation.RemediationFallback(); !ok {
		return &ValidationError{Name: "remediation_fallback", err: errors.New(`ent: missing required field "AssessmentEvent.remediation_fallback"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(assessmentevent.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.Sector(); ok {
		_spec.SetField(assessmentevent.FieldSector, field.TypeString, value)
		_node.Sector = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.NextPhase(); ok {
		_spec.SetField(assessmentevent.FieldNextPhase, field.TypeString, value)
		_node.NextPhase = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(assessmentevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(assessmentevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(assessmentevent.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(assessmentevent.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.RemediationFallback(); ok {
		_spec.SetField(assessmentevent.FieldRemediationFallback, field.TypeBool, value)
		_node.RemediationFallback = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
