// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/ksa/ent/assessmentevent"
	"github.com/abhisek/ksa/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AssessmentEventUpdate) SetUserName(v string) *AssessmentEventUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableUserName(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSector sets the "sector" field.
func (_u *AssessmentEventUpdate) SetSector(v string) *AssessmentEventUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSector(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdate) SetPhase(v string) *AssessmentEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePhase(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetNextPhase sets the "next_phase" field.
func (_u *AssessmentEventUpdate) SetNextPhase(v string) *AssessmentEventUpdate {
	_u.mutation.SetNextPhase(v)
	return _u
}

// SetNillableNextPhase sets the "next_phase" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableNextPhase(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetNextPhase(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdate) SetCorrect(v int) *AssessmentEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCorrect(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentEventUpdate) AddCorrect(v int) *AssessmentEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentEventUpdate) SetTotal(v int) *AssessmentEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTotal(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentEventUpdate) AddTotal(v int) *AssessmentEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AssessmentEventUpdate) SetPassed(v bool) *AssessmentEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePassed(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AssessmentEventUpdate) SetPointsAwarded(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePointsAwarded(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AssessmentEventUpdate) AddPointsAwarded(v int) *AssessmentEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *AssessmentEventUpdate) SetBadge(v string) *AssessmentEventUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableBadge(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetRemediationFallback sets the "remediation_fallback" field.
func (_u *AssessmentEventUpdate) SetRemediationFallback(v bool) *AssessmentEventUpdate {
	_u.mutation.SetRemediationFallback(v)
	return _u
}

// SetNillableRemediationFallback sets the "remediation_fallback" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRemediationFallback(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRemediationFallback(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sector(); ok {
		if err := assessmentevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.sector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(assessmentevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(assessmentevent.FieldSector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextPhase(); ok {
		_spec.SetField(assessmentevent.FieldNextPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(assessmentevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(assessmentevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(assessmentevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(assessmentevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemediationFallback(); ok {
		_spec.SetField(assessmentevent.FieldRemediationFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AssessmentEventUpdateOne) SetUserName(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableUserName(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetSector sets the "sector" field.
func (_u *AssessmentEventUpdateOne) SetSector(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSector(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdateOne) SetPhase(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePhase(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetNextPhase sets the "next_phase" field.
func (_u *AssessmentEventUpdateOne) SetNextPhase(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetNextPhase(v)
	return _u
}

// SetNillableNextPhase sets the "next_phase" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableNextPhase(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetNextPhase(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdateOne) SetCorrect(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCorrect(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentEventUpdateOne) AddCorrect(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *AssessmentEventUpdateOne) SetTotal(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTotal(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AssessmentEventUpdateOne) AddTotal(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AssessmentEventUpdateOne) SetPassed(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePassed(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AssessmentEventUpdateOne) SetPointsAwarded(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePointsAwarded(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AssessmentEventUpdateOne) AddPointsAwarded(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *AssessmentEventUpdateOne) SetBadge(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableBadge(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetRemediationFallback sets the "remediation_fallback" field.
func (_u *AssessmentEventUpdateOne) SetRemediationFallback(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetRemediationFallback(v)
	return _u
}

// SetNillableRemediationFallback sets the "remediation_fallback" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRemediationFallback(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRemediationFallback(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sector(); ok {
		if err := assessmentevent.SectorValidator(v); err != nil {
			return &ValidationError{Name: "sector", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.sector": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(assessmentevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(assessmentevent.FieldSector, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextPhase(); ok {
		_spec.SetField(assessmentevent.FieldNextPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(assessmentevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(assessmentevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(assessmentevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(assessmentevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(assessmentevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(assessmentevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemediationFallback(); ok {
		_spec.SetField(assessmentevent.FieldRemediationFallback, field.TypeBool, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
