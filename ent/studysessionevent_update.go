// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmercier/collegien/ent/predicate"
	"github.com/jmercier/collegien/ent/studysessionevent"
)

// StudySessionEventUpdate is the builder for updating StudySessionEvent entities.
type StudySessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionEventMutation
}

// Where appends a list predicates to the StudySessionEventUpdate builder.
func (_u *StudySessionEventUpdate) Where(ps ...predicate.StudySessionEvent) *StudySessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionEventUpdate) SetSessionID(v string) *StudySessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableSessionID(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *StudySessionEventUpdate) SetAction(v string) *StudySessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableAction(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StudySessionEventUpdate) SetLevel(v string) *StudySessionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableLevel(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionEventUpdate) SetSubject(v string) *StudySessionEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableSubject(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudySessionEventUpdate) SetTopic(v string) *StudySessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableTopic(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StudySessionEventUpdate) SetSource(v string) *StudySessionEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableSource(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudySessionEventUpdate) SetDifficulty(v string) *StudySessionEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableDifficulty(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *StudySessionEventUpdate) SetQuestionCount(v int) *StudySessionEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableQuestionCount(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *StudySessionEventUpdate) AddQuestionCount(v int) *StudySessionEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *StudySessionEventUpdate) SetScore(v int) *StudySessionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableScore(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StudySessionEventUpdate) AddScore(v int) *StudySessionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *StudySessionEventUpdate) SetMaxScore(v int) *StudySessionEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableMaxScore(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *StudySessionEventUpdate) AddMaxScore(v int) *StudySessionEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *StudySessionEventUpdate) SetDurationSecs(v int) *StudySessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableDurationSecs(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *StudySessionEventUpdate) AddDurationSecs(v int) *StudySessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the StudySessionEventMutation object of the builder.
func (_u *StudySessionEventUpdate) Mutation() *StudySessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := studysessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysessionevent.Table, studysessionevent.Columns, sqlgraph.NewFieldSpec(studysessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(studysessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(studysessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studysessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(studysessionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studysessionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(studysessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(studysessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(studysessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(studysessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(studysessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(studysessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(studysessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(studysessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionEventUpdateOne is the builder for updating a single StudySessionEvent entity.
type StudySessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionEventUpdateOne) SetSessionID(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableSessionID(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *StudySessionEventUpdateOne) SetAction(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableAction(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StudySessionEventUpdateOne) SetLevel(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableLevel(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionEventUpdateOne) SetSubject(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableSubject(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudySessionEventUpdateOne) SetTopic(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableTopic(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StudySessionEventUpdateOne) SetSource(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableSource(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudySessionEventUpdateOne) SetDifficulty(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableDifficulty(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *StudySessionEventUpdateOne) SetQuestionCount(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableQuestionCount(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *StudySessionEventUpdateOne) AddQuestionCount(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *StudySessionEventUpdateOne) SetScore(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableScore(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StudySessionEventUpdateOne) AddScore(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *StudySessionEventUpdateOne) SetMaxScore(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableMaxScore(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *StudySessionEventUpdateOne) AddMaxScore(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *StudySessionEventUpdateOne) SetDurationSecs(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableDurationSecs(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *StudySessionEventUpdateOne) AddDurationSecs(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the StudySessionEventMutation object of the builder.
func (_u *StudySessionEventUpdateOne) Mutation() *StudySessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionEventUpdate builder.
func (_u *StudySessionEventUpdateOne) Where(ps ...predicate.StudySessionEvent) *StudySessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionEventUpdateOne) Select(field string, fields ...string) *StudySessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySessionEvent entity.
func (_u *StudySessionEventUpdateOne) Save(ctx context.Context) (*StudySessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionEventUpdateOne) SaveX(ctx context.Context) *StudySessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := studysessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionEventUpdateOne) sqlSave(ctx context.Context) (_node *StudySessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysessionevent.Table, studysessionevent.Columns, sqlgraph.NewFieldSpec(studysessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysessionevent.FieldID)
		for _, f := range fields {
			if !studysessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(studysessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(studysessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studysessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(studysessionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studysessionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(studysessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(studysessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(studysessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(studysessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(studysessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(studysessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(studysessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(studysessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &StudySessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
