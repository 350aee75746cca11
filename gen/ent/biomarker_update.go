// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/biomarker"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// BiomarkerUpdate is the builder for updating Biomarker entities.
type BiomarkerUpdate struct {
	config
	hooks    []Hook
	mutation *BiomarkerMutation
}

// Where appends a list predicates to the BiomarkerUpdate builder.
func (_u *BiomarkerUpdate) Where(ps ...predicate.Biomarker) *BiomarkerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPanelID sets the "panel_id" field.
func (_u *BiomarkerUpdate) SetPanelID(v uuid.UUID) *BiomarkerUpdate {
	_u.mutation.SetPanelID(v)
	return _u
}

// SetNillablePanelID sets the "panel_id" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillablePanelID(v *uuid.UUID) *BiomarkerUpdate {
	if v != nil {
		_u.SetPanelID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerUpdate) SetName(v string) *BiomarkerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableName(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *BiomarkerUpdate) SetValue(v float64) *BiomarkerUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableValue(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *BiomarkerUpdate) AddValue(v float64) *BiomarkerUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BiomarkerUpdate) SetUnit(v string) *BiomarkerUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableUnit(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *BiomarkerUpdate) ClearUnit() *BiomarkerUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *BiomarkerUpdate) SetReferenceMin(v float64) *BiomarkerUpdate {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableReferenceMin(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *BiomarkerUpdate) AddReferenceMin(v float64) *BiomarkerUpdate {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// ClearReferenceMin clears the value of the "reference_min" field.
func (_u *BiomarkerUpdate) ClearReferenceMin() *BiomarkerUpdate {
	_u.mutation.ClearReferenceMin()
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *BiomarkerUpdate) SetReferenceMax(v float64) *BiomarkerUpdate {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableReferenceMax(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *BiomarkerUpdate) AddReferenceMax(v float64) *BiomarkerUpdate {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// ClearReferenceMax clears the value of the "reference_max" field.
func (_u *BiomarkerUpdate) ClearReferenceMax() *BiomarkerUpdate {
	_u.mutation.ClearReferenceMax()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BiomarkerUpdate) SetStatus(v string) *BiomarkerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableStatus(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BiomarkerUpdate) SetCategory(v string) *BiomarkerUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableCategory(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BiomarkerUpdate) SetCreatedAt(v time.Time) *BiomarkerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableCreatedAt(v *time.Time) *BiomarkerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPanel sets the "panel" edge to the Panel entity.
func (_u *BiomarkerUpdate) SetPanel(v *Panel) *BiomarkerUpdate {
	return _u.SetPanelID(v.ID)
}

// Mutation returns the BiomarkerMutation object of the builder.
func (_u *BiomarkerUpdate) Mutation() *BiomarkerMutation {
	return _u.mutation
}

// ClearPanel clears the "panel" edge to the Panel entity.
func (_u *BiomarkerUpdate) ClearPanel() *BiomarkerUpdate {
	_u.mutation.ClearPanel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BiomarkerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BiomarkerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := biomarker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Biomarker.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := biomarker.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Biomarker.category": %w`, err)}
		}
	}
	if _u.mutation.PanelCleared() && len(_u.mutation.PanelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Biomarker.panel"`)
	}
	return nil
}

func (_u *BiomarkerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarker.Table, biomarker.Columns, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biomarker.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(biomarker.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMinCleared() {
		_spec.ClearField(biomarker.FieldReferenceMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMaxCleared() {
		_spec.ClearField(biomarker.FieldReferenceMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(biomarker.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(biomarker.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(biomarker.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PanelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.PanelTable,
			Columns: []string{biomarker.PanelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PanelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.PanelTable,
			Columns: []string{biomarker.PanelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BiomarkerUpdateOne is the builder for updating a single Biomarker entity.
type BiomarkerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BiomarkerMutation
}

// SetPanelID sets the "panel_id" field.
func (_u *BiomarkerUpdateOne) SetPanelID(v uuid.UUID) *BiomarkerUpdateOne {
	_u.mutation.SetPanelID(v)
	return _u
}

// SetNillablePanelID sets the "panel_id" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillablePanelID(v *uuid.UUID) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetPanelID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerUpdateOne) SetName(v string) *BiomarkerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableName(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *BiomarkerUpdateOne) SetValue(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableValue(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *BiomarkerUpdateOne) AddValue(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BiomarkerUpdateOne) SetUnit(v string) *BiomarkerUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableUnit(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *BiomarkerUpdateOne) ClearUnit() *BiomarkerUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *BiomarkerUpdateOne) SetReferenceMin(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableReferenceMin(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *BiomarkerUpdateOne) AddReferenceMin(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// ClearReferenceMin clears the value of the "reference_min" field.
func (_u *BiomarkerUpdateOne) ClearReferenceMin() *BiomarkerUpdateOne {
	_u.mutation.ClearReferenceMin()
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *BiomarkerUpdateOne) SetReferenceMax(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableReferenceMax(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *BiomarkerUpdateOne) AddReferenceMax(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// ClearReferenceMax clears the value of the "reference_max" field.
func (_u *BiomarkerUpdateOne) ClearReferenceMax() *BiomarkerUpdateOne {
	_u.mutation.ClearReferenceMax()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BiomarkerUpdateOne) SetStatus(v string) *BiomarkerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableStatus(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BiomarkerUpdateOne) SetCategory(v string) *BiomarkerUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableCategory(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BiomarkerUpdateOne) SetCreatedAt(v time.Time) *BiomarkerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableCreatedAt(v *time.Time) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPanel sets the "panel" edge to the Panel entity.
func (_u *BiomarkerUpdateOne) SetPanel(v *Panel) *BiomarkerUpdateOne {
	return _u.SetPanelID(v.ID)
}

// Mutation returns the BiomarkerMutation object of the builder.
func (_u *BiomarkerUpdateOne) Mutation() *BiomarkerMutation {
	return _u.mutation
}

// ClearPanel clears the "panel" edge to the Panel entity.
func (_u *BiomarkerUpdateOne) ClearPanel() *BiomarkerUpdateOne {
	_u.mutation.ClearPanel()
	return _u
}

// Where appends a list predicates to the BiomarkerUpdate builder.
func (_u *BiomarkerUpdateOne) Where(ps ...predicate.Biomarker) *BiomarkerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BiomarkerUpdateOne) Select(field string, fields ...string) *BiomarkerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Biomarker entity.
func (_u *BiomarkerUpdateOne) Save(ctx context.Context) (*Biomarker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerUpdateOne) SaveX(ctx context.Context) *Biomarker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BiomarkerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := biomarker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Biomarker.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := biomarker.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Biomarker.category": %w`, err)}
		}
	}
	if _u.mutation.PanelCleared() && len(_u.mutation.PanelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Biomarker.panel"`)
	}
	return nil
}

func (_u *BiomarkerUpdateOne) sqlSave(ctx context.Context) (_node *Biomarker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarker.Table, biomarker.Columns, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Biomarker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biomarker.FieldID)
		for _, f := range fields {
			if !biomarker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != biomarker.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biomarker.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(biomarker.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMinCleared() {
		_spec.ClearField(biomarker.FieldReferenceMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMaxCleared() {
		_spec.ClearField(biomarker.FieldReferenceMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(biomarker.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(biomarker.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(biomarker.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PanelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.PanelTable,
			Columns: []string{biomarker.PanelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PanelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.PanelTable,
			Columns: []string{biomarker.PanelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Biomarker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
