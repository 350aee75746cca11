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
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/extractjob"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/predicate"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
	"github.com/google/uuid"
)

// PanelUpdate is the builder for updating Panel entities.
type PanelUpdate struct {
	config
	hooks    []Hook
	mutation *PanelMutation
}

// Where appends a list predicates to the PanelUpdate builder.
func (_u *PanelUpdate) Where(ps ...predicate.Panel) *PanelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *PanelUpdate) SetProfileID(v uuid.UUID) *PanelUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableProfileID(v *uuid.UUID) *PanelUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PanelUpdate) SetName(v string) *PanelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableName(v *string) *PanelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PanelUpdate) SetProvider(v string) *PanelUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableProvider(v *string) *PanelUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *PanelUpdate) ClearProvider() *PanelUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetCollectionDate sets the "collection_date" field.
func (_u *PanelUpdate) SetCollectionDate(v time.Time) *PanelUpdate {
	_u.mutation.SetCollectionDate(v)
	return _u
}

// SetNillableCollectionDate sets the "collection_date" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableCollectionDate(v *time.Time) *PanelUpdate {
	if v != nil {
		_u.SetCollectionDate(*v)
	}
	return _u
}

// ClearCollectionDate clears the value of the "collection_date" field.
func (_u *PanelUpdate) ClearCollectionDate() *PanelUpdate {
	_u.mutation.ClearCollectionDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PanelUpdate) SetStatus(v string) *PanelUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableStatus(v *string) *PanelUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *PanelUpdate) SetSourcePath(v string) *PanelUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableSourcePath(v *string) *PanelUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *PanelUpdate) SetExtractionMethod(v string) *PanelUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableExtractionMethod(v *string) *PanelUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetPatientFirstName sets the "patient_first_name" field.
func (_u *PanelUpdate) SetPatientFirstName(v string) *PanelUpdate {
	_u.mutation.SetPatientFirstName(v)
	return _u
}

// SetNillablePatientFirstName sets the "patient_first_name" field if the given value is not nil.
func (_u *PanelUpdate) SetNillablePatientFirstName(v *string) *PanelUpdate {
	if v != nil {
		_u.SetPatientFirstName(*v)
	}
	return _u
}

// ClearPatientFirstName clears the value of the "patient_first_name" field.
func (_u *PanelUpdate) ClearPatientFirstName() *PanelUpdate {
	_u.mutation.ClearPatientFirstName()
	return _u
}

// SetPatientLastName sets the "patient_last_name" field.
func (_u *PanelUpdate) SetPatientLastName(v string) *PanelUpdate {
	_u.mutation.SetPatientLastName(v)
	return _u
}

// SetNillablePatientLastName sets the "patient_last_name" field if the given value is not nil.
func (_u *PanelUpdate) SetNillablePatientLastName(v *string) *PanelUpdate {
	if v != nil {
		_u.SetPatientLastName(*v)
	}
	return _u
}

// ClearPatientLastName clears the value of the "patient_last_name" field.
func (_u *PanelUpdate) ClearPatientLastName() *PanelUpdate {
	_u.mutation.ClearPatientLastName()
	return _u
}

// SetPatientDateOfBirth sets the "patient_date_of_birth" field.
func (_u *PanelUpdate) SetPatientDateOfBirth(v string) *PanelUpdate {
	_u.mutation.SetPatientDateOfBirth(v)
	return _u
}

// SetNillablePatientDateOfBirth sets the "patient_date_of_birth" field if the given value is not nil.
func (_u *PanelUpdate) SetNillablePatientDateOfBirth(v *string) *PanelUpdate {
	if v != nil {
		_u.SetPatientDateOfBirth(*v)
	}
	return _u
}

// ClearPatientDateOfBirth clears the value of the "patient_date_of_birth" field.
func (_u *PanelUpdate) ClearPatientDateOfBirth() *PanelUpdate {
	_u.mutation.ClearPatientDateOfBirth()
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *PanelUpdate) SetPatientGender(v string) *PanelUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *PanelUpdate) SetNillablePatientGender(v *string) *PanelUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *PanelUpdate) ClearPatientGender() *PanelUpdate {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PanelUpdate) SetCreatedAt(v time.Time) *PanelUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PanelUpdate) SetNillableCreatedAt(v *time.Time) *PanelUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PanelUpdate) SetUpdatedAt(v time.Time) *PanelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PanelUpdate) SetProfile(v *Profile) *PanelUpdate {
	return _u.SetProfileID(v.ID)
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_u *PanelUpdate) AddBiomarkerIDs(ids ...uuid.UUID) *PanelUpdate {
	_u.mutation.AddBiomarkerIDs(ids...)
	return _u
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_u *PanelUpdate) AddBiomarkers(v ...*Biomarker) *PanelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBiomarkerIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *PanelUpdate) AddJobIDs(ids ...uuid.UUID) *PanelUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *PanelUpdate) AddJobs(v ...*ExtractJob) *PanelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PanelMutation object of the builder.
func (_u *PanelUpdate) Mutation() *PanelMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PanelUpdate) ClearProfile() *PanelUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBiomarkers clears all "biomarkers" edges to the Biomarker entity.
func (_u *PanelUpdate) ClearBiomarkers() *PanelUpdate {
	_u.mutation.ClearBiomarkers()
	return _u
}

// RemoveBiomarkerIDs removes the "biomarkers" edge to Biomarker entities by IDs.
func (_u *PanelUpdate) RemoveBiomarkerIDs(ids ...uuid.UUID) *PanelUpdate {
	_u.mutation.RemoveBiomarkerIDs(ids...)
	return _u
}

// RemoveBiomarkers removes "biomarkers" edges to Biomarker entities.
func (_u *PanelUpdate) RemoveBiomarkers(v ...*Biomarker) *PanelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBiomarkerIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *PanelUpdate) ClearJobs() *PanelUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *PanelUpdate) RemoveJobIDs(ids ...uuid.UUID) *PanelUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *PanelUpdate) RemoveJobs(v ...*ExtractJob) *PanelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PanelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PanelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PanelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PanelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PanelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := panel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PanelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := panel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Panel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := panel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Panel.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := panel.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Panel.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := panel.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Panel.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Panel.profile"`)
	}
	return nil
}

func (_u *PanelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(panel.Table, panel.Columns, sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(panel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(panel.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(panel.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.CollectionDate(); ok {
		_spec.SetField(panel.FieldCollectionDate, field.TypeTime, value)
	}
	if _u.mutation.CollectionDateCleared() {
		_spec.ClearField(panel.FieldCollectionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(panel.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(panel.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(panel.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientFirstName(); ok {
		_spec.SetField(panel.FieldPatientFirstName, field.TypeString, value)
	}
	if _u.mutation.PatientFirstNameCleared() {
		_spec.ClearField(panel.FieldPatientFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientLastName(); ok {
		_spec.SetField(panel.FieldPatientLastName, field.TypeString, value)
	}
	if _u.mutation.PatientLastNameCleared() {
		_spec.ClearField(panel.FieldPatientLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientDateOfBirth(); ok {
		_spec.SetField(panel.FieldPatientDateOfBirth, field.TypeString, value)
	}
	if _u.mutation.PatientDateOfBirthCleared() {
		_spec.ClearField(panel.FieldPatientDateOfBirth, field.TypeString)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(panel.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(panel.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(panel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(panel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   panel.ProfileTable,
			Columns: []string{panel.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   panel.ProfileTable,
			Columns: []string{panel.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiomarkersIDs(); len(nodes) > 0 && !_u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiomarkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{panel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PanelUpdateOne is the builder for updating a single Panel entity.
type PanelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PanelMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *PanelUpdateOne) SetProfileID(v uuid.UUID) *PanelUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableProfileID(v *uuid.UUID) *PanelUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PanelUpdateOne) SetName(v string) *PanelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableName(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PanelUpdateOne) SetProvider(v string) *PanelUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableProvider(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *PanelUpdateOne) ClearProvider() *PanelUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetCollectionDate sets the "collection_date" field.
func (_u *PanelUpdateOne) SetCollectionDate(v time.Time) *PanelUpdateOne {
	_u.mutation.SetCollectionDate(v)
	return _u
}

// SetNillableCollectionDate sets the "collection_date" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableCollectionDate(v *time.Time) *PanelUpdateOne {
	if v != nil {
		_u.SetCollectionDate(*v)
	}
	return _u
}

// ClearCollectionDate clears the value of the "collection_date" field.
func (_u *PanelUpdateOne) ClearCollectionDate() *PanelUpdateOne {
	_u.mutation.ClearCollectionDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PanelUpdateOne) SetStatus(v string) *PanelUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableStatus(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *PanelUpdateOne) SetSourcePath(v string) *PanelUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableSourcePath(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *PanelUpdateOne) SetExtractionMethod(v string) *PanelUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableExtractionMethod(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetPatientFirstName sets the "patient_first_name" field.
func (_u *PanelUpdateOne) SetPatientFirstName(v string) *PanelUpdateOne {
	_u.mutation.SetPatientFirstName(v)
	return _u
}

// SetNillablePatientFirstName sets the "patient_first_name" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillablePatientFirstName(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetPatientFirstName(*v)
	}
	return _u
}

// ClearPatientFirstName clears the value of the "patient_first_name" field.
func (_u *PanelUpdateOne) ClearPatientFirstName() *PanelUpdateOne {
	_u.mutation.ClearPatientFirstName()
	return _u
}

// SetPatientLastName sets the "patient_last_name" field.
func (_u *PanelUpdateOne) SetPatientLastName(v string) *PanelUpdateOne {
	_u.mutation.SetPatientLastName(v)
	return _u
}

// SetNillablePatientLastName sets the "patient_last_name" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillablePatientLastName(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetPatientLastName(*v)
	}
	return _u
}

// ClearPatientLastName clears the value of the "patient_last_name" field.
func (_u *PanelUpdateOne) ClearPatientLastName() *PanelUpdateOne {
	_u.mutation.ClearPatientLastName()
	return _u
}

// SetPatientDateOfBirth sets the "patient_date_of_birth" field.
func (_u *PanelUpdateOne) SetPatientDateOfBirth(v string) *PanelUpdateOne {
	_u.mutation.SetPatientDateOfBirth(v)
	return _u
}

// SetNillablePatientDateOfBirth sets the "patient_date_of_birth" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillablePatientDateOfBirth(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetPatientDateOfBirth(*v)
	}
	return _u
}

// ClearPatientDateOfBirth clears the value of the "patient_date_of_birth" field.
func (_u *PanelUpdateOne) ClearPatientDateOfBirth() *PanelUpdateOne {
	_u.mutation.ClearPatientDateOfBirth()
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *PanelUpdateOne) SetPatientGender(v string) *PanelUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillablePatientGender(v *string) *PanelUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *PanelUpdateOne) ClearPatientGender() *PanelUpdateOne {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PanelUpdateOne) SetCreatedAt(v time.Time) *PanelUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PanelUpdateOne) SetNillableCreatedAt(v *time.Time) *PanelUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PanelUpdateOne) SetUpdatedAt(v time.Time) *PanelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PanelUpdateOne) SetProfile(v *Profile) *PanelUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_u *PanelUpdateOne) AddBiomarkerIDs(ids ...uuid.UUID) *PanelUpdateOne {
	_u.mutation.AddBiomarkerIDs(ids...)
	return _u
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_u *PanelUpdateOne) AddBiomarkers(v ...*Biomarker) *PanelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBiomarkerIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *PanelUpdateOne) AddJobIDs(ids ...uuid.UUID) *PanelUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *PanelUpdateOne) AddJobs(v ...*ExtractJob) *PanelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PanelMutation object of the builder.
func (_u *PanelUpdateOne) Mutation() *PanelMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PanelUpdateOne) ClearProfile() *PanelUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBiomarkers clears all "biomarkers" edges to the Biomarker entity.
func (_u *PanelUpdateOne) ClearBiomarkers() *PanelUpdateOne {
	_u.mutation.ClearBiomarkers()
	return _u
}

// RemoveBiomarkerIDs removes the "biomarkers" edge to Biomarker entities by IDs.
func (_u *PanelUpdateOne) RemoveBiomarkerIDs(ids ...uuid.UUID) *PanelUpdateOne {
	_u.mutation.RemoveBiomarkerIDs(ids...)
	return _u
}

// RemoveBiomarkers removes "biomarkers" edges to Biomarker entities.
func (_u *PanelUpdateOne) RemoveBiomarkers(v ...*Biomarker) *PanelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBiomarkerIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *PanelUpdateOne) ClearJobs() *PanelUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *PanelUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *PanelUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *PanelUpdateOne) RemoveJobs(v ...*ExtractJob) *PanelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PanelUpdate builder.
func (_u *PanelUpdateOne) Where(ps ...predicate.Panel) *PanelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PanelUpdateOne) Select(field string, fields ...string) *PanelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Panel entity.
func (_u *PanelUpdateOne) Save(ctx context.Context) (*Panel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PanelUpdateOne) SaveX(ctx context.Context) *Panel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PanelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PanelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PanelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := panel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PanelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := panel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Panel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := panel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Panel.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := panel.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Panel.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := panel.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Panel.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Panel.profile"`)
	}
	return nil
}

func (_u *PanelUpdateOne) sqlSave(ctx context.Context) (_node *Panel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(panel.Table, panel.Columns, sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Panel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, panel.FieldID)
		for _, f := range fields {
			if !panel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != panel.FieldID {
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
		_spec.SetField(panel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(panel.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(panel.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.CollectionDate(); ok {
		_spec.SetField(panel.FieldCollectionDate, field.TypeTime, value)
	}
	if _u.mutation.CollectionDateCleared() {
		_spec.ClearField(panel.FieldCollectionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(panel.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(panel.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(panel.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientFirstName(); ok {
		_spec.SetField(panel.FieldPatientFirstName, field.TypeString, value)
	}
	if _u.mutation.PatientFirstNameCleared() {
		_spec.ClearField(panel.FieldPatientFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientLastName(); ok {
		_spec.SetField(panel.FieldPatientLastName, field.TypeString, value)
	}
	if _u.mutation.PatientLastNameCleared() {
		_spec.ClearField(panel.FieldPatientLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientDateOfBirth(); ok {
		_spec.SetField(panel.FieldPatientDateOfBirth, field.TypeString, value)
	}
	if _u.mutation.PatientDateOfBirthCleared() {
		_spec.ClearField(panel.FieldPatientDateOfBirth, field.TypeString)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(panel.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(panel.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(panel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(panel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   panel.ProfileTable,
			Columns: []string{panel.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   panel.ProfileTable,
			Columns: []string{panel.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiomarkersIDs(); len(nodes) > 0 && !_u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiomarkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.BiomarkersTable,
			Columns: []string{panel.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   panel.JobsTable,
			Columns: []string{panel.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Panel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{panel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
