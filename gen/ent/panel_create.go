// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/biomarker"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/extractjob"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
	"github.com/google/uuid"
)

// PanelCreate is the builder for creating a Panel entity.
type PanelCreate struct {
	config
	mutation *PanelMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *PanelCreate) SetProfileID(v uuid.UUID) *PanelCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PanelCreate) SetName(v string) *PanelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *PanelCreate) SetProvider(v string) *PanelCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *PanelCreate) SetNillableProvider(v *string) *PanelCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetCollectionDate sets the "collection_date" field.
func (_c *PanelCreate) SetCollectionDate(v time.Time) *PanelCreate {
	_c.mutation.SetCollectionDate(v)
	return _c
}

// SetNillableCollectionDate sets the "collection_date" field if the given value is not nil.
func (_c *PanelCreate) SetNillableCollectionDate(v *time.Time) *PanelCreate {
	if v != nil {
		_c.SetCollectionDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PanelCreate) SetStatus(v string) *PanelCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *PanelCreate) SetSourcePath(v string) *PanelCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *PanelCreate) SetExtractionMethod(v string) *PanelCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetPatientFirstName sets the "patient_first_name" field.
func (_c *PanelCreate) SetPatientFirstName(v string) *PanelCreate {
	_c.mutation.SetPatientFirstName(v)
	return _c
}

// SetNillablePatientFirstName sets the "patient_first_name" field if the given value is not nil.
func (_c *PanelCreate) SetNillablePatientFirstName(v *string) *PanelCreate {
	if v != nil {
		_c.SetPatientFirstName(*v)
	}
	return _c
}

// SetPatientLastName sets the "patient_last_name" field.
func (_c *PanelCreate) SetPatientLastName(v string) *PanelCreate {
	_c.mutation.SetPatientLastName(v)
	return _c
}

// SetNillablePatientLastName sets the "patient_last_name" field if the given value is not nil.
func (_c *PanelCreate) SetNillablePatientLastName(v *string) *PanelCreate {
	if v != nil {
		_c.SetPatientLastName(*v)
	}
	return _c
}

// SetPatientDateOfBirth sets the "patient_date_of_birth" field.
func (_c *PanelCreate) SetPatientDateOfBirth(v string) *PanelCreate {
	_c.mutation.SetPatientDateOfBirth(v)
	return _c
}

// SetNillablePatientDateOfBirth sets the "patient_date_of_birth" field if the given value is not nil.
func (_c *PanelCreate) SetNillablePatientDateOfBirth(v *string) *PanelCreate {
	if v != nil {
		_c.SetPatientDateOfBirth(*v)
	}
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *PanelCreate) SetPatientGender(v string) *PanelCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_c *PanelCreate) SetNillablePatientGender(v *string) *PanelCreate {
	if v != nil {
		_c.SetPatientGender(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PanelCreate) SetCreatedAt(v time.Time) *PanelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PanelCreate) SetNillableCreatedAt(v *time.Time) *PanelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PanelCreate) SetUpdatedAt(v time.Time) *PanelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PanelCreate) SetNillableUpdatedAt(v *time.Time) *PanelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PanelCreate) SetID(v uuid.UUID) *PanelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PanelCreate) SetNillableID(v *uuid.UUID) *PanelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *PanelCreate) SetProfile(v *Profile) *PanelCreate {
	return _c.SetProfileID(v.ID)
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_c *PanelCreate) AddBiomarkerIDs(ids ...uuid.UUID) *PanelCreate {
	_c.mutation.AddBiomarkerIDs(ids...)
	return _c
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_c *PanelCreate) AddBiomarkers(v ...*Biomarker) *PanelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBiomarkerIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *PanelCreate) AddJobIDs(ids ...uuid.UUID) *PanelCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *PanelCreate) AddJobs(v ...*ExtractJob) *PanelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the PanelMutation object of the builder.
func (_c *PanelCreate) Mutation() *PanelMutation {
	return _c.mutation
}

// Save creates the Panel in the database.
func (_c *PanelCreate) Save(ctx context.Context) (*Panel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PanelCreate) SaveX(ctx context.Context) *Panel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PanelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PanelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PanelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := panel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := panel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := panel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PanelCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Panel.profile_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Panel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := panel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Panel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Panel.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := panel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Panel.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Panel.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := panel.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Panel.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "Panel.extraction_method"`)}
	}
	if v, ok := _c.mutation.ExtractionMethod(); ok {
		if err := panel.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Panel.extraction_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Panel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Panel.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Panel.profile"`)}
	}
	return nil
}

func (_c *PanelCreate) sqlSave(ctx context.Context) (*Panel, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PanelCreate) createSpec() (*Panel, *sqlgraph.CreateSpec) {
	var (
		_node = &Panel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(panel.Table, sqlgraph.NewFieldSpec(panel.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(panel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(panel.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.CollectionDate(); ok {
		_spec.SetField(panel.FieldCollectionDate, field.TypeTime, value)
		_node.CollectionDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(panel.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(panel.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(panel.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.PatientFirstName(); ok {
		_spec.SetField(panel.FieldPatientFirstName, field.TypeString, value)
		_node.PatientFirstName = &value
	}
	if value, ok := _c.mutation.PatientLastName(); ok {
		_spec.SetField(panel.FieldPatientLastName, field.TypeString, value)
		_node.PatientLastName = &value
	}
	if value, ok := _c.mutation.PatientDateOfBirth(); ok {
		_spec.SetField(panel.FieldPatientDateOfBirth, field.TypeString, value)
		_node.PatientDateOfBirth = &value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(panel.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(panel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(panel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BiomarkersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PanelCreateBulk is the builder for creating many Panel entities in bulk.
type PanelCreateBulk struct {
	config
	err      error
	builders []*PanelCreate
}

// Save creates the Panel entities in the database.
func (_c *PanelCreateBulk) Save(ctx context.Context) ([]*Panel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Panel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PanelMutation)
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
func (_c *PanelCreateBulk) SaveX(ctx context.Context) []*Panel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PanelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PanelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
