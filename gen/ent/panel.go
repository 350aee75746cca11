// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
	"github.com/google/uuid"
)

// Panel is the model entity for the Panel schema.
type Panel struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// CollectionDate holds the value of the "collection_date" field.
	CollectionDate *time.Time `json:"collection_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod string `json:"extraction_method,omitempty"`
	// PatientFirstName holds the value of the "patient_first_name" field.
	PatientFirstName *string `json:"patient_first_name,omitempty"`
	// PatientLastName holds the value of the "patient_last_name" field.
	PatientLastName *string `json:"patient_last_name,omitempty"`
	// PatientDateOfBirth holds the value of the "patient_date_of_birth" field.
	PatientDateOfBirth *string `json:"patient_date_of_birth,omitempty"`
	// PatientGender holds the value of the "patient_gender" field.
	PatientGender *string `json:"patient_gender,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PanelQuery when eager-loading is set.
	Edges        PanelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PanelEdges holds the relations/edges for other nodes in the graph.
type PanelEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Biomarkers holds the value of the biomarkers edge.
	Biomarkers []*Biomarker `json:"biomarkers,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PanelEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// BiomarkersOrErr returns the Biomarkers value or an error if the edge
// was not loaded in eager-loading.
func (e PanelEdges) BiomarkersOrErr() ([]*Biomarker, error) {
	if e.loadedTypes[1] {
		return e.Biomarkers, nil
	}
	return nil, &NotLoadedError{edge: "biomarkers"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e PanelEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Panel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case panel.FieldName, panel.FieldProvider, panel.FieldStatus, panel.FieldSourcePath, panel.FieldExtractionMethod, panel.FieldPatientFirstName, panel.FieldPatientLastName, panel.FieldPatientDateOfBirth, panel.FieldPatientGender:
			values[i] = new(sql.NullString)
		case panel.FieldCollectionDate, panel.FieldCreatedAt, panel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case panel.FieldID, panel.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Panel fields.
func (_m *Panel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case panel.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case panel.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case panel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case panel.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case panel.FieldCollectionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collection_date", values[i])
			} else if value.Valid {
				_m.CollectionDate = new(time.Time)
				*_m.CollectionDate = value.Time
			}
		case panel.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case panel.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case panel.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = value.String
			}
		case panel.FieldPatientFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_first_name", values[i])
			} else if value.Valid {
				_m.PatientFirstName = new(string)
				*_m.PatientFirstName = value.String
			}
		case panel.FieldPatientLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_last_name", values[i])
			} else if value.Valid {
				_m.PatientLastName = new(string)
				*_m.PatientLastName = value.String
			}
		case panel.FieldPatientDateOfBirth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_date_of_birth", values[i])
			} else if value.Valid {
				_m.PatientDateOfBirth = new(string)
				*_m.PatientDateOfBirth = value.String
			}
		case panel.FieldPatientGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_gender", values[i])
			} else if value.Valid {
				_m.PatientGender = new(string)
				*_m.PatientGender = value.String
			}
		case panel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case panel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Panel.
// This includes values selected through modifiers, order, etc.
func (_m *Panel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Panel entity.
func (_m *Panel) QueryProfile() *ProfileQuery {
	return NewPanelClient(_m.config).QueryProfile(_m)
}

// QueryBiomarkers queries the "biomarkers" edge of the Panel entity.
func (_m *Panel) QueryBiomarkers() *BiomarkerQuery {
	return NewPanelClient(_m.config).QueryBiomarkers(_m)
}

// QueryJobs queries the "jobs" edge of the Panel entity.
func (_m *Panel) QueryJobs() *ExtractJobQuery {
	return NewPanelClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Panel.
// Note that you need to call Panel.Unwrap() before calling this method if this Panel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Panel) Update() *PanelUpdateOne {
	return NewPanelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Panel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Panel) Unwrap() *Panel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Panel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Panel) String() string {
	var builder strings.Builder
	builder.WriteString("Panel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CollectionDate; v != nil {
		builder.WriteString("collection_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(_m.ExtractionMethod)
	builder.WriteString(", ")
	if v := _m.PatientFirstName; v != nil {
		builder.WriteString("patient_first_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PatientLastName; v != nil {
		builder.WriteString("patient_last_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PatientDateOfBirth; v != nil {
		builder.WriteString("patient_date_of_birth=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PatientGender; v != nil {
		builder.WriteString("patient_gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Panels is a parsable slice of Panel.
type Panels []*Panel
