// Code generated by ent, DO NOT EDIT.

package panel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldProfileID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldProvider, v))
}

// CollectionDate applies equality check predicate on the "collection_date" field. It's identical to CollectionDateEQ.
func CollectionDate(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldCollectionDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldStatus, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldSourcePath, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldExtractionMethod, v))
}

// PatientFirstName applies equality check predicate on the "patient_first_name" field. It's identical to PatientFirstNameEQ.
func PatientFirstName(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientFirstName, v))
}

// PatientLastName applies equality check predicate on the "patient_last_name" field. It's identical to PatientLastNameEQ.
func PatientLastName(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientLastName, v))
}

// PatientDateOfBirth applies equality check predicate on the "patient_date_of_birth" field. It's identical to PatientDateOfBirthEQ.
func PatientDateOfBirth(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientDateOfBirth, v))
}

// PatientGender applies equality check predicate on the "patient_gender" field. It's identical to PatientGenderEQ.
func PatientGender(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientGender, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldProfileID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldProvider, v))
}

// CollectionDateEQ applies the EQ predicate on the "collection_date" field.
func CollectionDateEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldCollectionDate, v))
}

// CollectionDateNEQ applies the NEQ predicate on the "collection_date" field.
func CollectionDateNEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldCollectionDate, v))
}

// CollectionDateIn applies the In predicate on the "collection_date" field.
func CollectionDateIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldCollectionDate, vs...))
}

// CollectionDateNotIn applies the NotIn predicate on the "collection_date" field.
func CollectionDateNotIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldCollectionDate, vs...))
}

// CollectionDateGT applies the GT predicate on the "collection_date" field.
func CollectionDateGT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldCollectionDate, v))
}

// CollectionDateGTE applies the GTE predicate on the "collection_date" field.
func CollectionDateGTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldCollectionDate, v))
}

// CollectionDateLT applies the LT predicate on the "collection_date" field.
func CollectionDateLT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldCollectionDate, v))
}

// CollectionDateLTE applies the LTE predicate on the "collection_date" field.
func CollectionDateLTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldCollectionDate, v))
}

// CollectionDateIsNil applies the IsNil predicate on the "collection_date" field.
func CollectionDateIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldCollectionDate))
}

// CollectionDateNotNil applies the NotNil predicate on the "collection_date" field.
func CollectionDateNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldCollectionDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldStatus, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldSourcePath, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// PatientFirstNameEQ applies the EQ predicate on the "patient_first_name" field.
func PatientFirstNameEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientFirstName, v))
}

// PatientFirstNameNEQ applies the NEQ predicate on the "patient_first_name" field.
func PatientFirstNameNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldPatientFirstName, v))
}

// PatientFirstNameIn applies the In predicate on the "patient_first_name" field.
func PatientFirstNameIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldPatientFirstName, vs...))
}

// PatientFirstNameNotIn applies the NotIn predicate on the "patient_first_name" field.
func PatientFirstNameNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldPatientFirstName, vs...))
}

// PatientFirstNameGT applies the GT predicate on the "patient_first_name" field.
func PatientFirstNameGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldPatientFirstName, v))
}

// PatientFirstNameGTE applies the GTE predicate on the "patient_first_name" field.
func PatientFirstNameGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldPatientFirstName, v))
}

// PatientFirstNameLT applies the LT predicate on the "patient_first_name" field.
func PatientFirstNameLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldPatientFirstName, v))
}

// PatientFirstNameLTE applies the LTE predicate on the "patient_first_name" field.
func PatientFirstNameLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldPatientFirstName, v))
}

// PatientFirstNameContains applies the Contains predicate on the "patient_first_name" field.
func PatientFirstNameContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldPatientFirstName, v))
}

// PatientFirstNameHasPrefix applies the HasPrefix predicate on the "patient_first_name" field.
func PatientFirstNameHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldPatientFirstName, v))
}

// PatientFirstNameHasSuffix applies the HasSuffix predicate on the "patient_first_name" field.
func PatientFirstNameHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldPatientFirstName, v))
}

// PatientFirstNameIsNil applies the IsNil predicate on the "patient_first_name" field.
func PatientFirstNameIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldPatientFirstName))
}

// PatientFirstNameNotNil applies the NotNil predicate on the "patient_first_name" field.
func PatientFirstNameNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldPatientFirstName))
}

// PatientFirstNameEqualFold applies the EqualFold predicate on the "patient_first_name" field.
func PatientFirstNameEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldPatientFirstName, v))
}

// PatientFirstNameContainsFold applies the ContainsFold predicate on the "patient_first_name" field.
func PatientFirstNameContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldPatientFirstName, v))
}

// PatientLastNameEQ applies the EQ predicate on the "patient_last_name" field.
func PatientLastNameEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientLastName, v))
}

// PatientLastNameNEQ applies the NEQ predicate on the "patient_last_name" field.
func PatientLastNameNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldPatientLastName, v))
}

// PatientLastNameIn applies the In predicate on the "patient_last_name" field.
func PatientLastNameIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldPatientLastName, vs...))
}

// PatientLastNameNotIn applies the NotIn predicate on the "patient_last_name" field.
func PatientLastNameNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldPatientLastName, vs...))
}

// PatientLastNameGT applies the GT predicate on the "patient_last_name" field.
func PatientLastNameGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldPatientLastName, v))
}

// PatientLastNameGTE applies the GTE predicate on the "patient_last_name" field.
func PatientLastNameGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldPatientLastName, v))
}

// PatientLastNameLT applies the LT predicate on the "patient_last_name" field.
func PatientLastNameLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldPatientLastName, v))
}

// PatientLastNameLTE applies the LTE predicate on the "patient_last_name" field.
func PatientLastNameLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldPatientLastName, v))
}

// PatientLastNameContains applies the Contains predicate on the "patient_last_name" field.
func PatientLastNameContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldPatientLastName, v))
}

// PatientLastNameHasPrefix applies the HasPrefix predicate on the "patient_last_name" field.
func PatientLastNameHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldPatientLastName, v))
}

// PatientLastNameHasSuffix applies the HasSuffix predicate on the "patient_last_name" field.
func PatientLastNameHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldPatientLastName, v))
}

// PatientLastNameIsNil applies the IsNil predicate on the "patient_last_name" field.
func PatientLastNameIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldPatientLastName))
}

// PatientLastNameNotNil applies the NotNil predicate on the "patient_last_name" field.
func PatientLastNameNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldPatientLastName))
}

// PatientLastNameEqualFold applies the EqualFold predicate on the "patient_last_name" field.
func PatientLastNameEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldPatientLastName, v))
}

// PatientLastNameContainsFold applies the ContainsFold predicate on the "patient_last_name" field.
func PatientLastNameContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldPatientLastName, v))
}

// PatientDateOfBirthEQ applies the EQ predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthNEQ applies the NEQ predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthIn applies the In predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldPatientDateOfBirth, vs...))
}

// PatientDateOfBirthNotIn applies the NotIn predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldPatientDateOfBirth, vs...))
}

// PatientDateOfBirthGT applies the GT predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthGTE applies the GTE predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthLT applies the LT predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthLTE applies the LTE predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthContains applies the Contains predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthHasPrefix applies the HasPrefix predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthHasSuffix applies the HasSuffix predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthIsNil applies the IsNil predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldPatientDateOfBirth))
}

// PatientDateOfBirthNotNil applies the NotNil predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldPatientDateOfBirth))
}

// PatientDateOfBirthEqualFold applies the EqualFold predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldPatientDateOfBirth, v))
}

// PatientDateOfBirthContainsFold applies the ContainsFold predicate on the "patient_date_of_birth" field.
func PatientDateOfBirthContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldPatientDateOfBirth, v))
}

// PatientGenderEQ applies the EQ predicate on the "patient_gender" field.
func PatientGenderEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldPatientGender, v))
}

// PatientGenderNEQ applies the NEQ predicate on the "patient_gender" field.
func PatientGenderNEQ(v string) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldPatientGender, v))
}

// PatientGenderIn applies the In predicate on the "patient_gender" field.
func PatientGenderIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldPatientGender, vs...))
}

// PatientGenderNotIn applies the NotIn predicate on the "patient_gender" field.
func PatientGenderNotIn(vs ...string) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldPatientGender, vs...))
}

// PatientGenderGT applies the GT predicate on the "patient_gender" field.
func PatientGenderGT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldPatientGender, v))
}

// PatientGenderGTE applies the GTE predicate on the "patient_gender" field.
func PatientGenderGTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldPatientGender, v))
}

// PatientGenderLT applies the LT predicate on the "patient_gender" field.
func PatientGenderLT(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldPatientGender, v))
}

// PatientGenderLTE applies the LTE predicate on the "patient_gender" field.
func PatientGenderLTE(v string) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldPatientGender, v))
}

// PatientGenderContains applies the Contains predicate on the "patient_gender" field.
func PatientGenderContains(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContains(FieldPatientGender, v))
}

// PatientGenderHasPrefix applies the HasPrefix predicate on the "patient_gender" field.
func PatientGenderHasPrefix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasPrefix(FieldPatientGender, v))
}

// PatientGenderHasSuffix applies the HasSuffix predicate on the "patient_gender" field.
func PatientGenderHasSuffix(v string) predicate.Panel {
	return predicate.Panel(sql.FieldHasSuffix(FieldPatientGender, v))
}

// PatientGenderIsNil applies the IsNil predicate on the "patient_gender" field.
func PatientGenderIsNil() predicate.Panel {
	return predicate.Panel(sql.FieldIsNull(FieldPatientGender))
}

// PatientGenderNotNil applies the NotNil predicate on the "patient_gender" field.
func PatientGenderNotNil() predicate.Panel {
	return predicate.Panel(sql.FieldNotNull(FieldPatientGender))
}

// PatientGenderEqualFold applies the EqualFold predicate on the "patient_gender" field.
func PatientGenderEqualFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldEqualFold(FieldPatientGender, v))
}

// PatientGenderContainsFold applies the ContainsFold predicate on the "patient_gender" field.
func PatientGenderContainsFold(v string) predicate.Panel {
	return predicate.Panel(sql.FieldContainsFold(FieldPatientGender, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Panel {
	return predicate.Panel(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBiomarkers applies the HasEdge predicate on the "biomarkers" edge.
func HasBiomarkers() predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BiomarkersTable, BiomarkersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBiomarkersWith applies the HasEdge predicate on the "biomarkers" edge with a given conditions (other predicates).
func HasBiomarkersWith(preds ...predicate.Biomarker) predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := newBiomarkersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Panel {
	return predicate.Panel(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Panel) predicate.Panel {
	return predicate.Panel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Panel) predicate.Panel {
	return predicate.Panel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Panel) predicate.Panel {
	return predicate.Panel(sql.NotPredicates(p))
}
