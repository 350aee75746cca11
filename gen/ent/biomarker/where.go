// Code generated by ent, DO NOT EDIT.

package biomarker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldID, id))
}

// PanelID applies equality check predicate on the "panel_id" field. It's identical to PanelIDEQ.
func PanelID(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldPanelID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldUnit, v))
}

// ReferenceMin applies equality check predicate on the "reference_min" field. It's identical to ReferenceMinEQ.
func ReferenceMin(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMax applies equality check predicate on the "reference_max" field. It's identical to ReferenceMaxEQ.
func ReferenceMax(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMax, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldStatus, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCreatedAt, v))
}

// PanelIDEQ applies the EQ predicate on the "panel_id" field.
func PanelIDEQ(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldPanelID, v))
}

// PanelIDNEQ applies the NEQ predicate on the "panel_id" field.
func PanelIDNEQ(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldPanelID, v))
}

// PanelIDIn applies the In predicate on the "panel_id" field.
func PanelIDIn(vs ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldPanelID, vs...))
}

// PanelIDNotIn applies the NotIn predicate on the "panel_id" field.
func PanelIDNotIn(vs ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldPanelID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldUnit, v))
}

// ReferenceMinEQ applies the EQ predicate on the "reference_min" field.
func ReferenceMinEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMinNEQ applies the NEQ predicate on the "reference_min" field.
func ReferenceMinNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldReferenceMin, v))
}

// ReferenceMinIn applies the In predicate on the "reference_min" field.
func ReferenceMinIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldReferenceMin, vs...))
}

// ReferenceMinNotIn applies the NotIn predicate on the "reference_min" field.
func ReferenceMinNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldReferenceMin, vs...))
}

// ReferenceMinGT applies the GT predicate on the "reference_min" field.
func ReferenceMinGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldReferenceMin, v))
}

// ReferenceMinGTE applies the GTE predicate on the "reference_min" field.
func ReferenceMinGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldReferenceMin, v))
}

// ReferenceMinLT applies the LT predicate on the "reference_min" field.
func ReferenceMinLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldReferenceMin, v))
}

// ReferenceMinLTE applies the LTE predicate on the "reference_min" field.
func ReferenceMinLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldReferenceMin, v))
}

// ReferenceMinIsNil applies the IsNil predicate on the "reference_min" field.
func ReferenceMinIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldReferenceMin))
}

// ReferenceMinNotNil applies the NotNil predicate on the "reference_min" field.
func ReferenceMinNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldReferenceMin))
}

// ReferenceMaxEQ applies the EQ predicate on the "reference_max" field.
func ReferenceMaxEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMax, v))
}

// ReferenceMaxNEQ applies the NEQ predicate on the "reference_max" field.
func ReferenceMaxNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldReferenceMax, v))
}

// ReferenceMaxIn applies the In predicate on the "reference_max" field.
func ReferenceMaxIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldReferenceMax, vs...))
}

// ReferenceMaxNotIn applies the NotIn predicate on the "reference_max" field.
func ReferenceMaxNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldReferenceMax, vs...))
}

// ReferenceMaxGT applies the GT predicate on the "reference_max" field.
func ReferenceMaxGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldReferenceMax, v))
}

// ReferenceMaxGTE applies the GTE predicate on the "reference_max" field.
func ReferenceMaxGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldReferenceMax, v))
}

// ReferenceMaxLT applies the LT predicate on the "reference_max" field.
func ReferenceMaxLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldReferenceMax, v))
}

// ReferenceMaxLTE applies the LTE predicate on the "reference_max" field.
func ReferenceMaxLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldReferenceMax, v))
}

// ReferenceMaxIsNil applies the IsNil predicate on the "reference_max" field.
func ReferenceMaxIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldReferenceMax))
}

// ReferenceMaxNotNil applies the NotNil predicate on the "reference_max" field.
func ReferenceMaxNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldReferenceMax))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldStatus, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPanel applies the HasEdge predicate on the "panel" edge.
func HasPanel() predicate.Biomarker {
	return predicate.Biomarker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PanelTable, PanelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPanelWith applies the HasEdge predicate on the "panel" edge with a given conditions (other predicates).
func HasPanelWith(preds ...predicate.Panel) predicate.Biomarker {
	return predicate.Biomarker(func(s *sql.Selector) {
		step := newPanelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.NotPredicates(p))
}
