// Code generated by ent, DO NOT EDIT.

package biomarker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the biomarker type in the database.
	Label = "biomarker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPanelID holds the string denoting the panel_id field in the database.
	FieldPanelID = "panel_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldReferenceMin holds the string denoting the reference_min field in the database.
	FieldReferenceMin = "reference_min"
	// FieldReferenceMax holds the string denoting the reference_max field in the database.
	FieldReferenceMax = "reference_max"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePanel holds the string denoting the panel edge name in mutations.
	EdgePanel = "panel"
	// Table holds the table name of the biomarker in the database.
	Table = "biomarkers"
	// PanelTable is the table that holds the panel relation/edge.
	PanelTable = "biomarkers"
	// PanelInverseTable is the table name for the Panel entity.
	// It exists in this package in order to avoid circular dependency with the "panel" package.
	PanelInverseTable = "panels"
	// PanelColumn is the table column denoting the panel relation/edge.
	PanelColumn = "panel_id"
)

// Columns holds all SQL columns for biomarker fields.
var Columns = []string{
	FieldID,
	FieldPanelID,
	FieldName,
	FieldValue,
	FieldUnit,
	FieldReferenceMin,
	FieldReferenceMax,
	FieldStatus,
	FieldCategory,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Biomarker queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPanelID orders the results by the panel_id field.
func ByPanelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPanelID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByReferenceMin orders the results by the reference_min field.
func ByReferenceMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceMin, opts...).ToFunc()
}

// ByReferenceMax orders the results by the reference_max field.
func ByReferenceMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceMax, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPanelField orders the results by panel field.
func ByPanelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPanelStep(), sql.OrderByField(field, opts...))
	}
}
func newPanelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PanelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PanelTable, PanelColumn),
	)
}
