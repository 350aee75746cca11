// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Biomarker is the predicate function for biomarker builders.
type Biomarker func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Panel is the predicate function for panel builders.
type Panel func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// ReportFile is the predicate function for reportfile builders.
type ReportFile func(*sql.Selector)
