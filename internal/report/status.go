package report

import (
	"math"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

// DeriveStatus classifies value against the reference range.
// Missing bounds are checked individually; with no bounds at all the
// status defaults to normal.
func DeriveStatus(value float64, min, max *float64) constants.BiomarkerStatus {
	if min != nil && value < *min {
		return constants.StatusLow
	}
	if max != nil && value > *max {
		return constants.StatusHigh
	}
	return constants.StatusNormal
}

// Normalize enforces the Biomarker invariants on an extractor's raw output:
// drops entries with empty names or non-finite values, re-derives status from
// the range (keeping an upstream "critical" assertion as-is), and fills the
// category when the extractor left it empty.
func Normalize(in []Biomarker) []Biomarker {
	out := make([]Biomarker, 0, len(in))
	for _, b := range in {
		if b.Name == "" {
			continue
		}
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
			continue
		}
		if b.Status != constants.StatusCritical {
			b.Status = DeriveStatus(b.Value, b.ReferenceMin, b.ReferenceMax)
		}
		if b.Category == "" {
			b.Category = string(constants.CategoryForTest(b.Name))
		}
		out = append(out, b)
	}
	return out
}

// DedupeByName keeps the first occurrence of each exact test name,
// preserving insertion order.
func DedupeByName(in []Biomarker) []Biomarker {
	seen := make(map[string]struct{}, len(in))
	out := make([]Biomarker, 0, len(in))
	for _, b := range in {
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		out = append(out, b)
	}
	return out
}
