package report

import (
	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

// PatientInfo carries optional patient metadata recovered from the document.
// Every field may be empty; the pattern-matching path never fills any of them.
type PatientInfo struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Gender      string `json:"gender,omitempty"`
}

func (p PatientInfo) IsZero() bool {
	return p.FirstName == "" && p.LastName == "" && p.DateOfBirth == "" && p.Gender == ""
}

// Biomarker is one named test result, pre-persistence.
// Reference bounds are pointers so that a literal 0 is a valid boundary,
// distinct from an absent one.
type Biomarker struct {
	Name         string                    `json:"name"`
	Value        float64                   `json:"value"`
	Unit         *string                   `json:"unit"`
	ReferenceMin *float64                  `json:"referenceMin"`
	ReferenceMax *float64                  `json:"referenceMax"`
	Status       constants.BiomarkerStatus `json:"status"`
	Category     string                    `json:"category"`
}

// ExtractionResult is the immutable output of one document's extraction.
type ExtractionResult struct {
	Patient    PatientInfo                `json:"patient"`
	Biomarkers []Biomarker                `json:"biomarkers"`
	Method     constants.ExtractionMethod `json:"extractionMethod"`
}

// Ptr is a helper for literal reference bounds.
func Ptr[T any](v T) *T { return &v }
