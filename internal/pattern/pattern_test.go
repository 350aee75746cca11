package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

func TestExtractColonRangeLayout(t *testing.T) {
	text := strings.Join([]string{
		"QUEST DIAGNOSTICS - FINAL REPORT",
		"Glucose: 95 mg/dL (70-100)",
		"Cholesterol: 250 mg/dL (125-200)",
	}, "\n")

	res, err := NewExtractor(nil).Extract(text)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != constants.MethodPattern {
		t.Errorf("Method = %q, want %q", res.Method, constants.MethodPattern)
	}
	if !res.Patient.IsZero() {
		t.Errorf("pattern path must not recover patient info, got %+v", res.Patient)
	}
	if len(res.Biomarkers) != 2 {
		t.Fatalf("got %d biomarkers, want 2: %+v", len(res.Biomarkers), res.Biomarkers)
	}

	glucose := res.Biomarkers[0]
	if glucose.Name != "Glucose" || glucose.Value != 95 {
		t.Errorf("glucose = %+v", glucose)
	}
	if glucose.Unit == nil || *glucose.Unit != "mg/dL" {
		t.Errorf("glucose unit = %v, want mg/dL", glucose.Unit)
	}
	if glucose.ReferenceMin == nil || *glucose.ReferenceMin != 70 ||
		glucose.ReferenceMax == nil || *glucose.ReferenceMax != 100 {
		t.Errorf("glucose range = %v-%v", glucose.ReferenceMin, glucose.ReferenceMax)
	}
	if glucose.Status != constants.StatusNormal {
		t.Errorf("glucose status = %q, want normal", glucose.Status)
	}

	chol := res.Biomarkers[1]
	if chol.Status != constants.StatusHigh {
		t.Errorf("cholesterol status = %q, want high", chol.Status)
	}
	if chol.Category != string(constants.Lipid) {
		t.Errorf("cholesterol category = %q, want Lipid", chol.Category)
	}
}

func TestExtractColumnsLayout(t *testing.T) {
	res, err := NewExtractor(nil).Extract("Hemoglobin   13.5   g/dL   12.0-15.5")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Biomarkers) != 1 {
		t.Fatalf("got %d biomarkers, want 1: %+v", len(res.Biomarkers), res.Biomarkers)
	}
	b := res.Biomarkers[0]
	if b.Name != "Hemoglobin" || b.Value != 13.5 {
		t.Errorf("biomarker = %+v", b)
	}
	if b.ReferenceMin == nil || *b.ReferenceMin != 12.0 || b.ReferenceMax == nil || *b.ReferenceMax != 15.5 {
		t.Errorf("range = %v-%v", b.ReferenceMin, b.ReferenceMax)
	}
	if b.Category != string(constants.Hematology) {
		t.Errorf("category = %q, want Hematology", b.Category)
	}
}

func TestExtractBareTripleLayout(t *testing.T) {
	res, err := NewExtractor(nil).Extract("Sodium 140 mmol/L")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	b := res.Biomarkers[0]
	if b.Name != "Sodium" || b.Value != 140 {
		t.Errorf("biomarker = %+v", b)
	}
	if b.ReferenceMin != nil || b.ReferenceMax != nil {
		t.Errorf("bare layout must not invent a range: %v-%v", b.ReferenceMin, b.ReferenceMax)
	}
	if b.Status != constants.StatusNormal {
		t.Errorf("status = %q, want normal with no bounds", b.Status)
	}
}

func TestExtractDedupesByNameFirstWins(t *testing.T) {
	text := strings.Join([]string{
		"Glucose: 95 mg/dL (70-100)",
		"Glucose: 180 mg/dL (70-100)",
	}, "\n")
	res, err := NewExtractor(nil).Extract(text)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Biomarkers) != 1 {
		t.Fatalf("got %d biomarkers, want 1", len(res.Biomarkers))
	}
	if res.Biomarkers[0].Value != 95 {
		t.Errorf("first occurrence should win, got value %v", res.Biomarkers[0].Value)
	}
}

func TestExtractRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"name too short", "AB: 5 mg/dL (1-10)"},
		{"name too long", strings.Repeat("X", 51) + ": 5 mg/dL (1-10)"},
		{"missing unit", "Glucose: 95"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor(nil).Extract(tt.line)
			if !errors.Is(err, ErrNoMatches) {
				t.Errorf("Extract(%q) err = %v, want ErrNoMatches", tt.line, err)
			}
		})
	}
}

func TestExtractNoMatches(t *testing.T) {
	_, err := NewExtractor(nil).Extract("this report contains no structured results at all")
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("err = %v, want ErrNoMatches", err)
	}
}
