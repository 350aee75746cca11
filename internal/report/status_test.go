package report

import (
	"math"
	"testing"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max *float64
		want     constants.BiomarkerStatus
	}{
		{"inside range", 5.5, Ptr(4.0), Ptr(6.0), constants.StatusNormal},
		{"above range", 7.0, Ptr(4.0), Ptr(6.0), constants.StatusHigh},
		{"below range", 2.0, Ptr(4.0), Ptr(6.0), constants.StatusLow},
		{"equal to min", 4.0, Ptr(4.0), Ptr(6.0), constants.StatusNormal},
		{"equal to max", 6.0, Ptr(4.0), Ptr(6.0), constants.StatusNormal},
		{"no bounds", 123.0, nil, nil, constants.StatusNormal},
		{"only min, above", 5.0, Ptr(4.0), nil, constants.StatusNormal},
		{"only max, below", 5.0, nil, Ptr(6.0), constants.StatusNormal},
		// 0 is a real bound, not an absent one
		{"zero min bound", -1.0, Ptr(0.0), nil, constants.StatusLow},
		{"zero max bound", 1.0, nil, Ptr(0.0), constants.StatusHigh},
		{"zero value on zero min", 0.0, Ptr(0.0), nil, constants.StatusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("DeriveStatus(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeRederivesStatus(t *testing.T) {
	in := []Biomarker{
		{Name: "Glucose", Value: 250, ReferenceMin: Ptr(70.0), ReferenceMax: Ptr(100.0), Status: constants.StatusNormal},
	}
	out := Normalize(in)
	if len(out) != 1 {
		t.Fatalf("got %d biomarkers, want 1", len(out))
	}
	if out[0].Status != constants.StatusHigh {
		t.Errorf("Status = %q, want %q", out[0].Status, constants.StatusHigh)
	}
}

func TestNormalizeKeepsCriticalAssertion(t *testing.T) {
	in := []Biomarker{
		// value sits inside the range, but the report flagged it critical
		{Name: "Potassium", Value: 4.0, ReferenceMin: Ptr(3.5), ReferenceMax: Ptr(5.0), Status: constants.StatusCritical},
	}
	out := Normalize(in)
	if out[0].Status != constants.StatusCritical {
		t.Errorf("Status = %q, want critical preserved", out[0].Status)
	}
}

func TestNormalizeDropsInvalidEntries(t *testing.T) {
	in := []Biomarker{
		{Name: "", Value: 5},
		{Name: "Glucose", Value: math.NaN()},
		{Name: "Sodium", Value: math.Inf(1)},
		{Name: "Hemoglobin", Value: 13.5},
	}
	out := Normalize(in)
	if len(out) != 1 || out[0].Name != "Hemoglobin" {
		t.Fatalf("Normalize kept %v, want only Hemoglobin", out)
	}
}

func TestNormalizeFillsCategory(t *testing.T) {
	out := Normalize([]Biomarker{
		{Name: "Hemoglobin", Value: 13.5},
		{Name: "HDL Cholesterol", Value: 55},
		{Name: "Mystery Assay", Value: 1},
		{Name: "CRP", Value: 0.4, Category: "Inflammation"},
	})
	wantCats := []string{"Hematology", "Lipid", "Other", "Inflammation"}
	for i, want := range wantCats {
		if out[i].Category != want {
			t.Errorf("%s: Category = %q, want %q", out[i].Name, out[i].Category, want)
		}
	}
}

func TestDedupeByNameKeepsFirst(t *testing.T) {
	in := []Biomarker{
		{Name: "Glucose", Value: 95},
		{Name: "Sodium", Value: 140},
		{Name: "Glucose", Value: 105},
	}
	out := DedupeByName(in)
	if len(out) != 2 {
		t.Fatalf("got %d biomarkers, want 2", len(out))
	}
	if out[0].Name != "Glucose" || out[0].Value != 95 {
		t.Errorf("first Glucose occurrence should win, got %+v", out[0])
	}
	if out[1].Name != "Sodium" {
		t.Errorf("insertion order not preserved: %+v", out)
	}
}
