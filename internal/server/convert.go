package server

import (
	"strings"
	"time"

	labreportsv1 "github.com/DurgeshS-25/labpanel-tracker/gen/proto/labreports/v1"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
)

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toPBProfile(p *ent.Profile) *labreportsv1.Profile {
	return &labreportsv1.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		Email:     derefStr(p.Email),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBPanel(p *ent.Panel) *labreportsv1.Panel {
	out := &labreportsv1.Panel{
		Id:               p.ID.String(),
		ProfileId:        p.ProfileID.String(),
		Name:             p.Name,
		Provider:         derefStr(p.Provider),
		Status:           p.Status,
		SourcePath:       p.SourcePath,
		ExtractionMethod: p.ExtractionMethod,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.CollectionDate != nil {
		out.CollectionDate = p.CollectionDate.Format("2006-01-02")
	}
	patient := &labreportsv1.PatientInfo{
		FirstName:   derefStr(p.PatientFirstName),
		LastName:    derefStr(p.PatientLastName),
		DateOfBirth: derefStr(p.PatientDateOfBirth),
		Gender:      derefStr(p.PatientGender),
	}
	if patient.FirstName != "" || patient.LastName != "" || patient.DateOfBirth != "" || patient.Gender != "" {
		out.Patient = patient
	}
	return out
}

func toPBBiomarker(b *ent.Biomarker) *labreportsv1.Biomarker {
	return &labreportsv1.Biomarker{
		Id:           b.ID.String(),
		PanelId:      b.PanelID.String(),
		Name:         b.Name,
		Value:        b.Value,
		Unit:         b.Unit,
		ReferenceMin: b.ReferenceMin,
		ReferenceMax: b.ReferenceMax,
		Status:       b.Status,
		Category:     b.Category,
	}
}

// parseDate parses an optional YYYY-MM-DD request field.
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
