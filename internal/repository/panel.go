package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
	entpanel "github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

type PanelRepository interface {
	// SavePanel writes one panel row plus its biomarker rows in a single
	// transaction. It implements pipeline.ResultWriter.
	SavePanel(ctx context.Context, profileID uuid.UUID, sourcePath string, res report.ExtractionResult) (uuid.UUID, error)
	ListPanels(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*ent.Panel, error)
	GetPanel(ctx context.Context, id uuid.UUID) (*ent.Panel, []*ent.Biomarker, error)
}

type panelRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPanelRepository(client *ent.Client, logger *slog.Logger) PanelRepository {
	return &panelRepository{client: client, logger: logger}
}

func (r *panelRepository) SavePanel(ctx context.Context, profileID uuid.UUID, sourcePath string, res report.ExtractionResult) (uuid.UUID, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				r.logger.Warn("panel tx rollback failed", "error", rerr)
			}
		}
	}()

	builder := tx.Panel.Create().
		SetProfileID(profileID).
		SetName(filepath.Base(sourcePath)).
		SetStatus(string(constants.PanelStatusCompleted)).
		SetSourcePath(sourcePath).
		SetExtractionMethod(string(res.Method))

	if p := res.Patient; !p.IsZero() {
		if p.FirstName != "" {
			builder = builder.SetPatientFirstName(p.FirstName)
		}
		if p.LastName != "" {
			builder = builder.SetPatientLastName(p.LastName)
		}
		if p.DateOfBirth != "" {
			builder = builder.SetPatientDateOfBirth(p.DateOfBirth)
		}
		if p.Gender != "" {
			builder = builder.SetPatientGender(p.Gender)
		}
	}

	panel, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create panel: %w", err)
	}

	bulk := make([]*ent.BiomarkerCreate, len(res.Biomarkers))
	for i, b := range res.Biomarkers {
		c := tx.Biomarker.Create().
			SetPanelID(panel.ID).
			SetName(b.Name).
			SetValue(b.Value).
			SetStatus(string(b.Status)).
			SetCategory(b.Category).
			SetNillableUnit(b.Unit).
			SetNillableReferenceMin(b.ReferenceMin).
			SetNillableReferenceMax(b.ReferenceMax)
		bulk[i] = c
	}
	if _, err = tx.Biomarker.CreateBulk(bulk...).Save(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("create biomarkers: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("panel saved",
		"panel_id", panel.ID, "profile_id", profileID,
		"biomarkers", len(res.Biomarkers), "method", res.Method)
	return panel.ID, nil
}

func (r *panelRepository) ListPanels(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*ent.Panel, error) {
	q := r.client.Panel.Query().Where(entpanel.ProfileID(profileID))
	if from != nil {
		q = q.Where(entpanel.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entpanel.CreatedAtLTE(*to))
	}
	panels, err := q.Order(entpanel.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list panels", "profile_id", profileID, "error", err)
		return nil, err
	}
	return panels, nil
}

func (r *panelRepository) GetPanel(ctx context.Context, id uuid.UUID) (*ent.Panel, []*ent.Biomarker, error) {
	panel, err := r.client.Panel.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	biomarkers, err := panel.QueryBiomarkers().All(ctx)
	if err != nil {
		return nil, nil, err
	}
	return panel, biomarkers, nil
}
