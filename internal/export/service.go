package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/DurgeshS-25/labpanel-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	panelRepo repository.PanelRepository
	logger    *slog.Logger
}

func NewService(panelRepo repository.PanelRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{panelRepo: panelRepo, logger: logger}
}

// ExportBiomarkersXLSX returns an XLSX workbook (as bytes) with one row per
// biomarker across the profile's panels, plus the number of data rows.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all panels for profile.
func (s *Service) ExportBiomarkersXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, int, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	panels, err := s.panelRepo.ListPanels(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, 0, fmt.Errorf("query panels: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Biomarkers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Panel Date",
		"Panel",
		"Biomarker",
		"Value",
		"Unit",
		"Reference Range",
		"Status",
		"Category",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range panels {
		_, biomarkers, err := s.panelRepo.GetPanel(ctx, p.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("query biomarkers for panel %s: %w", p.ID, err)
		}

		panelDate := p.CreatedAt.Format("2006-01-02")
		if p.CollectionDate != nil {
			panelDate = p.CollectionDate.Format("2006-01-02")
		}

		for _, b := range biomarkers {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, panelDate)
			write(2, p.Name)
			write(3, b.Name)
			write(4, b.Value)
			if b.Unit != nil {
				write(5, *b.Unit)
			}
			write(6, formatRange(b.ReferenceMin, b.ReferenceMax))
			write(7, b.Status)
			write(8, b.Category)
			write(9, p.SourcePath)

			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // panel
	_ = f.SetColWidth(sheet, "C", "C", 28) // biomarker
	_ = f.SetColWidth(sheet, "D", "F", 16) // value, unit, range
	_ = f.SetColWidth(sheet, "G", "H", 14) // status, category
	_ = f.SetColWidth(sheet, "I", "I", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"panels", len(panels),
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), row - 2, nil
}

func formatRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%g - %g", *min, *max)
	case min != nil:
		return fmt.Sprintf("> %g", *min)
	case max != nil:
		return fmt.Sprintf("< %g", *max)
	default:
		return ""
	}
}
