package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

var errEmptyPrimaryResult = errors.New("primary extractor returned zero biomarkers")

// ResultWriter persists the final ExtractionResult exactly once:
// one panel row plus its biomarker rows. Partial results are never written.
type ResultWriter interface {
	SavePanel(ctx context.Context, profileID uuid.UUID, sourcePath string, res report.ExtractionResult) (uuid.UUID, error)
}

// JobTracker records per-document job bookkeeping.
type JobTracker interface {
	Start(ctx context.Context, profileID, fileID uuid.UUID, format string) (uuid.UUID, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, pages int) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, method constants.ExtractionMethod) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// Outcome is the caller-facing contract the surrounding service layer relays.
type Outcome struct {
	Success          bool                       `json:"success"`
	PanelID          string                     `json:"panelId,omitempty"`
	Biomarkers       []report.Biomarker         `json:"biomarkers,omitempty"`
	Patient          report.PatientInfo         `json:"patient,omitempty"`
	ExtractionMethod constants.ExtractionMethod `json:"extractionMethod,omitempty"`
	Error            string                     `json:"error,omitempty"`
}

// Service ties the processor to job bookkeeping and persistence.
type Service struct {
	logger *slog.Logger
	proc   *Processor
	jobs   JobTracker
	writer ResultWriter
}

func NewService(logger *slog.Logger, proc *Processor, jobs JobTracker, writer ResultWriter) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, proc: proc, jobs: jobs, writer: writer}
}

// ProcessFile runs the whole pipeline for one uploaded document and
// persists the result. On any failure nothing reaches the panel tables;
// the job row records the terminal cause.
func (s *Service) ProcessFile(ctx context.Context, profileID, fileID uuid.UUID, path, format string) (*Outcome, error) {
	start := time.Now()
	jobID, err := s.jobs.Start(ctx, profileID, fileID, format)
	if err != nil {
		return &Outcome{Error: err.Error()}, &PersistenceError{Op: "start job", Cause: err}
	}

	res, doc, err := s.proc.Process(ctx, path)
	if doc.Full != "" {
		if jerr := s.jobs.FinishOCR(ctx, jobID, doc.Full, len(doc.Pages)); jerr != nil {
			s.logger.Warn("pipeline.job.ocr_record_failed", "job_id", jobID, "error", jerr)
		}
	}
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, jobID, err.Error())
		return &Outcome{Error: err.Error()}, err
	}

	panelID, err := s.writer.SavePanel(ctx, profileID, path, res)
	if err != nil {
		perr := &PersistenceError{Op: "save panel", Cause: err}
		_ = s.jobs.FinishFailure(ctx, jobID, perr.Error())
		return &Outcome{Error: perr.Error()}, perr
	}
	if err := s.jobs.FinishSuccess(ctx, jobID, res.Method); err != nil {
		s.logger.Warn("pipeline.job.finish_record_failed", "job_id", jobID, "error", err)
	}

	s.logger.Info("pipeline.done",
		"file_id", fileID, "panel_id", panelID, "method", res.Method,
		"biomarkers", len(res.Biomarkers),
		"elapsed_ms", time.Since(start).Milliseconds())

	return &Outcome{
		Success:          true,
		PanelID:          panelID.String(),
		Biomarkers:       res.Biomarkers,
		Patient:          res.Patient,
		ExtractionMethod: res.Method,
	}, nil
}
