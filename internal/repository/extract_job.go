package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
)

// ExtractJobRepository implements pipeline.JobTracker on the extract_job table.
type ExtractJobRepository interface {
	Start(ctx context.Context, profileID, fileID uuid.UUID, format string) (uuid.UUID, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, pages int) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, method constants.ExtractionMethod) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractJobRepository(client *ent.Client, logger *slog.Logger) ExtractJobRepository {
	return &extractJobRepository{client: client, logger: logger}
}

func (r *extractJobRepository) Start(ctx context.Context, profileID, fileID uuid.UUID, format string) (uuid.UUID, error) {
	job, err := r.client.ExtractJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("extract_job start failed", "file_id", fileID, "err", err)
		return uuid.Nil, err
	}
	r.logger.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job.ID, nil
}

func (r *extractJobRepository) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, pages int) error {
	_, err := r.client.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetPages(pages).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.logger.Error("extract_job OCR record failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *extractJobRepository) FinishSuccess(ctx context.Context, jobID uuid.UUID, method constants.ExtractionMethod) error {
	_, err := r.client.ExtractJob.
		UpdateOneID(jobID).
		SetExtractionMethod(string(method)).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.logger.Error("extract_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.logger.Info("extract_job finished", "job_id", jobID, "method", method)
	return nil
}

func (r *extractJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.client.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.logger.Warn("extract_job failed", "job_id", jobID, "error", message)
	return nil
}
