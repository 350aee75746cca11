package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
	entfile "github.com/DurgeshS-25/labpanel-tracker/gen/ent/reportfile"
)

type ReportFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ReportFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, error)
	// UpsertByHash returns the existing row when the same content was
	// already uploaded for this profile; the bool reports deduplication.
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, bool, error)
}

type reportFileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportFileRepository(client *ent.Client, logger *slog.Logger) ReportFileRepository {
	return &reportFileRepository{client: client, logger: logger}
}

func (r *reportFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.ReportFile, error) {
	return r.client.ReportFile.Get(ctx, id)
}

func (r *reportFileRepository) Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, error) {
	row, err := r.client.ReportFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report file", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *reportFileRepository) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, bool, error) {
	existing, err := r.client.ReportFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err == nil {
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query report file by hash", "profile_id", profileID, "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, profileID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
