package server

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
	labreportsv1 "github.com/DurgeshS-25/labpanel-tracker/gen/proto/labreports/v1"
	"github.com/DurgeshS-25/labpanel-tracker/internal/async"
	"github.com/DurgeshS-25/labpanel-tracker/internal/common"
	"github.com/DurgeshS-25/labpanel-tracker/internal/export"
	"github.com/DurgeshS-25/labpanel-tracker/internal/pipeline"
	"github.com/DurgeshS-25/labpanel-tracker/internal/repository"
)

type PanelsServer struct {
	labreportsv1.UnimplementedPanelsServiceServer
	profileRepo repository.ProfileRepository
	fileRepo    repository.ReportFileRepository
	panelRepo   repository.PanelRepository
	svc         *pipeline.Service
	queue       *async.Queue
	exporter    *export.Service
	logger      *slog.Logger
}

func NewPanelsServer(
	profileRepo repository.ProfileRepository,
	fileRepo repository.ReportFileRepository,
	panelRepo repository.PanelRepository,
	svc *pipeline.Service,
	queue *async.Queue,
	exporter *export.Service,
	logger *slog.Logger,
) *PanelsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PanelsServer{
		profileRepo: profileRepo,
		fileRepo:    fileRepo,
		panelRepo:   panelRepo,
		svc:         svc,
		queue:       queue,
		exporter:    exporter,
		logger:      logger,
	}
}

// ProcessReport implements labreportsv1.PanelsServiceServer.
func (s *PanelsServer) ProcessReport(ctx context.Context, req *labreportsv1.ProcessReportRequest) (*labreportsv1.ProcessReportResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		s.logger.Error("process request missing profile_id")
		return nil, common.InvalidArgumentError("profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format", "profile_id", pid, "error", err)
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("process request missing path", "profile_id", profileID)
		return nil, common.InvalidArgumentError("path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid path: %v", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found", "profile_id", profileID)
		return nil, common.InvalidArgumentError("profile not found")
	}

	fileRow, dedup, err := s.registerFile(ctx, profileID, abs, ext)
	if err != nil {
		s.logger.Error("file registration failed", "profile_id", profileID, "path", abs, "error", err)
		return nil, common.InvalidArgumentErrorf("register file: %v", err)
	}
	if dedup {
		s.logger.Info("file already registered", "file_id", fileRow.ID, "path", abs)
	}

	resp := &labreportsv1.ProcessReportResponse{FileId: fileRow.ID.String()}

	if req.GetAsync() && s.queue != nil {
		if err := s.queue.Enqueue(ctx, async.Job{
			ProfileID:   profileID,
			FileID:      fileRow.ID,
			Path:        abs,
			Format:      format,
			SubmittedAt: time.Now(),
		}); err != nil {
			return nil, common.InternalErrorf("enqueue: %v", err)
		}
		resp.Success = true
		return resp, nil
	}

	s.logger.Info("starting report processing", "file_id", fileRow.ID, "path", abs)
	out, err := s.svc.ProcessFile(ctx, profileID, fileRow.ID, abs, format)
	if err != nil {
		// Extraction failures are a domain outcome, not a transport error.
		resp.Error = err.Error()
		return resp, nil
	}

	resp.Success = out.Success
	resp.PanelId = out.PanelID
	resp.BiomarkerCount = int32(len(out.Biomarkers))
	resp.ExtractionMethod = string(out.ExtractionMethod)
	if !out.Patient.IsZero() {
		resp.Patient = &labreportsv1.PatientInfo{
			FirstName:   out.Patient.FirstName,
			LastName:    out.Patient.LastName,
			DateOfBirth: out.Patient.DateOfBirth,
			Gender:      out.Patient.Gender,
		}
	}
	return resp, nil
}

func (s *PanelsServer) ListPanels(ctx context.Context, req *labreportsv1.ListPanelsRequest) (*labreportsv1.ListPanelsResponse, error) {
	profileID, err := uuid.Parse(strings.TrimSpace(req.GetProfileId()))
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	from, ok := parseDate(req.GetFromDate())
	if !ok {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	to, ok := parseDate(req.GetToDate())
	if !ok {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	panels, err := s.panelRepo.ListPanels(ctx, profileID, from, to)
	if err != nil {
		s.logger.Error("list panels failed", "profile_id", profileID, "error", err)
		return nil, common.InternalError("list panels failed")
	}

	out := make([]*labreportsv1.Panel, 0, len(panels))
	for _, p := range panels {
		out = append(out, toPBPanel(p))
	}
	return &labreportsv1.ListPanelsResponse{Panels: out}, nil
}

func (s *PanelsServer) GetPanel(ctx context.Context, req *labreportsv1.GetPanelRequest) (*labreportsv1.GetPanelResponse, error) {
	panelID, err := uuid.Parse(strings.TrimSpace(req.GetPanelId()))
	if err != nil {
		return nil, common.InvalidArgumentError("panel_id must be a UUID")
	}

	panel, biomarkers, err := s.panelRepo.GetPanel(ctx, panelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("panel not found")
		}
		s.logger.Error("get panel failed", "panel_id", panelID, "error", err)
		return nil, common.InternalError("get panel failed")
	}

	out := make([]*labreportsv1.Biomarker, 0, len(biomarkers))
	for _, b := range biomarkers {
		out = append(out, toPBBiomarker(b))
	}
	return &labreportsv1.GetPanelResponse{Panel: toPBPanel(panel), Biomarkers: out}, nil
}

func (s *PanelsServer) ExportPanels(ctx context.Context, req *labreportsv1.ExportPanelsRequest) (*labreportsv1.ExportPanelsResponse, error) {
	profileID, err := uuid.Parse(strings.TrimSpace(req.GetProfileId()))
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	from, ok := parseDate(req.GetFromDate())
	if !ok {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	to, ok := parseDate(req.GetToDate())
	if !ok {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	xlsx, rows, err := s.exporter.ExportBiomarkersXLSX(ctx, profileID, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", profileID, "err", err)
		return nil, common.InternalError(err.Error())
	}

	dir := strings.TrimSpace(req.GetOutPath())
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("biomarkers-%s-%s.xlsx", profileID.String()[:8], time.Now().UTC().Format("20060102-150405"))
	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
		s.logger.Error("export.write.failed", "path", outPath, "err", err)
		return nil, common.InternalErrorf("write workbook: %v", err)
	}

	return &labreportsv1.ExportPanelsResponse{Path: outPath, RowCount: int32(rows)}, nil
}

// registerFile hashes the document and records it, deduplicating on
// (profile_id, content_hash).
func (s *PanelsServer) registerFile(ctx context.Context, profileID uuid.UUID, abs, ext string) (*ent.ReportFile, bool, error) {
	f, err := os.Open(abs)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close file failed", "path", abs, "error", cerr)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return nil, false, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, false, err
	}

	return s.fileRepo.UpsertByHash(ctx, profileID, abs, filepath.Base(abs), ext, int(st.Size()), h.Sum(nil), time.Now().UTC())
}
