package main

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
	"github.com/DurgeshS-25/labpanel-tracker/internal/common"
	"github.com/DurgeshS-25/labpanel-tracker/internal/export"
	"github.com/DurgeshS-25/labpanel-tracker/internal/llm/gemini"
	"github.com/DurgeshS-25/labpanel-tracker/internal/ocr"
	"github.com/DurgeshS-25/labpanel-tracker/internal/pattern"
	"github.com/DurgeshS-25/labpanel-tracker/internal/pipeline"
	repo "github.com/DurgeshS-25/labpanel-tracker/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dbPath  = flag.String("db", "panel-batch.sqlite", "SQLite database file (created if missing)")
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of lab reports to process")
		file    = flag.String("file", "", "single lab report to process")
		out     = flag.String("out", "", "output XLSX file path (optional)")
		workers = flag.Int("workers", 2, "concurrent documents")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: --dir or --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	path := *dbPath
	if *inmem {
		path = ":memory:"
	}
	entc, err := repo.OpenSQLite(path, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewReportFileRepository(entc, logger)
	panelsRepo := repo.NewPanelRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	profile, err := profilesRepo.Create(ctx, "Local Batch", "")
	if err != nil {
		logger.Error("failed to create profile", "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", profile.ID, "name", profile.Name)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		PageWorkers:   cfg.OCR.PageWorkers,
	}, logger)

	geminiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Models:      cfg.LLM.Models,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(logger, extractor, geminiClient, pattern.NewExtractor(logger))
	svc := pipeline.NewService(logger, processor, jobsRepo, panelsRepo)

	paths, err := collectFiles(*dir, *file)
	if err != nil {
		logger.Error("failed to collect input files", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("Error: no supported files found\n")
		os.Exit(1)
	}
	logger.Info("starting batch", "files", len(paths), "workers", *workers)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	processed, failures := 0, 0
	for _, p := range paths {
		fileRow, dedup, err := registerFile(ctx, filesRepo, profile.ID, p)
		if err != nil {
			logger.Error("failed to register file", "path", p, "error", err)
			failures++
			continue
		}
		if dedup {
			logger.Info("skipping already-processed file", "path", p, "file_id", fileRow.ID)
			continue
		}

		format := constants.MapExtToFormat(filepath.Ext(p))
		pctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
		outcome, err := svc.ProcessFile(pctx, profile.ID, fileRow.ID, p, format)
		cancel()

		if err != nil {
			failures++
		} else {
			processed++
		}
		if encErr := enc.Encode(outcome); encErr != nil {
			logger.Error("failed to encode outcome", "error", encErr)
		}
	}

	if *out != "" {
		exportService := export.NewService(panelsRepo, logger)
		xlsxBytes, rows, err := exportService.ExportBiomarkersXLSX(ctx, profile.ID, nil, nil)
		if err != nil {
			logger.Error("failed to export biomarkers", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("export written", "output", *out, "rows", rows)
	}

	logger.Info("batch processing complete",
		"files", len(paths),
		"processed", processed,
		"failures", failures)

	if failures > 0 {
		os.Exit(1)
	}
}

// collectFiles gathers the supported inputs: a single file, a directory
// walk, or both.
func collectFiles(dir, file string) ([]string, error) {
	var paths []string
	if file != "" {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, err
		}
		if constants.MapExtToFormat(filepath.Ext(abs)) == "" {
			return nil, fmt.Errorf("unsupported file extension: %s", abs)
		}
		paths = append(paths, abs)
	}
	if dir != "" {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}
			if constants.MapExtToFormat(filepath.Ext(p)) == "" {
				return nil
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				return err
			}
			paths = append(paths, abs)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func registerFile(ctx context.Context, files repo.ReportFileRepository, profileID uuid.UUID, abs string) (*ent.ReportFile, bool, error) {
	f, err := os.Open(abs)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, false, err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, false, err
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	return files.UpsertByHash(ctx, profileID, abs, filepath.Base(abs), ext, int(st.Size()), h.Sum(nil), time.Now().UTC())
}
