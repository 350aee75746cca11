package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	labreportsv1 "github.com/DurgeshS-25/labpanel-tracker/gen/proto/labreports/v1"
	"github.com/DurgeshS-25/labpanel-tracker/internal/async"
	"github.com/DurgeshS-25/labpanel-tracker/internal/common"
	"github.com/DurgeshS-25/labpanel-tracker/internal/export"
	"github.com/DurgeshS-25/labpanel-tracker/internal/llm/gemini"
	"github.com/DurgeshS-25/labpanel-tracker/internal/ocr"
	"github.com/DurgeshS-25/labpanel-tracker/internal/pattern"
	"github.com/DurgeshS-25/labpanel-tracker/internal/pipeline"
	repo "github.com/DurgeshS-25/labpanel-tracker/internal/repository"
	"github.com/DurgeshS-25/labpanel-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewReportFileRepository(entc, logger)
	panelsRepo := repo.NewPanelRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

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

	queue := async.NewQueue(svc, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	exporter := export.NewService(panelsRepo, logger)

	labreportsv1.RegisterProfilesServiceServer(grpcServer, server.NewProfilesServer(profilesRepo, logger))
	labreportsv1.RegisterPanelsServiceServer(grpcServer,
		server.NewPanelsServer(profilesRepo, filesRepo, panelsRepo, svc, queue, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("labpaneld listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
