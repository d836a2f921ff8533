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

	contractspb "github.com/closingdesk/contract-extract/gen/proto/contracts/v1"
	"github.com/closingdesk/contract-extract/internal/common"
	"github.com/closingdesk/contract-extract/internal/export"
	"github.com/closingdesk/contract-extract/internal/ingest"
	"github.com/closingdesk/contract-extract/internal/pipeline"
	repo "github.com/closingdesk/contract-extract/internal/repository"
	svc "github.com/closingdesk/contract-extract/internal/server"
	"github.com/closingdesk/contract-extract/internal/vision/openai"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
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

	dedup, err := repo.NewDedupStore(cfg.Database.DedupPath, logger)
	if err != nil {
		logger.Error("failed to open dedup store", "path", cfg.Database.DedupPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dedup.Close(); err != nil {
			logger.Warn("failed to close dedup store", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	filesRepo := repo.NewContractFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)

	visionClient := openai.NewClient(openai.Config{
		Model:       cfg.Vision.Model,
		APIKey:      cfg.Vision.APIKey,
		BaseURL:     cfg.Vision.BaseURL,
		Temperature: cfg.Vision.Temperature,
		Timeout:     cfg.Vision.Timeout,
	}, logger)

	gate := pipeline.NewGate(cfg.Vision.MaxInflight)
	pl := pipeline.New(logger, pipeline.Config{
		PageWorkers:      cfg.Pipeline.PageWorkers,
		RasterConverter:  cfg.Raster.Converter,
		RasterDPI:        cfg.Raster.DPI,
		ArtifactCacheDir: cfg.Raster.ArtifactCacheDir,
	}, visionClient, gate)

	processor := pipeline.NewProcessor(logger, pl, filesRepo, jobsRepo, contractsRepo,
		cfg.Vision.Model, float64(cfg.Pipeline.ReviewThreshold))

	ingestor := ingest.NewFSIngestor(filesRepo, dedup, logger)
	extractionService := svc.NewExtractionService(ingestor, processor, contractsRepo, logger)
	contractspb.RegisterExtractionServiceServer(grpcServer, extractionService)

	exportSvc := export.NewService(entc, contractsRepo, filesRepo, logger)
	exportServer := svc.NewExportServer(exportSvc, logger)
	contractspb.RegisterExportServiceServer(grpcServer, exportServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("contract-extract listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
