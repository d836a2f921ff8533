package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/internal/async"
	"github.com/closingdesk/contract-extract/internal/common"
	"github.com/closingdesk/contract-extract/internal/export"
	"github.com/closingdesk/contract-extract/internal/ingest"
	"github.com/closingdesk/contract-extract/internal/pipeline"
	repo "github.com/closingdesk/contract-extract/internal/repository"
	"github.com/closingdesk/contract-extract/internal/vision/openai"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		family  = flag.String("family", constants.FamilyRPACA, "template family of the documents")
		dir     = flag.String("dir", "", "directory to process contracts from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
		watch   = flag.Bool("watch", false, "keep watching the directory for new documents")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if !constants.IsKnownFamily(*family) {
		printError("Error: unknown template family %q\n", *family)
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "contracts.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	dedup, err := repo.NewDedupStore(cfg.Database.DedupPath, logger)
	if err != nil {
		logger.Error("failed to open dedup store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = dedup.Close() }()

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

	logger.Info("starting ingestion", "dir", *dir, "family", *family)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *family, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" && !result.Deduplicated {
			fileID, err := uuid.Parse(result.FileID)
			if err != nil {
				logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
				continue
			}
			ingested = append(ingested, fileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		if _, _, err := processor.ProcessFile(ctx, fileID); err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	if *watch {
		runWatch(ctx, logger, ingestor, processor, *family, *dir)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(entc, contractsRepo, filesRepo, logger)

	xlsxBytes, err := exportService.ExportContractsXLSX(ctx, *family, from, to)
	if err != nil {
		logger.Error("failed to export contracts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

// runWatch keeps ingesting documents dropped under dir until interrupted.
func runWatch(ctx context.Context, logger *slog.Logger, ingestor ingest.Ingestor, processor *pipeline.Processor, family, dir string) {
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
	)
	defer queue.Shutdown(context.Background())

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Second,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for new contract documents", "dir", dir, "family", family)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watch error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, family, path)
			if err != nil {
				logger.Error("watch ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated {
				continue
			}
			if fileID, err := uuid.Parse(r.FileID); err == nil {
				_ = queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()})
			}
		}
	}
}
