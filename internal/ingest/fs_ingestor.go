package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/internal/repository"
)

// FSIngestor reads contract documents from the local filesystem.
type FSIngestor struct {
	FilesRepo repository.ContractFileRepository
	Dedup     repository.DedupStore // optional local dedup ledger
	Logger    *slog.Logger
}

func NewFSIngestor(f repository.ContractFileRepository, dedup repository.DedupStore, logger *slog.Logger) *FSIngestor {
	return &FSIngestor{
		FilesRepo: f,
		Dedup:     dedup,
		Logger:    logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, family, path string) (IngestionResult, error) {
	var out IngestionResult

	if !constants.IsKnownFamily(family) {
		i.Logger.Error("ingest.family.unknown", "family", family)
		return out, fmt.Errorf("unknown template family %q", family)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("ingest.path.invalid", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Error("ingest.ext.unsupported", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension")
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("ingest.open.failed", "path", abs, "error", err)
		return out, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.Logger.Warn("ingest.close.failed", "path", abs, "error", err)
		}
	}(f)

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		i.Logger.Error("ingest.hash.failed", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	if i.Dedup != nil {
		if seen, err := i.Dedup.Seen(ctx, sum); err == nil && seen {
			if row, err := i.FilesRepo.GetByHash(ctx, sum); err == nil {
				return IngestionResult{
					SourcePath:   row.SourcePath,
					FileID:       row.ID.String(),
					Deduplicated: true,
					HashHex:      hex.EncodeToString(sum),
					FileExt:      row.FileExt,
					Format:       constants.MapExtToFormat(row.FileExt),
					UploadedAt:   row.UploadedAt,
				}, nil
			}
			// ledger says seen but DB has no row; fall through to upsert
		}
	}

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, abs, ext, family, sum, now)
	if err != nil {
		return out, err
	}
	if i.Dedup != nil {
		_ = i.Dedup.Mark(ctx, sum, abs)
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		Format:       constants.MapExtToFormat(row.FileExt),
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	family, root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, family, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
