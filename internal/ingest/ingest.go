package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	Format       string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the service depends on.
type Ingestor interface {
	// IngestPath ingests a single contract document.
	IngestPath(ctx context.Context, family, path string) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, family, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
