// Package pipeline orchestrates the document field-extraction run: page
// segmentation, the ordered strategy chain per field group, confidence
// merging into one canonical record and post-merge schema validation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/closingdesk/contract-extract/internal/common"
	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/extract/contextual"
	"github.com/closingdesk/contract-extract/internal/extract/pattern"
	"github.com/closingdesk/contract-extract/internal/raster"
	"github.com/closingdesk/contract-extract/internal/schema"
	"github.com/closingdesk/contract-extract/internal/vision"
)

// Config holds pipeline tuning.
type Config struct {
	PageWorkers      int
	RasterConverter  string
	RasterDPI        int
	ArtifactCacheDir string
}

// Pipeline is the library entry point: one call extracts one document into
// a validated ContractRecord. Safe for concurrent use across documents;
// each run is fully isolated.
type Pipeline struct {
	Logger *slog.Logger
	Cfg    Config
	Vision vision.FieldExtractor
	Retry  RetryPolicy
	Gate   *Gate
}

// Result is one document's extraction outcome.
type Result struct {
	Record          *extract.ContractRecord
	MissingRequired []string
	Demoted         []string
}

// New builds a pipeline with defaults filled in.
func New(logger *slog.Logger, cfg Config, fe vision.FieldExtractor, gate *Gate) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PageWorkers <= 0 {
		cfg.PageWorkers = 4
	}
	if cfg.RasterDPI <= 0 {
		cfg.RasterDPI = 200
	}
	return &Pipeline{
		Logger: logger,
		Cfg:    cfg,
		Vision: fe,
		Retry:  DefaultRetryPolicy(),
		Gate:   gate,
	}
}

// Extract runs the whole pipeline for one document on disk. hashHex keys
// the raster artifact cache; family selects the FieldSpec catalogue. Only
// the catastrophic case — unknown family, or a document that cannot be
// opened/paginated — returns an error; everything else degrades into the
// record's null and low-confidence fields.
func (p *Pipeline) Extract(ctx context.Context, docPath, hashHex, family string) (*Result, error) {
	catalog, err := schema.CatalogFor(family)
	if err != nil {
		return nil, common.NewAppError("UNKNOWN_FAMILY", err.Error(), common.ErrInvalidInput)
	}

	renderer := raster.NewExecRenderer(p.Cfg.RasterConverter, p.Cfg.ArtifactCacheDir, hashHex, p.Logger)
	doc, closeDoc, err := OpenDocument(docPath, renderer, p.Cfg.RasterDPI)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if cerr := closeDoc(); cerr != nil {
			p.Logger.Warn("pipeline.document.close_failed", "path", docPath, "error", cerr)
		}
	}()

	return p.ExtractDocument(ctx, doc, catalog), nil
}

// ExtractDocument runs the chain, merge and validation over an already-open
// document. Split out so tests and callers with custom Document
// implementations can drive the pipeline without touching the filesystem.
func (p *Pipeline) ExtractDocument(ctx context.Context, doc Document, catalog *schema.Catalog) *Result {
	runner := &Runner{
		Logger:      p.Logger,
		Catalog:     catalog,
		Pattern:     pattern.New(),
		Vision:      p.Vision,
		Contextual:  contextual.New(),
		Retry:       p.Retry,
		Gate:        p.Gate,
		PageWorkers: p.Cfg.PageWorkers,
	}

	attempts := runner.Run(ctx, doc)
	rec := extract.Merge(attempts, catalog.Required())
	vres := catalog.Validate(rec, p.Logger)

	p.Logger.Info("pipeline.extract.done",
		"family", catalog.Family,
		"pages", doc.PageCount(),
		"attempts", len(rec.Attempts),
		"completeness", rec.Completeness,
		"missing_required", len(vres.MissingRequired),
	)
	return &Result{
		Record:          rec,
		MissingRequired: vres.MissingRequired,
		Demoted:         vres.Demoted,
	}
}
