package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/extract/contextual"
	"github.com/closingdesk/contract-extract/internal/extract/pattern"
	"github.com/closingdesk/contract-extract/internal/schema"
	"github.com/closingdesk/contract-extract/internal/vision"
)

const (
	// PatternThreshold short-circuits the chain when a pattern attempt is
	// confident enough to skip the inference call.
	PatternThreshold = 0.85
	// ModelThreshold short-circuits before the contextual tier.
	ModelThreshold = 0.5
)

// Runner drives the strategy chain per page and field group: pattern first,
// then the vision model through the retry policy, then contextual rules over
// the whole document for fields still open. Every attempt actually produced
// is retained and forwarded to the merger, not just the winner — the merge
// re-resolves from full history.
type Runner struct {
	Logger     *slog.Logger
	Catalog    *schema.Catalog
	Pattern    *pattern.Extractor
	Vision     vision.FieldExtractor
	Contextual *contextual.Extractor
	Retry      RetryPolicy
	Gate       *Gate

	// PageWorkers bounds page-level parallelism. Pages share no mutable
	// state, so the final merge result is independent of processing order.
	PageWorkers int
}

// Run extracts all attempts for one document. It never fails: a broken page
// or an exhausted inference call degrades to zero attempts for the affected
// fields, and a cancelled page contributes nothing, identical to a failed
// one.
func (r *Runner) Run(ctx context.Context, doc Document) []extract.Attempt {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := r.PageWorkers
	if workers <= 0 {
		workers = 1
	}

	pageCount := doc.PageCount()
	perPage := make([][]extract.Attempt, pageCount)

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				perPage[i] = r.runPage(ctx, logger, doc, i)
			}
		}()
	}
	for i := 0; i < pageCount; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	var all []extract.Attempt
	for _, attempts := range perPage {
		all = append(all, attempts...)
	}

	// Contextual tier: only for fields with zero qualifying attempts from
	// the stronger strategies.
	all = append(all, r.runContextual(doc, all)...)
	return all
}

// runPage runs pattern then model for every group on one page. Page-text
// and raster failures are each fatal only for the strategies that need
// them; the run continues for the remaining pages.
func (r *Runner) runPage(ctx context.Context, logger *slog.Logger, doc Document, page int) []extract.Attempt {
	groups := r.Catalog.GroupsForPage(page)
	if len(groups) == 0 {
		return nil
	}

	tokens, tokErr := doc.PageTokens(page)
	if tokErr != nil {
		logger.Warn("pipeline.page.text_failed", "page", page, "error", tokErr)
	}

	var attempts []extract.Attempt
	var rasterBytes []byte
	rasterTried := false

	for _, group := range groups {
		specs := r.Catalog.Group(group)

		if tokErr == nil {
			attempts = append(attempts, r.Pattern.Extract(tokens, specs)...)
		}

		open := openSpecs(specs, attempts, extract.StrategyPattern, PatternThreshold)
		if len(open) == 0 {
			continue
		}

		if !rasterTried {
			rasterTried = true
			b, err := doc.PageRaster(ctx, page)
			if err != nil {
				logger.Warn("pipeline.page.raster_failed", "page", page, "error", err)
			} else {
				rasterBytes = b
			}
		}
		if rasterBytes == nil {
			continue // page conversion failed; fields degrade to contextual or null
		}

		modelAttempts := r.callModel(ctx, logger, vision.GroupRequest{
			Page:        page,
			ImagePNG:    rasterBytes,
			Group:       group,
			Instruction: r.Catalog.Instruction(group),
			Specs:       open,
		})
		attempts = append(attempts, modelAttempts...)
	}
	return attempts
}

// callModel wraps the inference call with the concurrency gate and the
// retry policy. Exhausted retries and terminal failures both degrade to
// zero attempts; the failure never aborts the document.
func (r *Runner) callModel(ctx context.Context, logger *slog.Logger, req vision.GroupRequest) []extract.Attempt {
	if r.Vision == nil {
		return nil
	}

	var out []extract.Attempt
	err := r.Retry.Do(ctx, logger, "vision.extract", func(ctx context.Context) error {
		if r.Gate != nil {
			if err := r.Gate.Acquire(ctx); err != nil {
				return err
			}
			defer r.Gate.Release()
		}
		attempts, _, err := r.Vision.ExtractGroup(ctx, req)
		if err != nil {
			return err
		}
		out = attempts
		return nil
	})
	if err != nil {
		logger.Warn("pipeline.model.degraded",
			"page", req.Page, "group", req.Group, "error", err)
		return nil
	}
	return out
}

// runContextual emits rule-based attempts for fields that got no qualifying
// attempt from pattern or model anywhere in the document.
func (r *Runner) runContextual(doc Document, attempts []extract.Attempt) []extract.Attempt {
	if r.Contextual == nil {
		return nil
	}
	qualified := make(map[string]bool)
	for _, a := range attempts {
		if a.Confidence >= ModelThreshold {
			qualified[a.Field] = true
		}
	}
	var open []schema.FieldSpec
	for _, f := range r.Catalog.Fields {
		if len(f.Rules) > 0 && !qualified[f.Name] {
			open = append(open, f)
		}
	}
	if len(open) == 0 {
		return nil
	}
	return r.Contextual.Extract(doc.Text(), open)
}

// openSpecs returns the specs that have no attempt from the given strategy
// at or above the threshold.
func openSpecs(specs []schema.FieldSpec, attempts []extract.Attempt, strat extract.Strategy, threshold float64) []schema.FieldSpec {
	done := make(map[string]bool)
	for _, a := range attempts {
		if a.Strategy == strat && a.Confidence >= threshold {
			done[a.Field] = true
		}
	}
	open := make([]schema.FieldSpec, 0, len(specs))
	for _, f := range specs {
		if !done[f.Name] {
			open = append(open, f)
		}
	}
	return open
}
