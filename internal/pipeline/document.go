package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/internal/pagetext"
	"github.com/closingdesk/contract-extract/internal/raster"
)

// Document is the runner's view of one open document: page count, per-page
// machine text, per-page raster and the full text for contextual rules.
// Everything behind it is request-scoped; nothing outlives the run.
type Document interface {
	PageCount() int
	PageTokens(index int) (pagetext.Page, error)
	PageRaster(ctx context.Context, index int) ([]byte, error)
	Text() string
}

// fileDocument backs Document with a parsed PDF and a cached renderer.
type fileDocument struct {
	path   string
	text   *pagetext.Document
	raster *raster.PageCache
}

// OpenDocument opens a document for one extraction run. An error here is
// the catastrophic case: the document cannot be opened or paginated at all.
// Image scans (jpg/png/tif) have no machine text layer: they open as a
// one-page document whose pattern tier produces nothing, leaving the model
// and contextual tiers to carry the fields.
func OpenDocument(path string, r raster.Renderer, dpi int) (Document, func() error, error) {
	if constants.MapExtToFormat(filepath.Ext(path)) == constants.IMAGE {
		if _, err := os.Stat(path); err != nil {
			return nil, nil, err
		}
		d := &imageDocument{
			path:   path,
			raster: raster.NewPageCache(r, dpi),
		}
		return d, func() error { return nil }, nil
	}

	td, err := pagetext.Open(path)
	if err != nil {
		return nil, nil, err
	}
	d := &fileDocument{
		path:   path,
		text:   td,
		raster: raster.NewPageCache(r, dpi),
	}
	return d, td.Close, nil
}

func (d *fileDocument) PageCount() int { return d.text.PageCount() }

func (d *fileDocument) PageTokens(index int) (pagetext.Page, error) {
	return d.text.Page(index)
}

func (d *fileDocument) PageRaster(ctx context.Context, index int) ([]byte, error) {
	return d.raster.Page(ctx, d.path, index)
}

func (d *fileDocument) Text() string { return d.text.Text() }

// imageDocument backs Document with a single image scan. There is no text
// layer; PageTokens yields an empty page so the pattern tier scans nothing
// instead of failing the page.
type imageDocument struct {
	path   string
	raster *raster.PageCache
}

func (d *imageDocument) PageCount() int { return 1 }

func (d *imageDocument) PageTokens(index int) (pagetext.Page, error) {
	return pagetext.Page{Index: index}, nil
}

func (d *imageDocument) PageRaster(ctx context.Context, index int) ([]byte, error) {
	// A PNG scan is already the raster the model consumes. Other image
	// formats go through the converter, which normalizes them to PNG.
	if constants.NormalizeExt(filepath.Ext(d.path)) == "png" {
		return os.ReadFile(d.path)
	}
	return d.raster.Page(ctx, d.path, index)
}

func (d *imageDocument) Text() string { return "" }
