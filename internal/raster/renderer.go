// Package raster is the boundary to the page-image conversion utility. The
// pipeline treats rendering as a black box: any implementation of Renderer
// is interchangeable, and a per-page failure is isolated to that page.
package raster

import (
	"context"
	"sync"
)

// Renderer produces a fixed-resolution raster of one page. Implementations
// must be safe for concurrent use; the pipeline renders pages in parallel.
type Renderer interface {
	RenderPage(ctx context.Context, docPath string, pageIndex int, dpi int) ([]byte, error)
}

// PageCache memoizes rendered pages for the lifetime of one extraction run.
// It is request-scoped and never persisted.
type PageCache struct {
	r   Renderer
	dpi int

	mu    sync.Mutex
	pages map[int][]byte
	errs  map[int]error
}

// NewPageCache wraps a renderer with a per-run page cache.
func NewPageCache(r Renderer, dpi int) *PageCache {
	return &PageCache{
		r:     r,
		dpi:   dpi,
		pages: make(map[int][]byte),
		errs:  make(map[int]error),
	}
}

// Page returns the raster for a page, rendering it at most once per run.
// A render failure is cached too: retrying the same broken page within one
// run will not repair it.
func (c *PageCache) Page(ctx context.Context, docPath string, index int) ([]byte, error) {
	c.mu.Lock()
	if b, ok := c.pages[index]; ok {
		c.mu.Unlock()
		return b, nil
	}
	if err, ok := c.errs[index]; ok {
		c.mu.Unlock()
		return nil, err
	}
	c.mu.Unlock()

	b, err := c.r.RenderPage(ctx, docPath, index, c.dpi)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.errs[index] = err
		return nil, err
	}
	c.pages[index] = b
	return b, nil
}
