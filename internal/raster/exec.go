package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Runner abstracts process execution so converters can be faked in tests.
type Runner interface {
	Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var stderr []byte
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = ee.Stderr
		}
		logger.Debug("raster.exec.failed", "cmd", name, "error", err)
		return out, stderr, err
	}
	return out, nil, nil
}

// ExecRenderer renders PDF pages to PNG by shelling out to a converter
// (pdftoppm or magick). Rendered pages are persisted in an artifact cache
// keyed by content hash and page index, so repeated runs over the same
// document reuse rasters across process restarts.
type ExecRenderer struct {
	Converter string // "pdftoppm" | "magick"
	CacheDir  string
	HashHex   string // content hash of the document, keys the artifact cache
	Runner    Runner
	Logger    *slog.Logger
}

func NewExecRenderer(converter, cacheDir, hashHex string, logger *slog.Logger) *ExecRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	if converter == "" {
		converter = "pdftoppm"
	}
	return &ExecRenderer{
		Converter: converter,
		CacheDir:  cacheDir,
		HashHex:   hashHex,
		Runner:    execRunner{},
		Logger:    logger,
	}
}

func (r *ExecRenderer) RenderPage(ctx context.Context, docPath string, pageIndex int, dpi int) ([]byte, error) {
	// Reuse cached artifact if possible
	var cached string
	if r.CacheDir != "" && r.HashHex != "" {
		cached = filepath.Join(r.CacheDir, fmt.Sprintf("%s-%d.png", r.HashHex, pageIndex))
		if b, err := os.ReadFile(cached); err == nil {
			r.Logger.Debug("raster.cache.hit", "page", pageIndex, "cache", cached)
			return b, nil
		}
		if err := os.MkdirAll(r.CacheDir, 0o755); err != nil {
			return nil, err
		}
	}

	tmpDir, err := os.MkdirTemp("", "ce-raster-*")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	out, err := r.convert(ctx, docPath, pageIndex, dpi, tmpDir)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("page conversion produced no output: %w", err)
	}

	if cached != "" {
		// Best effort; a cache write failure never fails the render.
		if err := os.WriteFile(cached, b, 0o644); err != nil {
			r.Logger.Warn("raster.cache.write_failed", "cache", cached, "error", err)
		}
	}
	return b, nil
}

func (r *ExecRenderer) convert(ctx context.Context, in string, pageIndex, dpi int, tmpDir string) (string, error) {
	page1 := strconv.Itoa(pageIndex + 1) // converters are 1-based
	switch r.Converter {
	case "pdftoppm":
		prefix := filepath.Join(tmpDir, "page")
		if _, errb, err := r.Runner.Run(ctx, "pdftoppm", r.Logger,
			"-png", "-r", strconv.Itoa(dpi), "-f", page1, "-l", page1, "-singlefile", in, prefix); err != nil {
			return "", fmt.Errorf("pdftoppm failed: %s: %w", string(errb), err)
		}
		return prefix + ".png", nil
	case "magick":
		out := filepath.Join(tmpDir, "page.png")
		src := fmt.Sprintf("%s[%d]", in, pageIndex)
		if _, errb, err := r.Runner.Run(ctx, "magick", r.Logger,
			"-density", strconv.Itoa(dpi), src, out); err != nil {
			return "", fmt.Errorf("magick convert failed: %s: %w", string(errb), err)
		}
		return out, nil
	default:
		return "", fmt.Errorf("raster converter not supported: set RasterConfig.Converter to one of: pdftoppm | magick")
	}
}
