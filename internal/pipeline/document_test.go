package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/vision"
)

type stubRenderer struct {
	out   []byte
	calls int
}

func (r *stubRenderer) RenderPage(_ context.Context, _ string, _ int, _ int) ([]byte, error) {
	r.calls++
	return r.out, nil
}

func writeScan(t *testing.T, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write scan: %v", err)
	}
	return path
}

func TestOpenDocumentImageScan(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	path := writeScan(t, "scan.png", png)
	sr := &stubRenderer{out: []byte("rendered")}

	doc, closeDoc, err := OpenDocument(path, sr, 200)
	if err != nil {
		t.Fatalf("open image scan: %v", err)
	}
	defer func() {
		if err := closeDoc(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	if got := doc.PageCount(); got != 1 {
		t.Fatalf("page count = %d, want 1", got)
	}
	pg, err := doc.PageTokens(0)
	if err != nil {
		t.Fatalf("image scan text layer must be empty, not an error: %v", err)
	}
	if len(pg.Tokens) != 0 {
		t.Fatalf("tokens = %v, want none", pg.Tokens)
	}
	if doc.Text() != "" {
		t.Fatalf("text = %q, want empty", doc.Text())
	}

	// a PNG is already the raster; the converter must not run
	b, err := doc.PageRaster(context.Background(), 0)
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	if !bytes.Equal(b, png) {
		t.Fatalf("raster = %v, want the file bytes", b)
	}
	if sr.calls != 0 {
		t.Fatalf("renderer ran %d times for a PNG scan, want 0", sr.calls)
	}
}

func TestOpenDocumentImageScanConverts(t *testing.T) {
	path := writeScan(t, "scan.tif", []byte("II*tiff"))
	sr := &stubRenderer{out: []byte("png-from-tiff")}

	doc, closeDoc, err := OpenDocument(path, sr, 200)
	if err != nil {
		t.Fatalf("open image scan: %v", err)
	}
	defer func() { _ = closeDoc() }()

	b, err := doc.PageRaster(context.Background(), 0)
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	if !bytes.Equal(b, []byte("png-from-tiff")) {
		t.Fatalf("raster = %q, want the converted bytes", b)
	}
	if sr.calls != 1 {
		t.Fatalf("renderer calls = %d, want 1", sr.calls)
	}
}

func TestOpenDocumentMissingImage(t *testing.T) {
	if _, _, err := OpenDocument(filepath.Join(t.TempDir(), "gone.png"), &stubRenderer{}, 200); err == nil {
		t.Fatal("expected error for a missing scan file")
	}
}

func TestRunnerImageScanUsesModelTier(t *testing.T) {
	path := writeScan(t, "scan.png", []byte{0x89, 'P', 'N', 'G'})
	doc, closeDoc, err := OpenDocument(path, &stubRenderer{}, 200)
	if err != nil {
		t.Fatalf("open image scan: %v", err)
	}
	defer func() { _ = closeDoc() }()

	fv := &fakeVision{fn: func(req vision.GroupRequest) ([]extract.Attempt, error) {
		return []extract.Attempt{{
			Field: "financing_type", Page: req.Page, Strategy: extract.StrategyModel,
			Value: "B", Confidence: vision.ModelConfidence, Evidence: "model response",
		}}, nil
	}}
	r := newTestRunner(fv)

	attempts := r.Run(context.Background(), doc)

	if got := fv.callCount(); got != 1 {
		t.Fatalf("vision calls = %d, want 1 (pattern has no text to match)", got)
	}
	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("financing_type"); got != "B" {
		t.Fatalf("financing_type = %v, want the model read", got)
	}
}
