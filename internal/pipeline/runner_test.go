package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/extract/contextual"
	"github.com/closingdesk/contract-extract/internal/extract/pattern"
	"github.com/closingdesk/contract-extract/internal/pagetext"
	"github.com/closingdesk/contract-extract/internal/schema"
	"github.com/closingdesk/contract-extract/internal/vision"
)

type fakeDoc struct {
	pages     []pagetext.Page
	tokErr    map[int]error
	raster    map[int][]byte
	rasterErr map[int]error
	text      string
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) PageTokens(i int) (pagetext.Page, error) {
	if err := d.tokErr[i]; err != nil {
		return pagetext.Page{}, err
	}
	return d.pages[i], nil
}

func (d *fakeDoc) PageRaster(_ context.Context, i int) ([]byte, error) {
	if err := d.rasterErr[i]; err != nil {
		return nil, err
	}
	if b, ok := d.raster[i]; ok {
		return b, nil
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (d *fakeDoc) Text() string { return d.text }

type fakeVision struct {
	mu    sync.Mutex
	calls []vision.GroupRequest
	fn    func(req vision.GroupRequest) ([]extract.Attempt, error)
}

func (f *fakeVision) ExtractGroup(_ context.Context, req vision.GroupRequest) ([]extract.Attempt, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.fn == nil {
		return nil, nil, nil
	}
	atts, err := f.fn(req)
	return atts, nil, err
}

func (f *fakeVision) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testRunnerCatalog() *schema.Catalog {
	return &schema.Catalog{
		Family: "TEST",
		Fields: []schema.FieldSpec{
			{Name: "financing_type", Group: "financing", Type: schema.TypeEnum, Required: true,
				Anchor: "3.D(1)", Options: []string{"A", "B"},
				Rules: []schema.ContextRule{{Keyword: "FHA amendatory", ImpliedValue: "B"}}},
			{Name: "escrow_holder", Group: "escrow", Type: schema.TypeString, Required: true,
				Label: "Escrow Holder shall be"},
		},
		PageGroups: map[int][]string{
			0: {"financing"},
			1: {"escrow"},
		},
		Instructions: map[string]string{
			"financing": "Read section 3 of the page.",
			"escrow":    "Read the escrow paragraph.",
		},
	}
}

func tokens(words ...string) pagetext.Page {
	toks := make([]pagetext.Token, len(words))
	for i, w := range words {
		toks[i] = pagetext.Token{Text: w}
	}
	return pagetext.Page{Tokens: toks}
}

func fastRetry(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     func(int) time.Duration { return 0 },
		Retryable:   vision.IsTransient,
		Sleep:       func(context.Context, time.Duration) error { return nil },
	}
}

func newTestRunner(fv *fakeVision) *Runner {
	return &Runner{
		Catalog:     testRunnerCatalog(),
		Pattern:     pattern.New(),
		Vision:      fv,
		Contextual:  contextual.New(),
		Retry:       fastRetry(3),
		Gate:        NewGate(2),
		PageWorkers: 2,
	}
}

func pageAt(p pagetext.Page, index int) pagetext.Page {
	p.Index = index
	return p
}

func TestRunnerPatternShortCircuitSkipsModel(t *testing.T) {
	fv := &fakeVision{}
	r := newTestRunner(fv)
	doc := &fakeDoc{
		pages: []pagetext.Page{
			// unambiguous checkbox at 0.9, then a filled blank at 0.8
			pageAt(tokens("3.D(1)", "X", "A", "B"), 0),
			pageAt(tokens("Escrow", "Holder", "shall", "be", "Pacific", "Escrow", "____"), 1),
		},
	}

	attempts := r.Run(context.Background(), doc)

	if got := fv.callCount(); got != 1 {
		t.Fatalf("vision calls = %d, want 1 (only the escrow group is below the pattern threshold)", got)
	}
	if fv.calls[0].Group != "escrow" {
		t.Fatalf("vision called for group %q, want escrow", fv.calls[0].Group)
	}

	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("financing_type"); got != "A" {
		t.Fatalf("financing_type = %v, want pattern value A", got)
	}
	if got := rec.Value("escrow_holder"); got != "Pacific Escrow" {
		t.Fatalf("escrow_holder = %v, want blank fill", got)
	}
}

func TestRunnerModelFailureDegradesToContextual(t *testing.T) {
	fv := &fakeVision{fn: func(vision.GroupRequest) ([]extract.Attempt, error) {
		return nil, vision.Transient("extract", 503, errors.New("unavailable"))
	}}
	r := newTestRunner(fv)
	doc := &fakeDoc{
		pages: []pagetext.Page{pageAt(tokens("no", "anchors", "here"), 0), pageAt(tokens("still", "nothing"), 1)},
		text:  "attached: FHA amendatory clause signed by all parties",
	}

	attempts := r.Run(context.Background(), doc)

	// 2 pages x 1 group each, 3 attempts per call budget
	if got := fv.callCount(); got != 6 {
		t.Fatalf("vision calls = %d, want 6 (2 groups x 3 retry attempts)", got)
	}

	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("financing_type"); got != "B" {
		t.Fatalf("financing_type = %v, want contextual fallback B", got)
	}
	if prov := rec.Provenance["financing_type"]; prov.Strategy != extract.StrategyContextual || prov.Confidence != contextual.Cap {
		t.Fatalf("fallback provenance = %+v", prov)
	}
	if rec.Value("escrow_holder") != nil {
		t.Fatalf("field with no rules and no reads must stay null, got %v", rec.Value("escrow_holder"))
	}
}

func TestRunnerQualifiedModelSuppressesContextual(t *testing.T) {
	fv := &fakeVision{fn: func(req vision.GroupRequest) ([]extract.Attempt, error) {
		if req.Group != "financing" {
			return nil, nil
		}
		return []extract.Attempt{{
			Field: "financing_type", Page: req.Page, Strategy: extract.StrategyModel,
			Value: "A", Confidence: vision.ModelConfidence, Evidence: "model response",
		}}, nil
	}}
	r := newTestRunner(fv)
	doc := &fakeDoc{
		pages: []pagetext.Page{pageAt(tokens("blank", "page"), 0), pageAt(tokens("blank", "page"), 1)},
		text:  "attached: FHA amendatory clause",
	}

	attempts := r.Run(context.Background(), doc)
	for _, a := range attempts {
		if a.Strategy == extract.StrategyContextual {
			t.Fatalf("contextual must not run for a field with a qualifying model attempt: %+v", a)
		}
	}
}

func TestRunnerPageTextFailureIsolated(t *testing.T) {
	fv := &fakeVision{}
	r := newTestRunner(fv)
	doc := &fakeDoc{
		pages: []pagetext.Page{
			{}, // never returned
			pageAt(tokens("Escrow", "Holder", "shall", "be", "Pacific", "Escrow", "____"), 1),
		},
		tokErr: map[int]error{0: errors.New("text layer corrupt")},
	}

	attempts := r.Run(context.Background(), doc)

	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("escrow_holder"); got != "Pacific Escrow" {
		t.Fatalf("healthy page must still extract, got %v", got)
	}
	// page 0 lost its text layer but the model still sees the raster
	found := false
	for _, c := range fv.calls {
		if c.Group == "financing" && c.Page == 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("model should still be consulted for the page whose text failed")
	}
}

func TestRunnerRasterFailureSkipsModelOnly(t *testing.T) {
	fv := &fakeVision{}
	r := newTestRunner(fv)
	doc := &fakeDoc{
		pages: []pagetext.Page{
			pageAt(tokens("no", "anchors"), 0),
			pageAt(tokens("Escrow", "Holder", "shall", "be", "Pacific", "Escrow", "____"), 1),
		},
		rasterErr: map[int]error{0: errors.New("convert failed")},
	}

	attempts := r.Run(context.Background(), doc)

	for _, c := range fv.calls {
		if c.Page == 0 {
			t.Fatalf("no model call should happen for a page whose raster failed: %+v", c)
		}
	}
	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("escrow_holder"); got != "Pacific Escrow" {
		t.Fatalf("other pages unaffected, got %v", got)
	}
}

func TestRunnerNilVision(t *testing.T) {
	r := newTestRunner(nil)
	r.Vision = nil
	doc := &fakeDoc{
		pages: []pagetext.Page{pageAt(tokens("3.D(1)", "X", "A", "B"), 0), pageAt(tokens("x"), 1)},
	}

	attempts := r.Run(context.Background(), doc)
	rec := extract.Merge(attempts, r.Catalog.Required())
	if got := rec.Value("financing_type"); got != "A" {
		t.Fatalf("pattern-only run should still produce a record, got %v", got)
	}
}
