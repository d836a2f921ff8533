package pattern

import (
	"testing"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/pagetext"
	"github.com/closingdesk/contract-extract/internal/schema"
)

func page(words ...string) pagetext.Page {
	toks := make([]pagetext.Token, len(words))
	for i, w := range words {
		toks[i] = pagetext.Token{Text: w, X: float64(i), Y: 0}
	}
	return pagetext.Page{Index: 2, Tokens: toks}
}

func TestCheckboxUnambiguous(t *testing.T) {
	spec := schema.FieldSpec{
		Name:    "financing_type",
		Type:    schema.TypeEnum,
		Anchor:  "3.D(1)",
		Options: []string{"A", "B", "C", "D"},
	}
	pg := page("3.D(1)", "Loan", "type:", "X", "A", "Conventional", "B", "FHA")

	got := New().Extract(pg, []schema.FieldSpec{spec})
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	a := got[0]
	if a.Value != "A" || a.Confidence != 0.9 {
		t.Fatalf("got value=%v conf=%v, want A at 0.9", a.Value, a.Confidence)
	}
	if a.Strategy != extract.StrategyPattern || a.Page != 2 {
		t.Fatalf("wrong strategy/page: %+v", a)
	}
	if a.Evidence == "" {
		t.Fatal("attempt must carry evidence")
	}
}

func TestCheckboxAmbiguousEmitsAllCandidates(t *testing.T) {
	spec := schema.FieldSpec{
		Name:    "financing_type",
		Type:    schema.TypeEnum,
		Anchor:  "3.D(1)",
		Options: []string{"A", "B"},
	}
	pg := page("3.D(1)", "X", "A", "X", "B")

	got := New().Extract(pg, []schema.FieldSpec{spec})
	if len(got) != 2 {
		t.Fatalf("expected 2 low-confidence candidates, got %d", len(got))
	}
	seen := map[any]bool{}
	for _, a := range got {
		if a.Confidence != 0.3 {
			t.Fatalf("ambiguous candidate confidence = %v, want 0.3", a.Confidence)
		}
		seen[a.Value] = true
	}
	if !seen["A"] || !seen["B"] {
		t.Fatalf("expected candidates A and B, got %v", seen)
	}
}

func TestCheckboxNoMarksYieldsNothing(t *testing.T) {
	spec := schema.FieldSpec{
		Name:    "financing_type",
		Type:    schema.TypeEnum,
		Anchor:  "3.D(1)",
		Options: []string{"A", "B"},
	}
	pg := page("3.D(1)", "A", "Conventional", "B", "FHA")

	if got := New().Extract(pg, []schema.FieldSpec{spec}); len(got) != 0 {
		t.Fatalf("unmarked checkbox must contribute nothing, got %v", got)
	}
}

func TestCheckboxAnchorAbsent(t *testing.T) {
	spec := schema.FieldSpec{
		Name:    "financing_type",
		Type:    schema.TypeEnum,
		Anchor:  "3.D(1)",
		Options: []string{"A", "B"},
	}
	pg := page("nothing", "relevant", "here")

	if got := New().Extract(pg, []schema.FieldSpec{spec}); len(got) != 0 {
		t.Fatalf("missing anchor must yield no attempts, got %v", got)
	}
}

func TestBooleanBox(t *testing.T) {
	spec := schema.FieldSpec{
		Name:   "loan_contingency",
		Type:   schema.TypeBoolean,
		Anchor: "3.J",
	}
	pg := page("3.J", "☒", "Loan", "contingency", "applies")

	got := New().Extract(pg, []schema.FieldSpec{spec})
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Value != true || got[0].Confidence != 0.9 {
		t.Fatalf("got %+v, want true at 0.9", got[0])
	}
}

func TestBlankFilled(t *testing.T) {
	spec := schema.FieldSpec{
		Name:  "escrow_holder",
		Type:  schema.TypeString,
		Label: "Escrow Holder shall be",
	}
	pg := page("Escrow", "Holder", "shall", "be", "First", "American", "Title", "_______")

	got := New().Extract(pg, []schema.FieldSpec{spec})
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Value != "First American Title" || got[0].Confidence != 0.8 {
		t.Fatalf("got %+v, want filled value at 0.8", got[0])
	}
}

func TestBlankUntouchedIsConfidentAbsence(t *testing.T) {
	spec := schema.FieldSpec{
		Name:  "increased_deposit",
		Type:  schema.TypeNumber,
		Label: "Increased deposit",
	}
	pg := page("Increased", "deposit", "_________", "__________")

	got := New().Extract(pg, []schema.FieldSpec{spec})
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Value != nil {
		t.Fatalf("untouched blank must yield nil value, got %v", got[0].Value)
	}
	if got[0].Confidence != 0.8 {
		t.Fatalf("confident absence confidence = %v, want 0.8", got[0].Confidence)
	}
	if got[0].Evidence == "" {
		t.Fatal("confident absence still needs evidence")
	}
}

func TestBlankTooFarFromLabel(t *testing.T) {
	spec := schema.FieldSpec{
		Name:  "escrow_holder",
		Type:  schema.TypeString,
		Label: "Escrow Holder shall be",
	}
	words := []string{"Escrow", "Holder", "shall", "be"}
	for i := 0; i < 12; i++ {
		words = append(words, "filler")
	}
	words = append(words, "_______")

	if got := New().Extract(page(words...), []schema.FieldSpec{spec}); len(got) != 0 {
		t.Fatalf("distant blank run must not be associated with the label, got %v", got)
	}
}

func TestFindAnchorBoundary(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"3.A", true},
		{"3.A.", true},
		{"3.A)", true},
		{"3.A:", true},
		{"3.A(1)", false}, // different paragraph
		{"13.A", false},
	}
	for _, tt := range tests {
		toks := []pagetext.Token{{Text: tt.token}}
		got := findAnchor(toks, "3.A") >= 0
		if got != tt.want {
			t.Errorf("findAnchor(%q) matched=%v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsBlankRun(t *testing.T) {
	if isBlankRun("__") {
		t.Error("two underscores is too short for a blank run")
	}
	if !isBlankRun("___") {
		t.Error("three underscores is a blank run")
	}
	if isBlankRun("_a_") {
		t.Error("mixed token is not a blank run")
	}
}

func TestBlankScopedLabelsAreDistinct(t *testing.T) {
	buyer := schema.FieldSpec{Name: "buyer_agent", Type: schema.TypeString,
		Label: "By", Scope: "Buyer's Brokerage Firm"}
	seller := schema.FieldSpec{Name: "seller_agent", Type: schema.TypeString,
		Label: "By", Scope: "Seller's Brokerage Firm"}
	pg := page(
		"Buyer's", "Brokerage", "Firm", "Sunrise", "Realty", "____",
		"By", "Jane", "Agent", "____",
		"Seller's", "Brokerage", "Firm", "Coastal", "Homes", "____",
		"By", "Raj", "Broker", "____",
	)

	got := New().Extract(pg, []schema.FieldSpec{buyer, seller})
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(got))
	}
	values := map[string]any{}
	for _, a := range got {
		values[a.Field] = a.Value
	}
	if values["buyer_agent"] != "Jane Agent" {
		t.Fatalf("buyer_agent = %v, want Jane Agent", values["buyer_agent"])
	}
	if values["seller_agent"] != "Raj Broker" {
		t.Fatalf("seller_agent = %v, want the second By blank, not the first", values["seller_agent"])
	}
}

func TestBlankScopeAbsentYieldsNothing(t *testing.T) {
	spec := schema.FieldSpec{Name: "seller_agent", Type: schema.TypeString,
		Label: "By", Scope: "Seller's Brokerage Firm"}
	pg := page("Buyer's", "Brokerage", "Firm", "By", "Jane", "Agent", "____")

	if got := New().Extract(pg, []schema.FieldSpec{spec}); len(got) != 0 {
		t.Fatalf("label outside its scope must not match, got %+v", got)
	}
}
