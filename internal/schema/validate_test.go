package schema

import (
	"reflect"
	"testing"

	"github.com/closingdesk/contract-extract/internal/extract"
)

func testCatalog() *Catalog {
	return &Catalog{
		Family: "TEST",
		Fields: []FieldSpec{
			{Name: "purchase_price", Type: TypeNumber, Required: true},
			{Name: "offer_date", Type: TypeDate, Required: true},
			{Name: "escrow_holder", Type: TypeString, Required: true},
			{Name: "buyer_names", Type: TypeArray, Required: true},
			{Name: "home_warranty", Type: TypeBoolean},
		},
	}
}

func recordWith(fields map[string]any) *extract.ContractRecord {
	return &extract.ContractRecord{
		Fields:     fields,
		Provenance: map[string]extract.Attempt{},
	}
}

func TestValidateNormalizesInPlace(t *testing.T) {
	c := testCatalog()
	rec := recordWith(map[string]any{
		"purchase_price": "$1,250,000.00",
		"offer_date":     "03/14/2025",
		"escrow_holder":  "  First American Title  ",
		"buyer_names":    "Jane Roe, John Roe",
		"home_warranty":  "x",
	})

	res := c.Validate(rec, nil)
	if len(res.MissingRequired) != 0 || len(res.Demoted) != 0 {
		t.Fatalf("clean record should validate fully: %+v", res)
	}
	if got := rec.Value("purchase_price"); got != 1250000.0 {
		t.Errorf("purchase_price = %v, want 1250000", got)
	}
	if got := rec.Value("offer_date"); got != "2025-03-14" {
		t.Errorf("offer_date = %v, want 2025-03-14", got)
	}
	if got := rec.Value("escrow_holder"); got != "First American Title" {
		t.Errorf("escrow_holder = %v", got)
	}
	if got := rec.Value("buyer_names"); !reflect.DeepEqual(got, []string{"Jane Roe", "John Roe"}) {
		t.Errorf("buyer_names = %#v", got)
	}
	if got := rec.Value("home_warranty"); got != true {
		t.Errorf("home_warranty = %v, want true", got)
	}
	if rec.Completeness != 1 {
		t.Errorf("completeness = %v, want 1", rec.Completeness)
	}
}

func TestValidateDemotesUnparseableValue(t *testing.T) {
	c := testCatalog()
	rec := recordWith(map[string]any{
		"purchase_price": "a princely sum",
		"offer_date":     "2025-03-14",
		"escrow_holder":  "Escrow Co",
		"buyer_names":    []string{"Jane Roe"},
	})

	res := c.Validate(rec, nil)
	if !reflect.DeepEqual(res.Demoted, []string{"purchase_price"}) {
		t.Fatalf("Demoted = %v, want [purchase_price]", res.Demoted)
	}
	if rec.Value("purchase_price") != nil {
		t.Fatal("demoted field must be nil")
	}
	if !reflect.DeepEqual(res.MissingRequired, []string{"purchase_price"}) {
		t.Fatalf("MissingRequired = %v, want [purchase_price]", res.MissingRequired)
	}
	if rec.Completeness != 0.75 {
		t.Fatalf("completeness = %v, want 0.75 after demotion", rec.Completeness)
	}
}

func TestValidateReportsMissingRequiredSorted(t *testing.T) {
	c := testCatalog()
	rec := recordWith(map[string]any{
		"escrow_holder": "Escrow Co",
	})

	res := c.Validate(rec, nil)
	want := []string{"buyer_names", "offer_date", "purchase_price"}
	if !reflect.DeepEqual(res.MissingRequired, want) {
		t.Fatalf("MissingRequired = %v, want %v", res.MissingRequired, want)
	}
	if rec.Completeness != 0.25 {
		t.Fatalf("completeness = %v, want 0.25", rec.Completeness)
	}
}

func TestValidateOneFailureDoesNotAbortOthers(t *testing.T) {
	c := testCatalog()
	rec := recordWith(map[string]any{
		"offer_date":     "someday",
		"purchase_price": "500000",
	})

	res := c.Validate(rec, nil)
	if !reflect.DeepEqual(res.Demoted, []string{"offer_date"}) {
		t.Fatalf("Demoted = %v", res.Demoted)
	}
	if got := rec.Value("purchase_price"); got != 500000.0 {
		t.Fatalf("sibling field must still be normalized, got %v", got)
	}
}

func TestCatalogForUnknownFamily(t *testing.T) {
	if _, err := CatalogFor("NOT-A-FAMILY"); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestRPACatalogShape(t *testing.T) {
	c, err := CatalogFor("RPA-CA")
	if err != nil {
		t.Fatalf("CatalogFor: %v", err)
	}
	if len(c.Fields) == 0 {
		t.Fatal("catalogue must declare fields")
	}
	if len(c.Required()) == 0 {
		t.Fatal("catalogue must declare required fields")
	}
	// every field group on a page must exist in the catalogue
	groups := map[string]bool{}
	for _, f := range c.Fields {
		groups[f.Group] = true
	}
	for page, names := range c.PageGroups {
		for _, g := range names {
			if !groups[g] {
				t.Errorf("page %d references undeclared group %q", page, g)
			}
		}
	}
	// every group with model instructions must be declared too
	for g := range c.Instructions {
		if !groups[g] {
			t.Errorf("instruction for undeclared group %q", g)
		}
	}
	// context rules only imply values that normalize cleanly
	for _, f := range c.Fields {
		for _, r := range f.Rules {
			if _, err := NormalizeValue(&f, r.ImpliedValue); err != nil {
				t.Errorf("field %s: implied value %v does not normalize: %v", f.Name, r.ImpliedValue, err)
			}
		}
	}
}
