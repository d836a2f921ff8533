package vision

import (
	"testing"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/schema"
)

func TestParseAttemptsFixedConfidence(t *testing.T) {
	specs := []schema.FieldSpec{
		{Name: "escrow_holder", Type: schema.TypeString},
		{Name: "purchase_price", Type: schema.TypeNumber},
	}
	atts, err := ParseAttempts(3, specs, []byte(`{"escrow_holder":"Pacific Escrow","purchase_price":"1250000.00"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(atts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(atts))
	}
	for _, a := range atts {
		if a.Confidence != ModelConfidence {
			t.Fatalf("%s: confidence %v, want the fixed model confidence", a.Field, a.Confidence)
		}
		if a.Strategy != extract.StrategyModel {
			t.Fatalf("%s: strategy %v", a.Field, a.Strategy)
		}
		if a.Page != 3 {
			t.Fatalf("%s: page %d", a.Field, a.Page)
		}
		if !a.Valid() {
			t.Fatalf("%s: attempt should be valid", a.Field)
		}
	}
}

func TestParseAttemptsDeterministicOrder(t *testing.T) {
	specs := []schema.FieldSpec{
		{Name: "zeta", Type: schema.TypeString},
		{Name: "alpha", Type: schema.TypeString},
		{Name: "mid", Type: schema.TypeString},
	}
	atts, err := ParseAttempts(0, specs, []byte(`{"zeta":"z","mid":"m","alpha":"a"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := []string{atts[0].Field, atts[1].Field, atts[2].Field}
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestParseAttemptsOmittedFieldGetsNoAttempt(t *testing.T) {
	specs := []schema.FieldSpec{
		{Name: "escrow_holder", Type: schema.TypeString},
		{Name: "purchase_price", Type: schema.TypeNumber},
	}
	atts, err := ParseAttempts(0, specs, []byte(`{"escrow_holder":"Pacific Escrow"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(atts) != 1 || atts[0].Field != "escrow_holder" {
		t.Fatalf("expected a single attempt for escrow_holder, got %+v", atts)
	}
}

func TestParseAttemptsEvidenceCarriesRawValue(t *testing.T) {
	specs := []schema.FieldSpec{{Name: "loan_contingency", Type: schema.TypeBoolean}}
	atts, err := ParseAttempts(0, specs, []byte(`{"loan_contingency":true}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if atts[0].Evidence != "model response: true" {
		t.Fatalf("evidence %q", atts[0].Evidence)
	}
	if atts[0].Value != true {
		t.Fatalf("value %v", atts[0].Value)
	}
}

func TestParseAttemptsRejectsMalformedPayload(t *testing.T) {
	if _, err := ParseAttempts(0, nil, []byte(`[]`)); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}
