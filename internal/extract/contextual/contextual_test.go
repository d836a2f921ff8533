package contextual

import (
	"strings"
	"testing"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/schema"
)

func TestExtractKeywordHit(t *testing.T) {
	specs := []schema.FieldSpec{{
		Name: "financing_type",
		Type: schema.TypeEnum,
		Rules: []schema.ContextRule{
			{Keyword: "FHA/VA amendatory clause", ImpliedValue: "B"},
		},
	}}
	doc := "… attached addenda include the FHA/VA Amendatory Clause signed by all parties …"

	got := New().Extract(doc, specs)
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	a := got[0]
	if a.Value != "B" {
		t.Fatalf("implied value = %v, want B", a.Value)
	}
	if a.Confidence != Cap {
		t.Fatalf("confidence = %v, want capped %v", a.Confidence, Cap)
	}
	if a.Strategy != extract.StrategyContextual || a.Page != -1 {
		t.Fatalf("wrong strategy/page: %+v", a)
	}
	if !strings.Contains(strings.ToLower(a.Evidence), "amendatory") {
		t.Fatalf("evidence should contain the keyword snippet, got %q", a.Evidence)
	}
}

func TestExtractFirstRuleWins(t *testing.T) {
	specs := []schema.FieldSpec{{
		Name: "occupancy_type",
		Type: schema.TypeEnum,
		Rules: []schema.ContextRule{
			{Keyword: "primary residence", ImpliedValue: "PRIMARY"},
			{Keyword: "residence", ImpliedValue: "SECONDARY"},
		},
	}}
	doc := "Buyer intends to occupy the property as a primary residence."

	got := New().Extract(doc, specs)
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Value != "PRIMARY" {
		t.Fatalf("first matching rule must win, got %v", got[0].Value)
	}
}

func TestExtractNoHit(t *testing.T) {
	specs := []schema.FieldSpec{{
		Name:  "financing_type",
		Rules: []schema.ContextRule{{Keyword: "seller financing addendum", ImpliedValue: "C"}},
	}}
	if got := New().Extract("nothing relevant here", specs); len(got) != 0 {
		t.Fatalf("no keyword hit must yield nothing, got %v", got)
	}
}

func TestExtractFieldWithoutRules(t *testing.T) {
	specs := []schema.FieldSpec{{Name: "purchase_price", Type: schema.TypeNumber}}
	if got := New().Extract("purchase price of $1,250,000", specs); len(got) != 0 {
		t.Fatalf("field without rules must contribute nothing, got %v", got)
	}
}
