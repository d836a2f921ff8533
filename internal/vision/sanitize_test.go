package vision

import (
	"encoding/json"
	"testing"

	"github.com/closingdesk/contract-extract/internal/schema"
)

var sanitizeSpecs = []schema.FieldSpec{
	{Name: "purchase_price", Type: schema.TypeNumber},
	{Name: "escrow_holder", Type: schema.TypeString},
	{Name: "buyer_names", Type: schema.TypeArray},
	{Name: "loan_contingency", Type: schema.TypeBoolean},
}

func sanitized(t *testing.T, raw string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), sanitizeSpecs, nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode sanitized: %v", err)
	}
	return m
}

func TestSanitizeDropsUnknownKeys(t *testing.T) {
	m := sanitized(t, `{"escrow_holder":"Pacific Escrow","hallucinated_field":"x"}`)
	if _, ok := m["hallucinated_field"]; ok {
		t.Fatal("unknown key must be dropped")
	}
	if m["escrow_holder"] != "Pacific Escrow" {
		t.Fatalf("known key lost: %v", m)
	}
}

func TestSanitizeDropsNullsAndEmpties(t *testing.T) {
	m := sanitized(t, `{"escrow_holder":null,"purchase_price":"","buyer_names":[],"loan_contingency":true}`)
	if len(m) != 1 {
		t.Fatalf("expected only the boolean to survive, got %v", m)
	}
	if m["loan_contingency"] != true {
		t.Fatalf("boolean dropped: %v", m)
	}
}

func TestSanitizeDropsNAPlaceholders(t *testing.T) {
	m := sanitized(t, `{"escrow_holder":"N/A"}`)
	if len(m) != 0 {
		t.Fatalf("n/a placeholder must be dropped, got %v", m)
	}
}

func TestSanitizeCoercesNumbersOnNumberFields(t *testing.T) {
	m := sanitized(t, `{"purchase_price":1250000}`)
	if m["purchase_price"] != "1250000.00" {
		t.Fatalf("number should be coerced to a decimal string, got %v", m["purchase_price"])
	}
}

func TestSanitizeDropsNumbersOnNonNumberFields(t *testing.T) {
	m := sanitized(t, `{"escrow_holder":42}`)
	if len(m) != 0 {
		t.Fatalf("numeric value on a string field must be dropped, got %v", m)
	}
}

func TestSanitizeTrimsStrings(t *testing.T) {
	m := sanitized(t, `{"escrow_holder":"  Pacific Escrow  "}`)
	if m["escrow_holder"] != "Pacific Escrow" {
		t.Fatalf("string not trimmed: %q", m["escrow_holder"])
	}
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	if _, _, err := NormalizeAndSanitizeJSON([]byte("not json"), sanitizeSpecs, nil); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSanitizedDocumentValidates(t *testing.T) {
	raw := `{"purchase_price":1250000,"escrow_holder":" Pacific ","buyer_names":["Jane","John"],"unknown":1,"loan_contingency":null}`
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), sanitizeSpecs, nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	sch := BuildGroupJSONSchema(sanitizeSpecs)
	if err := ValidateJSONAgainstSchema(sch, out); err != nil {
		t.Fatalf("sanitized document should validate: %v", err)
	}
	// the raw document would not have
	if err := ValidateJSONAgainstSchema(sch, []byte(raw)); err == nil {
		t.Fatal("raw document with unknown key should fail strict validation")
	}
}
