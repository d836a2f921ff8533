package extract

import (
	"math/rand"
	"reflect"
	"testing"
)

func att(field string, strat Strategy, value any, conf float64, page int) Attempt {
	return Attempt{
		Field:      field,
		Page:       page,
		Strategy:   strat,
		Value:      value,
		Confidence: conf,
		Evidence:   "ev:" + field + string(strat),
	}
}

func TestMergeTierPriority(t *testing.T) {
	attempts := []Attempt{
		att("purchase_price", StrategyContextual, "100", 0.4, -1),
		att("purchase_price", StrategyModel, "1250000", 0.6, 0),
		att("purchase_price", StrategyPattern, "1,250,000", 0.9, 0),
	}
	rec := Merge(attempts, []string{"purchase_price"})

	if got := rec.Value("purchase_price"); got != "1,250,000" {
		t.Fatalf("expected pattern value to win, got %v", got)
	}
	if rec.Provenance["purchase_price"].Strategy != StrategyPattern {
		t.Fatalf("provenance strategy = %s, want pattern", rec.Provenance["purchase_price"].Strategy)
	}
}

func TestMergeConfidenceNeverPromotesLowerTier(t *testing.T) {
	// An ambiguous pattern read at 0.3 still outranks a model attempt at 0.6.
	attempts := []Attempt{
		att("financing_type", StrategyModel, "B", 0.6, 2),
		att("financing_type", StrategyPattern, "A", 0.3, 2),
	}
	rec := Merge(attempts, nil)

	if got := rec.Value("financing_type"); got != "A" {
		t.Fatalf("expected pattern tier to win regardless of confidence, got %v", got)
	}
}

func TestMergeConfidenceBreaksTiesWithinTier(t *testing.T) {
	attempts := []Attempt{
		att("escrow_holder", StrategyModel, "weak", 0.6, 1),
		{Field: "escrow_holder", Page: 1, Strategy: StrategyModel, Value: "strong", Confidence: 0.7, Evidence: "ev"},
	}
	rec := Merge(attempts, nil)

	if got := rec.Value("escrow_holder"); got != "strong" {
		t.Fatalf("expected higher confidence within tier to win, got %v", got)
	}
}

func TestMergeOrderIndependence(t *testing.T) {
	base := []Attempt{
		att("a", StrategyPattern, "pa", 0.9, 0),
		att("a", StrategyModel, "ma", 0.6, 0),
		att("b", StrategyModel, "mb", 0.6, 1),
		att("b", StrategyContextual, "cb", 0.4, -1),
		att("c", StrategyContextual, "cc", 0.4, -1),
		att("d", StrategyPattern, nil, 0.8, 3),
		att("d", StrategyModel, "md", 0.6, 3),
	}
	want := Merge(base, []string{"a", "b", "d"})

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]Attempt, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := Merge(shuffled, []string{"a", "b", "d"})

		if !reflect.DeepEqual(got.Fields, want.Fields) {
			t.Fatalf("permutation %d: fields diverged: %v vs %v", i, got.Fields, want.Fields)
		}
		if !reflect.DeepEqual(got.Attempts, want.Attempts) {
			t.Fatalf("permutation %d: audit log order diverged", i)
		}
		if got.Completeness != want.Completeness {
			t.Fatalf("permutation %d: completeness %v vs %v", i, got.Completeness, want.Completeness)
		}
	}
}

func TestMergeRejectsInvalidAttempts(t *testing.T) {
	attempts := []Attempt{
		{Field: "x", Strategy: StrategyPattern, Value: "no-evidence", Confidence: 0.9},
		{Field: "x", Strategy: StrategyModel, Value: "zero-conf", Confidence: 0, Evidence: "ev"},
		att("x", StrategyContextual, "ok", 0.4, -1),
	}
	rec := Merge(attempts, nil)

	if got := rec.Value("x"); got != "ok" {
		t.Fatalf("expected only the valid attempt to participate, got %v", got)
	}
	if len(rec.Attempts) != 1 {
		t.Fatalf("audit log should exclude invalid attempts, has %d entries", len(rec.Attempts))
	}
}

func TestMergeConfidentAbsenceWins(t *testing.T) {
	// A high-confidence nil from an untouched blank outranks a model guess.
	attempts := []Attempt{
		att("seller_agent", StrategyModel, "J. Smith", 0.6, 5),
		att("seller_agent", StrategyPattern, nil, 0.8, 5),
	}
	rec := Merge(attempts, []string{"seller_agent"})

	if got := rec.Value("seller_agent"); got != nil {
		t.Fatalf("expected confident absence (nil) to win, got %v", got)
	}
	if rec.Completeness != 0 {
		t.Fatalf("nil value must not count toward completeness, got %v", rec.Completeness)
	}
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		required []string
		want     float64
	}{
		{"no required fields", map[string]any{"a": 1}, nil, 1},
		{"all filled", map[string]any{"a": 1, "b": "x"}, []string{"a", "b"}, 1},
		{"half filled", map[string]any{"a": 1, "b": nil}, []string{"a", "b"}, 0.5},
		{"absent key", map[string]any{}, []string{"a", "b"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completeness(tt.fields, tt.required); got != tt.want {
				t.Fatalf("Completeness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDeterministicOnEqualScore(t *testing.T) {
	// Two attempts identical in tier, confidence and page: the winner must
	// still be the same regardless of input order.
	a := att("f", StrategyModel, "alpha", 0.6, 1)
	b := att("f", StrategyModel, "beta", 0.6, 1)

	r1 := Merge([]Attempt{a, b}, nil)
	r2 := Merge([]Attempt{b, a}, nil)
	if r1.Value("f") != r2.Value("f") {
		t.Fatalf("equal-score conflict not deterministic: %v vs %v", r1.Value("f"), r2.Value("f"))
	}
}
