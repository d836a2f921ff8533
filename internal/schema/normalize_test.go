package schema

import (
	"reflect"
	"testing"
)

func TestNormalizeNumber(t *testing.T) {
	spec := &FieldSpec{Name: "purchase_price", Type: TypeNumber}
	tests := []struct {
		in      any
		want    any
		wantErr bool
	}{
		{"$1,250,000.00", 1250000.0, false},
		{"1250000", 1250000.0, false},
		{"14", 14.0, false},
		{14.0, 14.0, false},
		{7, 7.0, false},
		{"  $3,500  ", 3500.0, false},
		{"", nil, false},
		{"fourteen", nil, true},
		{true, nil, true},
	}
	for _, tt := range tests {
		got, err := NormalizeValue(spec, tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeValue(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("NormalizeValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	spec := &FieldSpec{Name: "offer_date", Type: TypeDate}
	tests := []struct {
		in      string
		want    any
		wantErr bool
	}{
		{"2025-03-14", "2025-03-14", false},
		{"03/14/2025", "2025-03-14", false},
		{"3/4/2025", "2025-03-04", false},
		{"March 14, 2025", "2025-03-14", false},
		{"Mar 14, 2025", "2025-03-14", false},
		{"", nil, false},
		{"the ides of March", nil, true},
	}
	for _, tt := range tests {
		got, err := NormalizeValue(spec, tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("date %q: error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("date %q = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeBoolean(t *testing.T) {
	spec := &FieldSpec{Name: "loan_contingency", Type: TypeBoolean}
	truthy := []any{true, "x", "X", "checked", "yes", "1"}
	for _, in := range truthy {
		got, err := NormalizeValue(spec, in)
		if err != nil || got != true {
			t.Errorf("NormalizeValue(%v) = %v, %v; want true", in, got, err)
		}
	}
	falsy := []any{false, "no", "unchecked", "0"}
	for _, in := range falsy {
		got, err := NormalizeValue(spec, in)
		if err != nil || got != false {
			t.Errorf("NormalizeValue(%v) = %v, %v; want false", in, got, err)
		}
	}
	if _, err := NormalizeValue(spec, "perhaps"); err == nil {
		t.Error("expected error for unparseable boolean")
	}
}

func TestNormalizeEnum(t *testing.T) {
	spec := &FieldSpec{Name: "financing_type", Type: TypeEnum, Options: []string{"A", "B", "C", "D"}}
	got, err := NormalizeValue(spec, " b ")
	if err != nil || got != "B" {
		t.Fatalf("enum normalization = %v, %v; want B", got, err)
	}
	if _, err := NormalizeValue(spec, "Z"); err == nil {
		t.Fatal("expected error for value outside the option set")
	}
}

func TestNormalizeArray(t *testing.T) {
	spec := &FieldSpec{Name: "buyer_names", Type: TypeArray}
	tests := []struct {
		in   any
		want any
	}{
		{"Jane Roe, John Roe", []string{"Jane Roe", "John Roe"}},
		{"Jane Roe; John Roe", []string{"Jane Roe", "John Roe"}},
		{[]string{" Jane ", ""}, []string{"Jane"}},
		{[]any{"Jane", "John"}, []string{"Jane", "John"}},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := NormalizeValue(spec, tt.in)
		if err != nil {
			t.Errorf("NormalizeValue(%v) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeValue(%v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
	if _, err := NormalizeValue(spec, []any{1, 2}); err == nil {
		t.Error("expected error for non-string array elements")
	}
}

func TestNormalizeNilPassesThrough(t *testing.T) {
	for _, typ := range []FieldType{TypeString, TypeNumber, TypeDate, TypeBoolean, TypeEnum, TypeArray} {
		spec := &FieldSpec{Name: "f", Type: typ}
		got, err := NormalizeValue(spec, nil)
		if err != nil || got != nil {
			t.Errorf("type %s: nil should pass through, got %v, %v", typ, got, err)
		}
	}
}
