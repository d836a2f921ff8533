package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeValue coerces a raw extracted value into the field's declared
// type. It is lenient about the shapes extractors emit (numbers as strings,
// currency with symbols and thousands separators, loose date layouts) and
// strict about the result. A nil value passes through untouched — confident
// absence is a valid outcome, not a coercion failure.
func NormalizeValue(spec *FieldSpec, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if spec.Normalize != nil {
		return spec.Normalize(v)
	}
	switch spec.Type {
	case TypeString:
		return normalizeString(v)
	case TypeNumber:
		return normalizeNumber(v)
	case TypeDate:
		return normalizeDate(v)
	case TypeBoolean:
		return normalizeBool(v)
	case TypeEnum:
		return normalizeEnum(spec, v)
	case TypeArray:
		return normalizeArray(v)
	default:
		return nil, fmt.Errorf("field %s: unknown type %q", spec.Name, spec.Type)
	}
}

func normalizeString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return s, nil
}

// normalizeNumber parses decimals as they appear on the printed form:
// "$1,250,000.00", "1250000", "14" all coerce to float64.
func normalizeNumber(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", t, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", v)
	}
}

// dateLayouts are the layouts handwritten and typed dates show up in.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/06",
}

// normalizeDate coerces a loose date string to canonical YYYY-MM-DD.
func normalizeDate(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected date string, got %T", v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

func normalizeBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "x", "checked", "1":
			return true, nil
		case "false", "no", "unchecked", "0", "":
			return false, nil
		}
		return nil, fmt.Errorf("parse boolean %q", t)
	default:
		return nil, fmt.Errorf("expected boolean, got %T", v)
	}
}

func normalizeEnum(spec *FieldSpec, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected enum string, got %T", v)
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	for _, opt := range spec.Options {
		if s == strings.ToUpper(opt) {
			return opt, nil
		}
	}
	return nil, fmt.Errorf("value %q not in options %v", s, spec.Options)
}

// normalizeArray accepts a []string, []any of strings, or a single
// comma/semicolon separated string.
func normalizeArray(v any) (any, error) {
	switch t := v.(type) {
	case []string:
		return trimNonEmpty(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("array element %T is not a string", e)
			}
			out = append(out, s)
		}
		return trimNonEmpty(out), nil
	case string:
		sep := ","
		if strings.Contains(t, ";") {
			sep = ";"
		}
		return trimNonEmpty(strings.Split(t, sep)), nil
	default:
		return nil, fmt.Errorf("expected array, got %T", v)
	}
}

func trimNonEmpty(in []string) any {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
