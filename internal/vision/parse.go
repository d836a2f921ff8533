package vision

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/schema"
)

// ParseAttempts turns a sanitized, validated model payload into one attempt
// per present field, all at the fixed model confidence. The evidence is the
// raw value as the model reported it. Fields the model omitted get no
// attempt and fall through to the next strategy.
func ParseAttempts(page int, specs []schema.FieldSpec, doc []byte) ([]extract.Attempt, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("parse model payload: %w", err)
	}

	byName := make(map[string]struct{}, len(specs))
	names := make([]string, 0, len(specs))
	for _, f := range specs {
		byName[f.Name] = struct{}{}
		names = append(names, f.Name)
	}
	sort.Strings(names)

	out := make([]extract.Attempt, 0, len(m))
	for _, name := range names {
		raw, ok := m[name]
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parse field %s: %w", name, err)
		}
		out = append(out, extract.Attempt{
			Field:      name,
			Page:       page,
			Strategy:   extract.StrategyModel,
			Value:      v,
			Confidence: ModelConfidence,
			Evidence:   "model response: " + string(raw),
		})
	}
	return out, nil
}
