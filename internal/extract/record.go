package extract

import "encoding/json"

// ContractRecord is the merged, canonical output of one document's
// extraction run. Built once by Merge; immutable once validation completes.
type ContractRecord struct {
	Fields       map[string]any     `json:"fields"`
	Completeness float64            `json:"completeness"`
	Provenance   map[string]Attempt `json:"provenance"` // winning attempt per field
	Attempts     []Attempt          `json:"attempts"`   // full audit log, deterministic order
}

// Value returns the chosen value for a field, nil if unset or confidently absent.
func (r *ContractRecord) Value(field string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[field]
}

// SetValue replaces a field's value. Used by the schema validator to apply
// normalization (or demote to nil); callers must recompute completeness after.
func (r *ContractRecord) SetValue(field string, v any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[field] = v
}

// MarshalJSON keeps the serialized form stable for a given record
// (encoding/json sorts map keys).
func (r *ContractRecord) MarshalJSON() ([]byte, error) {
	type alias ContractRecord
	return json.Marshal((*alias)(r))
}
