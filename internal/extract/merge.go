package extract

import (
	"fmt"
	"sort"
)

// Merge collects extraction attempts across all pages into one
// ContractRecord. Per field, the chosen value is the attempt maximizing the
// (strategy tier, confidence) pair; confidence never promotes a lower tier
// over a higher one. Merge is a pure reduction over the attempt set: the
// order attempts arrive in does not affect the result.
//
// Attempts with empty evidence or zero confidence are rejected and do not
// participate in selection (they are kept out of the audit log too — an
// attempt without evidence is invalid by contract).
//
// required names the required fields of the template family; completeness is
// the fraction of them holding a non-nil value after merging.
func Merge(attempts []Attempt, required []string) *ContractRecord {
	valid := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		if a.Valid() {
			valid = append(valid, a)
		}
	}

	// Total deterministic order: it both fixes the audit log and makes the
	// per-field winner independent of input permutation.
	sort.Slice(valid, func(i, j int) bool {
		return lessAttempt(valid[j], valid[i]) // best first
	})

	rec := &ContractRecord{
		Fields:     make(map[string]any),
		Provenance: make(map[string]Attempt),
		Attempts:   valid,
	}
	for _, a := range valid {
		if _, seen := rec.Provenance[a.Field]; seen {
			continue // a better attempt for this field already won
		}
		rec.Provenance[a.Field] = a
		rec.Fields[a.Field] = a.Value
	}

	rec.Completeness = Completeness(rec.Fields, required)
	return rec
}

// Completeness returns (# required fields with non-nil value) / (# required).
// Always recomputed from the field map, never cached.
func Completeness(fields map[string]any, required []string) float64 {
	if len(required) == 0 {
		return 1
	}
	filled := 0
	for _, name := range required {
		if v, ok := fields[name]; ok && v != nil {
			filled++
		}
	}
	return float64(filled) / float64(len(required))
}

// lessAttempt is a total order over attempts: tier first, then confidence,
// then page/evidence/value to keep equal-score conflicts deterministic.
func lessAttempt(a, b Attempt) bool {
	if a.Strategy.Rank() != b.Strategy.Rank() {
		return a.Strategy.Rank() < b.Strategy.Rank()
	}
	if a.Confidence != b.Confidence {
		return a.Confidence < b.Confidence
	}
	if a.Page != b.Page {
		return a.Page > b.Page // earlier page wins
	}
	if a.Field != b.Field {
		return a.Field > b.Field
	}
	if a.Evidence != b.Evidence {
		return a.Evidence > b.Evidence
	}
	return fmt.Sprint(a.Value) > fmt.Sprint(b.Value)
}
