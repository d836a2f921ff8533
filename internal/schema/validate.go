package schema

import (
	"log/slog"
	"sort"

	"github.com/closingdesk/contract-extract/internal/extract"
)

// ValidationResult reports the outcome of post-merge validation. Missing
// required fields are data, not an error: the caller decides what to do with
// an incomplete record (typically route it to manual review).
type ValidationResult struct {
	MissingRequired []string
	Demoted         []string // fields whose value failed normalization and was set to nil
}

// Validate applies each field's normalization rule to the merged record and
// reports required fields still null afterwards. A normalization failure
// demotes that one field to nil; it never aborts validation of the rest.
// Completeness is recomputed after all demotions.
func (c *Catalog) Validate(rec *extract.ContractRecord, logger *slog.Logger) ValidationResult {
	if logger == nil {
		logger = slog.Default()
	}
	var res ValidationResult

	for i := range c.Fields {
		spec := &c.Fields[i]
		raw, ok := rec.Fields[spec.Name]
		if !ok || raw == nil {
			continue
		}
		norm, err := NormalizeValue(spec, raw)
		if err != nil {
			logger.Warn("schema.normalize.failed",
				"field", spec.Name, "type", string(spec.Type), "error", err)
			rec.SetValue(spec.Name, nil)
			res.Demoted = append(res.Demoted, spec.Name)
			continue
		}
		rec.SetValue(spec.Name, norm)
	}

	required := c.Required()
	for _, name := range required {
		if v, ok := rec.Fields[name]; !ok || v == nil {
			res.MissingRequired = append(res.MissingRequired, name)
		}
	}
	sort.Strings(res.MissingRequired)

	rec.Completeness = extract.Completeness(rec.Fields, required)
	return res
}
