// Package contextual implements the last-resort extraction strategy: a field
// value implied by corroborating evidence elsewhere in the document. Rules
// are declared statically on each FieldSpec as {keyword, implied value}
// pairs — never invented at runtime — and confidence is capped so this tier
// can raise completeness but can never override a pattern or model attempt.
package contextual

import (
	"strings"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/schema"
)

// Cap is the fixed confidence for contextual attempts.
const Cap = 0.4

// snippetRadius bounds the evidence excerpt around a keyword hit.
const snippetRadius = 60

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract searches the full document text for each field's declared
// keywords. The first rule that hits wins for that field; fields without
// rules or without hits contribute nothing.
func (e *Extractor) Extract(docText string, specs []schema.FieldSpec) []extract.Attempt {
	lower := strings.ToLower(docText)
	var out []extract.Attempt
	for i := range specs {
		spec := &specs[i]
		for _, rule := range spec.Rules {
			idx := strings.Index(lower, strings.ToLower(rule.Keyword))
			if idx < 0 {
				continue
			}
			out = append(out, extract.Attempt{
				Field:      spec.Name,
				Page:       -1, // document-level evidence, not tied to a page
				Strategy:   extract.StrategyContextual,
				Value:      rule.ImpliedValue,
				Confidence: Cap,
				Evidence:   snippet(docText, idx, len(rule.Keyword)),
			})
			break
		}
	}
	return out
}

func snippet(text string, idx, n int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + n + snippetRadius
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
