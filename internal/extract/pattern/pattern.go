// Package pattern implements the deterministic extraction strategy. It scans
// the machine-readable tokens of a page for paragraph anchors, checkbox mark
// glyphs and fill-in blanks. No external calls, no side effects: the same
// page always yields the same attempts.
package pattern

import (
	"strings"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/pagetext"
	"github.com/closingdesk/contract-extract/internal/schema"
)

const (
	// windowTokens bounds the scan after an anchor or label. Paragraph
	// bodies on this form family fit well inside it.
	windowTokens = 40

	confUnambiguous = 0.9
	confAmbiguous   = 0.3
	confBlank       = 0.8
)

// markGlyphs are the ways a filled checkbox shows up in extracted text.
var markGlyphs = map[string]struct{}{
	"X": {}, "x": {}, "☒": {}, "☑": {}, "✓": {}, "✗": {}, "■": {},
	"[X]": {}, "[x]": {}, "(X)": {}, "(x)": {},
}

// Extractor runs pattern matching for one template family.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract scans a page for every field of the group. Fields whose anchors or
// labels do not appear on the page contribute nothing; a no-match is an empty
// list, never an error.
func (e *Extractor) Extract(pg pagetext.Page, specs []schema.FieldSpec) []extract.Attempt {
	var out []extract.Attempt
	for i := range specs {
		spec := &specs[i]
		switch {
		case len(spec.Options) > 0 && spec.Anchor != "":
			out = append(out, e.checkbox(pg, spec)...)
		case spec.Type == schema.TypeBoolean && spec.Anchor != "":
			out = append(out, e.booleanBox(pg, spec)...)
		case spec.Label != "":
			out = append(out, e.blank(pg, spec)...)
		}
	}
	return out
}

// checkbox locates the paragraph anchor, then looks for option letters with
// a mark glyph immediately before or after them inside the window. Exactly
// one marked option is a confident read; zero or several marked is
// ambiguous, and every candidate is emitted at low confidence rather than
// silently guessing one.
func (e *Extractor) checkbox(pg pagetext.Page, spec *schema.FieldSpec) []extract.Attempt {
	start := findAnchor(pg.Tokens, spec.Anchor)
	if start < 0 {
		return nil
	}
	win := window(pg.Tokens, start+1, windowTokens)

	options := make([]string, len(win)) // "" where the token is not an option letter
	marks := make([]bool, len(win))
	haveMark := false
	for i, tok := range win {
		options[i] = matchOption(tok.Text, spec.Options)
		if _, ok := markGlyphs[tok.Text]; ok {
			marks[i] = true
			haveMark = true
		}
	}
	if !haveMark {
		return nil
	}

	evidence := excerpt(win)

	var marked, present []string
	for i, opt := range options {
		if opt == "" {
			continue
		}
		present = append(present, opt)
		if (i > 0 && marks[i-1]) || (i+1 < len(marks) && marks[i+1]) {
			marked = append(marked, opt)
		}
	}

	if len(marked) == 1 {
		return []extract.Attempt{{
			Field:      spec.Name,
			Page:       pg.Index,
			Strategy:   extract.StrategyPattern,
			Value:      marked[0],
			Confidence: confUnambiguous,
			Evidence:   evidence,
		}}
	}

	// Ambiguous: marks present but none or several adjacent options.
	candidates := marked
	if len(candidates) == 0 {
		candidates = present
	}
	out := make([]extract.Attempt, 0, len(candidates))
	for _, opt := range dedupe(candidates) {
		out = append(out, extract.Attempt{
			Field:      spec.Name,
			Page:       pg.Index,
			Strategy:   extract.StrategyPattern,
			Value:      opt,
			Confidence: confAmbiguous,
			Evidence:   evidence,
		})
	}
	return out
}

// booleanBox treats a single anchored checkbox (no option letters) as a
// boolean: a mark glyph inside the window means checked.
func (e *Extractor) booleanBox(pg pagetext.Page, spec *schema.FieldSpec) []extract.Attempt {
	start := findAnchor(pg.Tokens, spec.Anchor)
	if start < 0 {
		return nil
	}
	win := window(pg.Tokens, start+1, windowTokens)
	for _, tok := range win {
		if _, ok := markGlyphs[tok.Text]; ok {
			return []extract.Attempt{{
				Field:      spec.Name,
				Page:       pg.Index,
				Strategy:   extract.StrategyPattern,
				Value:      true,
				Confidence: confUnambiguous,
				Evidence:   excerpt(win),
			}}
		}
	}
	return nil
}

// blank locates the label, then a run of blank-indicator characters
// (underscores) after it. Free text interleaved with the run is the value;
// an untouched run is a confident absence (value nil, still high
// confidence — an empty blank is itself a signal).
func (e *Extractor) blank(pg pagetext.Page, spec *schema.FieldSpec) []extract.Attempt {
	tokens := pg.Tokens
	if spec.Scope != "" {
		// Identical labels on one page are told apart by searching only
		// past the declared scope label.
		at := findLabel(tokens, spec.Scope)
		if at < 0 {
			return nil
		}
		tokens = tokens[at:]
	}
	after := findLabel(tokens, spec.Label)
	if after < 0 {
		return nil
	}
	win := window(tokens, after, windowTokens)

	// The blank run must sit close to the label, otherwise the association
	// is too weak to call a pattern match.
	first := -1
	for i, tok := range win {
		if isBlankRun(tok.Text) {
			first = i
			break
		}
	}
	if first < 0 || first > 8 {
		return nil
	}
	// Extend over the cluster: runs of underscores with short interleaved
	// text belong to the same blank.
	last := first
	for k := first + 1; k < len(win); k++ {
		if isBlankRun(win[k].Text) && k-last <= 4 {
			last = k
		}
	}

	var filled []string
	for i := 0; i <= last; i++ {
		if !isBlankRun(win[i].Text) {
			filled = append(filled, win[i].Text)
		}
	}

	var value any
	if len(filled) > 0 {
		value = strings.Join(filled, " ")
	}
	return []extract.Attempt{{
		Field:      spec.Name,
		Page:       pg.Index,
		Strategy:   extract.StrategyPattern,
		Value:      value,
		Confidence: confBlank,
		Evidence:   excerpt(win),
	}}
}
