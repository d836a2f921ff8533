// Package pagetext exposes the machine-readable text and glyph geometry of a
// paginated document. The pattern extractor operates on this view only; it
// never sees raster bytes.
package pagetext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Token is one whitespace-delimited run of glyphs with the position of its
// first glyph in page space.
type Token struct {
	Text string
	X    float64
	Y    float64
}

// Page is the machine-extractable view of one page.
type Page struct {
	Index  int
	Tokens []Token
	Text   string
}

// Document wraps an open paginated document. Close releases the underlying
// file handle; pages are parsed on demand.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open opens a document for text extraction. An error here is the
// document-level catastrophic case: the file cannot be opened or paginated
// at all.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	return &Document{f: f, r: r}, nil
}

func (d *Document) Close() error {
	return d.f.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// Page extracts tokens for a zero-based page index. A failure is isolated to
// that page; callers degrade the page to zero attempts and continue.
func (d *Document) Page(index int) (Page, error) {
	if index < 0 || index >= d.r.NumPage() {
		return Page{}, fmt.Errorf("page %d out of range (0..%d)", index, d.r.NumPage()-1)
	}
	p := d.r.Page(index + 1) // reader is 1-based
	if p.V.IsNull() {
		return Page{}, fmt.Errorf("page %d: missing page object", index)
	}

	content := p.Content()
	tokens := groupTokens(content.Text)

	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}

	return Page{Index: index, Tokens: tokens, Text: b.String()}, nil
}

// Text returns the concatenated text of every readable page. Unreadable
// pages contribute nothing.
func (d *Document) Text() string {
	var b strings.Builder
	for i := 0; i < d.PageCount(); i++ {
		pg, err := d.Page(i)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pg.Text)
	}
	return b.String()
}

// groupTokens folds per-glyph text items into whitespace-delimited tokens.
// A token breaks on whitespace, a change of baseline, or a horizontal jump
// wider than one glyph.
func groupTokens(items []pdf.Text) []Token {
	const yEpsilon = 2.0

	var tokens []Token
	var cur strings.Builder
	var curX, curY, lastEnd float64

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, Token{Text: cur.String(), X: curX, Y: curY})
			cur.Reset()
		}
	}

	for _, it := range items {
		s := it.S
		if strings.TrimSpace(s) == "" {
			flush()
			lastEnd = it.X + it.W
			continue
		}
		sameLine := cur.Len() > 0 && abs(it.Y-curY) <= yEpsilon
		adjacent := sameLine && it.X-lastEnd <= it.W+1
		if !adjacent {
			flush()
			curX, curY = it.X, it.Y
		}
		cur.WriteString(s)
		lastEnd = it.X + it.W
	}
	flush()
	return tokens
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
