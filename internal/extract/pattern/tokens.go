package pattern

import (
	"strings"

	"github.com/closingdesk/contract-extract/internal/pagetext"
)

// findAnchor returns the index of the paragraph anchor token, or -1.
// Printed anchors carry trailing punctuation ("3.A." or "3.A)"), so a prefix
// match against the bare anchor plus a boundary check is enough.
func findAnchor(tokens []pagetext.Token, anchor string) int {
	for i, tok := range tokens {
		if tok.Text == anchor {
			return i
		}
		if strings.HasPrefix(tok.Text, anchor) {
			rest := tok.Text[len(anchor):]
			if rest == "." || rest == ")" || rest == ":" {
				return i
			}
		}
	}
	return -1
}

// findLabel locates a multi-word label in the token stream,
// case-insensitively, and returns the index just past it, or -1.
func findLabel(tokens []pagetext.Token, label string) int {
	words := strings.Fields(strings.ToLower(label))
	if len(words) == 0 {
		return -1
	}
	for i := 0; i+len(words) <= len(tokens); i++ {
		match := true
		for j, w := range words {
			t := strings.ToLower(strings.Trim(tokens[i+j].Text, ".,:;"))
			if t != w {
				match = false
				break
			}
		}
		if match {
			return i + len(words)
		}
	}
	return -1
}

// window returns up to n tokens starting at index start.
func window(tokens []pagetext.Token, start, n int) []pagetext.Token {
	if start < 0 || start >= len(tokens) {
		return nil
	}
	end := start + n
	if end > len(tokens) {
		end = len(tokens)
	}
	return tokens[start:end]
}

// matchOption reports which declared option letter a token represents:
// "A", "A.", "(A)" and "A)" all count. Empty string means no option.
func matchOption(text string, options []string) string {
	t := strings.Trim(text, "().:")
	for _, opt := range options {
		if t == opt {
			return opt
		}
	}
	return ""
}

// isBlankRun reports whether a token is a run of blank-indicator characters.
func isBlankRun(text string) bool {
	if len(text) < 3 {
		return false
	}
	for _, r := range text {
		if r != '_' {
			return false
		}
	}
	return true
}

// excerpt renders a token window as evidence text.
func excerpt(tokens []pagetext.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Text)
	}
	s := strings.Join(parts, " ")
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
