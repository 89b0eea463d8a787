package exam

import "strings"

// CleanText normalizes answer text before comparison: surrounding whitespace
// and at most one quote character at each end are removed.
//
//	CleanText(`"B"`) == CleanText("'B'") == CleanText(" B ") == "B"
func CleanText(s string) string {
	return strings.TrimSpace(stripQuotes(strings.TrimSpace(s)))
}

func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	return s
}

// SameAnswer compares a selection against the canonical answer.
func SameAnswer(selected, canonical string) bool {
	return CleanText(selected) == CleanText(canonical)
}
