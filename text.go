package refscrape

import (
	"regexp"
	"strings"
)

// attributionRe matches a whole line consisting only of bracketed or
// parenthesized attribution boilerplate, e.g. "[Written by MAL Rewrite]"
// or "(Source: ANN)".
var attributionRe = regexp.MustCompile(`(?i)^\s*(\[\s*(written by|source:)[^\]]*\]|\(\s*(written by|source:)[^)]*\))\s*$`)

// placeholderRes match boilerplate a source page emits to mean "this
// field has no data". A match is a sentinel for field-absent, distinct
// from an empty or legitimately short value.
var placeholderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^no\s+\w+(\s+\w+)*\s+(has|have)\s+been\s+added`),
	regexp.MustCompile(`(?i)^no\s+biography\s+written`),
	regexp.MustCompile(`(?i)^help\s+improve\s+our\s+database\s+by\s+adding`),
}

// Clean strips attribution boilerplate from free text. It drops every
// line that fully matches an attribution pattern, rejoins the surviving
// lines in original order, removes carriage returns, and trims
// surrounding whitespace.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r", "")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if attributionRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// IsPlaceholder reports whether text is "no data" boilerplate. Callers
// must treat a match as "field absent", not as a short value.
func IsPlaceholder(text string) bool {
	text = strings.TrimSpace(text)
	for _, re := range placeholderRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
