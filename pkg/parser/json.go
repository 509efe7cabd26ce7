package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Method records which extraction layer produced a result. Fallback
// results are not errors, but they must stay observable so format
// regressions in model output show up in the logs.
type Method string

const (
	MethodDirectJSON    Method = "direct_json"
	MethodFencedJSON    Method = "fenced_json"
	MethodBracketMatch  Method = "bracket_match"
	MethodSeverityRegex Method = "severity_regex"
	MethodFallback      Method = "fallback"
)

// Fallback reports whether m means no structured data was extracted.
func (m Method) Fallback() bool {
	return m == MethodSeverityRegex || m == MethodFallback
}

var (
	citationRe = regexp.MustCompile(`\[\d+\]`)
	fenceRe    = regexp.MustCompile("```[a-zA-Z]*\\s*\n([\\s\\S]*?)\n\\s*```")
)

// StripCitations removes bracketed reference markers such as [1] that
// search-grounded models weave into prose. Idempotent.
func StripCitations(s string) string {
	return citationRe.ReplaceAllString(s, "")
}

// ExtractJSON pulls a JSON value out of raw model text using a layered
// strategy: direct parse of the stripped text, then the interior of a
// fenced code block, then the first top-level {...} or [...] span. The
// returned bytes are valid JSON whenever ok is true.
func ExtractJSON(content string) ([]byte, Method, bool) {
	trimmed := strings.TrimSpace(StripCitations(content))
	if trimmed == "" {
		return nil, MethodFallback, false
	}

	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), MethodDirectJSON, true
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		inner := strings.TrimSpace(m[1])
		if json.Valid([]byte(inner)) {
			return []byte(inner), MethodFencedJSON, true
		}
	}

	if span, ok := bracketSpan(trimmed); ok {
		return span, MethodBracketMatch, true
	}

	return nil, MethodFallback, false
}

// bracketSpan finds the first top-level JSON object or array by greedy
// bracket matching: from the first opening bracket to the last matching
// closing bracket in the text.
func bracketSpan(s string) ([]byte, bool) {
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')

	try := func(start int, close byte) ([]byte, bool) {
		if start < 0 {
			return nil, false
		}
		end := strings.LastIndexByte(s, close)
		if end <= start {
			return nil, false
		}
		span := []byte(s[start : end+1])
		if json.Valid(span) {
			return span, true
		}
		return nil, false
	}

	// Whichever bracket appears first decides the span kind.
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if span, ok := try(arrStart, ']'); ok {
			return span, true
		}
		return try(objStart, '}')
	}
	if span, ok := try(objStart, '}'); ok {
		return span, true
	}
	return try(arrStart, ']')
}
