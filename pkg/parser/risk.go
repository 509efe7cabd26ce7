package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/insightstream/strategy-ai/pkg/model"
)

var severityRe = regexp.MustCompile(`(?i)severity\s*(?:rating)?\s*:?\s*(high|medium|low)`)

// ExtractSeverity scans prose for a "Severity: HIGH" style phrase and
// returns the matched level, or DefaultSeverity when none is present.
func ExtractSeverity(text string) (model.Severity, bool) {
	if m := severityRe.FindStringSubmatch(text); m != nil {
		if s, ok := model.ParseSeverity(m[1]); ok {
			return s, true
		}
	}
	return model.DefaultSeverity, false
}

// ParseRisk normalizes a dimension analysis response. It never fails: an
// unparseable response resolves to DefaultSeverity with the stripped raw
// text (or fallbackAnalysis when the text is empty) as the analysis.
func ParseRisk(content, fallbackAnalysis string) (model.DimensionResult, Method) {
	sanitized := strings.TrimSpace(StripCitations(content))

	if raw, method, ok := ExtractJSON(sanitized); ok {
		var parsed struct {
			Severity string `json:"severity"`
			Analysis string `json:"analysis"`
		}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			severity, ok := model.ParseSeverity(parsed.Severity)
			if !ok {
				severity = model.DefaultSeverity
			}
			analysis := strings.TrimSpace(parsed.Analysis)
			if analysis == "" {
				analysis = fallbackAnalysis
			}
			return model.DimensionResult{Severity: severity, Analysis: analysis}, method
		}
	}

	analysis := sanitized
	if analysis == "" {
		analysis = fallbackAnalysis
	}
	if severity, matched := ExtractSeverity(sanitized); matched {
		return model.DimensionResult{Severity: severity, Analysis: analysis}, MethodSeverityRegex
	}
	return model.DimensionResult{Severity: model.DefaultSeverity, Analysis: analysis}, MethodFallback
}

// Synthesis is the normalized output of a risk-level synthesis call.
// Mitigation may come back with fewer than three entries; the
// orchestrator substitutes the deterministic list in that case.
type Synthesis struct {
	Level      model.Severity
	Reasoning  string
	Mitigation []string
}

var levelRe = regexp.MustCompile(`(?i)\b(HIGH|MEDIUM|LOW)\b`)

// ParseSynthesis normalizes a synthesis response. ok is false when the
// response carries no usable level at all, in which case the caller must
// apply the deterministic max-severity fallback.
func ParseSynthesis(content string) (Synthesis, Method, bool) {
	sanitized := strings.TrimSpace(StripCitations(content))

	if raw, method, extracted := ExtractJSON(sanitized); extracted {
		var parsed struct {
			Level      string   `json:"level"`
			Reasoning  string   `json:"reasoning"`
			Mitigation []string `json:"mitigation"`
		}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			if level, valid := model.ParseSeverity(parsed.Level); valid {
				return Synthesis{
					Level:      level,
					Reasoning:  strings.TrimSpace(parsed.Reasoning),
					Mitigation: parsed.Mitigation,
				}, method, true
			}
		}
	}

	if m := levelRe.FindString(sanitized); m != "" {
		level, _ := model.ParseSeverity(m)
		return Synthesis{
			Level:     level,
			Reasoning: firstLines(sanitized, 3, 200),
		}, MethodSeverityRegex, true
	}

	return Synthesis{}, MethodFallback, false
}

// firstLines joins up to n lines of s and truncates to max bytes, the
// shape used when salvaging reasoning from non-JSON prose.
func firstLines(s string, n, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	joined := strings.TrimSpace(strings.Join(lines, " "))
	if len(joined) > max {
		joined = joined[:max]
	}
	return joined
}
