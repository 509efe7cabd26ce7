package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func TestExtractSeverity(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    model.Severity
		matched bool
	}{
		{"rating form", "**Severity Rating: HIGH**\n\nDetails follow.", model.SeverityHigh, true},
		{"plain form", "severity: medium", model.SeverityMedium, true},
		{"no colon", "Severity Low overall", model.SeverityLow, true},
		{"case insensitive", "SEVERITY RATING: high", model.SeverityHigh, true},
		{"absent", "No rating anywhere in this text.", model.DefaultSeverity, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := ExtractSeverity(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestParseRisk(t *testing.T) {
	t.Run("structured json", func(t *testing.T) {
		res, method := ParseRisk(`{"severity": "HIGH", "analysis": "Capital exposure is severe."}`, "unused")
		assert.Equal(t, MethodDirectJSON, method)
		assert.Equal(t, model.SeverityHigh, res.Severity)
		assert.Equal(t, "Capital exposure is severe.", res.Analysis)
	})

	t.Run("prose with severity phrase", func(t *testing.T) {
		res, method := ParseRisk("## Analysis\n\nSeverity Rating: LOW\n\nAll under control.", "unused")
		assert.Equal(t, MethodSeverityRegex, method)
		assert.Equal(t, model.SeverityLow, res.Severity)
		assert.Contains(t, res.Analysis, "All under control.")
	})

	t.Run("unusable prose keeps text with default severity", func(t *testing.T) {
		res, method := ParseRisk("Something vague with no rating.", "fallback text")
		assert.Equal(t, MethodFallback, method)
		assert.Equal(t, model.DefaultSeverity, res.Severity)
		assert.Equal(t, "Something vague with no rating.", res.Analysis)
	})

	t.Run("empty response uses fallback analysis", func(t *testing.T) {
		res, method := ParseRisk("", "Financial risk analysis unavailable.")
		assert.Equal(t, MethodFallback, method)
		assert.Equal(t, model.DefaultSeverity, res.Severity)
		assert.Equal(t, "Financial risk analysis unavailable.", res.Analysis)
	})

	t.Run("json with bogus severity defaults to medium", func(t *testing.T) {
		res, _ := ParseRisk(`{"severity": "CATASTROPHIC", "analysis": "text"}`, "unused")
		assert.Equal(t, model.DefaultSeverity, res.Severity)
	})
}

func TestParseSynthesis(t *testing.T) {
	t.Run("structured json", func(t *testing.T) {
		content := `{"level": "HIGH", "reasoning": "Financial pressure dominates.", "mitigation": ["a", "b", "c"]}`
		synth, method, ok := ParseSynthesis(content)
		require.True(t, ok)
		assert.Equal(t, MethodDirectJSON, method)
		assert.Equal(t, model.SeverityHigh, synth.Level)
		assert.Equal(t, "Financial pressure dominates.", synth.Reasoning)
		assert.Len(t, synth.Mitigation, 3)
	})

	t.Run("level word in prose", func(t *testing.T) {
		synth, method, ok := ParseSynthesis("Overall the branch is MEDIUM risk.\nSecond line.\nThird line.\nFourth line is dropped.")
		require.True(t, ok)
		assert.Equal(t, MethodSeverityRegex, method)
		assert.Equal(t, model.SeverityMedium, synth.Level)
		assert.Contains(t, synth.Reasoning, "Third line.")
		assert.NotContains(t, synth.Reasoning, "Fourth line")
	})

	t.Run("nothing usable", func(t *testing.T) {
		_, method, ok := ParseSynthesis("I cannot assess this branch.")
		assert.False(t, ok)
		assert.Equal(t, MethodFallback, method)
	})
}
