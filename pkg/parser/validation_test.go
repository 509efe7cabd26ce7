package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func TestFlexID(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		var r ValidationResult
		require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "confidence": 0.9}`), &r))
		assert.True(t, r.ID.Matches(3))
		assert.False(t, r.ID.Matches(4))
	})

	t.Run("string id", func(t *testing.T) {
		var r ValidationResult
		require.NoError(t, json.Unmarshal([]byte(`{"id": " 3 ", "confidence": 0.9}`), &r))
		assert.True(t, r.ID.Matches(3))
	})

	t.Run("non numeric id matches nothing", func(t *testing.T) {
		var r ValidationResult
		require.NoError(t, json.Unmarshal([]byte(`{"id": "h-3"}`), &r))
		assert.False(t, r.ID.Matches(3))
	})
}

func TestParseValidation(t *testing.T) {
	t.Run("array with mixed ids", func(t *testing.T) {
		content := `[
			{"id": 1, "confidence": 0.95, "evidence": [{"quote": "q", "source": "s", "type": "supporting"}]},
			{"id": "2", "confidence": 0.4, "evidence": []}
		]`
		results, method := ParseValidation(content)
		require.Len(t, results, 2)
		assert.Equal(t, MethodDirectJSON, method)
		assert.True(t, results[0].ID.Matches(1))
		assert.True(t, results[1].ID.Matches(2))
		assert.Equal(t, model.EvidenceSupporting, results[0].Evidence[0].Type)
	})

	t.Run("unparseable yields no results", func(t *testing.T) {
		results, method := ParseValidation("no evidence found, sorry")
		assert.Nil(t, results)
		assert.Equal(t, MethodFallback, method)
	})

	t.Run("wrong shape yields no results", func(t *testing.T) {
		results, method := ParseValidation(`{"id": 1}`)
		assert.Nil(t, results)
		assert.Equal(t, MethodFallback, method)
	})
}

func TestParseThemes(t *testing.T) {
	t.Run("fenced array", func(t *testing.T) {
		themes, method := ParseThemes("```json\n[\"Onboarding friction\", \"Pricing\"]\n```")
		assert.Equal(t, MethodFencedJSON, method)
		assert.Equal(t, []string{"Onboarding friction", "Pricing"}, themes)
	})

	t.Run("unparseable yields empty list", func(t *testing.T) {
		themes, method := ParseThemes("no clear themes emerged")
		assert.NotNil(t, themes)
		assert.Empty(t, themes)
		assert.Equal(t, MethodFallback, method)
	})
}

func TestParseInsights(t *testing.T) {
	t.Run("object with insights key", func(t *testing.T) {
		content := `{"insights": [{"title": "Slow tagging", "description": "d", "type": "Pain Point", "confidence": 0.8}]}`
		insights, method := ParseInsights(content)
		require.Len(t, insights, 1)
		assert.Equal(t, MethodDirectJSON, method)
		assert.Equal(t, "Slow tagging", insights[0].Title)
	})

	t.Run("bare array", func(t *testing.T) {
		content := `[{"title": "Slow tagging", "description": "d", "type": "Pain Point", "confidence": 0.8}]`
		insights, _ := ParseInsights(content)
		require.Len(t, insights, 1)
		assert.Equal(t, "Slow tagging", insights[0].Title)
	})
}
