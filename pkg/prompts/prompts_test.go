package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func TestBuildThemes(t *testing.T) {
	msgs := BuildThemes("the transcript")
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "JSON array of strings")
	assert.Equal(t, "the transcript", msgs[1].Content)
}

func TestBuildValidateHypotheses(t *testing.T) {
	hypotheses := []model.Hypothesis{{ID: 1, Text: "tagging is manual"}}
	transcripts := []model.Transcript{{ID: 1, Source: "chen.txt", Text: "interview text"}}

	msgs, err := BuildValidateHypotheses(hypotheses, transcripts)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Contains(t, msgs[0].Content, `"supporting" or "refuting"`)
	assert.Contains(t, msgs[1].Content, "tagging is manual")
	assert.Contains(t, msgs[1].Content, "interview text")
}

func TestBuildDimensionRisk(t *testing.T) {
	for _, dim := range model.Dimensions() {
		msgs, err := BuildDimensionRisk(dim, "the strategic context", "Scale Up")
		require.NoError(t, err, "dimension %s", dim)
		require.Len(t, msgs, 2)
		assert.Contains(t, msgs[1].Content, "Scale Up")
		assert.Contains(t, msgs[1].Content, "the strategic context")
		// The output contract is the only defense against unparseable
		// responses; every dimension prompt must carry it.
		assert.Contains(t, msgs[1].Content, `"severity"`)
	}

	_, err := BuildDimensionRisk(model.Dimension("unknown"), "ctx", "b")
	assert.Error(t, err)
}

func TestBuildSynthesisOrdersDimensions(t *testing.T) {
	results := map[model.Dimension]model.DimensionResult{
		model.DimensionEcosystem:      {Severity: model.SeverityHigh, Analysis: "eco"},
		model.DimensionFinancial:      {Severity: model.SeverityLow, Analysis: "fin"},
		model.DimensionTechnical:      {Severity: model.SeverityMedium, Analysis: "tech"},
		model.DimensionOrganizational: {Severity: model.SeverityLow, Analysis: "org"},
	}

	msgs := BuildSynthesis("ctx", "Scale Up", results)
	require.Len(t, msgs, 2)

	content := msgs[1].Content
	finIdx := indexOf(t, content, "Financial")
	techIdx := indexOf(t, content, "Technical")
	orgIdx := indexOf(t, content, "Organizational")
	ecoIdx := indexOf(t, content, "Ecosystem")
	assert.Less(t, finIdx, techIdx)
	assert.Less(t, techIdx, orgIdx)
	assert.Less(t, orgIdx, ecoIdx)
}

func TestBuildRoadmapCarriesRiskSummaries(t *testing.T) {
	branches := []model.Branch{
		{Name: "Alpha", Description: "d", Risk: &model.RiskAssessment{
			OverallLevel: model.SeverityHigh,
			Reasoning:    "capital exposure",
			Dimensions: map[model.Dimension]model.DimensionResult{
				model.DimensionFinancial: {Severity: model.SeverityHigh, Analysis: "long analysis text"},
			},
		}},
	}

	msgs, err := BuildRoadmap("ctx", branches, 2026)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	content := msgs[1].Content
	assert.Contains(t, content, "Alpha")
	assert.Contains(t, content, "capital exposure")
	assert.Contains(t, content, "2026")
	assert.Contains(t, content, "executiveSummary")
	// Full dimension analyses stay out of the roadmap request; only the
	// severities travel.
	assert.NotContains(t, content, "long analysis text")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "%q not found", needle)
	return idx
}
