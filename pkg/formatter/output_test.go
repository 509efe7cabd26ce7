package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func TestWrapText(t *testing.T) {
	t.Run("wraps at width with indent", func(t *testing.T) {
		text := strings.Repeat("word ", 30)
		wrapped := wrapText(text, 40, "   ")
		for _, line := range strings.Split(wrapped, "\n") {
			assert.LessOrEqual(t, len(line), 40)
			assert.True(t, strings.HasPrefix(line, "   "))
		}
	})

	t.Run("preserves blank lines", func(t *testing.T) {
		wrapped := wrapText("para one\n\npara two", 80, "")
		assert.Equal(t, "para one\n\npara two", wrapped)
	})
}

func TestDisplayRoadmapMachineFormats(t *testing.T) {
	plan := &model.RoadmapPlan{ExecutiveSummary: "summary"}
	branches := []model.Branch{{Name: "A", Description: "d"}}

	require.NoError(t, DisplayRoadmap("ctx", branches, plan, "json"))
	require.NoError(t, DisplayRoadmap("ctx", branches, plan, "yaml"))
}

func TestDisplayValidationMachineFormats(t *testing.T) {
	hypotheses := []model.Hypothesis{{ID: 1, Text: "t", Status: model.StatusVerified}}
	require.NoError(t, DisplayValidation(hypotheses, "json"))
	require.NoError(t, DisplayValidation(hypotheses, "yaml"))
}

func TestSeverityIconTotality(t *testing.T) {
	for _, s := range []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh, "weird"} {
		assert.NotEmpty(t, severityIcon(s))
		assert.NotNil(t, severityColor(s))
	}
}
