package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// newFast returns a Service whose simulated latency is skipped, keeping
// the cancellation check intact.
func newFast() *Service {
	s := New(nil)
	s.wait = func(ctx context.Context, _ time.Duration) error {
		return ctx.Err()
	}
	return s
}

func TestExtractThemes(t *testing.T) {
	themes, err := newFast().ExtractThemes(context.Background(), "any transcript")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mock Theme 1", "Mock Theme 2", "Mock Theme 3"}, themes)
}

func TestValidateHypotheses(t *testing.T) {
	hypotheses := []model.Hypothesis{
		{ID: 1, Text: "Manual interview tagging is time consuming", Status: model.StatusUnverified},
		{ID: 2, Text: "Teams pay for transcript storage", Status: model.StatusUnverified},
	}

	validated, err := newFast().ValidateHypotheses(context.Background(), hypotheses, nil)
	require.NoError(t, err)
	require.Len(t, validated, 2)

	strong := validated[0]
	assert.Equal(t, model.StatusVerified, strong.Status)
	assert.InDelta(t, 0.95, strong.Confidence, 1e-9)
	assert.Equal(t, 2, strong.SupportingCount)
	assert.Equal(t, 0, strong.AgainstCount)
	require.Len(t, strong.Evidence, 2)
	assert.Equal(t, "Dr. Emily Chen", strong.Evidence[0].Source)

	weak := validated[1]
	assert.Equal(t, model.StatusVerified, weak.Status)
	assert.InDelta(t, 0.4, weak.Confidence, 1e-9)
	assert.Equal(t, 0, weak.SupportingCount)
	assert.Equal(t, 1, weak.AgainstCount)
	assert.Equal(t, "James Wilson", weak.Evidence[0].Source)
}

func TestRoadmapPipeline(t *testing.T) {
	ctx := context.Background()
	svc := newFast()

	strategicContext, err := svc.SummarizeContext(ctx, "raw documents")
	require.NoError(t, err)
	assert.Contains(t, strategicContext, "E Ink")

	branches, err := svc.IdentifyBranches(ctx, strategicContext)
	require.NoError(t, err)
	require.Len(t, branches, 6)

	// Every branch resolves to a complete assessment with valid levels.
	for i := range branches {
		assessment, err := svc.AssessBranch(ctx, strategicContext, &branches[i])
		require.NoError(t, err)
		assert.True(t, assessment.OverallLevel.Valid(), "branch %s", branches[i].Name)
		assert.Len(t, assessment.Dimensions, 4)
		assert.Len(t, assessment.Mitigation, 3)
		assert.NotEmpty(t, assessment.Reasoning)
		for dim, res := range assessment.Dimensions {
			assert.True(t, res.Severity.Valid(), "branch %s dimension %s", branches[i].Name, dim)
			assert.NotEmpty(t, res.Analysis)
		}
		assert.Same(t, assessment, branches[i].Risk)
	}

	plan, err := svc.GenerateRoadmap(ctx, strategicContext, branches, 2026)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ExecutiveSummary)
	require.NotEmpty(t, plan.DecisionTimeline)
	assert.Equal(t, 2026, plan.DecisionTimeline[0].Year)
	assert.Len(t, plan.PrioritizedOptions, 3)
}

func TestPatentBranchAssessment(t *testing.T) {
	branch := &model.Branch{Name: "Patent and IP Strategy"}
	assessment, err := newFast().AssessBranch(context.Background(), "ctx", branch)
	require.NoError(t, err)

	assert.Equal(t, model.SeverityMedium, assessment.Dimensions[model.DimensionFinancial].Severity)
	assert.Equal(t, model.SeverityLow, assessment.Dimensions[model.DimensionTechnical].Severity)
	assert.Equal(t, model.SeverityMedium, assessment.Dimensions[model.DimensionOrganizational].Severity)
	assert.Equal(t, model.SeverityMedium, assessment.Dimensions[model.DimensionEcosystem].Severity)
	assert.Equal(t, model.SeverityMedium, assessment.OverallLevel)
	assert.Equal(t, "Financial risk is MEDIUM, technical risk is LOW, organizational risk is MEDIUM, and ecosystem risk is MEDIUM.", assessment.Reasoning)
}

func TestUnknownBranchDefaultsToMedium(t *testing.T) {
	res, err := newFast().AnalyzeDimension(context.Background(), model.DimensionFinancial, "ctx", "Never Heard Of It")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSeverity, res.Severity)
}

func TestCancellationHonored(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := New(nil).GenerateRoadmap(ctx, "ctx", nil, 2025)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
