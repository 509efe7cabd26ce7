package analyzer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/llm"
	"github.com/insightstream/strategy-ai/pkg/model"
)

// fakeClient scripts Chat responses. respond receives the call index
// and the request, and returns the raw content or an error.
type fakeClient struct {
	mu      sync.Mutex
	calls   int
	prompts [][]model.Message
	opts    []llm.Options
	respond func(call int, messages []model.Message, opts llm.Options) (string, error)
}

func (f *fakeClient) Chat(ctx context.Context, messages []model.Message, opts llm.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	call := f.calls
	f.calls++
	f.prompts = append(f.prompts, messages)
	f.opts = append(f.opts, opts)
	f.mu.Unlock()
	return f.respond(call, messages, opts)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSummarizeStripsCitations(t *testing.T) {
	client := &fakeClient{respond: func(int, []model.Message, llm.Options) (string, error) {
		return "  The team struggles with tagging[1][2].  ", nil
	}}
	a := New(client, nil)

	summary, err := a.Summarize(context.Background(), "transcript text")
	require.NoError(t, err)
	assert.Equal(t, "The team struggles with tagging.", summary)
}

func TestExtractThemesUnparseableYieldsEmpty(t *testing.T) {
	client := &fakeClient{respond: func(int, []model.Message, llm.Options) (string, error) {
		return "no structured output today", nil
	}}
	a := New(client, nil)

	themes, err := a.ExtractThemes(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Empty(t, themes)
}

func TestComposeInsightsFallbackConcatenates(t *testing.T) {
	client := &fakeClient{respond: func(int, []model.Message, llm.Options) (string, error) {
		return "cannot merge these", nil
	}}
	a := New(client, nil)

	existing := []model.Insight{{Title: "Old"}}
	fresh := []model.Insight{{Title: "New"}}
	merged, err := a.ComposeInsights(context.Background(), fresh, existing)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "Old", merged[0].Title)
	assert.Equal(t, "New", merged[1].Title)
}

func TestValidateHypothesesTransportErrorPropagates(t *testing.T) {
	client := &fakeClient{respond: func(int, []model.Message, llm.Options) (string, error) {
		return "", errors.New("boom")
	}}
	a := New(client, nil)

	_, err := a.ValidateHypotheses(context.Background(),
		[]model.Hypothesis{{ID: 1, Text: "x"}},
		[]model.Transcript{{ID: 1, Text: "y"}})
	assert.ErrorContains(t, err, "boom")
}

func TestValidateHypothesesSkipsEmptyTranscripts(t *testing.T) {
	client := &fakeClient{respond: func(_ int, messages []model.Message, _ llm.Options) (string, error) {
		for _, m := range messages {
			assert.NotContains(t, m.Content, "ghost interview")
		}
		return `[{"id": 1, "confidence": 0.9, "evidence": []}]`, nil
	}}
	a := New(client, nil)

	validated, err := a.ValidateHypotheses(context.Background(),
		[]model.Hypothesis{{ID: 1, Text: "hypothesis"}},
		[]model.Transcript{
			{ID: 1, Source: "real.txt", Text: "real interview content"},
			{ID: 2, Source: "ghost interview", Text: "   "},
		})
	require.NoError(t, err)
	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, model.StatusVerified, validated[0].Status)
}

func TestMergeValidation(t *testing.T) {
	hypotheses := []model.Hypothesis{
		{ID: 1, Text: "first", Status: model.StatusUnverified},
		{ID: 2, Text: "second", Status: model.StatusUnverified},
	}

	t.Run("matched hypotheses get evidence and recomputed counts", func(t *testing.T) {
		results := parseValidationJSON(t, `[
			{"id": "1", "confidence": 0.95, "evidence": [
				{"quote": "a", "source": "s1", "type": "supporting"},
				{"quote": "b", "source": "s2", "type": "supporting"},
				{"quote": "c", "source": "s3", "type": "refuting"}
			]}
		]`)

		merged := MergeValidation(hypotheses, results)
		require.Len(t, merged, 2)

		assert.Equal(t, model.StatusVerified, merged[0].Status)
		assert.InDelta(t, 0.95, merged[0].Confidence, 1e-9)
		assert.Equal(t, 2, merged[0].SupportingCount)
		assert.Equal(t, 1, merged[0].AgainstCount)

		assert.Equal(t, model.StatusUnverified, merged[1].Status)
		assert.Empty(t, merged[1].Evidence)
	})

	t.Run("no results leaves everything unverified", func(t *testing.T) {
		merged := MergeValidation(hypotheses, nil)
		for _, h := range merged {
			assert.Equal(t, model.StatusUnverified, h.Status)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		results := parseValidationJSON(t, `[{"id": 1, "confidence": 0.9, "evidence": []}]`)
		_ = MergeValidation(hypotheses, results)
		assert.Equal(t, model.StatusUnverified, hypotheses[0].Status)
	})
}
