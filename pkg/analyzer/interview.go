package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/insightstream/strategy-ai/pkg/llm"
	"github.com/insightstream/strategy-ai/pkg/model"
	"github.com/insightstream/strategy-ai/pkg/parser"
	"github.com/insightstream/strategy-ai/pkg/prompts"
)

// Summarize produces a free-text summary of one interview transcript.
func (a *Analyzer) Summarize(ctx context.Context, transcript string) (string, error) {
	raw, err := a.llm.Chat(ctx, prompts.BuildSummary(transcript), llm.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(parser.StripCitations(raw)), nil
}

// ExtractThemes pulls the recurring themes out of a transcript. An
// unparseable response legitimately signals "no themes" and returns an
// empty list, never an error.
func (a *Analyzer) ExtractThemes(ctx context.Context, transcript string) ([]string, error) {
	raw, err := a.llm.Chat(ctx, prompts.BuildThemes(transcript), llm.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("extract themes: %w", err)
	}
	themes, method := parser.ParseThemes(raw)
	a.observeParse("themes", method)
	return themes, nil
}

// AnalyzeTranscript extracts structured insights from a transcript.
func (a *Analyzer) AnalyzeTranscript(ctx context.Context, transcript string) ([]model.Insight, error) {
	raw, err := a.llm.Chat(ctx, prompts.BuildInsights(transcript), llm.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}
	insights, method := parser.ParseInsights(raw)
	a.observeParse("insights", method)
	return insights, nil
}

// ComposeInsights merges new insights into an existing set.
func (a *Analyzer) ComposeInsights(ctx context.Context, newInsights, existing []model.Insight) ([]model.Insight, error) {
	msgs, err := prompts.BuildComposeInsights(newInsights, existing)
	if err != nil {
		return nil, err
	}
	raw, err := a.llm.Chat(ctx, msgs, llm.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("compose insights: %w", err)
	}
	insights, method := parser.ParseInsights(raw)
	a.observeParse("composed_insights", method)
	if method == parser.MethodFallback {
		// Nothing parseable: keep what we already had plus the new set.
		return append(append([]model.Insight{}, existing...), newInsights...), nil
	}
	return insights, nil
}

// ValidateHypotheses issues one call across all hypotheses and all
// eligible transcripts, then merges the evidence back in. Hypotheses
// absent from the model output stay unverified; the derived evidence
// counters are always recomputed from the merged evidence, never taken
// from the model.
func (a *Analyzer) ValidateHypotheses(ctx context.Context, hypotheses []model.Hypothesis, transcripts []model.Transcript) ([]model.Hypothesis, error) {
	eligible := make([]model.Transcript, 0, len(transcripts))
	for _, t := range transcripts {
		if strings.TrimSpace(t.Text) != "" {
			eligible = append(eligible, t)
		}
	}

	msgs, err := prompts.BuildValidateHypotheses(hypotheses, eligible)
	if err != nil {
		return nil, err
	}
	raw, err := a.llm.Chat(ctx, msgs, llm.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("validate hypotheses: %w", err)
	}

	results, method := parser.ParseValidation(raw)
	a.observeParse("hypothesis_validation", method)

	return MergeValidation(hypotheses, results), nil
}

// MergeValidation applies per-hypothesis validation results to the
// hypothesis set and returns the updated copy.
func MergeValidation(hypotheses []model.Hypothesis, results []parser.ValidationResult) []model.Hypothesis {
	merged := make([]model.Hypothesis, len(hypotheses))
	copy(merged, hypotheses)

	for i := range merged {
		if merged[i].Status == "" {
			merged[i].Status = model.StatusUnverified
		}
		for _, r := range results {
			if !r.ID.Matches(merged[i].ID) {
				continue
			}
			merged[i].Confidence = r.Confidence
			merged[i].Evidence = r.Evidence
			merged[i].Status = model.StatusVerified
			merged[i].RecountEvidence()
			break
		}
	}
	return merged
}
