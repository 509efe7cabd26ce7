package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// BuildSummary asks for a free-text summary of one interview transcript.
// This is the only analysis kind with no structured output contract.
func BuildSummary(transcript string) []model.Message {
	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are an expert user researcher. Summarize the following interview transcript, highlighting key insights and pain points. Keep it concise.",
		},
		{Role: model.RoleUser, Content: transcript},
	}
}

// BuildThemes asks for the recurring themes of a transcript as a bare
// JSON string array.
func BuildThemes(transcript string) []model.Message {
	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are an expert user researcher. Extract the top 3-5 recurring themes from the following interview transcript. Return them as a JSON array of strings only, no other text and no code fences.",
		},
		{Role: model.RoleUser, Content: transcript},
	}
}

// BuildInsights asks for structured findings from a transcript.
func BuildInsights(transcript string) []model.Message {
	return []model.Message{
		{
			Role: model.RoleSystem,
			Content: `You are an expert product researcher. Analyze interview transcripts and extract key insights.
Focus on: Pain points, User needs/desires, Feature requests, Sentiment, Strategic alignment.
Return a JSON object with a list of "insights". Each insight has: title, description, type (Pain Point/Need/Feature Request/Sentiment/Strategy), confidence (0-1).
Respond with valid JSON only; no prose or code fences.`,
		},
		{Role: model.RoleUser, Content: fmt.Sprintf("Analyze this transcript:\n\n%s", transcript)},
	}
}

// BuildComposeInsights merges freshly extracted insights into an
// existing set.
func BuildComposeInsights(newInsights, existing []model.Insight) ([]model.Message, error) {
	newJSON, err := json.Marshal(newInsights)
	if err != nil {
		return nil, fmt.Errorf("marshal new insights: %w", err)
	}
	existingJSON, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("marshal existing insights: %w", err)
	}

	return []model.Message{
		{
			Role: model.RoleSystem,
			Content: `You are a senior product strategist. Given NEW insights and EXISTING insights:
- Merge reinforcing insights and increase impact score
- Note conflicts between contradicting insights
- Add novel insights
Return the final list as a JSON object with "insights" array. Respond with valid JSON only; no prose or code fences.`,
		},
		{
			Role:    model.RoleUser,
			Content: fmt.Sprintf("New Insights: %s\n\nExisting Insights: %s", newJSON, existingJSON),
		},
	}, nil
}

// BuildValidateHypotheses asks for supporting or refuting evidence for
// every hypothesis across all transcripts in a single call.
func BuildValidateHypotheses(hypotheses []model.Hypothesis, transcripts []model.Transcript) ([]model.Message, error) {
	hypJSON, err := json.Marshal(hypotheses)
	if err != nil {
		return nil, fmt.Errorf("marshal hypotheses: %w", err)
	}
	trJSON, err := json.Marshal(transcripts)
	if err != nil {
		return nil, fmt.Errorf("marshal transcripts: %w", err)
	}

	return []model.Message{
		{
			Role: model.RoleSystem,
			Content: `You are a rigorous product researcher. Given HYPOTHESES and INTERVIEW TRANSCRIPTS, find evidence that SUPPORTS or REFUTES each hypothesis.

Return a JSON array where each item has:
- "id": The hypothesis ID (number)
- "confidence": Number between 0 and 1
- "evidence": Array of objects with "quote" (string), "source" (string), and "type" ("supporting" or "refuting")

If no evidence found for a hypothesis, return an empty evidence array for it. Return only the JSON array, no other text and no code fences.`,
		},
		{
			Role:    model.RoleUser,
			Content: fmt.Sprintf("Hypotheses: %s\n\nTranscripts: %s", hypJSON, trJSON),
		},
	}, nil
}
