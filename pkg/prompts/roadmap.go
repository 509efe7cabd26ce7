package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// BuildContext condenses raw roadmap documents into the strategic brief
// every later call reuses as its context.
func BuildContext(fileContent string) []model.Message {
	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are a strategic product management assistant expert in analyzing product roadmaps, market analysis, and risk assessment. You help identify decision branches and evaluate risks.",
		},
		{
			Role: model.RoleUser,
			Content: fmt.Sprintf(`### Task
Analyze the product roadmap materials and extract the requested strategic information.

### Context
%s

### Output Structure
Use the following Markdown headings and provide 2-4 concise bullet points under each:
- Goals and Objectives
- Target Markets and Segments
- Key Features and Capabilities
- Financial Constraints or Projections
- Technical Requirements or Constraints
- Competitive Landscape Insights

### Style Rules
- Keep the entire response under 350 words.
- Use plain Markdown (paragraphs and bullet points only).
- Do not include tables, code fences, or prose outside the requested headings.`, fileContent),
		},
	}
}

// BuildBranches asks for the 3-6 highest-impact decision branches.
func BuildBranches(context string) []model.Message {
	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are a strategic planner expert at identifying decision points and branching options in product roadmaps.",
		},
		{
			Role: model.RoleUser,
			Content: fmt.Sprintf(`### Task
Identify 3-6 high-impact decision branches for the product roadmap based on the supplied context.

### Context
%s

### Output Format
Return a JSON array where each item includes:
{
  "name": "2-5 word branch title",
  "description": "One-sentence explanation of the option"
}

### Rules
- Provide between 3 and 6 branches ordered by strategic relevance (most important first).
- Use concise, action-oriented language.
- Respond with valid JSON only; do not include commentary, tables, or code fences.`, context),
		},
	}
}

// branchSummary is the slim branch view sent to the roadmap prompt.
type branchSummary struct {
	Name           string                              `json:"name"`
	Description    string                              `json:"description"`
	RiskLevel      model.Severity                      `json:"riskLevel,omitempty"`
	RiskDimensions map[model.Dimension]model.Severity  `json:"riskDimensions,omitempty"`
	Reasoning      string                              `json:"reasoning,omitempty"`
	Mitigation     []string                            `json:"mitigation,omitempty"`
}

// BuildRoadmap asks for the full prioritized roadmap plan anchored at
// decisionYear.
func BuildRoadmap(context string, branches []model.Branch, decisionYear int) ([]model.Message, error) {
	summaries := make([]branchSummary, 0, len(branches))
	for _, b := range branches {
		s := branchSummary{Name: b.Name, Description: b.Description}
		if b.Risk != nil {
			s.RiskLevel = b.Risk.OverallLevel
			s.Reasoning = b.Risk.Reasoning
			s.Mitigation = b.Risk.Mitigation
			s.RiskDimensions = make(map[model.Dimension]model.Severity, len(b.Risk.Dimensions))
			for dim, res := range b.Risk.Dimensions {
				s.RiskDimensions[dim] = res.Severity
			}
		}
		summaries = append(summaries, s)
	}

	summariesJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal branch summaries: %w", err)
	}

	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are a strategic product management consultant expert in roadmap planning and risk mitigation. You analyze complex strategic decisions and provide actionable, prioritized recommendations.",
		},
		{
			Role: model.RoleUser,
			Content: fmt.Sprintf(`### Task
Generate a strategic roadmap plan with prioritized recommendations using the provided context and branch risk analyses.

### Context
%s

### Decision Branches Analysis
%s

### Decision Year Anchor
%d

### Output Schema
Return a JSON object with the exact structure below. Respect the field names and data types.
{
  "executiveSummary": "2-3 paragraph narrative (max 220 words)",
  "decisionTimeline": [
    {
      "sequence": number,
      "year": number,
      "quarter": "Q1 | Q2 | Q3 | Q4 | Full-Year",
      "decision": "string",
      "description": "1-2 sentence explanation",
      "linkedRisk": {
        "branch": "branch name",
        "riskDimension": "Financial | Technical | Organizational | Ecosystem",
        "severity": "HIGH | MEDIUM | LOW",
        "riskStatement": "single sentence risk description"
      },
      "mitigationRationale": "1-2 sentences describing how the decision mitigates the linked risk"
    }
  ],
  "prioritizedOptions": [
    {
      "name": "string",
      "priority": number,
      "rationale": "2-3 sentence justification",
      "timeline": "e.g., 0-3 months"
    }
  ],
  "actionItems": [
    {
      "title": "string",
      "description": "1-2 sentence summary",
      "owner": "suggested role",
      "timeframe": "time window"
    }
  ],
  "riskMitigationPriorities": [
    {
      "area": "focus area",
      "action": "specific mitigation step"
    }
  ],
  "successMetrics": [
    {
      "name": "metric name",
      "description": "why it matters",
      "target": "measurable goal"
    }
  ],
  "nextSteps": ["immediate action (6-12 words)"]
}

### Rules
- Provide 4-6 timeline decisions sequenced from %d onward with consecutive "sequence" values starting at 1 and non-decreasing years.
- Each timeline decision must cite exactly one linked risk drawn from the provided branches and explicitly describe how the decision mitigates it.
- Provide 3-5 prioritized options, 5-8 action items, 3-5 risk mitigations, 4-6 success metrics, and 3-5 next steps.
- Rank options starting at 1 with no duplicates.
- Keep the entire response under 2000 tokens.
- Respond with valid JSON only; do not include commentary or code fences.`, context, summariesJSON, decisionYear, decisionYear),
		},
	}, nil
}
