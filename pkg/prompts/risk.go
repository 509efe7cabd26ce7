package prompts

import (
	"fmt"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// dimensionSpec carries the per-dimension persona and analysis
// requirements. The output-format contract below it is shared and is
// load-bearing: it is the only defense against unparseable output.
type dimensionSpec struct {
	persona      string
	task         string
	requirements string
}

var dimensionSpecs = map[model.Dimension]dimensionSpec{
	model.DimensionFinancial: {
		persona: "You are a financial strategist specializing in innovation investments, capital allocation, and runway management.",
		task:    "Evaluate the FINANCIAL RISK for the decision branch %q using the supplied context.",
		requirements: `- Provide exactly two concise paragraphs covering capital requirements, cash flow exposure, ROI sensitivity, and funding risks.
- Add a bullet list with 3-5 critical financial risk factors.
- Keep the full narrative under 250 words.`,
	},
	model.DimensionTechnical: {
		persona: "You are a chief architect who evaluates technical feasibility, scalability, and engineering execution risks for complex programs.",
		task:    "Assess the TECHNICAL RISK for the decision branch %q using the supplied context.",
		requirements: `- Write two concise paragraphs that cover engineering complexity, technology maturity, integration constraints, scalability, and delivery timeline exposure.
- Follow with a bullet list containing 3-5 critical technical risk factors.
- Keep the total analysis within 250 words.`,
	},
	model.DimensionOrganizational: {
		persona: "You are an organizational strategist focused on talent, process maturity, operating model, and change readiness.",
		task:    "Assess the ORGANIZATIONAL RISK for the decision branch %q using the supplied context.",
		requirements: `- Craft two concise paragraphs addressing team expertise, capability gaps, process maturity, leadership alignment, structural dependencies, and cultural readiness.
- Follow with a bullet list of 3-5 critical organizational risk factors.
- Keep the complete analysis within 250 words.`,
	},
	model.DimensionEcosystem: {
		persona: "You are an ecosystem and market strategy expert who evaluates partner dependencies, supply chain resilience, adoption barriers, and competitive dynamics.",
		task:    "Assess the ECOSYSTEM RISK (partners + market) for the decision branch %q using the provided context.",
		requirements: `- Produce two focused paragraphs covering partner interdependence, supplier reliability, go-to-market dependencies, adoption barriers, and competitive/market viability.
- Follow with a bullet list of 4-6 critical ecosystem threats (e.g., weakest partners, adoption chokepoints, expected competitive responses).
- Keep the full analysis within 275 words.`,
	},
}

// BuildDimensionRisk builds the analysis request for one risk dimension
// of one branch.
func BuildDimensionRisk(dim model.Dimension, context, branchName string) ([]model.Message, error) {
	spec, ok := dimensionSpecs[dim]
	if !ok {
		return nil, fmt.Errorf("unknown risk dimension: %s", dim)
	}

	return []model.Message{
		{Role: model.RoleSystem, Content: spec.persona},
		{
			Role: model.RoleUser,
			Content: fmt.Sprintf(`### Task
%s

### Context
%s

### Analysis Requirements
%s

### Output Format
Return a single JSON object that matches:
{
  "severity": "HIGH | MEDIUM | LOW",
  "analysis": "<markdown paragraphs and bullet list>"
}

### Rules
- Respond with valid JSON only; do not include any explanatory text outside the JSON object and do not use code fences.
- The value of "analysis" must include the two paragraphs followed by the bullet list, all in Markdown using newline characters.
- Do not introduce tables or additional sections.
- Choose the severity from HIGH, MEDIUM, or LOW and use uppercase.`,
				fmt.Sprintf(spec.task, branchName), context, spec.requirements),
		},
	}, nil
}

// BuildSynthesis builds the fifth call of a branch assessment: combining
// the four dimension results into one overall level plus mitigations.
func BuildSynthesis(context, branchName string, results map[model.Dimension]model.DimensionResult) []model.Message {
	summary := ""
	for _, dim := range model.Dimensions() {
		res, ok := results[dim]
		severity := model.DefaultSeverity
		analysis := "No analysis provided."
		if ok {
			severity = res.Severity
			if res.Analysis != "" {
				analysis = res.Analysis
			}
		}
		summary += fmt.Sprintf("### %s (Severity: %s)\n%s\n\n", dim.Title(), severity, analysis)
	}

	return []model.Message{
		{
			Role:    model.RoleSystem,
			Content: "You are a senior innovation strategist who synthesizes multi-dimensional risk analyses into clear recommendations.",
		},
		{
			Role: model.RoleUser,
			Content: fmt.Sprintf(`### Task
Synthesize the overall risk profile for %q using the supplied context and dimension analyses.

### Context
%s

### Dimension Analyses
%s

### Output Schema
Return a JSON object that matches exactly:
{
  "dimensions": {
    "financial": "HIGH | MEDIUM | LOW",
    "technical": "HIGH | MEDIUM | LOW",
    "organizational": "HIGH | MEDIUM | LOW",
    "ecosystem": "HIGH | MEDIUM | LOW"
  },
  "level": "HIGH | MEDIUM | LOW",
  "reasoning": "<2-3 sentence cross-dimensional synthesis>",
  "mitigation": ["<priority 1>", "<priority 2>", "<priority 3>"]
}

### Rules
- Preserve the provided severity for each dimension verbatim; do not alter them.
- Determine the overall level; use the highest severity unless a short rationale justifies a different level.
- Keep the reasoning concise (2-3 sentences, max 80 words) and reference the dominant risk drivers.
- Provide exactly three mitigation priorities ordered by urgency.
- Respond with valid JSON only (no extra commentary, code fences, or trailing text).`, branchName, context, summary),
		},
	}
}
