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

var (
	contextOptions = llm.Options{Temperature: 0.5, MaxTokens: 2000, TopP: llm.DefaultTopP}
	branchOptions  = llm.Options{Temperature: 0.7, MaxTokens: 1500, TopP: llm.DefaultTopP}
	roadmapOptions = llm.Options{Temperature: 0.7, MaxTokens: llm.MaxResponseTokens, TopP: llm.DefaultTopP}
)

// SummarizeContext condenses raw roadmap documents into the strategic
// brief every later analysis reuses.
func (a *Analyzer) SummarizeContext(ctx context.Context, fileContent string) (string, error) {
	raw, err := a.llm.Chat(ctx, prompts.BuildContext(fileContent), contextOptions)
	if err != nil {
		return "", fmt.Errorf("summarize context: %w", err)
	}
	return strings.TrimSpace(parser.StripCitations(raw)), nil
}

// IdentifyBranches extracts the candidate decision branches from the
// strategic context. An unparseable response resolves to the canned
// fallback branches rather than an error.
func (a *Analyzer) IdentifyBranches(ctx context.Context, strategicContext string) ([]model.Branch, error) {
	raw, err := a.llm.Chat(ctx, prompts.BuildBranches(strategicContext), branchOptions)
	if err != nil {
		return nil, fmt.Errorf("identify branches: %w", err)
	}
	branches, method := parser.ParseBranches(raw)
	a.observeParse("branches", method)
	return branches, nil
}

// GenerateRoadmap produces the prioritized plan from the analyzed
// branches. An unparseable response resolves to a deterministic
// branch-derived fallback plan, since an empty plan is not consumable.
func (a *Analyzer) GenerateRoadmap(ctx context.Context, strategicContext string, branches []model.Branch, decisionYear int) (*model.RoadmapPlan, error) {
	msgs, err := prompts.BuildRoadmap(strategicContext, branches, decisionYear)
	if err != nil {
		return nil, err
	}
	raw, err := a.llm.Chat(ctx, msgs, roadmapOptions)
	if err != nil {
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}

	plan, method, ok := parser.ParseRoadmap(raw)
	a.observeParse("roadmap", method)
	if !ok {
		return FallbackPlan(branches, decisionYear), nil
	}
	return plan, nil
}

// FallbackPlan builds the deterministic plan substituted when roadmap
// generation yields nothing parseable: a timeline from the first
// branches and options ranked by their assessed risk.
func FallbackPlan(branches []model.Branch, decisionYear int) *model.RoadmapPlan {
	plan := &model.RoadmapPlan{
		ExecutiveSummary: "Unable to generate recommendations. Please try again.",
		NextSteps: []string{
			"Review risk analysis",
			"Prioritize decision branches",
			"Develop detailed implementation plan",
		},
	}

	quarters := []string{"Q1", "Q3"}
	for i, b := range branches {
		if i >= 4 {
			break
		}
		entry := model.TimelineEntry{
			Sequence:            i + 1,
			Year:                decisionYear + i/2,
			Quarter:             quarters[i%2],
			Decision:            fmt.Sprintf("Advance %s", b.Name),
			Description:         truncate(b.Description, 160),
			MitigationRationale: "Mitigates top risk by advancing targeted safeguards.",
			LinkedRisk: model.LinkedRisk{
				Branch:        b.Name,
				RiskDimension: model.DimensionFinancial.Title(),
				Severity:      model.DefaultSeverity,
				RiskStatement: "Risk summary unavailable.",
			},
		}
		if b.Risk != nil {
			if res, ok := b.Risk.Dimensions[model.DimensionFinancial]; ok && res.Severity.Valid() {
				entry.LinkedRisk.Severity = res.Severity
			}
			if s := firstSentence(b.Risk.Reasoning); s != "" {
				entry.LinkedRisk.RiskStatement = s
			}
			if len(b.Risk.Mitigation) > 0 {
				entry.MitigationRationale = b.Risk.Mitigation[0]
			}
		}
		plan.DecisionTimeline = append(plan.DecisionTimeline, entry)
	}

	for i, b := range branches {
		if i >= 3 {
			break
		}
		opt := model.PrioritizedOption{
			Name:      b.Name,
			Priority:  i + 1,
			Rationale: b.Description,
			Timeline:  "6-12 months",
		}
		if b.Risk != nil {
			if b.Risk.Reasoning != "" {
				opt.Rationale = b.Risk.Reasoning
			}
			switch b.Risk.OverallLevel {
			case model.SeverityLow:
				opt.Timeline = "0-3 months"
			case model.SeverityMedium:
				opt.Timeline = "3-6 months"
			}
		}
		plan.PrioritizedOptions = append(plan.PrioritizedOptions, opt)
	}

	return plan
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i+1]
	}
	return s
}
