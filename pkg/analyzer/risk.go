package analyzer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/insightstream/strategy-ai/pkg/llm"
	"github.com/insightstream/strategy-ai/pkg/model"
	"github.com/insightstream/strategy-ai/pkg/parser"
	"github.com/insightstream/strategy-ai/pkg/prompts"
)

// Per-call sampling calibration for the risk pipeline.
var dimensionOptions = map[model.Dimension]llm.Options{
	model.DimensionFinancial:      {Temperature: 0.5, MaxTokens: 1300, TopP: llm.DefaultTopP},
	model.DimensionTechnical:      {Temperature: 0.5, MaxTokens: 1300, TopP: llm.DefaultTopP},
	model.DimensionOrganizational: {Temperature: 0.5, MaxTokens: 1300, TopP: llm.DefaultTopP},
	model.DimensionEcosystem:      {Temperature: 0.6, MaxTokens: 1600, TopP: llm.DefaultTopP},
}

var synthesisOptions = llm.Options{Temperature: 0.5, MaxTokens: 1200, TopP: llm.DefaultTopP}

// Fallback analysis texts substituted when a dimension response carries
// no usable prose.
var fallbackAnalyses = map[model.Dimension]string{
	model.DimensionFinancial:      "Financial risk analysis unavailable.",
	model.DimensionTechnical:      "Technical risk analysis unavailable.",
	model.DimensionOrganizational: "Organizational risk analysis unavailable.",
	model.DimensionEcosystem:      "Ecosystem risk analysis unavailable.",
}

// primaryMitigations are the generic per-dimension mitigation actions
// used whenever the synthesis step cannot supply its own three.
var primaryMitigations = map[model.Dimension]string{
	model.DimensionFinancial:      "Recalibrate funding strategy, burn rate, and investment phasing for this branch.",
	model.DimensionTechnical:      "De-risk critical engineering milestones with prototypes, experiments, and staged delivery gates.",
	model.DimensionOrganizational: "Close capability gaps with targeted hiring, enablement, and process maturation.",
	model.DimensionEcosystem:      "Secure partner commitments and accelerate market validation to reduce external dependencies.",
}

// AnalyzeDimension runs one risk-dimension analysis for a branch. A
// transport failure propagates; an unparseable response resolves to the
// documented MEDIUM default and never fails.
func (a *Analyzer) AnalyzeDimension(ctx context.Context, dim model.Dimension, strategicContext, branchName string) (model.DimensionResult, error) {
	msgs, err := prompts.BuildDimensionRisk(dim, strategicContext, branchName)
	if err != nil {
		return model.DimensionResult{}, err
	}
	opts, ok := dimensionOptions[dim]
	if !ok {
		opts = llm.DefaultOptions()
	}

	raw, err := a.llm.Chat(ctx, msgs, opts)
	if err != nil {
		return model.DimensionResult{}, fmt.Errorf("analyze %s risk for %q: %w", dim, branchName, err)
	}

	result, method := parser.ParseRisk(raw, fallbackAnalyses[dim])
	a.observeParse("dimension_risk:"+string(dim), method)
	return result, nil
}

// AssessBranch runs a branch's full risk state machine: four dimension
// analyses issued concurrently, joined when all four settle, then one
// strictly-ordered synthesis call. A failed or unparseable synthesis is
// absorbed by the deterministic max-severity fallback and is never
// surfaced to the caller. On success the branch is enriched in place.
func (a *Analyzer) AssessBranch(ctx context.Context, strategicContext string, branch *model.Branch) (*model.RiskAssessment, error) {
	results := make(map[model.Dimension]model.DimensionResult, 4)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, dim := range model.Dimensions() {
		dim := dim
		g.Go(func() error {
			res, err := a.AnalyzeDimension(gctx, dim, strategicContext, branch.Name)
			if err != nil {
				return err
			}
			mu.Lock()
			results[dim] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assessment := a.synthesize(ctx, strategicContext, branch.Name, results)
	branch.Risk = assessment
	return assessment, nil
}

// synthesize issues the fifth call and normalizes it, falling back to
// the deterministic reduction when the call fails or its output is
// unusable.
func (a *Analyzer) synthesize(ctx context.Context, strategicContext, branchName string, results map[model.Dimension]model.DimensionResult) *model.RiskAssessment {
	raw, err := a.llm.Chat(ctx, prompts.BuildSynthesis(strategicContext, branchName, results), synthesisOptions)
	if err != nil {
		a.logger.Warn("synthesis call failed, using deterministic fallback",
			zap.String("branch", branchName), zap.Error(err))
		return fallbackAssessment(results)
	}

	synth, method, ok := parser.ParseSynthesis(raw)
	a.observeParse("risk_synthesis", method)
	if !ok {
		return fallbackAssessment(results)
	}

	level := synth.Level
	maxLevel := maxDimensionSeverity(results)
	if level.Rank() < maxLevel.Rank() && synth.Reasoning == "" {
		// A downgrade below the worst dimension needs a justification;
		// without one the maximum stands.
		level = maxLevel
	}

	reasoning := synth.Reasoning
	if reasoning == "" {
		reasoning = deterministicReasoning(results)
	}
	mitigation := synth.Mitigation
	if len(mitigation) != 3 {
		mitigation = FallbackMitigations(results)
	}

	return &model.RiskAssessment{
		// Dimension severities are preserved verbatim; the synthesis
		// response cannot alter them.
		Dimensions:   results,
		OverallLevel: level,
		Reasoning:    reasoning,
		Mitigation:   mitigation,
	}
}

// fallbackAssessment is the exact, reproducible substitute for a failed
// synthesis: overall level is the maximum dimension severity and the
// mitigation list is the generic per-dimension actions in descending
// severity order.
func fallbackAssessment(results map[model.Dimension]model.DimensionResult) *model.RiskAssessment {
	return &model.RiskAssessment{
		Dimensions:   results,
		OverallLevel: maxDimensionSeverity(results),
		Reasoning:    deterministicReasoning(results),
		Mitigation:   FallbackMitigations(results),
	}
}

func maxDimensionSeverity(results map[model.Dimension]model.DimensionResult) model.Severity {
	levels := make([]model.Severity, 0, len(results))
	for _, res := range results {
		levels = append(levels, res.Severity)
	}
	return model.MaxSeverity(levels...)
}

func deterministicReasoning(results map[model.Dimension]model.DimensionResult) string {
	sev := func(d model.Dimension) model.Severity {
		if r, ok := results[d]; ok && r.Severity.Valid() {
			return r.Severity
		}
		return model.DefaultSeverity
	}
	return fmt.Sprintf("Financial risk is %s, technical risk is %s, organizational risk is %s, and ecosystem risk is %s.",
		sev(model.DimensionFinancial), sev(model.DimensionTechnical),
		sev(model.DimensionOrganizational), sev(model.DimensionEcosystem))
}

// FallbackMitigations returns the three generic mitigation actions for
// the highest-severity dimensions, ranked descending with the canonical
// dimension order breaking ties.
func FallbackMitigations(results map[model.Dimension]model.DimensionResult) []string {
	dims := model.Dimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		si, sj := model.DefaultSeverity, model.DefaultSeverity
		if r, ok := results[dims[i]]; ok && r.Severity.Valid() {
			si = r.Severity
		}
		if r, ok := results[dims[j]]; ok && r.Severity.Valid() {
			sj = r.Severity
		}
		return si.Rank() > sj.Rank()
	})

	mitigation := make([]string, 0, 3)
	for _, d := range dims[:3] {
		mitigation = append(mitigation, primaryMitigations[d])
	}
	return mitigation
}
