// Package analyzer orchestrates the analysis pipeline: it builds
// prompts, invokes the model, and normalizes responses into typed
// results. It holds no mutable state of its own; every call returns
// fresh values owned by the caller.
package analyzer

import (
	"context"

	"go.uber.org/zap"

	"github.com/insightstream/strategy-ai/pkg/llm"
	"github.com/insightstream/strategy-ai/pkg/model"
	"github.com/insightstream/strategy-ai/pkg/parser"
)

// Service is the full analysis surface consumed by the CLI. The mock
// layer implements the same interface, selected once at construction;
// callers cannot tell which is active.
type Service interface {
	// Interview analysis.
	Summarize(ctx context.Context, transcript string) (string, error)
	ExtractThemes(ctx context.Context, transcript string) ([]string, error)
	AnalyzeTranscript(ctx context.Context, transcript string) ([]model.Insight, error)
	ComposeInsights(ctx context.Context, newInsights, existing []model.Insight) ([]model.Insight, error)
	ValidateHypotheses(ctx context.Context, hypotheses []model.Hypothesis, transcripts []model.Transcript) ([]model.Hypothesis, error)

	// Roadmap analysis.
	SummarizeContext(ctx context.Context, fileContent string) (string, error)
	IdentifyBranches(ctx context.Context, strategicContext string) ([]model.Branch, error)
	AnalyzeDimension(ctx context.Context, dim model.Dimension, strategicContext, branchName string) (model.DimensionResult, error)
	AssessBranch(ctx context.Context, strategicContext string, branch *model.Branch) (*model.RiskAssessment, error)
	GenerateRoadmap(ctx context.Context, strategicContext string, branches []model.Branch, decisionYear int) (*model.RoadmapPlan, error)
}

// Analyzer is the real Service implementation, calling the configured
// LLM provider.
type Analyzer struct {
	llm    llm.Client
	logger *zap.Logger
}

var _ Service = (*Analyzer)(nil)

// New creates an Analyzer. A nil logger disables logging.
func New(client llm.Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{llm: client, logger: logger}
}

// observeParse logs how a response was normalized. Fallbacks are not
// errors, but they must remain visible so format regressions in model
// output are observable.
func (a *Analyzer) observeParse(kind string, method parser.Method) {
	if method.Fallback() {
		a.logger.Warn("normalization fallback",
			zap.String("kind", kind),
			zap.String("method", string(method)))
		return
	}
	a.logger.Debug("response parsed",
		zap.String("kind", kind),
		zap.String("method", string(method)))
}
