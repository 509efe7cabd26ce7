// Package mock is the offline stand-in for the analyzer: it implements
// the same Service interface with canned data and simulated latency so
// every workflow can be exercised without provider credentials.
package mock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/insightstream/strategy-ai/pkg/analyzer"
	"github.com/insightstream/strategy-ai/pkg/model"
	"github.com/insightstream/strategy-ai/pkg/parser"
)

// Service serves canned analysis results. Latency is simulated but
// cancellation is honored, matching the real client's contract.
type Service struct {
	logger *zap.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

var _ analyzer.Service = (*Service)(nil)

// New creates the mock service. A nil logger disables logging.
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("mock data mode enabled, no provider calls will be made")
	return &Service{logger: logger, wait: delay}
}

// delay blocks for d or until the context is canceled.
func delay(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

const mockContext = `E Ink is developing electronic paper (e-paper) display technology for multiple markets. The product roadmap involves significant financial, technical, and competitive challenges across staged market entry (retail signage -> flat-panel displays -> radio paper). Key considerations include manufacturing scale-up from prototypes, technology platform evolution (resolution, color, wireless), strategic partnerships, funding requirements, and patent protection.`

var mockBranches = []model.Branch{
	{
		Name:        "Manufacturing Scale-Up",
		Description: "Decision on how and when to transition from hand-assembled prototypes to scalable, automated manufacturing processes for large-area displays, balancing speed, cost, and reliability.",
	},
	{
		Name:        "Market Sequencing",
		Description: "Choice of which target markets to prioritize at each roadmap phase, based on technical readiness, revenue potential, and competitive landscape.",
	},
	{
		Name:        "Technology Platform Evolution",
		Description: "Determining the timing and scope of investments in advanced features such as higher resolution, color capability, wireless updates, and integration with transistor backplanes to enable entry into new segments.",
	},
	{
		Name:        "Partnership and Go-To-Market Strategy",
		Description: "Selecting strategic partners and distribution models (e.g., direct sales vs. licensing) to accelerate market entry, secure key reference customers, and defend against incumbents.",
	},
	{
		Name:        "Funding and Resource Allocation",
		Description: "Deciding on the timing, amount, and sources of additional funding rounds to support R&D, production scale-up, and market expansion, while managing cash flow and risk.",
	},
	{
		Name:        "Patent and IP Strategy",
		Description: "Choice of how aggressively to pursue patent protection, licensing, and competitive differentiation to safeguard technology advantages and support long-term growth.",
	},
}

// branchSeverities holds the canned per-dimension severity for every
// known branch. Unknown branches resolve to MEDIUM across the board.
var branchSeverities = map[string]map[model.Dimension]model.Severity{
	"Manufacturing Scale-Up": {
		model.DimensionFinancial:      model.SeverityHigh,
		model.DimensionTechnical:      model.SeverityHigh,
		model.DimensionOrganizational: model.SeverityMedium,
		model.DimensionEcosystem:      model.SeverityHigh,
	},
	"Market Sequencing": {
		model.DimensionFinancial:      model.SeverityHigh,
		model.DimensionTechnical:      model.SeverityMedium,
		model.DimensionOrganizational: model.SeverityMedium,
		model.DimensionEcosystem:      model.SeverityHigh,
	},
	"Technology Platform Evolution": {
		model.DimensionFinancial:      model.SeverityHigh,
		model.DimensionTechnical:      model.SeverityHigh,
		model.DimensionOrganizational: model.SeverityMedium,
		model.DimensionEcosystem:      model.SeverityHigh,
	},
	"Partnership and Go-To-Market Strategy": {
		model.DimensionFinancial:      model.SeverityMedium,
		model.DimensionTechnical:      model.SeverityMedium,
		model.DimensionOrganizational: model.SeverityMedium,
		model.DimensionEcosystem:      model.SeverityHigh,
	},
	"Funding and Resource Allocation": {
		model.DimensionFinancial:      model.SeverityHigh,
		model.DimensionTechnical:      model.SeverityLow,
		model.DimensionOrganizational: model.SeverityLow,
		model.DimensionEcosystem:      model.SeverityMedium,
	},
	"Patent and IP Strategy": {
		model.DimensionFinancial:      model.SeverityMedium,
		model.DimensionTechnical:      model.SeverityLow,
		model.DimensionOrganizational: model.SeverityMedium,
		model.DimensionEcosystem:      model.SeverityMedium,
	},
}

func branchSeverity(branchName string, dim model.Dimension) model.Severity {
	if dims, ok := branchSeverities[branchName]; ok {
		if sev, ok := dims[dim]; ok {
			return sev
		}
	}
	return model.DefaultSeverity
}

func dimensionAnalysis(dim model.Dimension, branchName string, sev model.Severity) string {
	var body string
	switch dim {
	case model.DimensionFinancial:
		body = "This branch requires significant capital investment with extended time-to-revenue. Key financial considerations include capital requirements, cash flow management, ROI potential, and resource allocation trade-offs."
	case model.DimensionTechnical:
		body = "Key technical considerations include engineering complexity, technology maturity, scalability, and integration requirements."
	case model.DimensionOrganizational:
		body = "Organizational readiness assessment covers team expertise, process maturity, and cultural alignment."
	case model.DimensionEcosystem:
		body = "Ecosystem exposure spans partner interdependence, supply chain constraints, adoption timelines across the value chain, and competitive dynamics."
	}
	return fmt.Sprintf("## %s Analysis: %s\n\n**Severity Rating: %s**\n\n%s", dim.Title(), branchName, sev, body)
}

func (s *Service) Summarize(ctx context.Context, transcript string) (string, error) {
	if err := s.wait(ctx, time.Second); err != nil {
		return "", err
	}
	return "This is a mock summary generated for the provided transcript. It highlights key pain points and opportunities mentioned by the interviewee.", nil
}

func (s *Service) ExtractThemes(ctx context.Context, transcript string) ([]string, error) {
	if err := s.wait(ctx, time.Second); err != nil {
		return nil, err
	}
	return []string{"Mock Theme 1", "Mock Theme 2", "Mock Theme 3"}, nil
}

func (s *Service) AnalyzeTranscript(ctx context.Context, transcript string) ([]model.Insight, error) {
	if err := s.wait(ctx, time.Second); err != nil {
		return nil, err
	}
	return []model.Insight{
		{Title: "Mock Insight", Description: "This is mock data", Type: "Pain Point", Confidence: 0.8},
	}, nil
}

func (s *Service) ComposeInsights(ctx context.Context, newInsights, existing []model.Insight) ([]model.Insight, error) {
	if err := s.wait(ctx, time.Second); err != nil {
		return nil, err
	}
	return append(append([]model.Insight{}, existing...), newInsights...), nil
}

// ValidateHypotheses scores each hypothesis from its wording: mentions
// of manual or time-consuming work validate strongly, everything else
// gets weak refuting evidence. Results flow through the same merge as
// real responses so derived counters stay consistent.
func (s *Service) ValidateHypotheses(ctx context.Context, hypotheses []model.Hypothesis, transcripts []model.Transcript) ([]model.Hypothesis, error) {
	if err := s.wait(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}

	results := make([]parser.ValidationResult, 0, len(hypotheses))
	for _, h := range hypotheses {
		r := parser.ValidationResult{ID: parser.FlexID(strconv.Itoa(h.ID))}
		text := strings.ToLower(h.Text)
		if strings.Contains(text, "time consuming") || strings.Contains(text, "manual") {
			r.Confidence = 0.95
			r.Evidence = []model.Evidence{
				{Quote: "Teaching students to do customer discovery is hard because they get overwhelmed by the data...", Source: "Dr. Emily Chen", Type: model.EvidenceSupporting},
				{Quote: "I spend about 20% of my week just tagging interviews...", Source: "Sarah Miller", Type: model.EvidenceSupporting},
			}
		} else {
			r.Confidence = 0.4
			r.Evidence = []model.Evidence{
				{Quote: "I haven't really seen that be a huge issue for us yet.", Source: "James Wilson", Type: model.EvidenceRefuting},
			}
		}
		results = append(results, r)
	}
	return analyzer.MergeValidation(hypotheses, results), nil
}

func (s *Service) SummarizeContext(ctx context.Context, fileContent string) (string, error) {
	if err := s.wait(ctx, 500*time.Millisecond); err != nil {
		return "", err
	}
	return mockContext, nil
}

func (s *Service) IdentifyBranches(ctx context.Context, strategicContext string) ([]model.Branch, error) {
	if err := s.wait(ctx, time.Second); err != nil {
		return nil, err
	}
	branches := make([]model.Branch, len(mockBranches))
	copy(branches, mockBranches)
	return branches, nil
}

func (s *Service) AnalyzeDimension(ctx context.Context, dim model.Dimension, strategicContext, branchName string) (model.DimensionResult, error) {
	if err := s.wait(ctx, 400*time.Millisecond); err != nil {
		return model.DimensionResult{}, err
	}
	sev := branchSeverity(branchName, dim)
	return model.DimensionResult{
		Severity: sev,
		Analysis: dimensionAnalysis(dim, branchName, sev),
	}, nil
}

// AssessBranch reduces the canned dimension results exactly the way the
// real pipeline's deterministic fallback does: overall level is the
// maximum dimension severity.
func (s *Service) AssessBranch(ctx context.Context, strategicContext string, branch *model.Branch) (*model.RiskAssessment, error) {
	results := make(map[model.Dimension]model.DimensionResult, 4)
	levels := make([]model.Severity, 0, 4)
	for _, dim := range model.Dimensions() {
		res, err := s.AnalyzeDimension(ctx, dim, strategicContext, branch.Name)
		if err != nil {
			return nil, err
		}
		results[dim] = res
		levels = append(levels, res.Severity)
	}
	if err := s.wait(ctx, 500*time.Millisecond); err != nil {
		return nil, err
	}

	assessment := &model.RiskAssessment{
		Dimensions:   results,
		OverallLevel: model.MaxSeverity(levels...),
		Reasoning: fmt.Sprintf("Financial risk is %s, technical risk is %s, organizational risk is %s, and ecosystem risk is %s.",
			results[model.DimensionFinancial].Severity, results[model.DimensionTechnical].Severity,
			results[model.DimensionOrganizational].Severity, results[model.DimensionEcosystem].Severity),
		Mitigation: analyzer.FallbackMitigations(results),
	}
	branch.Risk = assessment
	return assessment, nil
}

func (s *Service) GenerateRoadmap(ctx context.Context, strategicContext string, branches []model.Branch, decisionYear int) (*model.RoadmapPlan, error) {
	if err := s.wait(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if decisionYear <= 0 {
		decisionYear = analyzer.DefaultDecisionYear
	}
	return mockRoadmapPlan(decisionYear), nil
}

func mockRoadmapPlan(year int) *model.RoadmapPlan {
	return &model.RoadmapPlan{
		ExecutiveSummary: "E Ink faces a critical inflection point with five HIGH-risk pathways and one MEDIUM-risk option. The analysis reveals that success requires careful sequencing: prioritize Patent IP protection (lowest risk) to establish defensibility, then pursue staged Manufacturing Scale-Up with EMS partnerships to minimize capital exposure. Market entry should target retail signage first (Phase I validation) before expanding to consumer electronics. Defer Technology Platform Evolution until core manufacturing and initial market traction are proven.\n\nKey insight: All pathways face severe interdependence risks (17-36% joint partner success probabilities) and extended adoption timelines (24-72 months). The recommended approach balances capability building, risk mitigation, and capital efficiency while maintaining strategic optionality.",
		DecisionTimeline: []model.TimelineEntry{
			{
				Sequence:    1,
				Year:        year,
				Quarter:     "Q1",
				Decision:    "Lock Core Patent Positions",
				Description: "File priority patents and conduct freedom-to-operate reviews across key jurisdictions to secure defensibility before scale investments.",
				LinkedRisk: model.LinkedRisk{
					Branch:        "Patent and IP Strategy",
					RiskDimension: model.DimensionEcosystem.Title(),
					Severity:      model.SeverityMedium,
					RiskStatement: "Weak IP coverage invites fast-follower competition and erodes ecosystem leverage.",
				},
				MitigationRationale: "Aggressive filing and diligence convert the ecosystem exposure into enforceable barriers, deterring the fast-follow threat identified in the risk analysis.",
			},
			{
				Sequence:    2,
				Year:        year,
				Quarter:     "Q2",
				Decision:    "Stand Up EMS Manufacturing Pilot",
				Description: "Launch a co-funded pilot line with two EMS partners to validate yields and ramp know-how without heavy capex.",
				LinkedRisk: model.LinkedRisk{
					Branch:        "Manufacturing Scale-Up",
					RiskDimension: model.DimensionFinancial.Title(),
					Severity:      model.SeverityHigh,
					RiskStatement: "Capital-intensive captive scale-up risks exhausting cash before revenues materialize.",
				},
				MitigationRationale: "Sharing investment with EMS partners phases the cash outlay and keeps burn aligned to milestones, directly reducing the highlighted financial exposure.",
			},
			{
				Sequence:    3,
				Year:        year,
				Quarter:     "Q3",
				Decision:    "Secure Anchor OEM Commitments",
				Description: "Close co-development agreements with two signage OEMs complete with volume triggers and integration support.",
				LinkedRisk: model.LinkedRisk{
					Branch:        "Market Sequencing",
					RiskDimension: model.DimensionEcosystem.Title(),
					Severity:      model.SeverityHigh,
					RiskStatement: "Without early demand validation, partner adoption remains uncertain and delays market entry.",
				},
				MitigationRationale: "Binding OEM commitments de-risk the adoption bottleneck by underwriting demand that unlocks upstream partner investment.",
			},
			{
				Sequence:    4,
				Year:        year + 1,
				Quarter:     "Q1",
				Decision:    "Operationalize Manufacturing Governance",
				Description: "Install a manufacturing PMO, SPC dashboards, and layered process audits to control scale-up execution.",
				LinkedRisk: model.LinkedRisk{
					Branch:        "Manufacturing Scale-Up",
					RiskDimension: model.DimensionOrganizational.Title(),
					Severity:      model.SeverityMedium,
					RiskStatement: "Limited high-volume operations muscle threatens quality and schedule adherence.",
				},
				MitigationRationale: "Dedicated governance and process controls import the missing organizational capabilities flagged in the risk review.",
			},
			{
				Sequence:    5,
				Year:        year + 1,
				Quarter:     "Q3",
				Decision:    "Stage Series B Funding Gate",
				Description: "Raise capital against validated yield and customer milestones with a deployment plan tied to expansion phases.",
				LinkedRisk: model.LinkedRisk{
					Branch:        "Funding and Resource Allocation",
					RiskDimension: model.DimensionFinancial.Title(),
					Severity:      model.SeverityHigh,
					RiskStatement: "Runway compression from scale-up burn could stall execution without staged capital infusions.",
				},
				MitigationRationale: "Milestone-based fundraising times cash inflows with proof points, preventing the runway cliff flagged in the financial risk assessment.",
			},
		},
		PrioritizedOptions: []model.PrioritizedOption{
			{
				Priority:  1,
				Name:      "Patent and IP Strategy",
				Rationale: "Lowest overall risk (MEDIUM) with manageable costs and minimal dependencies. Establishes competitive moat before market entry. 2-5 year patent prosecution timeline aligns with product development cycles.",
				Timeline:  "Immediate start, 24-36 months to core portfolio",
			},
			{
				Priority:  2,
				Name:      "Manufacturing Scale-Up (Staged)",
				Rationale: "Critical enabler for market entry. Adopt EMS partnership model to reduce capital requirements from $20M+ to $5-8M. Stage investments with clear milestones to manage 36% joint success probability.",
				Timeline:  "Begin 12 months, 18-24 month execution",
			},
			{
				Priority:  3,
				Name:      "Market Sequencing (Phase I Focus)",
				Rationale: "Retail signage offers fastest path to revenue with clearest value proposition. Use as validation before pursuing higher-risk consumer electronics. Limits initial market risk while building credibility.",
				Timeline:  "Initiate 18-24 months, Phase I completion 36 months",
			},
		},
		ActionItems: []model.ActionItem{
			{
				Title:       "Secure Patent Portfolio Foundation",
				Description: "File core patents covering microcapsule technology, manufacturing processes, and key applications. Prioritize USPTO, EPO, and Asian jurisdictions.",
				Owner:       "CTO + Patent Counsel",
				Timeframe:   fmt.Sprintf("Q1-Q2 %d", year),
			},
			{
				Title:       "Negotiate EMS Partnership Agreement",
				Description: "Identify and engage 2-3 qualified contract manufacturers. Structure deal with milestone payments and joint development to align incentives.",
				Owner:       "VP Operations",
				Timeframe:   fmt.Sprintf("Q2-Q3 %d", year),
			},
			{
				Title:       "Launch Anchor Customer Program",
				Description: "Secure 1-2 key OEM partners for co-development in retail signage. Offer exclusivity window in exchange for volume commitments and market validation.",
				Owner:       "VP Business Development",
				Timeframe:   fmt.Sprintf("Q3-Q4 %d", year),
			},
			{
				Title:       "Establish Staged Funding Gates",
				Description: "Define clear technical and commercial milestones for Series B/C rounds. Align board on go/no-go criteria and contingency plans.",
				Owner:       "CFO + CEO",
				Timeframe:   fmt.Sprintf("Q1 %d", year),
			},
		},
		RiskMitigationPriorities: []model.RiskMitigation{
			{
				Area:   "Partner Interdependence Risk",
				Action: "Develop dual-source strategies for critical materials and equipment. Build contractual safeguards with milestone-based payments and performance penalties.",
			},
			{
				Area:   "Capital Efficiency",
				Action: "Pursue EMS model over captive manufacturing. Target $5-8M initial scale-up vs. $20M+ for owned facilities. Preserves optionality and reduces cash burn.",
			},
			{
				Area:   "Market Validation Risk",
				Action: "Focus Phase I on retail signage with 2-3 anchor customers before broader launch. Validate demand and reliability at scale before heavy investment in Phases II-III.",
			},
			{
				Area:   "Technical Execution",
				Action: "Hire VP Manufacturing Operations with high-volume experience. Invest in process engineering talent. Stage technology development with strict prototype validation gates.",
			},
		},
		SuccessMetrics: []model.SuccessMetric{
			{
				Name:        "Patent Portfolio Strength",
				Description: "Core patent families filed and prosecuted in key jurisdictions",
				Target:      "8-12 granted patents by Month 36",
			},
			{
				Name:        "Manufacturing Yield Rate",
				Description: "Production yield for scaled manufacturing processes",
				Target:      "70%+ yield by Month 24, 90%+ by Month 36",
			},
			{
				Name:        "Customer Commitments",
				Description: "Binding purchase agreements or MOUs from anchor customers",
				Target:      "$10M+ committed ARR by Month 30",
			},
			{
				Name:        "Capital Efficiency",
				Description: "Burn rate management and runway extension",
				Target:      "Maintain 18+ month runway; <$1.2M monthly burn",
			},
		},
		NextSteps: []string{
			"Engage patent counsel and initiate FTO analysis within 30 days",
			"Develop detailed Manufacturing Scale-Up business case comparing captive vs. EMS models",
			"Create target customer list for retail signage and initiate outreach",
			"Establish quarterly board milestones with clear funding gate criteria",
			"Hire VP Manufacturing Operations to lead scale-up execution",
			"Defer Technology Platform Evolution and Phases II-III investment until Phase I validation complete",
		},
	}
}
