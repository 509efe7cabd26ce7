package model

import "strings"

// Severity is the closed risk level scale used across every analysis.
// Parse failures resolve to DefaultSeverity at the normalization
// boundary, never to an empty severity.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// DefaultSeverity is substituted when a model response carries no usable
// severity at all.
const DefaultSeverity = SeverityMedium

var severityRank = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

// ParseSeverity converts a raw model-supplied string into a Severity.
// Raw severity strings must not travel past the parser; everything
// downstream works with the typed value.
func ParseSeverity(raw string) (Severity, bool) {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := severityRank[s]
	return s, ok
}

// Rank returns the position of s in the LOW < MEDIUM < HIGH order.
// Unknown values rank below LOW so comparisons stay total.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Valid reports whether s is one of the three closed enum values.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// MaxSeverity returns the highest severity in levels. Invalid entries
// count as DefaultSeverity; an empty call returns DefaultSeverity.
func MaxSeverity(levels ...Severity) Severity {
	max := Severity("")
	for _, l := range levels {
		if !l.Valid() {
			l = DefaultSeverity
		}
		if max == "" || l.Rank() > max.Rank() {
			max = l
		}
	}
	if max == "" {
		return DefaultSeverity
	}
	return max
}

// Dimension is one of the four fixed risk categories.
type Dimension string

const (
	DimensionFinancial      Dimension = "financial"
	DimensionTechnical      Dimension = "technical"
	DimensionOrganizational Dimension = "organizational"
	DimensionEcosystem      Dimension = "ecosystem"
)

// Dimensions returns the four categories in their canonical order. The
// order doubles as the tie-break when mitigation actions are ranked by
// severity.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionFinancial,
		DimensionTechnical,
		DimensionOrganizational,
		DimensionEcosystem,
	}
}

// Title returns the display form used in prompts and reports.
func (d Dimension) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Message is one role-tagged entry of a chat request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// DimensionResult is the outcome of a single dimension analysis. Severity
// is always one of the three enum values in a consumable result.
type DimensionResult struct {
	Severity Severity `json:"severity"`
	Analysis string   `json:"analysis"`
}

// RiskAssessment aggregates the four dimension results for one branch
// plus the synthesized overall level, reasoning, and exactly three
// prioritized mitigation actions.
type RiskAssessment struct {
	Dimensions   map[Dimension]DimensionResult `json:"dimensions"`
	OverallLevel Severity                      `json:"overall_level"`
	Reasoning    string                        `json:"reasoning"`
	Mitigation   []string                      `json:"mitigation"`
}

// Branch is one candidate strategic decision option. Risk is nil until
// the branch has been assessed and is replaced wholesale on re-analysis.
type Branch struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Risk        *RiskAssessment `json:"risk,omitempty"`
}

// Evidence ties a transcript quote to a hypothesis. Immutable once
// attached.
type Evidence struct {
	Quote  string `json:"quote"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

const (
	EvidenceSupporting = "supporting"
	EvidenceRefuting   = "refuting"
)

// Hypothesis statuses.
const (
	StatusUnverified = "unverified"
	StatusVerified   = "verified"
)

// Hypothesis is a market assumption being validated against transcripts.
// SupportingCount and AgainstCount are derived from Evidence and are
// recomputed on every merge; they are never taken from model output.
type Hypothesis struct {
	ID              int        `json:"id"`
	Text            string     `json:"text"`
	Status          string     `json:"status"`
	Confidence      float64    `json:"confidence,omitempty"`
	Evidence        []Evidence `json:"evidence,omitempty"`
	SupportingCount int        `json:"supporting_count"`
	AgainstCount    int        `json:"against_count"`
}

// RecountEvidence recomputes the derived evidence counters.
func (h *Hypothesis) RecountEvidence() {
	h.SupportingCount = 0
	h.AgainstCount = 0
	for _, e := range h.Evidence {
		switch e.Type {
		case EvidenceSupporting:
			h.SupportingCount++
		case EvidenceRefuting:
			h.AgainstCount++
		}
	}
}

// Transcript is one interview transcript, eligible for validation when
// Text is non-empty.
type Transcript struct {
	ID     int    `json:"id"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Insight is a single structured finding extracted from a transcript.
type Insight struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
}

// LinkedRisk points a timeline decision back at exactly one analyzed
// branch and dimension.
type LinkedRisk struct {
	Branch        string   `json:"branch"`
	RiskDimension string   `json:"riskDimension"`
	Severity      Severity `json:"severity"`
	RiskStatement string   `json:"riskStatement"`
}

// TimelineEntry is one sequenced decision of the roadmap plan.
type TimelineEntry struct {
	Sequence            int        `json:"sequence"`
	Year                int        `json:"year"`
	Quarter             string     `json:"quarter"`
	Decision            string     `json:"decision"`
	Description         string     `json:"description"`
	LinkedRisk          LinkedRisk `json:"linkedRisk"`
	MitigationRationale string     `json:"mitigationRationale"`
}

// PrioritizedOption ranks one branch for execution.
type PrioritizedOption struct {
	Name      string `json:"name"`
	Priority  int    `json:"priority"`
	Rationale string `json:"rationale"`
	Timeline  string `json:"timeline"`
}

// ActionItem is a concrete follow-up with a suggested owner.
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Timeframe   string `json:"timeframe"`
}

// RiskMitigation pairs a focus area with a mitigation step.
type RiskMitigation struct {
	Area   string `json:"area"`
	Action string `json:"action"`
}

// SuccessMetric is a measurable goal for the plan.
type SuccessMetric struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Target      string `json:"target"`
}

// RoadmapPlan is the full recommendation produced after branch analysis.
type RoadmapPlan struct {
	ExecutiveSummary         string              `json:"executiveSummary"`
	DecisionTimeline         []TimelineEntry     `json:"decisionTimeline"`
	PrioritizedOptions       []PrioritizedOption `json:"prioritizedOptions"`
	ActionItems              []ActionItem        `json:"actionItems"`
	RiskMitigationPriorities []RiskMitigation    `json:"riskMitigationPriorities"`
	SuccessMetrics           []SuccessMetric     `json:"successMetrics"`
	NextSteps                []string            `json:"nextSteps"`
}
