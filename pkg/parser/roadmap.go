package parser

import (
	"encoding/json"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// FallbackBranches is returned when branch identification produces no
// parseable list, so the pipeline always has options to assess.
func FallbackBranches() []model.Branch {
	return []model.Branch{
		{Name: "Aggressive Expansion", Description: "Rapid market expansion with high investment"},
		{Name: "Conservative Growth", Description: "Steady, measured growth with lower risk"},
		{Name: "Feature Focus", Description: "Prioritize feature development over expansion"},
	}
}

// ParseBranches extracts the identified decision branches. Unparseable
// output resolves to the canned fallback set rather than an error.
func ParseBranches(content string) ([]model.Branch, Method) {
	raw, method, ok := ExtractJSON(content)
	if !ok {
		return FallbackBranches(), MethodFallback
	}
	var branches []model.Branch
	if err := json.Unmarshal(raw, &branches); err != nil || len(branches) == 0 {
		return FallbackBranches(), MethodFallback
	}
	for i := range branches {
		branches[i].Risk = nil
	}
	return branches, method
}

// ParseRoadmap extracts a roadmap plan. ok is false when no plan could
// be parsed; the caller then builds the branch-derived fallback plan.
func ParseRoadmap(content string) (*model.RoadmapPlan, Method, bool) {
	raw, method, extracted := ExtractJSON(content)
	if !extracted {
		return nil, MethodFallback, false
	}
	var plan model.RoadmapPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, MethodFallback, false
	}
	return &plan, method, true
}
