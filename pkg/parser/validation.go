package parser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// FlexID accepts a hypothesis ID written as a JSON number or a JSON
// string; models use both interchangeably.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	*f = FlexID(data)
	return nil
}

// Matches reports whether the ID refers to the given numeric hypothesis
// ID.
func (f FlexID) Matches(id int) bool {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return false
	}
	return n == id
}

// ValidationResult is one per-hypothesis record from a validation call.
// Unknown fields in the model output are ignored.
type ValidationResult struct {
	ID         FlexID           `json:"id"`
	Confidence float64          `json:"confidence"`
	Evidence   []model.Evidence `json:"evidence"`
}

// ParseValidation extracts the per-hypothesis evidence array from a
// validation response. An unparseable response yields no results, never
// an error; the caller leaves every hypothesis unverified.
func ParseValidation(content string) ([]ValidationResult, Method) {
	raw, method, ok := ExtractJSON(content)
	if !ok {
		return nil, MethodFallback
	}
	var results []ValidationResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, MethodFallback
	}
	return results, method
}

// ParseThemes extracts a JSON string array of themes. Anything
// unparseable legitimately signals "no themes" and yields an empty list.
func ParseThemes(content string) ([]string, Method) {
	raw, method, ok := ExtractJSON(content)
	if !ok {
		return []string{}, MethodFallback
	}
	var themes []string
	if err := json.Unmarshal(raw, &themes); err != nil {
		return []string{}, MethodFallback
	}
	return themes, method
}

// ParseInsights extracts the insight list from a transcript analysis
// response.
func ParseInsights(content string) ([]model.Insight, Method) {
	raw, method, ok := ExtractJSON(content)
	if !ok {
		return nil, MethodFallback
	}
	var parsed struct {
		Insights []model.Insight `json:"insights"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Some models return the bare array.
		var insights []model.Insight
		if err := json.Unmarshal(raw, &insights); err != nil {
			return nil, MethodFallback
		}
		return insights, method
	}
	return parsed.Insights, method
}
