package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func TestSaveAndLoad(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	report := &Report{
		Kind:  KindValidation,
		Title: "Validation of 2 hypotheses",
		Hypotheses: []model.Hypothesis{
			{ID: 1, Text: "first", Status: model.StatusVerified, Confidence: 0.95},
		},
	}

	path, err := st.Save(report)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())

	loaded, err := st.Load(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Title, loaded.Title)
	assert.Equal(t, KindValidation, loaded.Kind)
	require.Len(t, loaded.Hypotheses, 1)
	assert.InDelta(t, 0.95, loaded.Hypotheses[0].Confidence, 1e-9)
}

func TestLoadMissing(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = st.Load("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestListNewestFirst(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	older := &Report{Kind: KindRoadmap, Title: "old", CreatedAt: time.Now().Add(-time.Hour).UTC()}
	newer := &Report{Kind: KindRoadmap, Title: "new", CreatedAt: time.Now().UTC()}
	_, err = st.Save(older)
	require.NoError(t, err)
	_, err = st.Save(newer)
	require.NoError(t, err)

	reports, err := st.List()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "new", reports[0].Title)
	assert.Equal(t, "old", reports[1].Title)
}

func TestListSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	require.NoError(t, err)

	_, err = st.Save(&Report{Kind: KindRoadmap, Title: "valid"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("not json"), 0o644))

	reports, err := st.List()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "valid", reports[0].Title)
}

func TestRoadmapRoundtrip(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	report := &Report{
		Kind:    KindRoadmap,
		Title:   "Roadmap for 6 branches",
		Context: "strategic context",
		Branches: []model.Branch{{
			Name: "A",
			Risk: &model.RiskAssessment{
				Dimensions: map[model.Dimension]model.DimensionResult{
					model.DimensionFinancial: {Severity: model.SeverityHigh, Analysis: "a"},
				},
				OverallLevel: model.SeverityHigh,
			},
		}},
		Plan: &model.RoadmapPlan{ExecutiveSummary: "summary"},
	}
	_, err = st.Save(report)
	require.NoError(t, err)

	loaded, err := st.Load(report.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Plan)
	assert.Equal(t, "summary", loaded.Plan.ExecutiveSummary)
	require.Len(t, loaded.Branches, 1)
	assert.Equal(t, model.SeverityHigh, loaded.Branches[0].Risk.Dimensions[model.DimensionFinancial].Severity)
}
