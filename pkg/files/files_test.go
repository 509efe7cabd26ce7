package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightstream/strategy-ai/pkg/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCombineContents(t *testing.T) {
	t.Run("joins files with headers", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "first document\n")
		b := writeFile(t, dir, "b.md", "second document")

		combined, err := CombineContents([]string{a, b})
		require.NoError(t, err)
		assert.Contains(t, combined, "=== a.txt ===")
		assert.Contains(t, combined, "first document")
		assert.Contains(t, combined, "=== b.md ===")
		assert.Contains(t, combined, "second document")
	})

	t.Run("directory scan skips non-text files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "plan.md", "the plan")
		writeFile(t, dir, "image.png", "binary stuff")

		combined, err := CombineContents([]string{dir})
		require.NoError(t, err)
		assert.Contains(t, combined, "the plan")
		assert.NotContains(t, combined, "binary stuff")
	})

	t.Run("no readable documents", func(t *testing.T) {
		_, err := CombineContents([]string{t.TempDir()})
		assert.ErrorContains(t, err, "no readable documents")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := CombineContents([]string{"/does/not/exist.txt"})
		assert.Error(t, err)
	})
}

func TestLoadTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chen.txt", "interview with chen")
	writeFile(t, dir, "miller.txt", "interview with miller")

	transcripts, err := LoadTranscripts([]string{dir})
	require.NoError(t, err)
	require.Len(t, transcripts, 2)
	assert.Equal(t, 1, transcripts[0].ID)
	assert.Equal(t, "chen.txt", transcripts[0].Source)
	assert.Equal(t, "interview with chen", transcripts[0].Text)
	assert.Equal(t, 2, transcripts[1].ID)
}

func TestLoadHypotheses(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "hypotheses.yaml", `
hypotheses:
  - id: 7
    text: "Manual tagging is time consuming"
  - text: "Teams will pay for summaries"
`)
		hypotheses, err := LoadHypotheses(path)
		require.NoError(t, err)
		require.Len(t, hypotheses, 2)

		assert.Equal(t, 7, hypotheses[0].ID)
		assert.Equal(t, model.StatusUnverified, hypotheses[0].Status)

		// Missing ID assigned from position.
		assert.Equal(t, 2, hypotheses[1].ID)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "hypotheses.yaml", "hypotheses: []\n")
		_, err := LoadHypotheses(path)
		assert.ErrorContains(t, err, "no hypotheses")
	})

	t.Run("blank text rejected", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "hypotheses.yaml", "hypotheses:\n  - id: 1\n    text: \"  \"\n")
		_, err := LoadHypotheses(path)
		assert.ErrorContains(t, err, "has no text")
	})
}
