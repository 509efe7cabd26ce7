// Package files gathers the local inputs the analyses run on: roadmap
// documents, interview transcripts, and hypothesis definitions.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// textExtensions are the file types treated as readable source material.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// CombineContents reads every given path (files, or directories scanned
// non-recursively for text files) and joins their contents with a
// per-file header so the model can attribute material to its source.
func CombineContents(paths []string) (string, error) {
	files, err := expand(paths)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no readable documents found (expected .txt or .md files)")
	}

	var b strings.Builder
	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "=== %s ===\n\n%s", filepath.Base(path), strings.TrimSpace(string(data)))
	}
	return b.String(), nil
}

// LoadTranscripts reads each path as one interview transcript, the
// filename serving as the source label.
func LoadTranscripts(paths []string) ([]model.Transcript, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no transcripts found (expected .txt or .md files)")
	}

	transcripts := make([]model.Transcript, 0, len(files))
	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		transcripts = append(transcripts, model.Transcript{
			ID:     i + 1,
			Source: filepath.Base(path),
			Text:   strings.TrimSpace(string(data)),
		})
	}
	return transcripts, nil
}

type hypothesisFile struct {
	Hypotheses []struct {
		ID   int    `yaml:"id"`
		Text string `yaml:"text"`
	} `yaml:"hypotheses"`
}

// LoadHypotheses reads hypothesis definitions from a YAML file. Missing
// IDs are assigned from position; every hypothesis starts unverified.
func LoadHypotheses(path string) ([]model.Hypothesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hypotheses file: %w", err)
	}

	var f hypothesisFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse hypotheses file: %w", err)
	}
	if len(f.Hypotheses) == 0 {
		return nil, fmt.Errorf("no hypotheses defined in %s", path)
	}

	hypotheses := make([]model.Hypothesis, 0, len(f.Hypotheses))
	for i, h := range f.Hypotheses {
		id := h.ID
		if id == 0 {
			id = i + 1
		}
		if strings.TrimSpace(h.Text) == "" {
			return nil, fmt.Errorf("hypothesis %d has no text", id)
		}
		hypotheses = append(hypotheses, model.Hypothesis{
			ID:     id,
			Text:   h.Text,
			Status: model.StatusUnverified,
		})
	}
	return hypotheses, nil
}

// expand resolves paths into a sorted list of readable text files.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		for _, e := range entries {
			if e.IsDir() || !textExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
