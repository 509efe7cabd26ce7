// Package store persists analysis reports as JSON documents so runs
// can be reviewed and compared later.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insightstream/strategy-ai/pkg/model"
)

// Kind labels what a stored report contains.
type Kind string

const (
	KindValidation Kind = "validation"
	KindRoadmap    Kind = "roadmap"
)

// Report is one persisted analysis result. Exactly one of Hypotheses
// or Plan is set, according to Kind.
type Report struct {
	ID         string             `json:"id"`
	Kind       Kind               `json:"kind"`
	Title      string             `json:"title"`
	CreatedAt  time.Time          `json:"created_at"`
	Context    string             `json:"context,omitempty"`
	Branches   []model.Branch     `json:"branches,omitempty"`
	Plan       *model.RoadmapPlan `json:"plan,omitempty"`
	Hypotheses []model.Hypothesis `json:"hypotheses,omitempty"`
}

// Store reads and writes reports under a single directory, one file
// per report.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".strategy-ai", "reports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory reports are stored in.
func (s *Store) Dir() string { return s.dir }

// Save writes the report, assigning ID and CreatedAt when unset, and
// returns the path written.
func (s *Store) Save(r *Report) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", r.CreatedAt.Format("20060102-150405"), r.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// Load reads one report by ID.
func (s *Store) Load(id string) (*Report, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), id+".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}
		var r Report
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", e.Name(), err)
		}
		return &r, nil
	}
	return nil, fmt.Errorf("report %s not found", id)
}

// List returns all stored reports, newest first. Unreadable files are
// skipped rather than failing the listing.
func (s *Store) List() ([]*Report, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	var reports []*Report
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var r Report
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		reports = append(reports, &r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}
