package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// Store keeps one JSON file per attempt under a single directory. Filenames
// embed the recording timestamp so a directory listing is already in
// chronological order.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a session directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the record to disk, assigning its ID from the recording
// timestamp and scenario if unset.
func (s *Store) Save(r *Record) error {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	if r.ID == "" {
		r.ID = fmt.Sprintf("%d-%s", r.RecordedAt.UnixNano(), r.ScenarioID)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}

	path := filepath.Join(s.dir, r.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session record: %w", err)
	}
	return nil
}

// History returns stored records newest first. limit <= 0 means no limit.
// Files that fail to parse are skipped rather than failing the whole query.
func (s *Store) History(limit int) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading session directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// LatestForScenario returns the most recent attempt at a scenario, or
// (nil, nil) when the scenario has never been attempted.
func (s *Store) LatestForScenario(scenarioID string) (*Record, error) {
	records, err := s.History(0)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ScenarioID == scenarioID {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Progress diffs the current scores against the previous attempt at the same
// scenario. Returns nil when this is the first attempt.
func (s *Store) Progress(scenarioID string, current scoring.FeedbackScores) (*scoring.ScoreDelta, error) {
	previous, err := s.LatestForScenario(scenarioID)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, nil
	}
	return current.Delta(&previous.Scores), nil
}
