package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"testview/internal/domain"
)

// Save writes the snapshot to the configured JSON output file, replacing any previous one.
func (s *JSONStorage) Save(snapshot *domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// write then rename so a reader never sees a half-written file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the last run's snapshot from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.Snapshot, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snapshot, nil
}
