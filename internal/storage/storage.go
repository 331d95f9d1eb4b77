package storage

import (
	"testview/internal/config"
	"testview/internal/domain"
)

// Storage keeps the snapshot of the last run (e.g. for the interactive viewer).
// Every Save overwrites the previous snapshot.
type Storage interface {
	Save(snapshot *domain.Snapshot) error
	Load() (*domain.Snapshot, error)
}

// JSONStorage stores the snapshot in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
