package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bartekus/planscan/internal/projection"
	"github.com/bartekus/planscan/internal/roadmap"
)

// Snapshot is a saved scan result.
// Matches <state-dir>/last-scan.json.
type Snapshot struct {
	Root          string                       `json:"root"`
	ParsedAt      time.Time                    `json:"parsed_at"`
	Documentation roadmap.ProjectDocumentation `json:"documentation"`
}

// Store handles reading and writing scan snapshots.
type Store struct {
	baseDir string
}

// NewStore creates a store at the given base directory (e.g. .planscan).
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string { return s.baseDir }

func (s *Store) lastScanPath() string {
	return filepath.Join(s.baseDir, "last-scan.json")
}

// ReadLast loads the last saved snapshot. A missing file is a clean state
// and yields (nil, nil).
func (s *Store) ReadLast() (*Snapshot, error) {
	path := s.lastScanPath()
	f, err := os.Open(path) //nolint:gosec // path derived from the state dir
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last scan file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var snap Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding last scan: %w", err)
	}
	return &snap, nil
}

// WriteLast saves the snapshot atomically.
func (s *Store) WriteLast(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := projection.AtomicWrite(s.lastScanPath(), data); err != nil {
		return fmt.Errorf("writing last scan: %w", err)
	}
	return nil
}

// Reset clears the state directory.
func (s *Store) Reset() error {
	return os.RemoveAll(s.baseDir)
}
