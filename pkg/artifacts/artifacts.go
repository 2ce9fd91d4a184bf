// Package artifacts collects run outputs (charts, predictions, reports)
// under a run-scoped directory and optionally mirrors them to S3.
package artifacts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store writes artifacts for one run. Every run gets a fresh id so
// repeated runs never overwrite each other.
type Store struct {
	runID string
	dir   string
	files []string
	log   *slog.Logger
}

// NewStore creates the run directory under baseDir.
func NewStore(baseDir string, log *slog.Logger) (*Store, error) {
	runID := fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])
	dir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}
	return &Store{runID: runID, dir: dir, log: log}, nil
}

// RunID returns the run identifier.
func (s *Store) RunID() string {
	return s.runID
}

// Dir returns the run directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path reserves a file name inside the run directory and tracks it for
// upload. The file itself is written by the caller.
func (s *Store) Path(name string) string {
	p := filepath.Join(s.dir, name)
	s.files = append(s.files, p)
	return p
}

// WriteFile writes one artifact directly and tracks it.
func (s *Store) WriteFile(name string, data []byte) error {
	p := s.Path(name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", name, err)
	}
	s.log.Info("artifact written", "path", p)
	return nil
}

// Files returns the tracked artifact paths.
func (s *Store) Files() []string {
	return s.files
}
