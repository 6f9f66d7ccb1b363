package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Store persists performance analyses.
type Store interface {
	Save(run Run) error
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
	Close() error
}

// FileStore keeps every run in one JSON array on disk. Saves replace the
// file atomically, so a reader never sees a partial history.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the parent directory of path if needed.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Save appends run with the next free ID.
func (s *FileStore) Save(run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.read()
	if err != nil {
		return err
	}

	run.ID = 1
	for _, r := range runs {
		run.ID = max(run.ID, r.ID+1)
	}
	runs = append(runs, run)

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// LoadAll returns every stored run, oldest first.
func (s *FileStore) LoadAll() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.read()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(runs, func(a, b Run) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return runs, nil
}

// LoadLatest returns the most recent run, or nil when none is stored.
func (s *FileStore) LoadLatest() (*Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

// Close is a no-op; nothing is held open between calls.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() ([]Run, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Run{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []Run{}, nil
	}

	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal runs from %s: %w", s.path, err)
	}
	return runs, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
