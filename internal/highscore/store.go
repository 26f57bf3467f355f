// Package highscore persists the single best score and tracks it across sessions.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// Store reads and writes the persisted best score.
// Missing or unreadable-as-a-number data loads as 0 without an error.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the best score as a decimal number in a plain text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. The file need not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the best score. Only I/O failures other than a missing file are errors.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return parseScore(data), nil
}

// Save writes the best score, creating the parent directory if needed.
func (s *FileStore) Save(score int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil { //#nosec G306 -- score file is not secret
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// GdataStore keeps the best score in the platform's per-user data directory.
type GdataStore struct {
	m *gdata.Manager
}

const (
	gdataObject   = "skyhop"
	gdataProperty = "highscore"
)

// NewGdataStore opens the data directory for appName.
func NewGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open data directory: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// Load reads the best score.
func (s *GdataStore) Load() (int, error) {
	if !s.m.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, nil
	}
	data, err := s.m.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot load: %w", err)
	}
	return parseScore(data), nil
}

// Save writes the best score.
func (s *GdataStore) Save(score int) error {
	if err := s.m.SaveObjectProp(gdataObject, gdataProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("highscore: cannot save: %w", err)
	}
	return nil
}

// parseScore reads a non-negative decimal, treating anything else as 0.
func parseScore(data []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
