// Package cas persists the outcome of previous bundles, keyed by export target.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/rjs/internal/core/domain"
	"go.trai.ch/rjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
// A missing or empty file yields an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read build info store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal build info store"), "path", s.path)
	}

	return nil
}

// save writes the cache through a temporary file so a failed write never
// truncates the previous state. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build info store")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create build info store")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write build info store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write build info store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to replace build info store")
	}

	return nil
}

// Get retrieves the build info recorded for exportTarget, or nil if there is none.
func (s *Store) Get(exportTarget string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[exportTarget]
	if !ok {
		return nil, nil
	}
	info.Packages = slices.Clone(info.Packages)
	return &info, nil
}

// Put stores the build info, replacing any previous entry for the same export target.
func (s *Store) Put(info domain.BuildInfo) error {
	if info.ExportTarget == "" {
		return zerr.New("build info has no export target")
	}
	info.Packages = slices.Clone(info.Packages)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[info.ExportTarget] = info
	return s.save()
}
