// Package state persists provision audit records as a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RecordStore using a flat JSON file keyed by binary
// path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ProvisionRecord
}

// NewStore creates a RecordStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ProvisionRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path comes from the kiosk settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read provision record store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal provision record store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal provision record store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for provision record store")
	}

	//nolint:gosec // audit records are not sensitive
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write provision record store")
	}

	return nil
}

// Get retrieves the record for a given binary path, nil if absent.
func (s *Store) Get(binary string) (*domain.ProvisionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[binary]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, overwriting any previous one for the same binary.
func (s *Store) Put(record domain.ProvisionRecord) error {
	s.mu.Lock()
	s.cache[record.Binary] = record
	s.mu.Unlock()

	return s.save()
}
