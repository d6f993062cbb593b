package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MarkerStore persists per-user "last seen date" values in a small JSON file
// under the state directory, outside the record store. It survives across
// sessions on the same device.
type MarkerStore struct {
	path string
	mu   sync.Mutex
}

func NewMarkerStore(dir string) (*MarkerStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir %q: %w", dir, err)
	}
	return &MarkerStore{path: filepath.Join(dir, "day_markers.json")}, nil
}

func (s *MarkerStore) LastSeenDate(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	markers, err := s.load()
	if err != nil {
		return "", err
	}
	return markers[userID], nil
}

func (s *MarkerStore) SetLastSeenDate(userID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	markers, err := s.load()
	if err != nil {
		return err
	}
	markers[userID] = date
	return s.save(markers)
}

func (s *MarkerStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read markers: %w", err)
	}
	markers := map[string]string{}
	if err := json.Unmarshal(data, &markers); err != nil {
		return nil, fmt.Errorf("decode markers: %w", err)
	}
	return markers, nil
}

func (s *MarkerStore) save(markers map[string]string) error {
	data, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write markers: %w", err)
	}
	return nil
}
