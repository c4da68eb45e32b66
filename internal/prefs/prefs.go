// Package prefs persists small user preferences in a JSON file.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/gallery/internal/logger"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

const fileVersion = "1.0"

// File is the on-disk layout of the preferences file.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore is a durable key/value store backed by a single JSON file.
type FileStore struct {
	path    string
	log     *logger.Logger
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// DefaultPath returns ~/.gallery/preferences.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".gallery", "preferences.json"), nil
}

// NewFileStore creates a FileStore and loads it from disk. A missing file
// starts empty. An unreadable file is logged and also starts empty; the next
// Put replaces it.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		log:     log.With("path", path),
		version: fileVersion,
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		var parseErr *galleryerrors.ParseError
		if !errors.As(err, &parseErr) {
			return nil, err
		}
		s.log.Error(err, "preferences file unreadable, starting empty")
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preferences from disk, replacing the in-memory values.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return galleryerrors.NewParseError(s.path, 0, err)
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Save writes the preferences to disk atomically.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked()
}

func (s *FileStore) saveLocked() error {
	file := File{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Put stores value under key and saves the file.
func (s *FileStore) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}

	s.log.Debug("saved preference " + key)
	return nil
}

// Delete removes key and saves the file. Deleting a missing key is a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.saveLocked()
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
