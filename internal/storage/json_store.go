package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type document struct {
	Version int               `json:"version"`
	Records map[string]string `json:"records"`
}

// JSONStore keeps all records in a single JSON document on disk.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitkit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.doc.Records[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Records[key] = value
	return s.save()
}

// Path returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple habitkit processes that share the same storage path at
//     the same time is not supported; the app-level file lock prevents it.
func (s *JSONStore) Path() string {
	return s.path
}
