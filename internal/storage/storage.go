package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrNotFound    = errors.New("storage: record not found")
	ErrInvalidJSON = errors.New("storage: value is not valid JSON")
)

// KV is a key-value store of raw JSON records
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// FileKV keeps every record in a single JSON object on disk
type FileKV struct {
	mu      sync.RWMutex
	records map[string]json.RawMessage
	file    string
}

// NewFileKV creates a file-backed store, loading the file if it exists
func NewFileKV(filePath string) (*FileKV, error) {
	s := &FileKV{
		records: make(map[string]json.RawMessage),
		file:    filePath,
	}

	// Load existing data if file exists. A file that no longer parses is
	// moved aside so the shop falls back to its defaults instead of failing.
	if _, err := os.Stat(filePath); err == nil {
		if err := s.Load(); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
				return nil, fmt.Errorf("failed to load storage: %w", err)
			}
			if err := os.Rename(filePath, filePath+".corrupt"); err != nil {
				return nil, fmt.Errorf("failed to move corrupt storage aside: %w", err)
			}
		}
	}

	return s, nil
}

// Get returns the raw record stored under key
func (s *FileKV) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put overwrites the record under key and saves the file
func (s *FileKV) Put(key string, value []byte) error {
	if !json.Valid(value) {
		return ErrInvalidJSON
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = json.RawMessage(append([]byte(nil), value...))
	return s.save()
}

// Delete removes the record under key
func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)
	return s.save()
}

// save writes the records to a temp file and renames it over the old one
func (s *FileKV) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := s.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return os.Rename(tmp, s.file)
}

// Load loads records from file
func (s *FileKV) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		s.records = make(map[string]json.RawMessage)
		return nil
	}

	records := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	s.records = records

	return nil
}
