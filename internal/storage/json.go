package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quocvuong92/tassist/internal/model"
)

type jsonRoster struct {
	Persons []adaptedPerson `json:"persons"`
}

// JSONStore keeps the roster in a single JSON document
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the data file location
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the roster. A missing file yields an empty roster.
func (s *JSONStore) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var roster jsonRoster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return toAddressBook(roster.Persons)
}

// Save writes the roster to a temporary file and renames it into place
func (s *JSONStore) Save(ab *model.AddressBook) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(jsonRoster{Persons: fromAddressBook(ab)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Close is a no-op
func (s *JSONStore) Close() error {
	return nil
}
