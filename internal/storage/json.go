package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablasso/watodo/internal/task"
)

const (
	jsonFileName      = "tasks.json"
	jsonFormatVersion = 1
)

type jsonDocument struct {
	Version int         `json:"version"`
	Tasks   []task.Task `json:"tasks"`
}

// JSONStore keeps the task list in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file the store writes to.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(s.path), err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(s.path), err)
	}
	if doc.Version > jsonFormatVersion {
		return nil, fmt.Errorf("%s has unsupported version %d", filepath.Base(s.path), doc.Version)
	}
	return doc.Tasks, nil
}

// Save writes the file through a temp file and rename so a crash never
// leaves a partial file behind.
func (s *JSONStore) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(jsonDocument{Version: jsonFormatVersion, Tasks: tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
