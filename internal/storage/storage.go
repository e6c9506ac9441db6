// Package storage persists the task list between runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablasso/watodo/internal/task"
)

// Backend names a storage implementation.
type Backend string

// Supported backends
const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Store loads and saves the ordered task list.
type Store interface {
	// Load returns the saved tasks in order, or none if nothing was saved yet.
	Load() ([]task.Task, error)
	// Save replaces the saved tasks.
	Save(tasks []task.Task) error
	Close() error
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendJSON, BackendSQLite:
		return Backend(s), nil
	case "":
		return BackendJSON, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (expected json or sqlite)", s)
	}
}

// Open creates the data directory if needed and opens the store for the
// backend inside it.
func Open(dataDir string, backend Backend) (Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	switch backend {
	case BackendJSON, "":
		return NewJSONStore(filepath.Join(dataDir, jsonFileName)), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, sqliteFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
