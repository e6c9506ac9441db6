// Package session opens a data directory for exclusive use by one watodo
// process.
package session

import (
	"errors"
	"fmt"

	"github.com/pablasso/watodo/internal/config"
	"github.com/pablasso/watodo/internal/events"
	"github.com/pablasso/watodo/internal/journal"
	"github.com/pablasso/watodo/internal/logic"
	"github.com/pablasso/watodo/internal/parser"
	"github.com/pablasso/watodo/internal/storage"
)

// Settings says which data directory and backend to open.
type Settings struct {
	DataDir string
	Backend storage.Backend
	// Bus receives the logic events. Defaults to events.Default().
	Bus *events.Bus
}

// Session holds the data lock, the store and the logic built on them.
type Session struct {
	Logic   *logic.Manager
	Journal *journal.Journal

	lock  *storage.DataLock
	store storage.Store
}

// Resolve loads the config and applies the non-empty overrides on top.
func Resolve(dataDir, backend string) (Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return Settings{}, err
	}

	s := Settings{DataDir: cfg.DataDir, Backend: cfg.Storage}
	if dataDir != "" {
		s.DataDir = dataDir
	}
	if backend != "" {
		b, err := storage.ParseBackend(backend)
		if err != nil {
			return Settings{}, err
		}
		s.Backend = b
	}
	return s, nil
}

// Open locks the data directory and loads its tasks.
func Open(s Settings) (*Session, error) {
	store, err := storage.Open(s.DataDir, s.Backend)
	if err != nil {
		return nil, err
	}

	lock := storage.NewDataLock(s.DataDir)
	if err := lock.Acquire(); err != nil {
		store.Close()
		return nil, err
	}

	j := journal.New(s.DataDir)
	m, err := logic.New(logic.Options{
		Parser:  parser.New(),
		Store:   store,
		Journal: j,
		Bus:     s.Bus,
	})
	if err != nil {
		lock.Release()
		store.Close()
		return nil, err
	}

	return &Session{Logic: m, Journal: j, lock: lock, store: store}, nil
}

// Close releases the store and the data lock.
func (s *Session) Close() error {
	var errs []error
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}
	if err := s.lock.Release(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
