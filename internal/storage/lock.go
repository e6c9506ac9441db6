package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

const lockFileName = "watodo.lock"

// ErrLocked is returned when another live process holds the data lock.
var ErrLocked = errors.New("task data is in use by another watodo process")

// DataLock is a PID lock file that keeps a single process writing to a
// data directory at a time.
type DataLock struct {
	path string
}

// NewDataLock creates a lock for the given data directory.
func NewDataLock(dataDir string) *DataLock {
	return &DataLock{path: filepath.Join(dataDir, lockFileName)}
}

// Acquire takes the lock. A lock left behind by a dead process, or one
// whose content is not a PID, is reclaimed once.
func (l *DataLock) Acquire() error {
	err := l.create()
	if err == nil || !os.IsExist(err) {
		return err
	}

	held, err := l.IsLocked()
	if err != nil {
		return err
	}
	if held {
		pid, _ := l.holder()
		return fmt.Errorf("%w (PID %d)", ErrLocked, pid)
	}

	// IsLocked removed the stale file; one more try.
	if err := l.create(); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: lock taken during retry", ErrLocked)
		}
		return err
	}
	return nil
}

// Release removes the lock file. Releasing an unheld lock is a no-op.
func (l *DataLock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// IsLocked reports whether a live process holds the lock. Stale or invalid
// lock files are removed.
func (l *DataLock) IsLocked() (bool, error) {
	pid, err := l.holder()
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			return false, fmt.Errorf("failed to read lock file: %w", err)
		}
	} else if processExists(pid) {
		return true, nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return false, nil
}

// create writes our PID to a temp file and links it into place, so the
// lock file never exists without a PID in it. The raw os error is returned
// when the lock already exists so callers can test it with os.IsExist.
func (l *DataLock) create() error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), lockFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, writeErr := fmt.Fprintf(tmp, "%d", os.Getpid())
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		return fmt.Errorf("failed to write lock file: %w", errors.Join(writeErr, closeErr))
	}

	if err := os.Link(tmp.Name(), l.path); err != nil {
		if os.IsExist(err) {
			return err
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	return nil
}

func (l *DataLock) holder() (int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// processExists uses signal 0 to probe for a live process.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
