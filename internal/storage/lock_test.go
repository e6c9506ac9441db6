package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func readLockPID(t *testing.T, dir string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, lockFileName))
	if err != nil {
		t.Fatalf("failed to read lock file: %v", err)
	}
	pid, err := strconv.Atoi(string(data))
	if err != nil {
		t.Fatalf("failed to parse PID from lock file: %v", err)
	}
	return pid
}

func TestDataLock_Acquire_Success(t *testing.T) {
	tmpDir := t.TempDir()

	if err := NewDataLock(tmpDir).Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pid := readLockPID(t, tmpDir); pid != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", pid, os.Getpid())
	}
}

func TestDataLock_Acquire_AlreadyLocked(t *testing.T) {
	tmpDir := t.TempDir()

	// Our own PID is always alive, so this simulates another running process.
	lockPath := filepath.Join(tmpDir, lockFileName)
	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}

	err := NewDataLock(tmpDir).Acquire()
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestDataLock_Acquire_ReclaimsStaleLocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "dead process", content: "99999999"},
		{name: "invalid content", content: "not-a-pid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			lockPath := filepath.Join(tmpDir, lockFileName)
			if err := os.WriteFile(lockPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to create lock file: %v", err)
			}

			if err := NewDataLock(tmpDir).Acquire(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pid := readLockPID(t, tmpDir); pid != os.Getpid() {
				t.Errorf("lock file PID mismatch: got %d, want %d", pid, os.Getpid())
			}
		})
	}
}

func TestDataLock_Acquire_RaceCondition(t *testing.T) {
	tmpDir := t.TempDir()

	const numGoroutines = 10
	var wg sync.WaitGroup
	var successCount atomic.Int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := NewDataLock(tmpDir).Acquire(); err == nil {
				successCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if count := successCount.Load(); count != 1 {
		t.Errorf("expected exactly 1 successful acquire, got %d", count)
	}
}

func TestDataLock_ReleaseAndReacquire(t *testing.T) {
	tmpDir := t.TempDir()
	lock := NewDataLock(tmpDir)

	if err := lock.Release(); err != nil {
		t.Errorf("releasing an unheld lock should not error: %v", err)
	}
	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, lockFileName)); !os.IsNotExist(err) {
		t.Error("lock file should be removed after release")
	}
	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to re-acquire lock after release: %v", err)
	}
}

func TestDataLock_IsLocked(t *testing.T) {
	tmpDir := t.TempDir()
	lock := NewDataLock(tmpDir)

	held, err := lock.IsLocked()
	if err != nil || held {
		t.Fatalf("expected unlocked, got held=%v err=%v", held, err)
	}

	if err := lock.Acquire(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	held, err = lock.IsLocked()
	if err != nil || !held {
		t.Fatalf("expected locked, got held=%v err=%v", held, err)
	}
}
