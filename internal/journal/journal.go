// Package journal appends a JSON Lines record of every command the logic
// layer runs.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileName = "journal.log"

// Entry kinds
const (
	EventCommandExecuted = "command_executed"
	EventCommandUndone   = "command_undone"
	EventCommandFailed   = "command_failed"
	EventNothingToUndo   = "nothing_to_undo"
)

// Entry is a single journal line.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Data      map[string]any `json:"data,omitempty"`
}

// Recorder receives the journal entries the logic layer produces.
type Recorder interface {
	CommandExecuted(command, message string) error
	CommandUndone(message string) error
	CommandFailed(input string, err error) error
	NothingToUndo() error
}

// Journal writes entries to a file in the data directory.
type Journal struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates a journal writing to journal.log in dataDir.
func New(dataDir string) *Journal {
	return &Journal{
		path: filepath.Join(dataDir, fileName),
		now:  time.Now,
	}
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// Log appends one entry.
func (j *Journal) Log(event string, data map[string]any) error {
	line, err := json.Marshal(Entry{Timestamp: j.now(), Event: event, Data: data})
	if err != nil {
		return err
	}
	line = append(line, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

// CommandExecuted logs a successful command.
func (j *Journal) CommandExecuted(command, message string) error {
	return j.Log(EventCommandExecuted, map[string]any{
		"command": command,
		"message": message,
	})
}

// CommandUndone logs a successful undo.
func (j *Journal) CommandUndone(message string) error {
	return j.Log(EventCommandUndone, map[string]any{
		"message": message,
	})
}

// CommandFailed logs a command that could not be parsed or applied.
func (j *Journal) CommandFailed(input string, err error) error {
	return j.Log(EventCommandFailed, map[string]any{
		"input": input,
		"error": err.Error(),
	})
}

// NothingToUndo logs an undo with an empty history.
func (j *Journal) NothingToUndo() error {
	return j.Log(EventNothingToUndo, nil)
}

// Discard is a Recorder that drops every entry.
type Discard struct{}

func (Discard) CommandExecuted(string, string) error { return nil }
func (Discard) CommandUndone(string) error           { return nil }
func (Discard) CommandFailed(string, error) error    { return nil }
func (Discard) NothingToUndo() error                 { return nil }
