// Package events is the process-wide notification path from the logic layer
// to the presentation layer.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a notification value. The set of events is closed: only types in
// this package implement it.
type Event interface {
	EventID() uuid.UUID
	OccurredAt() time.Time
	event()
}

// Header carries the identity shared by every event.
type Header struct {
	ID   uuid.UUID
	Time time.Time
}

func newHeader() Header {
	return Header{ID: uuid.New(), Time: time.Now()}
}

// EventID returns the unique ID of the event.
func (h Header) EventID() uuid.UUID { return h.ID }

// OccurredAt returns when the event was created.
func (h Header) OccurredAt() time.Time { return h.Time }

func (Header) event() {}

// JumpToListRequest asks the presentation layer to move its selection to
// a position in the displayed task list.
type JumpToListRequest struct {
	Header
	TargetIndex int
}

// NewJumpToListRequest creates a JumpToListRequest for a 0-based index.
func NewJumpToListRequest(targetIndex int) JumpToListRequest {
	return JumpToListRequest{Header: newHeader(), TargetIndex: targetIndex}
}

// TaskListChanged signals that the displayed task list must be refreshed.
type TaskListChanged struct {
	Header
	Size int
}

// NewTaskListChanged creates a TaskListChanged event.
func NewTaskListChanged(size int) TaskListChanged {
	return TaskListChanged{Header: newHeader(), Size: size}
}

// ResultAvailable carries the message produced by a command.
type ResultAvailable struct {
	Header
	Message string
	Failed  bool
}

// NewResultAvailable creates a ResultAvailable event.
func NewResultAvailable(message string, failed bool) ResultAvailable {
	return ResultAvailable{Header: newHeader(), Message: message, Failed: failed}
}
