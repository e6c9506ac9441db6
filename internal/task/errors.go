package task

import "errors"

var (
	// ErrDuplicateTask is returned when an operation would leave two equal
	// tasks in a list.
	ErrDuplicateTask = errors.New("this task already exists in the task list")

	// ErrTaskNotFound is returned when the targeted task is not in the list.
	ErrTaskNotFound = errors.New("the task could not be found in the task list")

	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidTask     = errors.New("invalid task")
)
