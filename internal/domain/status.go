package domain

import (
	"strings"

	apperrors "task-manager.com/task-manager/internal/errors"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus converts a string into a Status. Matching is case-insensitive;
// anything outside the closed set is a validation error.
func ParseStatus(value string) (Status, error) {
	switch s := Status(strings.ToLower(value)); s {
	case StatusTodo, StatusInProgress, StatusDone, StatusCancelled:
		return s, nil
	}
	return "", apperrors.Validationf("invalid status: %q (valid options: todo, in_progress, done, cancelled)", value)
}

// IsTerminal reports whether no forward progress is possible without a reopen.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// IsActive reports whether the task is still being worked on.
func (s Status) IsActive() bool {
	return s == StatusTodo || s == StatusInProgress
}

func (s Status) String() string {
	return string(s)
}
