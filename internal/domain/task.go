package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "task-manager.com/task-manager/internal/errors"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000

	// Completed tasks become deletable only after this retention window.
	deletionRetention = 30 * 24 * time.Hour
)

// Task is the core entity of the system. Its fields are unexported so every
// mutation goes through a method that enforces the invariants.
type Task struct {
	id          uuid.UUID
	title       string
	description string
	priority    Priority
	status      Status
	assignedTo  *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
}

// NewTask builds a task in the todo state. Title and description are
// validated immediately.
func NewTask(title, description string, priority Priority) (*Task, error) {
	now := time.Now().UTC()
	t := &Task{
		id:        uuid.New(),
		priority:  priority,
		status:    StatusTodo,
		createdAt: now,
		updatedAt: now,
	}
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	return t, nil
}

// RehydrateTask reconstructs a task from persisted state. It bypasses
// validation: the repository is trusted to return what an entity once wrote.
func RehydrateTask(
	id uuid.UUID,
	title, description string,
	priority Priority,
	status Status,
	assignedTo *uuid.UUID,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) *Task {
	return &Task{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		completedAt: completedAt,
	}
}

func (t *Task) ID() uuid.UUID           { return t.id }
func (t *Task) Title() string           { return t.title }
func (t *Task) Description() string     { return t.description }
func (t *Task) Priority() Priority      { return t.priority }
func (t *Task) Status() Status          { return t.status }
func (t *Task) AssignedTo() *uuid.UUID  { return t.assignedTo }
func (t *Task) CreatedAt() time.Time    { return t.createdAt }
func (t *Task) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// SetTitle validates and sets the title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.Validationf("task title cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return apperrors.Validationf("task title cannot exceed %d characters", maxTitleLength)
	}
	t.title = title
	t.markUpdated()
	return nil
}

// SetDescription validates and sets the description.
func (t *Task) SetDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return apperrors.Validationf("task description cannot exceed %d characters", maxDescriptionLength)
	}
	t.description = strings.TrimSpace(description)
	t.markUpdated()
	return nil
}

// ChangePriority changes the priority. Completed tasks are frozen.
func (t *Task) ChangePriority(priority Priority) error {
	if t.IsCompleted() {
		return apperrors.ErrAlreadyCompleted.Withf("cannot change priority of completed task")
	}
	t.priority = priority
	t.markUpdated()
	return nil
}

// AssignTo assigns the task to a user. Terminal tasks cannot be assigned.
func (t *Task) AssignTo(userID uuid.UUID) error {
	if t.IsCompleted() {
		return apperrors.ErrNotAssignable.Withf("cannot assign completed task")
	}
	if t.IsCancelled() {
		return apperrors.ErrNotAssignable.Withf("cannot assign cancelled task")
	}
	t.assignedTo = &userID
	t.markUpdated()
	return nil
}

// Unassign clears the assignment. Always succeeds.
func (t *Task) Unassign() {
	t.assignedTo = nil
	t.markUpdated()
}

// Start moves the task from todo to in_progress.
func (t *Task) Start() error {
	if t.status != StatusTodo {
		return apperrors.ErrInvalidStateTransition.Withf("cannot start task from status %s", t.status)
	}
	t.status = StatusInProgress
	t.markUpdated()
	return nil
}

// Complete marks the task done and records the completion time.
func (t *Task) Complete() error {
	if t.status == StatusCancelled {
		return apperrors.ErrInvalidStateTransition.Withf("cannot complete a cancelled task")
	}
	if t.status == StatusDone {
		return apperrors.ErrAlreadyCompleted
	}
	now := time.Now().UTC()
	t.status = StatusDone
	t.completedAt = &now
	t.markUpdated()
	return nil
}

// Cancel cancels the task. Cancelling an already cancelled task is a no-op
// and leaves the update timestamp untouched.
func (t *Task) Cancel() error {
	if t.status == StatusDone {
		return apperrors.ErrInvalidStateTransition.Withf("cannot cancel a completed task")
	}
	if t.status == StatusCancelled {
		return nil
	}
	t.status = StatusCancelled
	t.markUpdated()
	return nil
}

// Reopen takes a done or cancelled task back to todo and clears the
// completion time.
func (t *Task) Reopen() error {
	if !t.status.IsTerminal() {
		return apperrors.ErrInvalidStateTransition.Withf("cannot reopen task with status %s", t.status)
	}
	t.status = StatusTodo
	t.completedAt = nil
	t.markUpdated()
	return nil
}

func (t *Task) IsCompleted() bool {
	return t.status == StatusDone
}

func (t *Task) IsCancelled() bool {
	return t.status == StatusCancelled
}

func (t *Task) IsAssigned() bool {
	return t.assignedTo != nil
}

func (t *Task) IsHighPriority() bool {
	return t.priority.IsCritical()
}

// CanBeDeleted reports whether the task is eligible for deletion: cancelled
// tasks always are, completed tasks only once the retention window has
// passed.
func (t *Task) CanBeDeleted() bool {
	if t.status == StatusCancelled {
		return true
	}
	if t.status == StatusDone && t.completedAt != nil {
		return time.Since(*t.completedAt) > deletionRetention
	}
	return false
}

func (t *Task) markUpdated() {
	t.updatedAt = time.Now().UTC()
}
