package domain

import (
	"strings"

	apperrors "task-manager.com/task-manager/internal/errors"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority converts a string into a Priority. Matching is
// case-insensitive; anything outside the closed set is a validation error.
func ParsePriority(value string) (Priority, error) {
	switch p := Priority(strings.ToLower(value)); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", apperrors.Validationf("invalid priority: %q (valid options: low, medium, high, urgent)", value)
}

// IsCritical reports whether the priority is high or urgent.
func (p Priority) IsCritical() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

func (p Priority) String() string {
	return string(p)
}
