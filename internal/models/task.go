package models

import (
	"time"
)

// Status represents the current state of a task
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents one assignment owned by the authenticated user.
// The backend assigns ID at creation time and bumps Version on every
// mutation; the client sends Version back on full updates so stale
// writes are rejected instead of silently overwriting each other.
type Task struct {
	ID        int64     `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClassName   string   `gorm:"not null" json:"className"`
	Assignment  string   `gorm:"not null" json:"assignment"`
	Description string   `json:"description,omitempty"`
	Status      Status   `gorm:"default:pending" json:"status"`
	Priority    Priority `gorm:"default:medium" json:"priority"`

	// Deadline is the canonical full timestamp; date-only user input is
	// normalized to local midnight before it reaches the wire.
	Deadline *time.Time `json:"deadline,omitempty"`

	// CalendarEventID references the mirrored calendar event, set only
	// after a reminder sync succeeded. A task has at most one.
	CalendarEventID string `json:"calendarEventId,omitempty"`

	Version int64 `gorm:"default:0" json:"version"`
}

// HasDeadline reports whether the task carries a deadline to mirror.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil && !t.Deadline.IsZero()
}

// Draft holds the user-supplied fields for creating or replacing a task.
type Draft struct {
	ClassName   string     `json:"className"`
	Assignment  string     `json:"assignment"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Version     int64      `json:"version,omitempty"`
}

// NewDraft returns a draft with the default status and priority applied.
func NewDraft() Draft {
	return Draft{
		Status:   StatusPending,
		Priority: PriorityMedium,
	}
}
