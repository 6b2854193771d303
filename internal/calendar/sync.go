package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/models"
)

// Event window on the deadline's calendar date. One hour starting at
// 09:00 local time.
const (
	eventStartHour = 9
	eventEndHour   = 10
)

// Reminder offsets in minutes before the event start.
var defaultReminders = []models.EventReminder{
	{Method: "email", Minutes: 1440},
	{Method: "email", Minutes: 10},
	{Method: "popup", Minutes: 60},
}

// Google-style color ids keyed by task priority.
var priorityColors = map[models.Priority]string{
	models.PriorityHigh:   "11", // red
	models.PriorityMedium: "5",  // yellow
	models.PriorityLow:    "10", // green
}

const defaultColor = "1" // blue

// InvalidTaskError reports a task that cannot be mirrored into the
// calendar. No remote call is made when it is returned.
type InvalidTaskError struct {
	Reason string
}

func (e *InvalidTaskError) Error() string {
	return "task cannot be synced to calendar: " + e.Reason
}

// Synchronizer mirrors task deadlines into the external calendar,
// best-effort. It never mutates the task store; callers attach the
// returned event reference themselves, and they treat every error here
// as a warning, never as a failure of the task operation it accompanies.
type Synchronizer struct {
	client *api.Client
}

// NewSynchronizer creates a synchronizer over the given API client.
func NewSynchronizer(client *api.Client) *Synchronizer {
	return &Synchronizer{client: client}
}

// CreateReminder mirrors the task's deadline into the calendar and
// returns the backend's event reference.
func (s *Synchronizer) CreateReminder(ctx context.Context, task models.Task) (models.EventRef, error) {
	payload, err := BuildEventPayload(task)
	if err != nil {
		return models.EventRef{}, err
	}
	return s.client.SyncTaskEvent(ctx, task.ID, payload)
}

// UpdateReminder re-sends the event payload for an edited task. The
// backend upserts by task id, so this is the same wire call as
// CreateReminder.
func (s *Synchronizer) UpdateReminder(ctx context.Context, task models.Task) (models.EventRef, error) {
	return s.CreateReminder(ctx, task)
}

// DeleteReminder removes the task's calendar event. A missing sync
// feature (404/400) is a no-op success, not a failure.
func (s *Synchronizer) DeleteReminder(ctx context.Context, task models.Task) error {
	err := s.client.DeleteTaskEvent(ctx, task.ID)
	if err != nil && api.IsCalendarUnavailable(err) {
		return nil
	}
	return err
}

// CheckPermissions reports whether the external calendar has granted
// access. A 404/400 means the feature is absent and reads as "not
// granted" rather than an error.
func (s *Synchronizer) CheckPermissions(ctx context.Context) (bool, error) {
	resp, err := s.client.CheckCalendarPermissions(ctx)
	if err != nil {
		if api.IsCalendarUnavailable(err) {
			return false, nil
		}
		return false, err
	}
	return resp.HasPermissions, nil
}

// RequestPermissions returns the authorization URL the user must open to
// grant calendar access. The redirect flow completes out of band.
func (s *Synchronizer) RequestPermissions() (string, error) {
	return s.client.CalendarAuthURL()
}

// BuildEventPayload derives the calendar event for a task. It fails with
// InvalidTaskError when the task has no assignment name or no deadline;
// a bad deadline is surfaced, never silently replaced.
func BuildEventPayload(task models.Task) (models.EventPayload, error) {
	if strings.TrimSpace(task.Assignment) == "" {
		return models.EventPayload{}, &InvalidTaskError{Reason: "assignment name is empty"}
	}

	start, end, err := BuildEventWindow(task.Deadline)
	if err != nil {
		return models.EventPayload{}, &InvalidTaskError{Reason: err.Error()}
	}

	color, ok := priorityColors[task.Priority]
	if !ok {
		color = defaultColor
	}

	return models.EventPayload{
		RequestID:   uuid.NewString(),
		Summary:     "📚 " + task.Assignment,
		Description: eventDescription(task),
		StartTime:   start,
		EndTime:     end,
		ColorID:     color,
		Reminders:   defaultReminders,
	}, nil
}

// BuildEventWindow computes the fixed 09:00–10:00 local window on the
// deadline's calendar date.
func BuildEventWindow(deadline *time.Time) (start, end time.Time, err error) {
	if deadline == nil || deadline.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("task has no deadline")
	}

	d := deadline.Local()
	start = time.Date(d.Year(), d.Month(), d.Day(), eventStartHour, 0, 0, 0, time.Local)
	end = time.Date(d.Year(), d.Month(), d.Day(), eventEndHour, 0, 0, 0, time.Local)
	return start, end, nil
}

func eventDescription(task models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Class: %s\n", task.ClassName)
	fmt.Fprintf(&b, "Assignment: %s\n", task.Assignment)
	fmt.Fprintf(&b, "Priority: %s\n", task.Priority)
	if task.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", task.Description)
	}
	return b.String()
}
