package store

import (
	"context"
	"strings"
	"sync"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/models"
)

// Snapshotter persists the last fetched collection for offline reads.
// Snapshot failures are ignored; the cache is a convenience, not a
// source of truth.
type Snapshotter interface {
	SaveSnapshot(tasks []models.Task) error
}

// TaskStore owns the local task collection and keeps it consistent with
// the backend. The backend is the source of truth: every mutating call
// returns the canonical record, which replaces the local copy. Nothing
// else mutates the collection.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []models.Task
	client *api.Client
	cache  Snapshotter
}

// NewTaskStore creates a store backed by the given API client. cache may
// be nil when offline snapshots are disabled.
func NewTaskStore(client *api.Client, cache Snapshotter) *TaskStore {
	return &TaskStore{client: client, cache: cache}
}

// List fetches the full collection and replaces the local one wholesale.
// On failure the local collection is left unchanged.
func (s *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	if s.cache != nil {
		_ = s.cache.SaveSnapshot(tasks)
	}
	return s.Tasks(), nil
}

// Create validates the draft, sends it, and appends the canonical record.
func (s *TaskStore) Create(ctx context.Context, draft models.Draft) (models.Task, error) {
	if err := validateDraft(draft); err != nil {
		return models.Task{}, err
	}

	task, err := s.client.CreateTask(ctx, draft)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task, nil
}

// Update validates the draft, sends a full replacement, and swaps in the
// canonical record by id.
func (s *TaskStore) Update(ctx context.Context, id int64, draft models.Draft) (models.Task, error) {
	if err := validateDraft(draft); err != nil {
		return models.Task{}, err
	}

	task, err := s.client.UpdateTask(ctx, id, draft)
	if err != nil {
		return models.Task{}, err
	}

	s.replace(task)
	return task, nil
}

// PatchStatus sends only the status field and swaps in the canonical
// record by id.
func (s *TaskStore) PatchStatus(ctx context.Context, id int64, status models.Status) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, &api.ValidationError{Field: "status", Reason: "must be pending, in-progress, or completed"}
	}

	task, err := s.client.PatchTaskStatus(ctx, id, status)
	if err != nil {
		return models.Task{}, err
	}

	s.replace(task)
	return task, nil
}

// Delete removes the task remotely first, so a failed remote delete
// leaves the local collection intact.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// AttachCalendarEvent records a synced event reference on the local copy.
// The synchronizer never touches the store directly; the orchestrating
// command calls this after a successful sync.
func (s *TaskStore) AttachCalendarEvent(id int64, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].CalendarEventID = eventID
			return
		}
	}
}

// Tasks returns a snapshot copy of the local collection.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get looks up a task in the local collection.
func (s *TaskStore) Get(id int64) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// validateDraft enforces the required-field invariants before any
// network call is issued.
func validateDraft(draft models.Draft) error {
	if strings.TrimSpace(draft.ClassName) == "" {
		return &api.ValidationError{Field: "className", Reason: "must not be empty"}
	}
	if strings.TrimSpace(draft.Assignment) == "" {
		return &api.ValidationError{Field: "assignment", Reason: "must not be empty"}
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return &api.ValidationError{Field: "status", Reason: "must be pending, in-progress, or completed"}
	}
	if draft.Priority != "" && !draft.Priority.Valid() {
		return &api.ValidationError{Field: "priority", Reason: "must be low, medium, or high"}
	}
	return nil
}

func (s *TaskStore) replace(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
	// Not in the cache yet (e.g. patched before a List); keep it anyway.
	s.tasks = append(s.tasks, task)
}
