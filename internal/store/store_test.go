package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/models"
)

// fakeBackend is a minimal in-memory task backend for store tests.
type fakeBackend struct {
	requests atomic.Int64
	nextID   int64
	tasks    map[int64]models.Task
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 42, tasks: map[int64]models.Task{}}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		out := []models.Task{}
		for _, t := range b.tasks {
			out = append(out, t)
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		var draft models.Draft
		json.NewDecoder(r.Body).Decode(&draft)

		task := models.Task{
			ID:          b.nextID,
			ClassName:   draft.ClassName,
			Assignment:  draft.Assignment,
			Description: draft.Description,
			Status:      draft.Status,
			Priority:    draft.Priority,
			Deadline:    draft.Deadline,
			CreatedAt:   time.Now(),
		}
		b.nextID++
		b.tasks[task.ID] = task
		json.NewEncoder(w).Encode(task)
	})

	mux.HandleFunc("PATCH /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		var body struct {
			Status models.Status `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		for id, t := range b.tasks {
			t.Status = body.Status
			t.Version++
			b.tasks[id] = t
			json.NewEncoder(w).Encode(t)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("DELETE /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func newTestStore(t *testing.T, handler http.Handler) (*TaskStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTaskStore(api.NewClient(srv.URL, "test-session"), nil), srv
}

func TestCreate_ReturnsCanonicalRecord(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	deadline := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	task, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
		Status:     models.StatusPending,
		Priority:   models.PriorityHigh,
		Deadline:   &deadline,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), task.ID)
	assert.Equal(t, models.StatusPending, task.Status)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(42), tasks[0].ID)
	assert.Equal(t, "CS101", tasks[0].ClassName)
}

func TestCreate_EmptyAssignmentNeverHitsNetwork(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	_, err := s.Create(context.Background(), models.Draft{ClassName: "CS101"})

	var validationErr *api.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "assignment", validationErr.Field)
	assert.Equal(t, int64(0), backend.requests.Load())
	assert.Empty(t, s.Tasks())
}

func TestCreate_EmptyClassNameNeverHitsNetwork(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	_, err := s.Create(context.Background(), models.Draft{Assignment: "HW1"})

	var validationErr *api.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "className", validationErr.Field)
	assert.Equal(t, int64(0), backend.requests.Load())
}

func TestCreate_InvalidEnumRejectedLocally(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	_, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
		Status:     "archived",
	})

	var validationErr *api.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, int64(0), backend.requests.Load())
}

func TestPatchStatus_ReplacesLocalEntryOnly(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	created, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
		Status:     models.StatusPending,
		Priority:   models.PriorityHigh,
	})
	require.NoError(t, err)

	updated, err := s.PatchStatus(context.Background(), created.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	// All other fields unchanged
	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "CS101", got.ClassName)
	assert.Equal(t, "HW1", got.Assignment)
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestDelete_RemovesFromLocalCollection(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	created, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), created.ID))

	_, ok := s.Get(created.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Tasks())
}

func TestDelete_RemoteFailureLeavesCollectionIntact(t *testing.T) {
	backend := newFakeBackend()
	mux := http.NewServeMux()
	mux.Handle("POST /tasks", backend.handler())
	mux.HandleFunc("DELETE /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s, _ := newTestStore(t, mux)

	created, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
	})
	require.NoError(t, err)

	err = s.Delete(context.Background(), created.ID)
	var serverErr *api.ServerError
	require.ErrorAs(t, err, &serverErr)

	_, ok := s.Get(created.ID)
	assert.True(t, ok, "failed remote delete must not remove the local entry")
}

func TestList_ReplacesCollectionWholesale(t *testing.T) {
	backend := newFakeBackend()
	backend.tasks[7] = models.Task{ID: 7, ClassName: "MATH200", Assignment: "PSet 3"}
	s, _ := newTestStore(t, backend.handler())

	tasks, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(7), tasks[0].ID)
}

func TestList_FailureLeavesCollectionUnchanged(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	created, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
	})
	require.NoError(t, err)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()
	s.client = api.NewClient(failing.URL, "test-session")

	_, err = s.List(context.Background())
	require.Error(t, err)

	_, ok := s.Get(created.ID)
	assert.True(t, ok, "failed list must not clobber the local collection")
}

func TestList_AuthFailureSurfacesAuthRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	s := NewTaskStore(api.NewClient(srv.URL, "stale"), nil)

	_, err := s.List(context.Background())
	assert.True(t, api.IsAuthRequired(err))
}

func TestUpdate_ConflictSurfacesConflictError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	s, _ := newTestStore(t, mux)

	_, err := s.Update(context.Background(), 42, models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
		Version:    3,
	})

	var conflict *api.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(42), conflict.TaskID)
}

func TestAttachCalendarEvent(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend.handler())

	created, err := s.Create(context.Background(), models.Draft{
		ClassName:  "CS101",
		Assignment: "HW1",
	})
	require.NoError(t, err)

	s.AttachCalendarEvent(created.ID, "evt_abc123")

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "evt_abc123", got.CalendarEventID)
}
