package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/models"
)

func taskWithDeadline(d time.Time) models.Task {
	return models.Task{
		ID:         42,
		ClassName:  "CS101",
		Assignment: "HW1",
		Priority:   models.PriorityHigh,
		Deadline:   &d,
	}
}

func TestBuildEventWindow_FixedMorningSlot(t *testing.T) {
	deadline := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)

	start, end, err := BuildEventWindow(&deadline)

	require.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 10, end.Hour())
	assert.Equal(t, start.Add(time.Hour), end)
}

func TestBuildEventWindow_DateOnlyDeadline(t *testing.T) {
	// Date-only input is normalized to local midnight upstream; the
	// window must still land on the same calendar date.
	deadline := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	start, _, err := BuildEventWindow(&deadline)

	require.NoError(t, err)
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 9, start.Hour())
}

func TestBuildEventWindow_MissingDeadline(t *testing.T) {
	_, _, err := BuildEventWindow(nil)
	assert.Error(t, err)

	var zero time.Time
	_, _, err = BuildEventWindow(&zero)
	assert.Error(t, err)
}

func TestBuildEventPayload(t *testing.T) {
	task := taskWithDeadline(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))
	task.Description = "chapters 1-3"

	payload, err := BuildEventPayload(task)

	require.NoError(t, err)
	assert.Equal(t, "📚 HW1", payload.Summary)
	assert.Contains(t, payload.Description, "Class: CS101")
	assert.Contains(t, payload.Description, "Assignment: HW1")
	assert.Contains(t, payload.Description, "Priority: high")
	assert.Contains(t, payload.Description, "chapters 1-3")
	assert.Equal(t, "11", payload.ColorID)
	assert.NotEmpty(t, payload.RequestID)

	require.Len(t, payload.Reminders, 3)
	assert.Equal(t, models.EventReminder{Method: "email", Minutes: 1440}, payload.Reminders[0])
	assert.Equal(t, models.EventReminder{Method: "email", Minutes: 10}, payload.Reminders[1])
	assert.Equal(t, models.EventReminder{Method: "popup", Minutes: 60}, payload.Reminders[2])
}

func TestBuildEventPayload_ColorByPriority(t *testing.T) {
	cases := map[models.Priority]string{
		models.PriorityHigh:   "11",
		models.PriorityMedium: "5",
		models.PriorityLow:    "10",
		models.Priority(""):   "1",
	}

	for priority, want := range cases {
		task := taskWithDeadline(time.Now().AddDate(0, 0, 1))
		task.Priority = priority

		payload, err := BuildEventPayload(task)
		require.NoError(t, err)
		assert.Equal(t, want, payload.ColorID)
	}
}

func TestBuildEventPayload_InvalidTask(t *testing.T) {
	noDeadline := models.Task{ID: 1, ClassName: "CS101", Assignment: "HW1"}
	_, err := BuildEventPayload(noDeadline)
	var invalidErr *InvalidTaskError
	assert.ErrorAs(t, err, &invalidErr)

	noName := taskWithDeadline(time.Now())
	noName.Assignment = "   "
	_, err = BuildEventPayload(noName)
	assert.ErrorAs(t, err, &invalidErr)
}

func TestCreateReminder_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(models.EventRef{EventID: "evt_123"})
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	ref, err := s.CreateReminder(context.Background(), taskWithDeadline(time.Now().AddDate(0, 0, 2)))

	require.NoError(t, err)
	assert.Equal(t, "evt_123", ref.EventID)
	assert.Equal(t, "/calendar/sync-task/42", gotPath)
}

func TestCreateReminder_FeatureAbsentIsDistinguishable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	_, err := s.CreateReminder(context.Background(), taskWithDeadline(time.Now()))

	require.Error(t, err)
	assert.True(t, api.IsCalendarUnavailable(err),
		"404 from the sync endpoint must read as feature-absent, not a hard failure")
}

func TestCreateReminder_InvalidTaskSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	_, err := s.CreateReminder(context.Background(), models.Task{ID: 1, Assignment: "HW1"})

	var invalidErr *InvalidTaskError
	assert.ErrorAs(t, err, &invalidErr)
	assert.False(t, called)
}

func TestDeleteReminder_NotImplementedIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	err := s.DeleteReminder(context.Background(), taskWithDeadline(time.Now()))

	assert.NoError(t, err)
}

func TestDeleteReminder_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	err := s.DeleteReminder(context.Background(), taskWithDeadline(time.Now()))

	var serverErr *api.ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestCheckPermissions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.PermissionsResponse{HasPermissions: true})
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	granted, err := s.CheckPermissions(context.Background())

	require.NoError(t, err)
	assert.True(t, granted)
}

func TestCheckPermissions_FeatureAbsentMeansNotGranted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewSynchronizer(api.NewClient(srv.URL, "session"))
	granted, err := s.CheckPermissions(context.Background())

	require.NoError(t, err)
	assert.False(t, granted)
}
