package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitbekovm/grind/internal/models"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenAt(filepath.Join(t.TempDir(), "grind.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	deadline := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, ClassName: "CS101", Assignment: "HW1", Status: models.StatusPending, Priority: models.PriorityHigh, Deadline: &deadline},
		{ID: 2, ClassName: "MATH200", Assignment: "PSet 3", Status: models.StatusCompleted, Priority: models.PriorityLow},
	}

	require.NoError(t, cache.SaveSnapshot(tasks))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CS101", got[0].ClassName)
	assert.Equal(t, models.StatusPending, got[0].Status)
	require.NotNil(t, got[0].Deadline)
	assert.Equal(t, deadline.Unix(), got[0].Deadline.Unix())
	assert.Equal(t, int64(2), got[1].ID)
}

func TestSnapshotReplacesWholesale(t *testing.T) {
	cache := openTestCache(t)

	require.NoError(t, cache.SaveSnapshot([]models.Task{
		{ID: 1, ClassName: "CS101", Assignment: "HW1"},
		{ID: 2, ClassName: "CS101", Assignment: "HW2"},
	}))
	require.NoError(t, cache.SaveSnapshot([]models.Task{
		{ID: 3, ClassName: "MATH200", Assignment: "PSet 1"},
	}))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestSnapshotEmptyCollection(t *testing.T) {
	cache := openTestCache(t)

	require.NoError(t, cache.SaveSnapshot([]models.Task{
		{ID: 1, ClassName: "CS101", Assignment: "HW1"},
	}))
	require.NoError(t, cache.SaveSnapshot(nil))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)
	assert.Empty(t, got)
}
