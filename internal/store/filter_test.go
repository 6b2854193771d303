package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aitbekovm/grind/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, ClassName: "CS101", Assignment: "HW1", Status: models.StatusCompleted, Priority: models.PriorityHigh},
		{ID: 2, ClassName: "cs101", Assignment: "HW2", Status: models.StatusPending, Priority: models.PriorityLow},
		{ID: 3, ClassName: "MATH200", Assignment: "PSet 3", Status: models.StatusPending, Priority: models.PriorityHigh},
	}
}

func TestFilter_EmptyFilterIsIdentity(t *testing.T) {
	tasks := sampleTasks()

	got := Filter(tasks, FilterOptions{})

	assert.Equal(t, tasks, got)
}

func TestFilter_IsIdempotent(t *testing.T) {
	tasks := sampleTasks()
	opts := FilterOptions{ClassName: "cs", Status: models.StatusPending}

	once := Filter(tasks, opts)
	twice := Filter(once, opts)

	assert.Equal(t, once, twice)
}

func TestFilter_NeverMutatesInput(t *testing.T) {
	tasks := sampleTasks()
	original := sampleTasks()

	Filter(tasks, FilterOptions{Status: models.StatusCompleted, Priority: models.PriorityHigh})

	assert.Equal(t, original, tasks)
}

func TestFilter_StatusExactMatch(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{Status: models.StatusCompleted})

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilter_ClassNameSubstringCaseInsensitive(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{ClassName: "CS1"})

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{
		ClassName: "cs101",
		Status:    models.StatusPending,
		Priority:  models.PriorityLow,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{Priority: models.PriorityHigh})

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleTasks(), FilterOptions{ClassName: "BIO"})

	assert.Empty(t, got)
}
