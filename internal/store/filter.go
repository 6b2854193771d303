package store

import (
	"strings"

	"github.com/aitbekovm/grind/internal/models"
)

// FilterOptions holds the client-side filter predicates. Empty fields
// match everything.
type FilterOptions struct {
	ClassName string
	Status    models.Status
	Priority  models.Priority
}

// Filter applies the predicates to tasks and returns a new slice in the
// original order. ClassName is a case-insensitive substring match;
// Status and Priority are exact matches. All predicates are ANDed.
// The input slice is never mutated.
func Filter(tasks []models.Task, opts FilterOptions) []models.Task {
	className := strings.ToLower(strings.TrimSpace(opts.ClassName))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if className != "" && !strings.Contains(strings.ToLower(t.ClassName), className) {
			continue
		}
		if opts.Status != "" && t.Status != opts.Status {
			continue
		}
		if opts.Priority != "" && t.Priority != opts.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}
