package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aitbekovm/grind/internal/models"
	"github.com/aitbekovm/grind/internal/store"
)

// RunAddTaskTUI starts the interactive add form and returns the created
// task, or nil when the user cancelled.
func RunAddTaskTUI(s *store.TaskStore, prefilled map[string]string) (*models.Task, error) {
	model := NewFormModel(s, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(FormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task creation cancelled.")
			return nil, nil
		}
		if m.err != nil {
			return nil, m.err
		}
		if m.completed && m.savedTask != nil {
			fmt.Printf("✅ New task \"%s\" added - ID: %d\n", m.savedTask.Assignment, m.savedTask.ID)
			return m.savedTask, nil
		}
	}

	return nil, nil
}

// RunEditTaskTUI starts the edit form for an existing task and returns
// the updated task, or nil when the user cancelled.
func RunEditTaskTUI(s *store.TaskStore, task models.Task, prefilled map[string]string) (*models.Task, error) {
	model := NewEditFormModel(s, task, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := finalModel.(FormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Edit cancelled.")
			return nil, nil
		}
		if m.err != nil {
			return nil, m.err
		}
		if m.completed && m.savedTask != nil {
			fmt.Printf("✅ Task #%d updated: %s\n", m.savedTask.ID, m.savedTask.Assignment)
			return m.savedTask, nil
		}
	}

	return nil, nil
}

// RunListTUI starts the interactive task browser.
func RunListTUI(s *store.TaskStore, tasks []models.Task) error {
	model := NewListModel(s, tasks)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
