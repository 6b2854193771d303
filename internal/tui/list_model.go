package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aitbekovm/grind/internal/models"
	"github.com/aitbekovm/grind/internal/parser"
	"github.com/aitbekovm/grind/internal/store"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
)

// ListModel is the TUI model for browsing tasks
type ListModel struct {
	width  int
	height int

	store *store.TaskStore

	// Task data; all holds the unfiltered collection, tasks the visible one
	all          []models.Task
	tasks        []models.Task
	selectedTask int

	// UI state
	focus        Focus
	searchQuery  string
	statusNotice string
	errNotice    string

	// Pagination
	currentPage  int
	tasksPerPage int
}

// NewListModel creates a new list TUI model
func NewListModel(s *store.TaskStore, tasks []models.Task) ListModel {
	return ListModel{
		store:        s,
		all:          tasks,
		tasks:        tasks,
		tasksPerPage: 15,
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header(2) + pagination(1) + help(1) + notices(2) + margins
		availableHeight := m.height - 9
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.tasksPerPage = availableHeight
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if msg.String() == "esc" && m.searchQuery != "" {
				m.searchQuery = ""
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			return m.moveSelection(-1), nil

		case "down", "j":
			return m.moveSelection(1), nil

		case "left", "h":
			return m.turnPage(-1), nil

		case "right", "l":
			return m.turnPage(1), nil

		case "/":
			m.focus = FocusSearch
			return m, nil

		case "c":
			return m.cycleStatus()

		case "d":
			return m.deleteSelected()
		}
	}

	return m, nil
}

// handleSearchKeys edits the class-name filter query.
func (m ListModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.focus = FocusTable
		if msg.String() == "esc" {
			m.searchQuery = ""
		}
		m.applyFilter()
		return m, nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.applyFilter()
		}
		return m, nil

	default:
		if len(msg.String()) == 1 {
			m.searchQuery += msg.String()
			m.applyFilter()
		}
		return m, nil
	}
}

// applyFilter narrows the visible tasks by class-name substring.
func (m *ListModel) applyFilter() {
	m.tasks = store.Filter(m.all, store.FilterOptions{ClassName: m.searchQuery})
	m.selectedTask = 0
	m.currentPage = 0
}

// cycleStatus patches the selected task to the next status.
func (m ListModel) cycleStatus() (tea.Model, tea.Cmd) {
	task, ok := m.selected()
	if !ok {
		return m, nil
	}

	next := map[models.Status]models.Status{
		models.StatusPending:    models.StatusInProgress,
		models.StatusInProgress: models.StatusCompleted,
		models.StatusCompleted:  models.StatusPending,
	}[task.Status]

	updated, err := m.store.PatchStatus(context.Background(), task.ID, next)
	if err != nil {
		m.errNotice = err.Error()
		return m, nil
	}

	m.errNotice = ""
	m.statusNotice = fmt.Sprintf("task #%d → %s", updated.ID, updated.Status)
	m.reload()
	return m, nil
}

// deleteSelected deletes the selected task remotely, then locally.
func (m ListModel) deleteSelected() (tea.Model, tea.Cmd) {
	task, ok := m.selected()
	if !ok {
		return m, nil
	}

	if err := m.store.Delete(context.Background(), task.ID); err != nil {
		m.errNotice = err.Error()
		return m, nil
	}

	m.errNotice = ""
	m.statusNotice = fmt.Sprintf("deleted task #%d", task.ID)
	m.reload()
	if m.selectedTask >= len(m.tasks) && m.selectedTask > 0 {
		m.selectedTask--
	}
	return m, nil
}

// reload refreshes the visible slice from the store's local collection.
func (m *ListModel) reload() {
	m.all = m.store.Tasks()
	m.tasks = store.Filter(m.all, store.FilterOptions{ClassName: m.searchQuery})
}

func (m ListModel) selected() (models.Task, bool) {
	if m.selectedTask < 0 || m.selectedTask >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.selectedTask], true
}

func (m ListModel) moveSelection(delta int) ListModel {
	next := m.selectedTask + delta
	if next < 0 || next >= len(m.tasks) {
		return m
	}
	m.selectedTask = next
	m.currentPage = m.selectedTask / m.tasksPerPage
	return m
}

func (m ListModel) turnPage(delta int) ListModel {
	lastPage := 0
	if len(m.tasks) > 0 {
		lastPage = (len(m.tasks) - 1) / m.tasksPerPage
	}
	next := m.currentPage + delta
	if next < 0 || next > lastPage {
		return m
	}
	m.currentPage = next
	m.selectedTask = m.currentPage * m.tasksPerPage
	return m
}

// View renders the task browser
func (m ListModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder

	header := "grind · assignments"
	if m.searchQuery != "" || m.focus == FocusSearch {
		header += fmt.Sprintf("  /%s", m.searchQuery)
		if m.focus == FocusSearch {
			header += "▌"
		}
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("No assignments match."))
		b.WriteString("\n")
	} else {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-12s %-30s %-12s %-8s %s",
			"ID", "STATUS", "ASSIGNMENT", "CLASS", "PRIORITY", "DEADLINE")))
		b.WriteString("\n")

		start := m.currentPage * m.tasksPerPage
		end := start + m.tasksPerPage
		if end > len(m.tasks) {
			end = len(m.tasks)
		}

		for i := start; i < end; i++ {
			task := m.tasks[i]
			deadline := ""
			if task.Deadline != nil {
				deadline = parser.FormatDeadline(task.Deadline)
			}

			row := fmt.Sprintf("%-4d %-12s %-30s %-12s %-8s %s",
				task.ID, task.Status, truncate(task.Assignment, 28),
				truncate(task.ClassName, 10), task.Priority, deadline)

			if i == m.selectedTask {
				b.WriteString(selectedStyle.Render("▶ " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}

		totalPages := (len(m.tasks)-1)/m.tasksPerPage + 1
		if totalPages > 1 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("\npage %d/%d", m.currentPage+1, totalPages)))
			b.WriteString("\n")
		}
	}

	if m.errNotice != "" {
		b.WriteString(errStyle.Render("\n✗ " + m.errNotice))
		b.WriteString("\n")
	} else if m.statusNotice != "" {
		b.WriteString(okStyle.Render("\n✓ " + m.statusNotice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\nj/k: move · h/l: page · c: cycle status · d: delete · /: filter · q: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
