package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aitbekovm/grind/internal/models"
	"github.com/aitbekovm/grind/internal/parser"
	"github.com/aitbekovm/grind/internal/store"
)

// Step represents the current step in the wizard
type Step int

const (
	StepClass Step = iota
	StepAssignment
	StepDescription
	StepDeadline
	StepPriority
	StepStatus
	StepSave
)

var priorityChoices = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
var statusChoices = []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted}

// FormModel is the TUI model for the add/edit task form
type FormModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	store *store.TaskStore

	// Choice selections
	priorityIdx int
	statusIdx   int

	// Edit mode
	isEditMode bool
	editTask   models.Task

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	savedTask     *models.Task
}

// NewFormModel creates a new task form model. prefilled keys: class,
// assignment, description, deadline, priority, status.
func NewFormModel(s *store.TaskStore, prefilled map[string]string) FormModel {
	inputs := make([]textinput.Model, 4)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Class input
	inputs[0].Placeholder = "Class name, e.g. CS101 (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	// Assignment input
	inputs[1].Placeholder = "Assignment title (required)"
	inputs[1].CharLimit = 200

	// Description input
	inputs[2].Placeholder = "Description (Enter to skip)"
	inputs[2].CharLimit = 500

	// Deadline input
	inputs[3].Placeholder = "Deadline: yyyy-mm-dd, 3 days, 2 weeks (Enter to skip)"
	inputs[3].CharLimit = 50

	m := FormModel{
		currentStep: StepClass,
		inputs:      inputs,
		store:       s,
		priorityIdx: 1, // medium
		statusIdx:   0, // pending
	}

	if v, ok := prefilled["class"]; ok {
		m.inputs[0].SetValue(v)
	}
	if v, ok := prefilled["assignment"]; ok {
		m.inputs[1].SetValue(v)
	}
	if v, ok := prefilled["description"]; ok {
		m.inputs[2].SetValue(v)
	}
	if v, ok := prefilled["deadline"]; ok {
		m.inputs[3].SetValue(v)
	}
	if v, ok := prefilled["priority"]; ok {
		for i, p := range priorityChoices {
			if string(p) == v {
				m.priorityIdx = i
			}
		}
	}
	if v, ok := prefilled["status"]; ok {
		for i, st := range statusChoices {
			if string(st) == v {
				m.statusIdx = i
			}
		}
	}

	return m
}

// NewEditFormModel creates a form pre-populated from an existing task.
func NewEditFormModel(s *store.TaskStore, task models.Task, prefilled map[string]string) FormModel {
	m := NewFormModel(s, prefilled)
	m.isEditMode = true
	m.editTask = task
	return m
}

// Init initializes the model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()

		case "shift+tab", "up":
			if m.currentStep > StepClass {
				m.currentStep--
				m.focusCurrent()
			}
			return m, nil

		case "left", "right":
			if m.currentStep == StepPriority || m.currentStep == StepStatus {
				return m.handleChoiceKeys(msg.String()), nil
			}
		}
	}

	// Route remaining keys to the focused text input
	if idx, ok := m.inputIndex(); ok {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current step and moves to the next one; on the
// save step it performs the create/update.
func (m FormModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepClass:
		if strings.TrimSpace(m.inputs[0].Value()) == "" {
			m.validationErr = "Class name is required"
			return m, nil
		}
	case StepAssignment:
		if strings.TrimSpace(m.inputs[1].Value()) == "" {
			m.validationErr = "Assignment title is required"
			return m, nil
		}
	case StepDeadline:
		if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
			if _, err := parser.ParseDeadline(v); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
		}
	case StepSave:
		return m.save()
	}

	m.currentStep++
	m.focusCurrent()
	return m, nil
}

// save sends the draft through the task store.
func (m FormModel) save() (tea.Model, tea.Cmd) {
	draft := models.Draft{
		ClassName:   strings.TrimSpace(m.inputs[0].Value()),
		Assignment:  strings.TrimSpace(m.inputs[1].Value()),
		Description: strings.TrimSpace(m.inputs[2].Value()),
		Status:      statusChoices[m.statusIdx],
		Priority:    priorityChoices[m.priorityIdx],
	}

	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		deadline, err := parser.ParseDeadline(v)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		draft.Deadline = deadline
	}

	ctx := context.Background()
	var task models.Task
	var err error
	if m.isEditMode {
		draft.Version = m.editTask.Version
		task, err = m.store.Update(ctx, m.editTask.ID, draft)
	} else {
		task, err = m.store.Create(ctx, draft)
	}

	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.savedTask = &task
	m.completed = true
	return m, tea.Quit
}

// handleChoiceKeys moves the priority/status selection.
func (m FormModel) handleChoiceKeys(key string) FormModel {
	delta := 1
	if key == "left" {
		delta = -1
	}

	switch m.currentStep {
	case StepPriority:
		m.priorityIdx = (m.priorityIdx + delta + len(priorityChoices)) % len(priorityChoices)
	case StepStatus:
		m.statusIdx = (m.statusIdx + delta + len(statusChoices)) % len(statusChoices)
	}
	return m
}

// inputIndex maps the current step to its text input, if it has one.
func (m FormModel) inputIndex() (int, bool) {
	return stepInput(m.currentStep)
}

func (m *FormModel) focusCurrent() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx, ok := m.inputIndex(); ok {
		m.inputs[idx].Focus()
	}
}

// View renders the form
func (m FormModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder

	if m.isEditMode {
		b.WriteString(titleStyle.Render(fmt.Sprintf("grind · edit task #%d", m.editTask.ID)))
	} else {
		b.WriteString(titleStyle.Render("grind · new assignment"))
	}
	b.WriteString("\n\n")

	steps := []struct {
		step  Step
		label string
	}{
		{StepClass, "Class"},
		{StepAssignment, "Assignment"},
		{StepDescription, "Description"},
		{StepDeadline, "Deadline"},
		{StepPriority, "Priority"},
		{StepStatus, "Status"},
	}

	for _, s := range steps {
		label := s.label
		if s.step == m.currentStep {
			label = "> " + label
			b.WriteString(labelStyle.Render(label))
		} else {
			b.WriteString(dimStyle.Render("  " + label))
		}
		b.WriteString("\n")

		switch s.step {
		case StepPriority:
			b.WriteString("  " + m.renderChoices(priorityLabels(), m.priorityIdx, s.step == m.currentStep))
		case StepStatus:
			b.WriteString("  " + m.renderChoices(statusLabels(), m.statusIdx, s.step == m.currentStep))
		default:
			if idx, ok := stepInput(s.step); ok {
				b.WriteString("  " + m.inputs[idx].View())
			}
		}
		b.WriteString("\n\n")
	}

	if m.currentStep == StepSave {
		b.WriteString(labelStyle.Render("> Press Enter to save"))
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter: next · up: back · ←/→: choose · esc: cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m FormModel) renderChoices(labels []string, selected int, active bool) string {
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == selected {
			if active {
				parts[i] = selStyle.Render("[" + l + "]")
			} else {
				parts[i] = "[" + l + "]"
			}
		} else {
			parts[i] = dimStyle.Render(" " + l + " ")
		}
	}
	return strings.Join(parts, " ")
}

func stepInput(s Step) (int, bool) {
	switch s {
	case StepClass:
		return 0, true
	case StepAssignment:
		return 1, true
	case StepDescription:
		return 2, true
	case StepDeadline:
		return 3, true
	}
	return 0, false
}

func priorityLabels() []string {
	out := make([]string, len(priorityChoices))
	for i, p := range priorityChoices {
		out[i] = string(p)
	}
	return out
}

func statusLabels() []string {
	out := make([]string, len(statusChoices))
	for i, s := range statusChoices {
		out[i] = string(s)
	}
	return out
}
