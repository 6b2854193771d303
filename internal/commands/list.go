package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/models"
	"github.com/aitbekovm/grind/internal/parser"
	"github.com/aitbekovm/grind/internal/store"
	"github.com/aitbekovm/grind/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List assignments",
	Long:    "List assignments with optional filters for class, status and priority",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		cached, _ := cmd.Flags().GetBool("cached")

		var tasks []models.Task
		if cached {
			if app.Cache == nil {
				fmt.Println("Offline cache is disabled in config.")
				return
			}
			var err error
			tasks, err = app.Cache.LoadSnapshot()
			if err != nil {
				fmt.Printf("Error reading cache: %v\n", err)
				return
			}
			fmt.Println("(showing cached snapshot, may be stale)")
		} else {
			var err error
			tasks, err = app.Store.List(context.Background())
			if err != nil {
				reportError(err)
				return
			}
		}

		class, _ := cmd.Flags().GetString("class")
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")
		tasks = store.Filter(tasks, store.FilterOptions{
			ClassName: class,
			Status:    models.Status(status),
			Priority:  models.Priority(priority),
		})

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive && !cached {
			if err := tui.RunListTUI(app.Store, tasks); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderTasksJSON(tasks)
			return
		}
		renderTasksTable(tasks)
	}),
}

// renderTasksJSON outputs tasks as JSON
func renderTasksJSON(tasks []models.Task) {
	type jsonTask struct {
		ID         int64           `json:"id"`
		ClassName  string          `json:"className"`
		Assignment string          `json:"assignment"`
		Status     models.Status   `json:"status"`
		Priority   models.Priority `json:"priority"`
		Deadline   *time.Time      `json:"deadline,omitempty"`
		CalendarID string          `json:"calendarEventId,omitempty"`
	}

	out := struct {
		Count int        `json:"count"`
		Tasks []jsonTask `json:"tasks"`
	}{Count: len(tasks)}

	for _, t := range tasks {
		out.Tasks = append(out.Tasks, jsonTask{
			ID:         t.ID,
			ClassName:  t.ClassName,
			Assignment: t.Assignment,
			Status:     t.Status,
			Priority:   t.Priority,
			Deadline:   t.Deadline,
			CalendarID: t.CalendarEventID,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// renderTasksTable outputs tasks as a formatted table
func renderTasksTable(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No assignments found. Use 'grind add \"title\" --class NAME' to create your first one.")
		return
	}

	fmt.Printf("%-4s %-12s %-35s %-12s %-8s %s\n", "ID", "STATUS", "ASSIGNMENT", "CLASS", "PRIORITY", "DEADLINE")
	fmt.Println(strings.Repeat("-", 92))

	for _, task := range tasks {
		assignment := task.Assignment
		if len(assignment) > 33 {
			assignment = assignment[:30] + "..."
		}

		class := task.ClassName
		if len(class) > 10 {
			class = class[:7] + "..."
		}

		deadline := ""
		if task.Deadline != nil {
			deadline = parser.FormatDeadline(task.Deadline)
		}

		fmt.Printf("%-4d %-12s %-35s %-12s %-8s %s\n",
			task.ID,
			task.Status,
			assignment,
			class,
			task.Priority,
			deadline)
	}
}

func init() {
	listCmd.Flags().StringP("class", "c", "", "Filter by class (substring, case-insensitive)")
	listCmd.Flags().StringP("status", "s", "", "Filter by status: pending, in-progress, completed")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: low, medium, high")
	listCmd.Flags().BoolP("interactive", "i", false, "Browse tasks in an interactive TUI")
	listCmd.Flags().Bool("json", false, "Output as JSON")
	listCmd.Flags().Bool("cached", false, "Show the offline snapshot instead of fetching")
}
