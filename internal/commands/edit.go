package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/parser"
	"github.com/aitbekovm/grind/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <task_id>",
	Short: "Edit an existing assignment",
	Long: `Edit an existing assignment in interactive mode.

Opens the same form as 'grind add' with all fields pre-populated from the
current task data. Saving sends a full update; if someone else edited the
task in the meantime the save is rejected and you are asked to re-fetch.

Usage:
  grind edit 42    - Edit task with ID 42`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: Invalid task ID '%s'. Please provide a valid numeric ID.\n", args[0])
			return
		}

		ctx := context.Background()
		if _, err := app.Store.List(ctx); err != nil {
			reportError(err)
			return
		}

		task, ok := app.Store.Get(taskID)
		if !ok {
			fmt.Printf("Error: Task #%d not found.\n", taskID)
			return
		}

		prefilled := map[string]string{
			"class":       task.ClassName,
			"assignment":  task.Assignment,
			"description": task.Description,
			"status":      string(task.Status),
			"priority":    string(task.Priority),
		}
		if task.Deadline != nil {
			prefilled["deadline"] = task.Deadline.Format("2006-01-02")
		}

		updated, err := tui.RunEditTaskTUI(app.Store, task, prefilled)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if updated == nil {
			return
		}

		if updated.Deadline != nil {
			fmt.Printf("  Deadline: %s\n", parser.FormatDeadline(updated.Deadline))
			syncReminderBestEffort(ctx, app, *updated)
		} else if task.CalendarEventID != "" {
			// Deadline was removed; drop the stale reminder.
			deleteReminderBestEffort(ctx, app, task)
		}
	}),
}
