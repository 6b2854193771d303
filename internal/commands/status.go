package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status [task-id] [status]",
	Short: "Set a task's status",
	Long: `Set a task's status without touching its other fields.

Valid statuses: pending, in-progress, completed

Examples:
  grind status 42 in-progress
  grind status 42 completed`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		patchStatus(app, args[0], models.Status(args[1]))
	}),
}

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		patchStatus(app, args[0], models.StatusCompleted)
	}),
}

func patchStatus(app *App, rawID string, status models.Status) {
	taskID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Printf("Error: invalid task ID '%s'\n", rawID)
		return
	}

	task, err := app.Store.PatchStatus(context.Background(), taskID, status)
	if err != nil {
		reportError(err)
		return
	}

	switch task.Status {
	case models.StatusCompleted:
		fmt.Printf("✅ Marked task #%d as completed: %s\n", task.ID, task.Assignment)
	case models.StatusInProgress:
		fmt.Printf("🔨 Task #%d is now in progress: %s\n", task.ID, task.Assignment)
	default:
		fmt.Printf("↩️  Task #%d is back to pending: %s\n", task.ID, task.Assignment)
	}
}
