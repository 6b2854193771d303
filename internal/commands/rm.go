package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long: `Delete a task. If the task has a synced calendar reminder, the
reminder is removed first (best effort; a missing calendar feature is
not an error).`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		taskID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
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

		deleteReminderBestEffort(ctx, app, task)

		if err := app.Store.Delete(ctx, taskID); err != nil {
			reportError(err)
			return
		}

		fmt.Printf("🗑️  Deleted task #%d: %s\n", task.ID, task.Assignment)
	}),
}
