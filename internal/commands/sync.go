package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/api"
)

var syncCmd = &cobra.Command{
	Use:   "sync [task-id]",
	Short: "Sync a task's deadline to the calendar",
	Long: `Create or refresh the calendar reminder for a task's deadline.

The backend upserts the event by task id, so re-running sync after an
edit updates the existing reminder instead of duplicating it.`,
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
		if !task.HasDeadline() {
			fmt.Printf("Task #%d has no deadline, nothing to sync.\n", task.ID)
			return
		}

		ref, err := app.Sync.CreateReminder(ctx, task)
		if err != nil {
			if api.IsCalendarUnavailable(err) {
				fmt.Println("Calendar sync is not available on this server.")
				return
			}
			reportError(err)
			return
		}

		app.Store.AttachCalendarEvent(task.ID, ref.EventID)
		fmt.Printf("🗓️  Synced reminder for task #%d (event %s)\n", task.ID, ref.EventID)
	}),
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Check or request calendar permissions",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		ctx := context.Background()

		request, _ := cmd.Flags().GetBool("request")
		if request {
			authURL, err := app.Sync.RequestPermissions()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("Open this URL in your browser to grant calendar access:")
			fmt.Println("  " + authURL)
			return
		}

		granted, err := app.Sync.CheckPermissions(ctx)
		if err != nil {
			reportError(err)
			return
		}
		if granted {
			fmt.Println("✅ Calendar access is granted.")
		} else {
			fmt.Println("Calendar access is not granted. Run 'grind calendar --request'.")
		}
	}),
}

func init() {
	calendarCmd.Flags().Bool("request", false, "Print the authorization URL to grant access")
}
