package commands

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aitbekovm/grind/internal/api"
	"github.com/aitbekovm/grind/internal/models"
)

// syncReminderBestEffort mirrors the task's deadline into the calendar
// after a task operation already succeeded. Every failure here is a
// secondary warning; the task operation is never reported as failed.
func syncReminderBestEffort(ctx context.Context, app *App, task models.Task) {
	if !app.Config.Calendar.Sync {
		return
	}
	if !task.HasDeadline() {
		return
	}

	granted, err := app.Sync.CheckPermissions(ctx)
	if err != nil {
		log.Printf("warning: calendar permission check failed: %v", err)
		return
	}
	if !granted {
		fmt.Println("⚠️  Calendar sync is on but permissions are not granted. Run 'grind calendar --request'.")
		return
	}

	ref, err := app.Sync.CreateReminder(ctx, task)
	if err != nil {
		if api.IsCalendarUnavailable(err) {
			log.Printf("calendar sync unavailable on this server, skipping reminder for task #%d", task.ID)
			return
		}
		var serverErr *api.ServerError
		if errors.As(err, &serverErr) {
			fmt.Printf("⚠️  Calendar is temporarily unavailable; reminder for task #%d was not created.\n", task.ID)
		}
		log.Printf("warning: calendar reminder for task #%d failed: %v", task.ID, err)
		return
	}

	app.Store.AttachCalendarEvent(task.ID, ref.EventID)
	fmt.Printf("🗓️  Calendar reminder synced (event %s)\n", ref.EventID)
}

// deleteReminderBestEffort removes a task's calendar event before the
// task itself is deleted. Failures are logged, never fatal.
func deleteReminderBestEffort(ctx context.Context, app *App, task models.Task) {
	if task.CalendarEventID == "" {
		return
	}
	if err := app.Sync.DeleteReminder(ctx, task); err != nil {
		log.Printf("warning: could not delete calendar reminder for task #%d: %v", task.ID, err)
	}
}
