package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aitbekovm/grind/internal/models"
	"github.com/aitbekovm/grind/internal/parser"
	"github.com/aitbekovm/grind/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [assignment title]",
	Short: "Add a new assignment",
	Long: `Add a new assignment for a class.

Modes:
  Interactive: grind add -i (or just 'grind add' with no arguments)
  Quick: grind add "HW1" --class CS101 (with optional flags)

Flags cover class, description, status, priority and deadline.
Deadline formats: yyyy-mm-dd, dd/mm/yyyy, RFC3339, X days, X hours, X weeks.`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(app, cmd, args)
			return
		}

		draft := models.NewDraft()
		draft.Assignment = strings.Join(args, " ")
		draft.ClassName, _ = cmd.Flags().GetString("class")
		draft.Description, _ = cmd.Flags().GetString("desc")

		if status, _ := cmd.Flags().GetString("status"); status != "" {
			draft.Status = models.Status(status)
		}
		if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
			draft.Priority = models.Priority(priority)
		}
		if deadline, _ := cmd.Flags().GetString("deadline"); deadline != "" {
			parsed, err := parser.ParseDeadline(deadline)
			if err != nil {
				fmt.Printf("Error parsing deadline: %v\n", err)
				return
			}
			draft.Deadline = parsed
		}

		ctx := context.Background()
		task, err := app.Store.Create(ctx, draft)
		if err != nil {
			reportError(err)
			return
		}

		// Success message
		fmt.Printf("✅ Created task #%d: %s\n", task.ID, task.Assignment)
		fmt.Printf("  Class: %s\n", task.ClassName)
		if task.Priority != "" {
			fmt.Printf("  Priority: %s\n", task.Priority)
		}
		if task.Deadline != nil {
			fmt.Printf("  Deadline: %s\n", parser.FormatDeadline(task.Deadline))
		}

		syncReminderBestEffort(ctx, app, task)
	}),
}

// runInteractiveAdd starts the add form TUI
func runInteractiveAdd(app *App, cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["assignment"] = strings.Join(args, " ")
	}
	if class, _ := cmd.Flags().GetString("class"); class != "" {
		prefilled["class"] = class
	}
	if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
		prefilled["description"] = desc
	}
	if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
		prefilled["priority"] = priority
	}
	if deadline, _ := cmd.Flags().GetString("deadline"); deadline != "" {
		prefilled["deadline"] = deadline
	}

	task, err := tui.RunAddTaskTUI(app.Store, prefilled)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if task != nil {
		syncReminderBestEffort(context.Background(), app, *task)
	}
}

func init() {
	// Add flags to the add command
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("class", "c", "", "Class name (required unless interactive)")
	addCmd.Flags().StringP("desc", "d", "", "Description")
	addCmd.Flags().StringP("status", "s", "", "Status: pending, in-progress, completed")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high")
	addCmd.Flags().StringP("deadline", "", "", "Deadline: yyyy-mm-dd, dd/mm/yyyy, X days, X hours, X weeks")
}
