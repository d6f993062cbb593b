package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task's completed mark without archiving it",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		task, err := resolveTask(a.planner.Tasks(), args[0])
		if err != nil {
			return err
		}

		if err := a.planner.Toggle(ctx, task.ID); err != nil {
			return err
		}

		if task.Completed {
			fmt.Printf("Reopened %s\n", shortID(task.ID))
		} else {
			fmt.Printf("Marked %s done. Flush it to archive.\n", shortID(task.ID))
		}
		return nil
	}),
}
