package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flushCmd = &cobra.Command{
	Use:   "flush <task-id>",
	Short: "Complete a task and flush it into history",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		task, err := resolveTask(a.planner.Tasks(), args[0])
		if err != nil {
			return err
		}

		if err := a.planner.Flush(ctx, task.ID); err != nil {
			return err
		}

		fmt.Printf("🚽 Flushed %q\n", task.Text)
		return nil
	}),
}

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Discard a task without writing history",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		task, err := resolveTask(a.planner.Tasks(), args[0])
		if err != nil {
			return err
		}

		if err := a.planner.Delete(ctx, task.ID); err != nil {
			return err
		}

		fmt.Printf("Removed %q\n", task.Text)
		return nil
	}),
}
