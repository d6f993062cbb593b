package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id> [new text]",
	Short: "Overwrite a task's text, times and importance",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		task, err := resolveTask(a.planner.Tasks(), args[0])
		if err != nil {
			return err
		}

		text := task.Text
		if len(args) > 1 {
			text = args[1]
			for _, part := range args[2:] {
				text += " " + part
			}
		}

		startTime, endTime, importance, err := scheduleFlags(cmd)
		if err != nil {
			return err
		}
		// Flags not given keep the current schedule.
		if startTime == nil && endTime == nil {
			startTime, endTime = task.StartTime, task.EndTime
		}
		if importance == nil {
			importance = task.Importance
		}

		if err := a.planner.Edit(ctx, task.ID, text, startTime, endTime, importance); err != nil {
			return err
		}

		fmt.Printf("Updated %s\n", shortID(task.ID))
		return nil
	}),
}

func init() {
	addScheduleFlags(editCmd)
}
