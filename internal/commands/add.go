package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [task text]",
	Short: "Add a task to today's plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		startTime, endTime, importance, err := scheduleFlags(cmd)
		if err != nil {
			return err
		}

		task, err := a.planner.Add(ctx, strings.Join(args, " "), startTime, endTime, importance)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s\n", taskLine(task, false))
		return nil
	}),
}

func init() {
	addScheduleFlags(addCmd)
}
