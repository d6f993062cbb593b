package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flush-planner/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show today's tasks, ordered by end time",
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		tasks := a.planner.Tasks()
		if len(tasks) == 0 {
			fmt.Println(mutedStyle.Render("No tasks for today. Add one with 'flushplanner add'."))
			return nil
		}

		now := time.Now()
		fmt.Println(headingStyle.Render(fmt.Sprintf("Today's plan (%d tasks)", len(tasks))))
		for _, task := range tasks {
			fmt.Println(taskLine(task, isOverdue(task, now)))
		}
		return nil
	}),
}

func isOverdue(task model.Task, now time.Time) bool {
	if task.EndTime == nil || task.Completed {
		return false
	}
	clock, err := model.ParseClock(*task.EndTime)
	if err != nil {
		return false
	}
	return now.After(clock.At(now))
}
