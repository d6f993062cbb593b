package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flush-planner/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Analytics over the archived history",
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		for a.history.HasMore() {
			if err := a.history.LoadMore(ctx); err != nil {
				return err
			}
		}
		entries := a.history.Entries()
		if len(entries) == 0 {
			fmt.Println(mutedStyle.Render("No history yet, nothing to analyze."))
			return nil
		}

		summary := stats.Calculate(entries, time.Now())

		fmt.Println(headingStyle.Render("History stats"))
		fmt.Printf("Total: %d   Completed: %d   Unfinished: %d   Completion rate: %d%%\n",
			summary.TotalTasks, summary.CompletedCount, summary.UncompletedCount, summary.CompletionRate)

		fmt.Printf("Importance (low/mid/high): %d / %d / %d\n",
			summary.ImportanceDistribution[0],
			summary.ImportanceDistribution[1],
			summary.ImportanceDistribution[2])

		fmt.Print("Completed per month: ")
		for i, month := range summary.MonthlyCompleted {
			if i > 0 {
				fmt.Print("  ")
			}
			fmt.Printf("%s %d", month.Month.String()[:3], month.Count)
		}
		fmt.Println()

		if summary.MostUncompletedDay != "" {
			fmt.Printf("Most unfinished tasks fall on %s\n", warningStyle.Render(summary.MostUncompletedDay))
		}
		if summary.MostUncompletedBucket != "" {
			fmt.Printf("Toughest time of day: %s\n", warningStyle.Render(summary.MostUncompletedBucket))
		}

		// Disposition forecast for what is still on the plan today.
		upcoming := a.planner.Tasks()
		if len(upcoming) > 0 {
			fmt.Println()
			fmt.Println(headingStyle.Render("Today's outlook"))
			for _, task := range upcoming {
				if task.Completed {
					continue
				}
				impact := stats.ScheduleImpact(task.StartTime, task.EndTime)
				fmt.Printf("%s  %s %s\n",
					textStyle.Render(task.Text),
					mutedStyle.Render(fmt.Sprintf("(level %d/5)", impact.Level)),
					impact.Verdict)
			}
		}
		return nil
	}),
}
