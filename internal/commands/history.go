package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flush-planner/internal/model"
	"flush-planner/internal/service"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse archived tasks, newest first",
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		all, _ := cmd.Flags().GetBool("all")

		if all {
			for a.history.HasMore() {
				if err := a.history.LoadMore(ctx); err != nil {
					return err
				}
			}
			printEntries(a.history.Entries())
			return nil
		}

		entries, hasMore, err := a.history.FetchPage(ctx, page)
		if err != nil {
			return err
		}
		printEntries(entries)
		if hasMore {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("More entries on page %d.", page+1)))
		}
		return nil
	}),
}

func printEntries(entries []model.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Println(mutedStyle.Render("History is empty. Flush a task first."))
		return
	}
	for _, entry := range entries {
		mark := doneStyle.Render("done")
		if !entry.Completed {
			mark = warningStyle.Render("unfinished")
		}
		line := fmt.Sprintf("%s  %s  %s  %s",
			mutedStyle.Render(entry.CompletedAt.Format("2006-01-02 15:04")),
			mark,
			textStyle.Render(entry.Text),
			timeStyle.Render(formatSlot(entry.StartTime, entry.EndTime)),
		)
		fmt.Println(line)
	}
}

func init() {
	historyCmd.Flags().Int("page", 0, fmt.Sprintf("page number (%d entries per page)", service.HistoryPageSize))
	historyCmd.Flags().Bool("all", false, "load every page")
}
