package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Archive every overdue, unfinished task",
	Long: `Archive all tasks whose end time has already passed today and which
are not completed. They land in history as unfinished. Future and completed
tasks stay put.`,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Sweep all overdue tasks into history?") {
			fmt.Println("Aborted.")
			return nil
		}

		swept, err := a.planner.SweepOverdue(ctx)
		if err != nil {
			return err
		}

		if swept == 0 {
			fmt.Println("Nothing overdue.")
		} else {
			fmt.Printf("Swept %d overdue task(s) into history.\n", swept)
		}
		return nil
	}),
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	sweepCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
