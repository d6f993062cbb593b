package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"flush-planner/internal/config"
	"flush-planner/internal/model"
	"flush-planner/internal/repository"
	"flush-planner/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "flushplanner",
	Short: "A daily task planner with reminders and a flushable history",
	Long: `flushplanner keeps today's tasks with optional start/end times and a
3-level importance rating. Completing a task flushes it into an append-only
history; at midnight everything left over is rolled into history as
unfinished, and overdue tasks can be swept there on demand.`,
}

// app bundles the wired services for one command invocation.
type app struct {
	cfg       config.Config
	planner   *service.Planner
	history   *service.HistoryService
	favorites *service.FavoriteService
}

// newApp builds the service stack, refreshes the task mirror and runs the
// startup rollover check, so every command sees a current-day task list.
// events may be nil for commands that do not watch for reminders.
func newApp(ctx context.Context, events service.Events) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}

	markers, err := repository.NewMarkerStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("state dir: %w", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	planner := service.NewPlanner(taskRepo, historyRepo, markers, events, cfg.UserID)
	if err := planner.Refresh(ctx); err != nil {
		return nil, err
	}
	if _, err := planner.RolloverIfNeeded(ctx); err != nil {
		log.Printf("rollover: %v", err)
	}

	return &app{
		cfg:       cfg,
		planner:   planner,
		history:   service.NewHistoryService(historyRepo, nil, cfg.UserID),
		favorites: service.NewFavoriteService(favoriteRepo, planner, cfg.UserID),
	}, nil
}

// withApp wraps a command function so it runs against a wired app.
func withApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		return fn(ctx, a, cmd, args)
	}
}

// resolveTask matches a task by full id or unique id prefix.
func resolveTask(tasks []model.Task, ref string) (model.Task, error) {
	var matches []model.Task
	for _, task := range tasks {
		if task.ID == ref {
			return task, nil
		}
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Task{}, fmt.Errorf("no task matches %q", ref)
	default:
		return model.Task{}, fmt.Errorf("%q is ambiguous, %d tasks match", ref, len(matches))
	}
}

// scheduleFlags reads and validates the shared --start/--end/--importance
// flags. Both times or neither; start must come before end; this is the
// input boundary where those rules live.
func scheduleFlags(cmd *cobra.Command) (startTime, endTime *string, importance *int, err error) {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	level, _ := cmd.Flags().GetInt("importance")

	if (start == "") != (end == "") {
		return nil, nil, nil, fmt.Errorf("--start and --end must be given together")
	}
	if start != "" {
		startClock, perr := model.ParseClock(start)
		if perr != nil {
			return nil, nil, nil, perr
		}
		endClock, perr := model.ParseClock(end)
		if perr != nil {
			return nil, nil, nil, perr
		}
		if startClock.Minutes() >= endClock.Minutes() {
			return nil, nil, nil, fmt.Errorf("start time %s must be before end time %s", startClock, endClock)
		}
		s, e := startClock.String(), endClock.String()
		startTime, endTime = &s, &e
	}

	if level != 0 {
		if level < 1 || level > 3 {
			return nil, nil, nil, fmt.Errorf("importance must be 1, 2 or 3")
		}
		importance = &level
	}
	return startTime, endTime, importance, nil
}

func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "start time (HH:MM)")
	cmd.Flags().String("end", "", "end time (HH:MM)")
	cmd.Flags().Int("importance", 0, "importance 1 (low) to 3 (high)")
}

// Execute runs the root command until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(watchCmd)
}
