package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"flush-planner/internal/config"
	"flush-planner/internal/model"
	"flush-planner/internal/notify"
	"flush-planner/internal/service"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder and rollover timers until interrupted",
	Long: `Keep the planner open: scan for approaching end times, roll the task
list into history at the first date change, and (with TELEGRAM_TOKEN and
TELEGRAM_CHAT_ID set) deliver reminders and an optional daily digest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var events service.Events
		var notifier *notify.Telegram
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
			notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				return fmt.Errorf("notifier: %w", err)
			}
			events = notifier
		} else {
			events = consoleEvents{}
		}

		a, err := newApp(ctx, events)
		if err != nil {
			return err
		}

		scheduler := service.NewScheduler(time.Local)

		if _, err := scheduler.ScheduleInterval(a.cfg.ReminderInterval, func() {
			a.planner.ScanReminders()
		}); err != nil {
			return fmt.Errorf("schedule reminder scan: %w", err)
		}

		if _, err := scheduler.ScheduleInterval(a.cfg.RolloverInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if rolled, err := a.planner.RolloverIfNeeded(jobCtx); err != nil {
				log.Printf("rollover: %v", err)
			} else if rolled {
				log.Println("rolled the day's tasks into history")
			}
		}); err != nil {
			return fmt.Errorf("schedule rollover: %w", err)
		}

		if notifier != nil && a.cfg.DailyDigestTime != "" {
			if _, err := scheduler.ScheduleDaily(a.cfg.DailyDigestTime, func() {
				if err := notifier.SendDigest(a.planner.Tasks(), time.Now()); err != nil {
					log.Printf("digest: %v", err)
				}
			}); err != nil {
				return fmt.Errorf("schedule digest: %w", err)
			}
		}

		// Scan once right away so a freshly added task is not left waiting
		// for the first tick.
		a.planner.ScanReminders()

		scheduler.Start()
		defer scheduler.Stop()

		log.Println("watching; press Ctrl-C to stop")
		<-ctx.Done()
		log.Println("shutdown complete")
		return nil
	},
}

// consoleEvents prints reminders to the terminal when no notifier is
// configured.
type consoleEvents struct {
	service.NopEvents
}

func (consoleEvents) ReminderRaised(task model.Task) {
	end := ""
	if task.EndTime != nil {
		end = fmt.Sprintf(" (ends at %s)", model.DisplayClock(*task.EndTime))
	}
	log.Printf("⏰ reminder: %s%s", task.Text, end)
}
