package notify

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flush-planner/internal/model"
	"flush-planner/internal/service"
)

// Telegram delivers reminders and the daily digest to a single chat.
// Delivery is best-effort: send failures are logged, never propagated into
// the planner.
type Telegram struct {
	service.NopEvents
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] notifier authorized on account %s", api.Self.UserName)

	return &Telegram{api: api, chatID: chatID}, nil
}

// ReminderRaised implements service.Events for raised reminders.
func (t *Telegram) ReminderRaised(task model.Task) {
	end := ""
	if task.EndTime != nil {
		end = fmt.Sprintf(" (ends at %s)", model.DisplayClock(*task.EndTime))
	}
	text := fmt.Sprintf("⏰ <b>Reminder</b>\n%s%s", html.EscapeString(task.Text), end)
	if err := t.sendText(text); err != nil {
		log.Printf("send reminder for task %s: %v", task.ID, err)
	}
}

// SendDigest sends a summary of the day's remaining tasks.
func (t *Telegram) SendDigest(tasks []model.Task, now time.Time) error {
	return t.sendText(digestText(tasks, now))
}

func digestText(tasks []model.Task, now time.Time) string {
	var builder strings.Builder
	builder.WriteString("📋 <b>Today's plan</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("2006-01-02")))

	pending, overdue := 0, 0
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		pending++

		icon := "🟢"
		slot := ""
		if task.EndTime != nil {
			if clock, err := model.ParseClock(*task.EndTime); err == nil && now.After(clock.At(now)) {
				icon = "⚠️"
				overdue++
			}
			slot = fmt.Sprintf(" · until %s", model.DisplayClock(*task.EndTime))
		}
		builder.WriteString(fmt.Sprintf("%s %s%s\n", icon, html.EscapeString(task.Text), slot))
	}

	if pending == 0 {
		builder.WriteString("— nothing left, enjoy your day\n")
	} else if overdue > 0 {
		builder.WriteString(fmt.Sprintf("\n%d task(s) already overdue.", overdue))
	}

	return strings.TrimSpace(builder.String())
}

func (t *Telegram) sendText(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
