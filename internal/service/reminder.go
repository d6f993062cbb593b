package service

import (
	"log"
	"time"

	"flush-planner/internal/model"
)

const (
	// reminderLead is how long before a task's end time its reminder fires.
	reminderLead = 30 * time.Minute
	// reminderSlack absorbs polling jitter at the front of the window.
	reminderSlack = time.Minute
)

// ScanReminders walks the active list and raises a reminder for every task
// whose end time is approaching. A task is reminded at most once while
// active: repeated scans inside the window are no-ops.
//
// The end moment is always anchored on today's date, so a task created with
// an end time already in the past sees a window that has closed and is
// silently never reminded.
func (p *Planner) ScanReminders() {
	now := p.now()
	var raised []model.Task

	p.mu.Lock()
	for _, task := range p.active {
		if task.EndTime == nil || task.Completed {
			continue
		}
		if _, done := p.notified[task.ID]; done {
			continue
		}
		clock, err := model.ParseClock(*task.EndTime)
		if err != nil {
			// Skipped this pass, retried on the next one.
			log.Printf("reminder scan: task %s: %v", task.ID, err)
			continue
		}
		end := clock.At(now)
		windowStart := end.Add(-reminderLead).Add(-reminderSlack)
		if now.Before(windowStart) || now.After(end) {
			continue
		}
		p.pending = append(p.pending, task)
		p.notified[task.ID] = struct{}{}
		raised = append(raised, task)
	}
	p.mu.Unlock()

	for _, task := range raised {
		p.events.ReminderRaised(task)
	}
}

// DismissReminder removes a pending reminder. The task stays in the
// notified set, so it will not be reminded again today.
func (p *Planner) DismissReminder(taskID string) {
	p.mu.Lock()
	p.dropReminderLocked(taskID)
	p.mu.Unlock()

	p.events.ReminderDismissed(taskID)
}

// Reminders returns a copy of the pending reminder list.
func (p *Planner) Reminders() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	pending := make([]model.Task, len(p.pending))
	copy(pending, p.pending)
	return pending
}

func (p *Planner) dropReminderLocked(taskID string) {
	for i := range p.pending {
		if p.pending[i].ID == taskID {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			return
		}
	}
}
