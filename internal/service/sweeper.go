package service

import (
	"context"
	"fmt"
	"log"

	"flush-planner/internal/model"
)

// SweepOverdue archives every active task whose end time has already passed
// today and which is not completed, leaving future and completed tasks
// alone. It is the user-triggered counterpart of the daily rollover and is
// a safe no-op when nothing matches.
//
// Each task is archived with completed=false and then deleted; a failed
// history write keeps that task active (never delete without a history
// record) and the sweep moves on. Returns how many tasks were archived.
func (p *Planner) SweepOverdue(ctx context.Context) (int, error) {
	now := p.now()

	p.mu.Lock()

	var overdue []model.Task
	for _, task := range p.active {
		if task.EndTime == nil || task.Completed {
			continue
		}
		clock, err := model.ParseClock(*task.EndTime)
		if err != nil {
			log.Printf("sweep: task %s: %v", task.ID, err)
			continue
		}
		if now.After(clock.At(now)) {
			overdue = append(overdue, task)
		}
	}

	swept := 0
	for _, task := range overdue {
		entry := archiveEntry(task, now, false)
		if err := p.history.Create(ctx, &entry); err != nil {
			log.Printf("sweep: archive task %s: %v", task.ID, err)
			continue
		}
		if err := p.tasks.Delete(ctx, p.userID, task.ID); err != nil {
			log.Printf("sweep: delete task %s: %v", task.ID, err)
			continue
		}
		p.removeLocked(task.ID)
		swept++
	}
	p.mu.Unlock()

	if swept > 0 {
		p.events.TaskListChanged()
	}

	if swept < len(overdue) {
		return swept, fmt.Errorf("sweep archived %d of %d overdue tasks", swept, len(overdue))
	}
	return swept, nil
}
