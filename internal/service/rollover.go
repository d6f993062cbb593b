package service

import (
	"context"
	"fmt"
	"log"

	"flush-planner/internal/model"
)

const markerDateLayout = "2006-01-02"

// RolloverIfNeeded archives and clears the whole active set the first time
// a new calendar date is observed, either by the polling timer or at
// startup. It returns whether a rollover ran.
//
// Both triggers may fire for the same date change; the second caller sees
// an up-to-date marker and does nothing. History writes are best-effort:
// a failed write for one task never blocks the others, and the summary
// error reports how many made it.
func (p *Planner) RolloverIfNeeded(ctx context.Context) (bool, error) {
	today := p.now().Format(markerDateLayout)

	last, err := p.markers.LastSeenDate(p.userID)
	if err != nil {
		return false, fmt.Errorf("read day marker: %w", err)
	}
	if last == today {
		return false, nil
	}
	if last == "" {
		// First session on this device: record today, nothing to archive.
		if err := p.markers.SetLastSeenDate(p.userID, today); err != nil {
			return false, fmt.Errorf("write day marker: %w", err)
		}
		return false, nil
	}

	p.mu.Lock()

	// Partition a fresh listing, not the mirror: in a long-running watch
	// session another process may have added rows the mirror has never
	// seen, and everything the delete below wipes must be archived first.
	stored, err := p.tasks.ListByUser(ctx, p.userID)
	if err != nil {
		p.mu.Unlock()
		return false, fmt.Errorf("list tasks: %w", err)
	}

	now := p.now()
	var uncompleted []model.Task
	for _, task := range stored {
		if !task.Completed {
			uncompleted = append(uncompleted, task)
		}
	}

	archived := 0
	for _, task := range uncompleted {
		entry := archiveEntry(task, now, false)
		if err := p.history.Create(ctx, &entry); err != nil {
			log.Printf("rollover: archive task %s: %v", task.ID, err)
			continue
		}
		archived++
	}

	// Completed-but-unflushed tasks are discarded without a second history
	// write; a flushed task already wrote its own entry.
	if err := p.tasks.DeleteAllByUser(ctx, p.userID); err != nil {
		p.mu.Unlock()
		return false, err
	}

	p.active = nil
	p.pending = nil
	p.notified = make(map[string]struct{})
	p.mu.Unlock()

	p.events.TaskListChanged()

	if err := p.markers.SetLastSeenDate(p.userID, today); err != nil {
		return true, fmt.Errorf("write day marker: %w", err)
	}

	if archived < len(uncompleted) {
		return true, fmt.Errorf("rollover archived %d of %d tasks", archived, len(uncompleted))
	}
	return true, nil
}
