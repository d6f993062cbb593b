package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"flush-planner/internal/model"
)

// Planner owns the in-memory mirror of the user's active task list together
// with reminder state, and is the only writer of task rows. The store is the
// source of truth; the mirror is a read cache refreshed in full on session
// start and updated only after a store write succeeds, so a failed write
// leaves visible state unchanged.
//
// All three pieces of shared mutable state (active list, pending reminders,
// notified-id set) live behind one mutex. Every public operation holds it
// for its whole read-modify-write, which is what keeps the rollover poll and
// a user-triggered sweep from archiving the same task twice.
type Planner struct {
	tasks   TaskStore
	history HistoryStore
	markers DayMarkerStore
	events  Events
	now     func() time.Time

	mu       sync.Mutex
	userID   string
	active   []model.Task
	pending  []model.Task
	notified map[string]struct{}
}

func NewPlanner(tasks TaskStore, history HistoryStore, markers DayMarkerStore, events Events, userID string) *Planner {
	if events == nil {
		events = NopEvents{}
	}
	return &Planner{
		tasks:    tasks,
		history:  history,
		markers:  markers,
		events:   events,
		now:      time.Now,
		userID:   userID,
		notified: make(map[string]struct{}),
	}
}

// Refresh reloads the mirror from the store and resets reminder state.
// Call it once at session start.
func (p *Planner) Refresh(ctx context.Context) error {
	tasks, err := p.tasks.ListByUser(ctx, p.userID)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = tasks
	p.pending = nil
	p.notified = make(map[string]struct{})
	return nil
}

// ClearSession drops all in-memory state. Used when the current identity
// goes away; nothing is written to the store.
func (p *Planner) ClearSession() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = nil
	p.pending = nil
	p.notified = make(map[string]struct{})
}

// Add creates a new active task. The task is persisted first and mirrored
// only on success.
func (p *Planner) Add(ctx context.Context, text string, startTime, endTime *string, importance *int) (model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, ErrEmptyText
	}

	task := model.Task{
		ID:         uuid.NewString(),
		UserID:     p.userID,
		Text:       trimmed,
		StartTime:  startTime,
		EndTime:    endTime,
		Importance: importance,
	}
	if err := p.tasks.Create(ctx, &task); err != nil {
		return model.Task{}, err
	}

	p.mu.Lock()
	p.active = append([]model.Task{task}, p.active...)
	p.mu.Unlock()

	p.events.TaskListChanged()
	return task, nil
}

// Edit overwrites the four user-editable fields. A vanished id affects
// nothing and is not an error.
func (p *Planner) Edit(ctx context.Context, id, text string, startTime, endTime *string, importance *int) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}

	if err := p.tasks.UpdateFields(ctx, p.userID, id, trimmed, startTime, endTime, importance); err != nil {
		return err
	}

	p.mu.Lock()
	for i := range p.active {
		if p.active[i].ID == id {
			p.active[i].Text = trimmed
			p.active[i].StartTime = startTime
			p.active[i].EndTime = endTime
			p.active[i].Importance = importance
			break
		}
	}
	p.mu.Unlock()

	p.events.TaskListChanged()
	return nil
}

// Toggle flips the legacy completed flag. Retained for compatibility with
// older task representations; Flush is the canonical completion path.
func (p *Planner) Toggle(ctx context.Context, id string) error {
	p.mu.Lock()
	var next bool
	found := false
	for i := range p.active {
		if p.active[i].ID == id {
			next = !p.active[i].Completed
			found = true
			break
		}
	}
	p.mu.Unlock()
	if !found {
		return nil
	}

	if err := p.tasks.SetCompleted(ctx, p.userID, id, next); err != nil {
		return err
	}

	p.mu.Lock()
	for i := range p.active {
		if p.active[i].ID == id {
			p.active[i].Completed = next
			break
		}
	}
	p.mu.Unlock()

	p.events.TaskListChanged()
	return nil
}

// Flush is user-confirmed completion: archive the task with completed=true,
// then remove it. The history write must succeed before the delete is
// issued; a task is never deleted without its history record. The mutex is
// held for the whole archive-then-delete so a concurrent rollover or sweep
// cannot archive the same task a second time.
func (p *Planner) Flush(ctx context.Context, id string) error {
	p.mu.Lock()

	var task model.Task
	found := false
	for i := range p.active {
		if p.active[i].ID == id {
			task = p.active[i]
			found = true
			break
		}
	}
	if !found {
		p.mu.Unlock()
		return nil
	}

	entry := archiveEntry(task, p.now(), true)
	if err := p.history.Create(ctx, &entry); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("archive task: %w", err)
	}

	if err := p.tasks.Delete(ctx, p.userID, id); err != nil {
		p.mu.Unlock()
		return err
	}

	p.removeLocked(id)
	p.mu.Unlock()

	p.events.TaskListChanged()
	return nil
}

// Delete discards a task without archiving it.
func (p *Planner) Delete(ctx context.Context, id string) error {
	if err := p.tasks.Delete(ctx, p.userID, id); err != nil {
		return err
	}

	p.mu.Lock()
	p.removeLocked(id)
	p.mu.Unlock()

	p.events.TaskListChanged()
	return nil
}

// Tasks returns a copy of the active list sorted by end time ascending,
// with untimed tasks first.
func (p *Planner) Tasks() []model.Task {
	p.mu.Lock()
	tasks := make([]model.Task, len(p.active))
	copy(tasks, p.active)
	p.mu.Unlock()

	sort.SliceStable(tasks, func(i, j int) bool {
		a, aok := endMinutes(tasks[i])
		b, bok := endMinutes(tasks[j])
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return true
		case !bok:
			return false
		default:
			return a < b
		}
	})
	return tasks
}

func endMinutes(task model.Task) (int, bool) {
	if task.EndTime == nil {
		return 0, false
	}
	clock, err := model.ParseClock(*task.EndTime)
	if err != nil {
		return 0, false
	}
	return clock.Minutes(), true
}

// removeLocked drops a task from the mirror and purges its reminder state,
// so a deleted id cannot linger in the notified set. Callers hold p.mu.
func (p *Planner) removeLocked(id string) {
	for i := range p.active {
		if p.active[i].ID == id {
			p.active = append(p.active[:i], p.active[i+1:]...)
			break
		}
	}
	p.dropReminderLocked(id)
	delete(p.notified, id)
}

func archiveEntry(task model.Task, at time.Time, completed bool) model.HistoryEntry {
	return model.HistoryEntry{
		ID:             uuid.NewString(),
		UserID:         task.UserID,
		Text:           task.Text,
		CompletedAt:    at,
		StartTime:      task.StartTime,
		EndTime:        task.EndTime,
		Importance:     task.Importance,
		OriginalTaskID: task.ID,
		Completed:      completed,
	}
}
