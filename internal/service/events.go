package service

import "flush-planner/internal/model"

// Events receives outbound notifications for the presentation layer.
// Implementations must not call back into the planner.
type Events interface {
	ReminderRaised(task model.Task)
	ReminderDismissed(taskID string)
	TaskListChanged()
	HistoryPageLoaded(count int)
}

// NopEvents ignores every event. Embed it to implement a subset.
type NopEvents struct{}

func (NopEvents) ReminderRaised(model.Task) {}
func (NopEvents) ReminderDismissed(string)  {}
func (NopEvents) TaskListChanged()          {}
func (NopEvents) HistoryPageLoaded(int)     {}
