package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flush-planner/internal/model"
)

// Color constants for terminal output
const (
	colorPrimaryText   = "#E6EAF2"
	colorSecondaryText = "#B1B8C7"
	colorDisabledText  = "#6D7383"
	colorSuccess       = "#22C55E"
	colorWarning       = "#F59E0B"
	colorError         = "#EF4444"
)

var (
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimaryText))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDisabledText))
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondaryText))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimaryText)).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning))
)

var importanceLabels = map[int]string{1: "low", 2: "mid", 3: "high"}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatSlot(startTime, endTime *string) string {
	if startTime == nil && endTime == nil {
		return ""
	}
	start, end := "--:--", "--:--"
	if startTime != nil {
		start = model.DisplayClock(*startTime)
	}
	if endTime != nil {
		end = model.DisplayClock(*endTime)
	}
	return fmt.Sprintf("%s-%s", start, end)
}

func formatImportance(importance *int) string {
	if importance == nil {
		return ""
	}
	label, ok := importanceLabels[*importance]
	if !ok {
		return ""
	}
	return fmt.Sprintf("[%s]", label)
}

func taskLine(task model.Task, overdue bool) string {
	var parts []string

	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}
	parts = append(parts, mutedStyle.Render(shortID(task.ID)), mark)

	text := textStyle.Render(task.Text)
	if task.Completed {
		text = doneStyle.Render(task.Text)
	} else if overdue {
		text = overdueStyle.Render(task.Text)
	}
	parts = append(parts, text)

	if slot := formatSlot(task.StartTime, task.EndTime); slot != "" {
		parts = append(parts, timeStyle.Render(slot))
	}
	if imp := formatImportance(task.Importance); imp != "" {
		parts = append(parts, warningStyle.Render(imp))
	}
	return strings.Join(parts, "  ")
}
