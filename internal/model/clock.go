package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock HH:MM within a single day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses HH:MM. Values loaded from storage may carry a seconds
// component (HH:MM:SS); it is accepted and ignored.
func ParseClock(raw string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid time %q, expected HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", raw)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// At anchors the clock time on the calendar date of ref, in ref's location.
func (c ClockTime) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

// Minutes returns the offset from midnight, used for ordering.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DisplayClock trims a stored HH:MM:SS value down to HH:MM for display.
func DisplayClock(raw string) string {
	if strings.Count(raw, ":") == 2 {
		if idx := strings.LastIndex(raw, ":"); idx > 0 {
			return raw[:idx]
		}
	}
	return raw
}
