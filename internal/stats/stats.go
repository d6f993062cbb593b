// Package stats derives read-only analytics from archived task history.
// Every function is pure: fixed input, fixed output, no storage access.
package stats

import (
	"math"
	"time"

	"flush-planner/internal/model"
)

// Time-of-day buckets, by start time hour.
var BucketNames = [4]string{"morning", "afternoon", "evening", "night"}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type MonthCount struct {
	Month time.Month
	Count int
}

type SplitCount struct {
	Completed   int
	Uncompleted int
}

// Summary aggregates everything the history view derives from one list of
// entries.
type Summary struct {
	TotalTasks       int
	CompletedCount   int
	UncompletedCount int
	CompletionRate   int // percent, rounded

	ImportanceDistribution            [3]int
	CompletedImportanceDistribution   [3]int
	UncompletedImportanceDistribution [3]int
	AverageUncompletedImportance      float64

	// MonthlyCompleted covers the trailing six months including the
	// current one, oldest first. Only completed entries count.
	MonthlyCompleted []MonthCount
	TasksThisMonth   int

	DayOfWeek   [7]SplitCount // Sunday first
	TimeBuckets [4]SplitCount

	// Highest uncompleted count wins; ties go to the first encountered.
	// Empty when nothing is uncompleted there.
	MostUncompletedDay    string
	MostUncompletedBucket string
}

// Calculate derives the full summary. now anchors the trailing-six-months
// window.
func Calculate(entries []model.HistoryEntry, now time.Time) Summary {
	var s Summary
	s.TotalTasks = len(entries)

	var completed, uncompleted []model.HistoryEntry
	for _, e := range entries {
		if e.Completed {
			completed = append(completed, e)
		} else {
			uncompleted = append(uncompleted, e)
		}
	}
	s.CompletedCount = len(completed)
	s.UncompletedCount = len(uncompleted)
	if s.TotalTasks > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedCount) / float64(s.TotalTasks) * 100))
	}

	s.ImportanceDistribution = importanceBuckets(entries)
	s.CompletedImportanceDistribution = importanceBuckets(completed)
	s.UncompletedImportanceDistribution = importanceBuckets(uncompleted)
	s.AverageUncompletedImportance = averageImportance(uncompleted)

	s.MonthlyCompleted, s.TasksThisMonth = monthlyCompleted(completed, now)

	for _, e := range completed {
		s.DayOfWeek[int(e.CompletedAt.Weekday())].Completed++
	}
	for _, e := range uncompleted {
		s.DayOfWeek[int(e.CompletedAt.Weekday())].Uncompleted++
	}

	for _, e := range completed {
		if idx, ok := bucketIndex(e.StartTime); ok {
			s.TimeBuckets[idx].Completed++
		}
	}
	for _, e := range uncompleted {
		if idx, ok := bucketIndex(e.StartTime); ok {
			s.TimeBuckets[idx].Uncompleted++
		}
	}

	if day, ok := maxUncompleted(s.DayOfWeek[:]); ok {
		s.MostUncompletedDay = dayNames[day]
	}
	if bucket, ok := maxUncompleted(s.TimeBuckets[:]); ok {
		s.MostUncompletedBucket = BucketNames[bucket]
	}

	return s
}

func importanceBuckets(entries []model.HistoryEntry) [3]int {
	var buckets [3]int
	for _, e := range entries {
		if e.Importance != nil && *e.Importance >= 1 && *e.Importance <= 3 {
			buckets[*e.Importance-1]++
		}
	}
	return buckets
}

func averageImportance(entries []model.HistoryEntry) float64 {
	sum, n := 0, 0
	for _, e := range entries {
		if e.Importance != nil {
			sum += *e.Importance
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func monthlyCompleted(completed []model.HistoryEntry, now time.Time) ([]MonthCount, int) {
	type monthKey struct {
		year  int
		month time.Month
	}

	keys := make([]monthKey, 0, 6)
	counts := make(map[monthKey]int, 6)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 5; i >= 0; i-- {
		d := anchor.AddDate(0, -i, 0)
		k := monthKey{d.Year(), d.Month()}
		keys = append(keys, k)
		counts[k] = 0
	}

	for _, e := range completed {
		k := monthKey{e.CompletedAt.Year(), e.CompletedAt.Month()}
		if _, tracked := counts[k]; tracked {
			counts[k]++
		}
	}

	months := make([]MonthCount, 0, 6)
	for _, k := range keys {
		months = append(months, MonthCount{Month: k.month, Count: counts[k]})
	}
	thisMonth := counts[monthKey{now.Year(), now.Month()}]
	return months, thisMonth
}

// bucketIndex maps a start time to morning 05-12, afternoon 12-17,
// evening 17-21, night otherwise. Entries without a parsable start time
// are left out of the bucket analysis.
func bucketIndex(startTime *string) (int, bool) {
	if startTime == nil {
		return 0, false
	}
	clock, err := model.ParseClock(*startTime)
	if err != nil {
		return 0, false
	}
	switch {
	case clock.Hour >= 5 && clock.Hour < 12:
		return 0, true
	case clock.Hour >= 12 && clock.Hour < 17:
		return 1, true
	case clock.Hour >= 17 && clock.Hour < 21:
		return 2, true
	default:
		return 3, true
	}
}

func maxUncompleted(splits []SplitCount) (int, bool) {
	best, bestCount := 0, 0
	for i, split := range splits {
		if split.Uncompleted > bestCount {
			bestCount = split.Uncompleted
			best = i
		}
	}
	return best, bestCount > 0
}
