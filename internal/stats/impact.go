package stats

import "flush-planner/internal/model"

// Impact is a playful disposition forecast for a scheduled task: how well
// its time slot lines up with a healthy daily rhythm, on a 1..5 scale.
type Impact struct {
	Level         int
	TimeScore     int
	DurationScore int
	Verdict       string
}

var verdicts = [5]string{
	"This slot fights your natural rhythm. Plan deliberate breaks.",
	"A somewhat sluggish slot. Keep water nearby.",
	"A neutral slot. Business as usual.",
	"A favorable slot. Expect a smooth, satisfying session.",
	"A golden slot. Peak conditions ahead!",
}

// ScheduleImpact scores a task's time slot. Missing times score neutral.
func ScheduleImpact(startTime, endTime *string) Impact {
	timeScore := timeOfDayScore(startTime)
	durationScore := durationScore(startTime, endTime)

	level := (timeScore + durationScore + 1) / 2
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}

	return Impact{
		Level:         level,
		TimeScore:     timeScore,
		DurationScore: durationScore,
		Verdict:       verdicts[level-1],
	}
}

func timeOfDayScore(startTime *string) int {
	if startTime == nil {
		return 3
	}
	clock, err := model.ParseClock(*startTime)
	if err != nil {
		return 3
	}
	switch {
	case clock.Hour >= 5 && clock.Hour < 9:
		return 5
	case clock.Hour >= 9 && clock.Hour < 12:
		return 4
	case clock.Hour >= 12 && clock.Hour < 14:
		return 3
	case clock.Hour >= 14 && clock.Hour < 18:
		return 2
	case clock.Hour >= 18 && clock.Hour < 22:
		return 3
	default:
		return 1
	}
}

func durationScore(startTime, endTime *string) int {
	if startTime == nil || endTime == nil {
		return 3
	}
	start, err := model.ParseClock(*startTime)
	if err != nil {
		return 3
	}
	end, err := model.ParseClock(*endTime)
	if err != nil {
		return 3
	}
	minutes := end.Minutes() - start.Minutes()
	switch {
	case minutes <= 30:
		return 4
	case minutes <= 60:
		return 3
	case minutes <= 120:
		return 2
	default:
		return 1
	}
}
