package service

import "crewhub/modules/analytics/repository"

// MetricDelta pairs a period value with the change against the previous
// equal-length period. DropPercent is nil when the previous value is zero.
type MetricDelta struct {
	Current     float64  `json:"current"`
	Previous    float64  `json:"previous"`
	DropPercent *float64 `json:"drop_percent,omitempty"`
}

// ActivityReport summarizes one period's activity with previous-period
// comparisons.
type ActivityReport struct {
	WindowDays     int         `json:"window_days"`
	Schedules      MetricDelta `json:"schedules"`
	AttendanceRate MetricDelta `json:"attendance_rate"`
	Posts          MetricDelta `json:"posts"`
	Comments       MetricDelta `json:"comments"`
	NewMembers     MetricDelta `json:"new_members"`
	Income         MetricDelta `json:"income"`
	Expense        MetricDelta `json:"expense"`
}

func delta(current float64, previous float64) MetricDelta {
	return MetricDelta{
		Current:     current,
		Previous:    previous,
		DropPercent: CalcDropPercent(current, previous),
	}
}

func BuildActivityReport(windowDays int, current *repository.PeriodCounts, previous *repository.PeriodCounts) *ActivityReport {
	currentRate, _ := Rate(current.Present, current.Marked)
	previousRate, _ := Rate(previous.Present, previous.Marked)

	return &ActivityReport{
		WindowDays:     windowDays,
		Schedules:      delta(float64(current.Schedules), float64(previous.Schedules)),
		AttendanceRate: delta(currentRate, previousRate),
		Posts:          delta(float64(current.Posts), float64(previous.Posts)),
		Comments:       delta(float64(current.Comments), float64(previous.Comments)),
		NewMembers:     delta(float64(current.NewMembers), float64(previous.NewMembers)),
		Income:         delta(float64(current.Income), float64(previous.Income)),
		Expense:        delta(float64(current.Expense), float64(previous.Expense)),
	}
}
