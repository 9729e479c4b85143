package service

import (
	"sort"
	"time"
)

// CalcStreaks computes the current and longest consecutive-day streak over a
// subject's active dates. Dates are deduplicated to calendar days and sorted
// ascending before the walk. The current streak is 0 unless the last active
// day is within one day of today.
func CalcStreaks(dates []time.Time, today time.Time) (current int, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(dates))
	seen := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		day := truncateDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if dayDiff(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if dayDiff(days[len(days)-1], truncateDay(today)) <= 1 {
		current = run
	}
	return current, longest
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayDiff(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
