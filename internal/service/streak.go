package service

import (
	"sort"
	"time"
)

// CalculateStreaks derives current and longest streaks from completion
// timestamps. Days count once no matter how many completions they hold.
// The current streak is alive only while the newest completion day is today
// or yesterday, otherwise it is 0. Only completion times feed streaks here:
// there is no start-time fallback.
func CalculateStreaks(completionTimes []time.Time, today time.Time) (current, longest int) {
	days := distinctDaysAsc(completionTimes)
	if len(days) == 0 {
		return 0, 0
	}

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	latest := days[len(days)-1]
	gap := daysBetween(latest, toDay(today))
	if gap < 0 || gap > 1 {
		return 0, longest
	}

	current = 1
	for i := len(days) - 1; i > 0; i-- {
		if daysBetween(days[i-1], days[i]) != 1 {
			break
		}
		current++
	}
	return current, longest
}

func distinctDaysAsc(times []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(times))
	days := make([]time.Time, 0, len(times))
	for _, t := range times {
		day := toDay(t)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Normalized to UTC midnight so day arithmetic doesn't trip on DST
func toDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
