package service_test

import (
	"testing"
	"time"

	"github.com/limbo/advent/internal/service"
	"github.com/stretchr/testify/assert"
)

func daysAgo(today time.Time, n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestCalculateStreaks(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	testCases := []struct {
		Desc            string
		Completions     []time.Time
		ExpectedCurrent int
		ExpectedLongest int
	}{
		{
			Desc:            "empty history",
			Completions:     nil,
			ExpectedCurrent: 0,
			ExpectedLongest: 0,
		},
		{
			Desc: "three consecutive days ending today",
			Completions: []time.Time{
				daysAgo(today, 2), daysAgo(today, 1), today,
			},
			ExpectedCurrent: 3,
			ExpectedLongest: 3,
		},
		{
			Desc: "streak alive ending yesterday",
			Completions: []time.Time{
				daysAgo(today, 2), daysAgo(today, 1),
			},
			ExpectedCurrent: 2,
			ExpectedLongest: 2,
		},
		{
			Desc: "old single completion",
			Completions: []time.Time{
				daysAgo(today, 5),
			},
			ExpectedCurrent: 0,
			ExpectedLongest: 1,
		},
		{
			Desc: "gap breaks current but longest survives",
			Completions: []time.Time{
				daysAgo(today, 9), daysAgo(today, 8), daysAgo(today, 7), daysAgo(today, 6),
				daysAgo(today, 1), today,
			},
			ExpectedCurrent: 2,
			ExpectedLongest: 4,
		},
		{
			Desc: "several completions on one day count once",
			Completions: []time.Time{
				daysAgo(today, 1), daysAgo(today, 1).Add(time.Hour * 3),
				today, today.Add(time.Minute),
			},
			ExpectedCurrent: 2,
			ExpectedLongest: 2,
		},
		{
			Desc: "unsorted input",
			Completions: []time.Time{
				today, daysAgo(today, 2), daysAgo(today, 1),
			},
			ExpectedCurrent: 3,
			ExpectedLongest: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			current, longest := service.CalculateStreaks(tc.Completions, today)
			assert.Equal(t, tc.ExpectedCurrent, current)
			assert.Equal(t, tc.ExpectedLongest, longest)
		})
	}
}
