// Package stats derives habit streaks, dashboard rollups, goal progress and
// reminder notifications from snapshots of stored entities. Everything here is
// a pure function of its arguments.
package stats

import (
	"sort"
	"time"

	"github.com/starford/lifetrack/internal/models"
)

// Streak holds the derived streak counters of one habit.
type Streak struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// Streaks computes the current and longest streak from the logs of a single habit.
//
// The current streak walks backwards one calendar day at a time starting at
// today and stops at the first day that has no log or an incomplete one.
//
// The longest streak is a single pass over the logs ordered by date descending:
// completed logs extend the run and incomplete logs reset it. Gaps between
// dates do not break the run.
func Streaks(logs []models.HabitLog, today string) Streak {
	sorted := make([]models.HabitLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	var s Streak

	done := make(map[string]bool, len(sorted))
	for _, l := range sorted {
		done[l.Date] = l.Completed
	}
	if day, err := time.Parse(models.DateLayout, today); err == nil {
		for done[models.Day(day)] {
			s.Current++
			day = day.AddDate(0, 0, -1)
		}
	}

	run := 0
	for _, l := range sorted {
		if !l.Completed {
			run = 0
			continue
		}
		run++
		if run > s.Longest {
			s.Longest = run
		}
	}

	return s
}
