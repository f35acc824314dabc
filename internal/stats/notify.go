package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/models"
)

// Priority ranks notifications.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Notification is a reminder derived from goal and checklist state.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Priority  Priority  `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	ItemID    int64     `json:"itemId"`
}

const dueSoonDays = 7

var (
	almostLow  = decimal.NewFromInt(80)
	almostHigh = decimal.NewFromInt(100)
)

// Notifications derives reminders: overdue goals, goals due within a week,
// goals and checklists that are at least 80% but not yet 100% done. The
// result is sorted by priority, then by timestamp, newest first.
func Notifications(goals []models.Goal, checklists []models.ChecklistWithItems, now time.Time) []Notification {
	out := []Notification{}

	for _, g := range goals {
		if g.TargetDate != nil && g.Status != models.GoalCompleted {
			if g.TargetDate.Before(now) {
				out = append(out, Notification{
					ID:        fmt.Sprintf("goal-overdue-%d", g.ID),
					Type:      "goal",
					Priority:  PriorityHigh,
					Title:     "Goal Overdue",
					Message:   fmt.Sprintf("%q is past its target date", g.Title),
					Timestamp: *g.TargetDate,
					ItemID:    g.ID,
				})
			}

			days := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
			if days > 0 && days <= dueSoonDays {
				out = append(out, Notification{
					ID:        fmt.Sprintf("goal-due-soon-%d", g.ID),
					Type:      "goal",
					Priority:  PriorityMedium,
					Title:     "Goal Due Soon",
					Message:   fmt.Sprintf("%q is due in %d %s", g.Title, days, plural(days, "day")),
					Timestamp: now,
					ItemID:    g.ID,
				})
			}
		}

		if g.Status == models.GoalInProgress {
			if pct, ok := GoalPercent(g); ok && inAlmostRange(pct) {
				out = append(out, Notification{
					ID:        fmt.Sprintf("goal-almost-complete-%d", g.ID),
					Type:      "goal",
					Priority:  PriorityMedium,
					Title:     "Goal Almost Complete",
					Message:   fmt.Sprintf("%q is %s%% complete! Keep going!", g.Title, pct.Round(0).String()),
					Timestamp: now,
					ItemID:    g.ID,
				})
			}
		}
	}

	for _, c := range checklists {
		total := len(c.Items)
		if total == 0 {
			continue
		}
		done := 0
		for _, it := range c.Items {
			if it.Completed {
				done++
			}
		}
		pct := decimal.NewFromInt(int64(done)).Div(decimal.NewFromInt(int64(total))).Mul(hundred)
		if !inAlmostRange(pct) {
			continue
		}
		out = append(out, Notification{
			ID:        fmt.Sprintf("checklist-almost-complete-%d", c.ID),
			Type:      "checklist",
			Priority:  PriorityMedium,
			Title:     "Checklist Almost Done",
			Message:   fmt.Sprintf("%q is %s%% complete (%d/%d items)", c.Title, pct.Round(0).String(), done, total),
			Timestamp: now,
			ItemID:    c.ID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Priority.rank(), out[j].Priority.rank(); ri != rj {
			return ri > rj
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func inAlmostRange(pct decimal.Decimal) bool {
	return pct.GreaterThanOrEqual(almostLow) && pct.LessThan(almostHigh)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
