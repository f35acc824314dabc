package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/models"
)

// DashboardInput is the snapshot the dashboard is computed from.
// TodayLogs holds the habit logs of the current calendar day only.
type DashboardInput struct {
	Notes        []models.Note
	Habits       []models.Habit
	TodayLogs    []models.HabitLog
	Transactions []models.Transaction
	Goals        []models.Goal
}

// DashboardStats is the cross-entity rollup shown on the dashboard.
type DashboardStats struct {
	TotalNotes           int             `json:"totalNotes"`
	HabitsCompletedToday string          `json:"habitsCompletedToday"`
	MonthlyBalance       decimal.Decimal `json:"monthlyBalance"`
	GoalsProgress        string          `json:"goalsProgress"`
}

// Dashboard reduces the snapshot. now selects the calendar month (in now's
// location) that contributes to the monthly balance.
func Dashboard(in DashboardInput, now time.Time) DashboardStats {
	completedToday := 0
	for _, l := range in.TodayLogs {
		if l.Completed {
			completedToday++
		}
	}

	completedGoals := 0
	for _, g := range in.Goals {
		if g.Status == models.GoalCompleted {
			completedGoals++
		}
	}

	return DashboardStats{
		TotalNotes:           len(in.Notes),
		HabitsCompletedToday: fmt.Sprintf("%d/%d", completedToday, len(in.Habits)),
		MonthlyBalance:       MonthlyBalance(in.Transactions, now),
		GoalsProgress:        fmt.Sprintf("%d/%d", completedGoals, len(in.Goals)),
	}
}

// MonthlyBalance returns income minus expenses for transactions dated in the
// same calendar month and year as now.
func MonthlyBalance(txs []models.Transaction, now time.Time) decimal.Decimal {
	year, month, _ := now.Date()
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		y, m, _ := t.Date.In(now.Location()).Date()
		if y != year || m != month {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(t.Amount)
		case models.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income.Sub(expense)
}
