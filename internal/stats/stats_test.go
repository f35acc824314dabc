package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/models"
)

const today = "2026-03-15"

func logOn(date string, completed bool) models.HabitLog {
	return models.HabitLog{HabitID: 1, Date: date, Completed: completed}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name    string
		today   string
		logs    []models.HabitLog
		current int
		longest int
	}{
		{"no logs", today, nil, 0, 0},
		{
			"three contiguous days ending today", today,
			[]models.HabitLog{logOn("2026-03-15", true), logOn("2026-03-14", true), logOn("2026-03-13", true)},
			3, 3,
		},
		{
			"incomplete yesterday stops the walk", today,
			[]models.HabitLog{logOn("2026-03-15", true), logOn("2026-03-14", false), logOn("2026-03-13", true)},
			1, 1,
		},
		{
			"missing today", today,
			[]models.HabitLog{logOn("2026-03-14", true), logOn("2026-03-13", true)},
			0, 2,
		},
		{
			"gap breaks current but not longest", today,
			[]models.HabitLog{logOn("2026-03-15", true), logOn("2026-03-13", true), logOn("2026-03-12", true)},
			1, 3,
		},
		{
			"unordered input", today,
			[]models.HabitLog{logOn("2026-03-13", true), logOn("2026-03-15", true), logOn("2026-03-14", true)},
			3, 3,
		},
		{
			"crosses a month boundary", "2026-03-02",
			[]models.HabitLog{logOn("2026-03-02", true), logOn("2026-03-01", true), logOn("2026-02-28", true)},
			3, 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streaks(tt.logs, tt.today)
			if got.Current != tt.current {
				t.Errorf("current = %d, want %d", got.Current, tt.current)
			}
			if got.Longest != tt.longest {
				t.Errorf("longest = %d, want %d", got.Longest, tt.longest)
			}
		})
	}
}

func TestStreaks_DoesNotReorderInput(t *testing.T) {
	logs := []models.HabitLog{logOn("2026-03-13", true), logOn("2026-03-15", true)}
	_ = Streaks(logs, today)
	if logs[0].Date != "2026-03-13" {
		t.Errorf("input slice was reordered: %v", logs)
	}
}

func TestMonthlyBalance(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{Amount: decimal.RequireFromString("1000.00"), Type: models.TransactionIncome, Date: now.AddDate(0, 0, -3)},
		{Amount: decimal.RequireFromString("250.50"), Type: models.TransactionExpense, Date: now},
		{Amount: decimal.RequireFromString("99.99"), Type: models.TransactionExpense, Date: now.AddDate(0, -1, 0)},
		{Amount: decimal.RequireFromString("5000"), Type: models.TransactionIncome, Date: now.AddDate(-1, 0, 0)},
	}
	got := MonthlyBalance(txs, now)
	if !got.Equal(decimal.RequireFromString("749.50")) {
		t.Errorf("balance = %s, want 749.50", got)
	}
}

func TestMonthlyBalance_NoFloatDrift(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	var txs []models.Transaction
	for i := 0; i < 10; i++ {
		txs = append(txs, models.Transaction{Amount: decimal.RequireFromString("0.10"), Type: models.TransactionIncome, Date: now})
	}
	if got := MonthlyBalance(txs, now); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("balance = %s, want 1", got)
	}
}

func TestDashboard(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	in := DashboardInput{
		Notes:     []models.Note{{ID: 1}, {ID: 2}},
		Habits:    []models.Habit{{ID: 3}, {ID: 4}, {ID: 5}},
		TodayLogs: []models.HabitLog{logOn(today, true), logOn(today, false)},
		Transactions: []models.Transaction{
			{Amount: decimal.NewFromInt(10), Type: models.TransactionIncome, Date: now},
		},
		Goals: []models.Goal{{Status: models.GoalCompleted}, {Status: models.GoalInProgress}},
	}
	got := Dashboard(in, now)
	if got.TotalNotes != 2 {
		t.Errorf("totalNotes = %d", got.TotalNotes)
	}
	if got.HabitsCompletedToday != "1/3" {
		t.Errorf("habitsCompletedToday = %q", got.HabitsCompletedToday)
	}
	if !got.MonthlyBalance.Equal(decimal.NewFromInt(10)) {
		t.Errorf("monthlyBalance = %s", got.MonthlyBalance)
	}
	if got.GoalsProgress != "1/2" {
		t.Errorf("goalsProgress = %q", got.GoalsProgress)
	}
}

func TestDashboard_Empty(t *testing.T) {
	got := Dashboard(DashboardInput{}, time.Now())
	if got.HabitsCompletedToday != "0/0" || got.GoalsProgress != "0/0" || !got.MonthlyBalance.IsZero() {
		t.Errorf("unexpected empty dashboard: %+v", got)
	}
}

func TestGoalProgress(t *testing.T) {
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	tests := []struct {
		name    string
		target  *decimal.Decimal
		current string
		want    int
	}{
		{"no target", nil, "5", 0},
		{"zero target", dec("0"), "5", 0},
		{"half", dec("10"), "5", 50},
		{"rounds", dec("3"), "2", 67},
		{"capped", dec("10"), "25", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.Goal{TargetValue: tt.target, CurrentValue: decimal.RequireFromString(tt.current)}
			if got := GoalProgress(g); got != tt.want {
				t.Errorf("progress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -2)
	soon := now.AddDate(0, 0, 3)
	far := now.AddDate(0, 1, 0)
	target := decimal.NewFromInt(10)

	goals := []models.Goal{
		{ID: 1, Title: "Overdue", Status: models.GoalInProgress, TargetDate: &past},
		{ID: 2, Title: "Soon", Status: models.GoalNotStarted, TargetDate: &soon},
		{ID: 3, Title: "Done", Status: models.GoalCompleted, TargetDate: &past},
		{ID: 4, Title: "Nearly", Status: models.GoalInProgress, TargetDate: &far, TargetValue: &target, CurrentValue: decimal.NewFromInt(9)},
	}
	checklists := []models.ChecklistWithItems{
		{
			Checklist: models.Checklist{ID: 5, Title: "Trip"},
			Items: []models.ChecklistItem{
				{Completed: true}, {Completed: true}, {Completed: true}, {Completed: true}, {Completed: false},
			},
		},
		{Checklist: models.Checklist{ID: 6, Title: "Empty"}},
	}

	got := Notifications(goals, checklists, now)
	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
	}
	want := []string{"goal-overdue-1", "goal-due-soon-2", "goal-almost-complete-4", "checklist-almost-complete-5"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	if ids[0] != "goal-overdue-1" {
		t.Errorf("first notification = %q, want the high priority one", ids[0])
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range want {
		if !seen[id] {
			t.Errorf("missing %q in %v", id, ids)
		}
	}
	for _, n := range got {
		if n.ID == "goal-due-soon-2" && !strings.Contains(n.Message, "3 days") {
			t.Errorf("due soon message = %q", n.Message)
		}
		if n.ID == "checklist-almost-complete-5" && !strings.Contains(n.Message, "80% complete (4/5 items)") {
			t.Errorf("checklist message = %q", n.Message)
		}
	}
}
