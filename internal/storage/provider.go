// Package storage keeps the tracker's entities. Two backends implement Store:
// Memory (volatile, in-process) and SQLite (durable).
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/starford/lifetrack/internal/models"
	"github.com/starford/lifetrack/internal/stats"
)

// Store is the entity store contract shared by all backends.
//
// Lookups, updates and deletes of a missing id fail with apperr.ErrNotFound
// and leave every other record untouched. Updates only change the supplied
// patch fields. Every mutation is serialized; UpsertHabitLog and
// DeleteHabitLog recompute the owning habit's streaks atomically with the
// write.
type Store interface {
	Notes(ctx context.Context) ([]models.Note, error)
	Note(ctx context.Context, id int64) (models.Note, error)
	CreateNote(ctx context.Context, in models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, id int64, p models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	// SearchNotes matches query case-insensitively against title or content.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	Habits(ctx context.Context) ([]models.Habit, error)
	Habit(ctx context.Context, id int64) (models.Habit, error)
	CreateHabit(ctx context.Context, in models.HabitInput) (models.Habit, error)
	UpdateHabit(ctx context.Context, id int64, p models.HabitPatch) (models.Habit, error)
	// DeleteHabit removes the habit and all of its logs.
	DeleteHabit(ctx context.Context, id int64) error

	HabitLogs(ctx context.Context, habitID int64) ([]models.HabitLog, error)
	HabitLogsForDate(ctx context.Context, date string) ([]models.HabitLog, error)
	// UpsertHabitLog writes the log for (HabitID, Date), replacing an existing one.
	UpsertHabitLog(ctx context.Context, in models.HabitLogInput) (models.HabitLog, error)
	DeleteHabitLog(ctx context.Context, id int64) error

	Transactions(ctx context.Context) ([]models.Transaction, error)
	Transaction(ctx context.Context, id int64) (models.Transaction, error)
	CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, p models.TransactionPatch) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	Checklists(ctx context.Context) ([]models.ChecklistWithItems, error)
	Checklist(ctx context.Context, id int64) (models.ChecklistWithItems, error)
	CreateChecklist(ctx context.Context, in models.ChecklistInput) (models.Checklist, error)
	UpdateChecklist(ctx context.Context, id int64, p models.ChecklistPatch) (models.Checklist, error)
	// DeleteChecklist removes the checklist and all of its items.
	DeleteChecklist(ctx context.Context, id int64) error

	ChecklistItems(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error)
	ChecklistItem(ctx context.Context, id int64) (models.ChecklistItem, error)
	CreateChecklistItem(ctx context.Context, in models.ChecklistItemInput) (models.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, id int64, p models.ChecklistItemPatch) (models.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, id int64) error

	Goals(ctx context.Context) ([]models.Goal, error)
	Goal(ctx context.Context, id int64) (models.Goal, error)
	CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error)
	UpdateGoal(ctx context.Context, id int64, p models.GoalPatch) (models.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error

	Close() error
}

// Option configures a backend.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for server-assigned timestamps and for
// deciding which calendar day is "today" when recomputing streaks. The
// location of the returned time is the location of "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func matchesNote(n models.Note, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery)
}

func streaksFor(logs []models.HabitLog, now time.Time) stats.Streak {
	return stats.Streaks(logs, models.Day(now))
}
